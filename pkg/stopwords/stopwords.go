// Package stopwords holds the fixed stopword lists used when tokenizing documents.
package stopwords

import "strings"

// Language names a supported stopword list.
type Language string

const (
	Spanish Language = "spanish"
	English Language = "english"
)

// spanishWords mirrors the NLTK Spanish stopword corpus.
var spanishWords = map[string]struct{}{
	"de": {}, "la": {}, "que": {}, "el": {}, "en": {}, "y": {}, "a": {}, "los": {},
	"del": {}, "se": {}, "las": {}, "por": {}, "un": {}, "para": {}, "con": {},
	"no": {}, "una": {}, "su": {}, "al": {}, "lo": {}, "como": {}, "más": {},
	"pero": {}, "sus": {}, "le": {}, "ya": {}, "o": {}, "este": {}, "sí": {},
	"porque": {}, "esta": {}, "entre": {}, "cuando": {}, "muy": {}, "sin": {},
	"sobre": {}, "también": {}, "me": {}, "hasta": {}, "hay": {}, "donde": {},
	"quien": {}, "desde": {}, "todo": {}, "nos": {}, "durante": {}, "todos": {},
	"uno": {}, "les": {}, "ni": {}, "contra": {}, "otros": {}, "ese": {}, "eso": {},
	"ante": {}, "ellos": {}, "e": {}, "esto": {}, "mí": {}, "antes": {},
	"algunos": {}, "qué": {}, "unos": {}, "yo": {}, "otro": {}, "otras": {},
	"otra": {}, "él": {}, "tanto": {}, "esa": {}, "estos": {}, "mucho": {},
	"quienes": {}, "nada": {}, "muchos": {}, "cual": {}, "poco": {}, "ella": {},
	"estar": {}, "estas": {}, "algunas": {}, "algo": {}, "nosotros": {},

	"mi": {}, "mis": {}, "tú": {}, "te": {}, "ti": {}, "tu": {}, "tus": {},
	"ellas": {}, "nosotras": {}, "vosotros": {}, "vosotras": {}, "os": {},
	"mío": {}, "mía": {}, "míos": {}, "mías": {}, "tuyo": {}, "tuya": {},
	"tuyos": {}, "tuyas": {}, "suyo": {}, "suya": {}, "suyos": {}, "suyas": {},
	"nuestro": {}, "nuestra": {}, "nuestros": {}, "nuestras": {}, "vuestro": {},
	"vuestra": {}, "vuestros": {}, "vuestras": {}, "esos": {}, "esas": {},

	// estar
	"estoy": {}, "estás": {}, "está": {}, "estamos": {}, "estáis": {}, "están": {},
	"esté": {}, "estés": {}, "estemos": {}, "estéis": {}, "estén": {},
	"estaré": {}, "estarás": {}, "estará": {}, "estaremos": {}, "estaréis": {},
	"estarán": {}, "estaría": {}, "estarías": {}, "estaríamos": {},
	"estaríais": {}, "estarían": {}, "estaba": {}, "estabas": {},
	"estábamos": {}, "estabais": {}, "estaban": {}, "estuve": {},
	"estuviste": {}, "estuvo": {}, "estuvimos": {}, "estuvisteis": {},
	"estuvieron": {}, "estuviera": {}, "estuvieras": {}, "estuviéramos": {},
	"estuvierais": {}, "estuvieran": {}, "estuviese": {}, "estuvieses": {},
	"estuviésemos": {}, "estuvieseis": {}, "estuviesen": {}, "estando": {},
	"estado": {}, "estada": {}, "estados": {}, "estadas": {}, "estad": {},

	// haber
	"he": {}, "has": {}, "ha": {}, "hemos": {}, "habéis": {}, "han": {},
	"haya": {}, "hayas": {}, "hayamos": {}, "hayáis": {}, "hayan": {},
	"habré": {}, "habrás": {}, "habrá": {}, "habremos": {}, "habréis": {},
	"habrán": {}, "habría": {}, "habrías": {}, "habríamos": {}, "habríais": {},
	"habrían": {}, "había": {}, "habías": {}, "habíamos": {}, "habíais": {},
	"habían": {}, "hube": {}, "hubiste": {}, "hubo": {}, "hubimos": {},
	"hubisteis": {}, "hubieron": {}, "hubiera": {}, "hubieras": {},
	"hubiéramos": {}, "hubierais": {}, "hubieran": {}, "hubiese": {},
	"hubieses": {}, "hubiésemos": {}, "hubieseis": {}, "hubiesen": {},
	"habiendo": {}, "habido": {}, "habida": {}, "habidos": {}, "habidas": {},

	// ser
	"soy": {}, "eres": {}, "es": {}, "somos": {}, "sois": {}, "son": {},
	"sea": {}, "seas": {}, "seamos": {}, "seáis": {}, "sean": {}, "seré": {},
	"serás": {}, "será": {}, "seremos": {}, "seréis": {}, "serán": {},
	"sería": {}, "serías": {}, "seríamos": {}, "seríais": {}, "serían": {},
	"era": {}, "eras": {}, "éramos": {}, "erais": {}, "eran": {}, "fui": {},
	"fuiste": {}, "fue": {}, "fuimos": {}, "fuisteis": {}, "fueron": {},
	"fuera": {}, "fueras": {}, "fuéramos": {}, "fuerais": {}, "fueran": {},
	"fuese": {}, "fueses": {}, "fuésemos": {}, "fueseis": {}, "fuesen": {},
	"sintiendo": {}, "sentido": {}, "sentida": {}, "sentidos": {},
	"sentidas": {}, "siente": {}, "sentid": {},

	// tener
	"tengo": {}, "tienes": {}, "tiene": {}, "tenemos": {}, "tenéis": {},
	"tienen": {}, "tenga": {}, "tengas": {}, "tengamos": {}, "tengáis": {},
	"tengan": {}, "tendré": {}, "tendrás": {}, "tendrá": {}, "tendremos": {},
	"tendréis": {}, "tendrán": {}, "tendría": {}, "tendrías": {},
	"tendríamos": {}, "tendríais": {}, "tendrían": {}, "tenía": {},
	"tenías": {}, "teníamos": {}, "teníais": {}, "tenían": {}, "tuve": {},
	"tuviste": {}, "tuvo": {}, "tuvimos": {}, "tuvisteis": {}, "tuvieron": {},
	"tuviera": {}, "tuvieras": {}, "tuviéramos": {}, "tuvierais": {},
	"tuvieran": {}, "tuviese": {}, "tuvieses": {}, "tuviésemos": {},
	"tuvieseis": {}, "tuviesen": {}, "teniendo": {}, "tenido": {},
	"tenida": {}, "tenidos": {}, "tenidas": {}, "tened": {},
}

// englishWords is a general-purpose English list. Contractions are left out
// because the tokenizer never produces apostrophes.
var englishWords = map[string]struct{}{
	"a": {}, "about": {}, "above": {}, "across": {}, "after": {}, "afterwards": {},
	"again": {}, "against": {}, "all": {}, "almost": {}, "alone": {}, "along": {},
	"already": {}, "also": {}, "although": {}, "always": {}, "am": {}, "among": {},
	"amongst": {}, "an": {}, "and": {}, "another": {}, "any": {}, "anyone": {},
	"anything": {}, "anywhere": {}, "are": {}, "around": {}, "as": {}, "at": {},

	"be": {}, "became": {}, "because": {}, "become": {}, "becomes": {},
	"been": {}, "before": {}, "behind": {}, "being": {}, "below": {},
	"beside": {}, "besides": {}, "between": {}, "beyond": {}, "both": {},
	"but": {}, "by": {},

	"can": {}, "cannot": {}, "could": {},

	"did": {}, "do": {}, "does": {}, "doing": {}, "done": {}, "down": {},
	"during": {},

	"each": {}, "either": {}, "else": {}, "enough": {}, "even": {}, "ever": {},
	"every": {},

	"few": {}, "for": {}, "from": {}, "further": {},

	"had": {}, "has": {}, "have": {}, "having": {}, "he": {}, "hence": {},
	"her": {}, "here": {}, "hereby": {}, "herein": {}, "hers": {}, "herself": {},
	"him": {}, "himself": {}, "his": {}, "how": {}, "however": {},

	"i": {}, "if": {}, "in": {}, "into": {}, "is": {}, "it": {}, "its": {},
	"itself": {},

	"just": {},

	"least": {}, "less": {},

	"may": {}, "me": {}, "might": {}, "more": {}, "most": {}, "much": {},
	"must": {}, "my": {}, "myself": {},

	"neither": {}, "no": {}, "nor": {}, "not": {}, "now": {},

	"of": {}, "off": {}, "on": {}, "once": {}, "only": {}, "onto": {}, "or": {},
	"other": {}, "others": {}, "otherwise": {}, "our": {}, "ours": {},
	"ourselves": {}, "out": {}, "over": {}, "own": {},

	"per": {},

	"same": {}, "shall": {}, "she": {}, "should": {}, "since": {}, "so": {},
	"some": {}, "such": {},

	"than": {}, "that": {}, "the": {}, "their": {}, "theirs": {}, "them": {},
	"themselves": {}, "then": {}, "there": {}, "thereby": {}, "therefore": {},
	"therein": {}, "these": {}, "they": {}, "this": {}, "those": {},
	"through": {}, "thus": {}, "to": {}, "too": {}, "toward": {}, "towards": {},

	"under": {}, "until": {}, "up": {}, "upon": {}, "us": {},

	"very": {}, "via": {},

	"was": {}, "we": {}, "were": {}, "what": {}, "whatever": {}, "when": {},
	"where": {}, "whereas": {}, "whereby": {}, "wherein": {}, "whether": {},
	"which": {}, "while": {}, "who": {}, "whoever": {}, "whom": {}, "whose": {},
	"why": {}, "will": {}, "with": {}, "within": {}, "without": {}, "would": {},

	"yet": {}, "you": {}, "your": {}, "yours": {}, "yourself": {},
	"yourselves": {},
}

// List is a read-only stopword set for one language.
type List struct {
	lang  Language
	words map[string]struct{}
}

// For returns the stopword list for lang. Unknown languages fall back to Spanish.
func For(lang Language) *List {
	switch Language(strings.ToLower(string(lang))) {
	case English:
		return &List{lang: English, words: englishWords}
	default:
		return &List{lang: Spanish, words: spanishWords}
	}
}

// Language reports which list this is.
func (l *List) Language() Language {
	return l.lang
}

// Contains reports whether word is a stopword. The comparison is exact;
// callers pass already-lowercased tokens.
func (l *List) Contains(word string) bool {
	_, ok := l.words[word]
	return ok
}

// Len returns the number of stopwords in the list.
func (l *List) Len() int {
	return len(l.words)
}

// Words returns the stopwords in no particular order.
func (l *List) Words() []string {
	out := make([]string, 0, len(l.words))
	for w := range l.words {
		out = append(out, w)
	}
	return out
}
