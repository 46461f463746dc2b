package loader

import (
	"bytes"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
)

// blockTags end a run of inline text; a line break is emitted around them
// so words from neighbouring blocks are not glued together.
var blockTags = map[string]struct{}{
	"p": {}, "div": {}, "br": {}, "li": {}, "ul": {}, "ol": {}, "table": {},
	"tr": {}, "td": {}, "th": {}, "h1": {}, "h2": {}, "h3": {}, "h4": {},
	"h5": {}, "h6": {}, "section": {}, "article": {}, "blockquote": {},
	"pre": {}, "header": {}, "footer": {}, "dd": {}, "dt": {},
}

func isHTML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}

// htmlText extracts readable text from an HTML document. The main content
// found by readability is preferred; the whole body is used when
// readability cannot find an article.
func htmlText(path string, data []byte) (string, error) {
	pageURL := &url.URL{Scheme: "file", Path: filepath.ToSlash(path)}

	readabilityParser := readability.NewParser()
	article, err := readabilityParser.Parse(bytes.NewReader(data), pageURL)
	if err == nil && strings.TrimSpace(article.Content) != "" {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
		if err == nil {
			return selectionText(doc.Selection), nil
		}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML %q: %w", path, err)
	}
	body := doc.Find("body")
	if body.Length() == 0 {
		body = doc.Selection
	}
	return selectionText(body), nil
}

func selectionText(s *goquery.Selection) string {
	s.Find("script,style,noscript,template").Remove()

	var sb strings.Builder
	for _, n := range s.Nodes {
		writeText(n, &sb)
	}
	return sb.String()
}

func writeText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		return
	}

	_, block := blockTags[n.Data]
	if n.Type == html.ElementNode && block {
		sb.WriteByte('\n')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(c, sb)
	}
	if n.Type == html.ElementNode && block {
		sb.WriteByte('\n')
	}
}
