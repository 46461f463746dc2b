package stopwords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFor(t *testing.T) {
	tests := []struct {
		lang Language
		want Language
	}{
		{Spanish, Spanish},
		{English, English},
		{"ENGLISH", English},
		{"", Spanish},
		{"french", Spanish},
	}
	for _, tt := range tests {
		t.Run(string(tt.lang), func(t *testing.T) {
			assert.Equal(t, tt.want, For(tt.lang).Language())
		})
	}
}

func TestSpanish(t *testing.T) {
	l := For(Spanish)

	for _, w := range []string{"de", "la", "que", "más", "estado", "tuviesen"} {
		assert.True(t, l.Contains(w), "%q should be a stopword", w)
	}
	for _, w := range []string{"paz", "justicia", "nación", "De"} {
		assert.False(t, l.Contains(w), "%q should not be a stopword", w)
	}
	assert.Len(t, l.Words(), l.Len())
}
