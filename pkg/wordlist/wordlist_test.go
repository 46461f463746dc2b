package wordlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	input := "\ufeffpaz justicia\n\n  libertad\torden  igualdad\r\nnación"

	batches, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, batches, 4)
	assert.Equal(t, Batch{Line: 1, Words: []string{"paz", "justicia"}}, batches[0])
	assert.True(t, batches[1].Empty())
	assert.Equal(t, 2, batches[1].Line)
	assert.Equal(t, []string{"libertad", "orden", "igualdad"}, batches[2].Words)
	assert.Equal(t, Batch{Line: 4, Words: []string{"nación"}}, batches[3])
}

func TestParse_KeepsDuplicatesAndCase(t *testing.T) {
	batches, err := Parse(strings.NewReader("Paz paz Paz"))
	require.NoError(t, err)

	assert.Equal(t, []string{"Paz", "paz", "Paz"}, batches[0].Words)
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "palabras.txt"))

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "palabras.txt")
}
