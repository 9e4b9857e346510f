package assets

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackWords(t *testing.T) {
	words, err := FallbackWords()
	require.NoError(t, err)
	assert.Greater(t, len(words), 500)
	assert.Contains(t, words, "raise")
	for _, w := range words {
		assert.Len(t, w, 5, w)
	}
}

func TestMigrations(t *testing.T) {
	names, err := fs.Glob(Migrations(), "*.sql")
	require.NoError(t, err)
	assert.Contains(t, names, "001_usage.sql")
}
