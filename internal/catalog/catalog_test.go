package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	assert.Equal(t, "escondite", c.DefaultGame)
	assert.Equal(t, []string{"escondite", "asesino", "tesoro", "juicio"}, c.GameIDs())
	assert.True(t, c.HasSound("campana"))
	assert.False(t, c.HasSound("sirena"))
}

func TestParseDefaultsToFirstGame(t *testing.T) {
	c, err := Parse([]byte("games:\n  - id: a\n  - id: b\n"))
	require.NoError(t, err)
	assert.Equal(t, "a", c.DefaultGame)
}

func TestParseRejectsUnknownDefault(t *testing.T) {
	_, err := Parse([]byte("defaultGame: z\ngames:\n  - id: a\n"))
	assert.Error(t, err)
}

func TestParseRejectsEmptyCatalog(t *testing.T) {
	_, err := Parse([]byte("sounds: [x]\n"))
	assert.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("games:\n  - id: solo\nroles: [Rey]\n"), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "solo", c.DefaultGame)
	assert.Equal(t, []string{"Rey"}, c.Roles)
}
