package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	assert.Equal(t, "bolt://localhost:7687", cfg.Neo4j.URI)
	assert.Equal(t, "neo4j", cfg.Neo4j.User)
	assert.Equal(t, "exports", cfg.Export.Dir)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[neo4j]
uri = "neo4j://db.example:7687"
user = "reader"
password = "s3cret"
database = "movies"

[export]
dir = "out"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "neo4j://db.example:7687", cfg.Neo4j.URI)
	assert.Equal(t, "reader", cfg.Neo4j.User)
	assert.Equal(t, "s3cret", cfg.Neo4j.Password)
	assert.Equal(t, "movies", cfg.Neo4j.Database)
	assert.Equal(t, "out", cfg.Export.Dir)
	// Sections absent from the file keep their defaults.
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[neo4j]
uri = "bolt://file:7687"
`), 0o644))

	t.Setenv("NEO4J_URI", "bolt://env:7687")
	t.Setenv("NEO4J_PASSWORD", "from-env")
	t.Setenv("MOVIEGRAPH_EXPORT_DIR", "/tmp/exports")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "bolt://env:7687", cfg.Neo4j.URI)
	assert.Equal(t, "from-env", cfg.Neo4j.Password)
	assert.Equal(t, "/tmp/exports", cfg.Export.Dir)
}

func TestLoad_RejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[neo4j\nuri="), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
