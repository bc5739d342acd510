package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type Neo4jConfig struct {
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	Database string `toml:"database"`
}

type ExportConfig struct {
	Dir string `toml:"dir"`
}

type HTTPConfig struct {
	Addr string `toml:"addr"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type Config struct {
	Neo4j  Neo4jConfig  `toml:"neo4j"`
	Export ExportConfig `toml:"export"`
	HTTP   HTTPConfig   `toml:"http"`
	Log    LogConfig    `toml:"log"`
}

// Default returns the configuration used when no file and no environment
// overrides are present: a local Neo4j with the standard demo credentials.
func Default() *Config {
	return &Config{
		Neo4j:  Neo4jConfig{URI: "bolt://localhost:7687", User: "neo4j", Database: "neo4j"},
		Export: ExportConfig{Dir: "exports"},
		HTTP:   HTTPConfig{Addr: ":8080"},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads the TOML file at path on top of the defaults, then applies
// environment overrides. A missing file is not an error; defaults stand in.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// fall through to env overrides
	case err != nil:
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("NEO4J_URI"); v != "" {
		c.Neo4j.URI = v
	}
	if v := os.Getenv("NEO4J_USER"); v != "" {
		c.Neo4j.User = v
	}
	if v := os.Getenv("NEO4J_PASSWORD"); v != "" {
		c.Neo4j.Password = v
	}
	if v := os.Getenv("NEO4J_DATABASE"); v != "" {
		c.Neo4j.Database = v
	}
	if v := os.Getenv("MOVIEGRAPH_EXPORT_DIR"); v != "" {
		c.Export.Dir = v
	}
	if v := os.Getenv("MOVIEGRAPH_HTTP_ADDR"); v != "" {
		c.HTTP.Addr = v
	}
	if v := os.Getenv("MOVIEGRAPH_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}
