package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoadYAML(t *testing.T) {
	//** Arrange
	path := writeFile(t, "config.yaml", `database:
  source: "cached"
  year: "2018"
  session: "S"
  timeout_seconds: 5
scheduler:
  strategy: "exhaustive"
server:
  address: ":9090"
  metrics_enabled: true
logging:
  level: "debug"
`)

	//** Act
	cfg, err := Load(path)

	//** Assert
	require.NoError(t, err)
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"database.source", cfg.Database.Source, CachedSource},
		{"database.year", cfg.Database.Year, "2018"},
		{"database.session", cfg.Database.Session, "S"},
		{"database.cache_path", cfg.Database.CachePath, "2018S.json"},
		{"database.timeout_seconds", cfg.Database.TimeoutSeconds, 5},
		{"database.upload_delay_millis", cfg.Database.UploadDelayMillis, 1000},
		{"scheduler.strategy", cfg.Scheduler.Strategy, "exhaustive"},
		{"server.address", cfg.Server.Address, ":9090"},
		{"server.metrics_enabled", cfg.Server.MetricsEnabled, true},
		{"logging.level", cfg.Logging.Level, "debug"},
		{"catalog.base_url", cfg.Catalog.BaseURL, "https://courses.students.ubc.ca"},
	}
	for _, check := range checks {
		assert.Equal(t, check.want, check.got, check.name)
	}
}

func TestLoadJSONWithEnvironmentOverrides(t *testing.T) {
	//** Arrange
	path := writeFile(t, "config.json", `{"database": {"source": "file", "path": "a.json"}, "scheduler": {"strategy": "streaming"}}`)
	t.Setenv("CS_DATABASE__PATH", "b.json")
	t.Setenv("CS_SCHEDULER__STRATEGY", "pruning")

	//** Act
	cfg, err := Load(path)

	//** Assert
	require.NoError(t, err)
	assert.Equal(t, "b.json", cfg.Database.Path)
	assert.Equal(t, "pruning", cfg.Scheduler.Strategy)
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadErrors(t *testing.T) {
	scenarios := map[string]string{
		"unsupported format": writeFile(t, "config.toml", `level = "debug"`),
		"missing file":       filepath.Join(t.TempDir(), "missing.yaml"),
		"unknown source":     writeFile(t, "source.yaml", "database:\n  source: \"ftp\"\n"),
		"unknown strategy":   writeFile(t, "strategy.yaml", "scheduler:\n  strategy: \"greedy\"\n"),
		"unknown level":      writeFile(t, "level.yaml", "logging:\n  level: \"verbose\"\n"),
		"negative timeout":   writeFile(t, "timeout.yaml", "database:\n  timeout_seconds: -1\n"),
	}

	for name, path := range scenarios {
		t.Run(name, func(t *testing.T) {
			cfg, err := Load(path)

			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, FileSource, cfg.Database.Source)
	assert.Equal(t, "2017W.json", cfg.Database.CachePath)
	assert.Equal(t, "pruning", cfg.Scheduler.Strategy)
	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.NoError(t, cfg.Validate())
}

func TestLoadExample(t *testing.T) {
	cfg, err := Load("../../config.example.yaml")

	require.NoError(t, err)
	assert.Equal(t, CachedSource, cfg.Database.Source)
	assert.True(t, cfg.Server.MetricsEnabled)
}
