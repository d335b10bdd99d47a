package config

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/limaJavier/coursescheduler/pkg/model"
)

// Environment variables prefixed with EnvPrefix override file values; "__" separates nested keys,
// e.g. CS_DATABASE__SOURCE=remote
const EnvPrefix = "CS_"

type Config struct {
	Database  DatabaseConfig  `json:"database"`
	Scheduler SchedulerConfig `json:"scheduler"`
	Server    ServerConfig    `json:"server"`
	Logging   LoggingConfig   `json:"logging"`
	Catalog   CatalogConfig   `json:"catalog"`
}

// Default returns a configuration with every section defaulted, used when no file is given
func Default() *Config {
	var cfg Config
	cfg.setDefaults()
	return &cfg
}

// Load reads a YAML or JSON file (chosen by extension), applies environment overrides,
// fills defaults and validates every section. An empty path loads only defaults and environment
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("cannot load config file: %w", err)
		}
	}

	prefix := strings.ToLower(EnvPrefix)
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), prefix)
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) setDefaults() {
	c.Database.SetDefaults()
	c.Scheduler.SetDefaults()
	c.Server.SetDefaults()
	c.Logging.SetDefaults()
	c.Catalog.SetDefaults()
}

func (c Config) Validate() error {
	if err := c.Database.Validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.Scheduler.Validate(); err != nil {
		return fmt.Errorf("scheduler: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}

const (
	FileSource   = "file"
	RemoteSource = "remote"
	CachedSource = "cached"
)

// DatabaseConfig selects where the course database is read from.
type DatabaseConfig struct {
	// Source is one of "file", "remote" or "cached".
	Source string `json:"source"`
	// Path of the JSON file read by the file source.
	Path string `json:"path"`
	// BaseURL of the remote JSON store.
	BaseURL string `json:"base_url"`
	// Year and Session identify the dataset, e.g. 2017 and W.
	Year    string `json:"year"`
	Session string `json:"session"`
	// CachePath is the local copy kept by the cached source.
	CachePath      string `json:"cache_path"`
	TimeoutSeconds int    `json:"timeout_seconds"`
	// UploadDelayMillis pauses between department uploads.
	UploadDelayMillis int `json:"upload_delay_millis"`
}

func (c *DatabaseConfig) SetDefaults() {
	if c.Source == "" {
		c.Source = FileSource
	}
	if c.Path == "" {
		c.Path = "coursedb.json"
	}
	if c.BaseURL == "" {
		c.BaseURL = "https://ubc-coursedb.firebaseio.com"
	}
	if c.Year == "" {
		c.Year = "2017"
	}
	if c.Session == "" {
		c.Session = "W"
	}
	if c.CachePath == "" {
		c.CachePath = c.Year + c.Session + ".json"
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = 30
	}
	if c.UploadDelayMillis == 0 {
		c.UploadDelayMillis = 1000
	}
}

func (c DatabaseConfig) Validate() error {
	if !slices.Contains([]string{FileSource, RemoteSource, CachedSource}, c.Source) {
		return fmt.Errorf("unknown source %s", c.Source)
	}
	if c.TimeoutSeconds < 0 || c.UploadDelayMillis < 0 {
		return fmt.Errorf("timeout_seconds and upload_delay_millis must not be negative")
	}
	return nil
}

type SchedulerConfig struct {
	Strategy string `json:"strategy"`
}

func (c *SchedulerConfig) SetDefaults() {
	if c.Strategy == "" {
		c.Strategy = model.PruningStrategy
	}
}

func (c SchedulerConfig) Validate() error {
	if !slices.Contains(model.Strategies(), c.Strategy) {
		return fmt.Errorf("unknown strategy %s", c.Strategy)
	}
	return nil
}

type ServerConfig struct {
	Address        string `json:"address"`
	MetricsEnabled bool   `json:"metrics_enabled"`
}

func (c *ServerConfig) SetDefaults() {
	if c.Address == "" {
		c.Address = ":8080"
	}
}

type LoggingConfig struct {
	// Level is a zerolog level name: debug, info, warn or error.
	Level string `json:"level"`
}

func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
}

func (c LoggingConfig) Validate() error {
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, c.Level) {
		return fmt.Errorf("unknown level %s", c.Level)
	}
	return nil
}

// CatalogConfig points at the course catalog site used by the seat checker.
type CatalogConfig struct {
	BaseURL string `json:"base_url"`
}

func (c *CatalogConfig) SetDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://courses.students.ubc.ca"
	}
}
