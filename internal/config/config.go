// Package config loads the run configuration: an optional scriptsync.yaml in the
// working directory for the layout and endpoints, and the environment for the
// vendor credential.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/aretw0/scriptsync/pkg/domain"
	"github.com/kelseyhightower/envconfig"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file looked up in the working directory.
const DefaultFile = "scriptsync.yaml"

// Config is the full run configuration.
type Config struct {
	SourceDir    string        `mapstructure:"source_dir"`
	Firestore    Firestore     `mapstructure:"firestore"`
	Transifex    Transifex     `mapstructure:"transifex"`
	ScriptKinds  []domain.Kind `mapstructure:"script_kinds"`
	DatasetKinds []domain.Kind `mapstructure:"dataset_kinds"`
	ScriptFields []string      `mapstructure:"script_fields"`
	Cache        Cache         `mapstructure:"cache"`
	MetricsFile  string        `mapstructure:"metrics_file"`
	LogLevel     string        `mapstructure:"log_level"`
}

// Firestore locates the editor's documents.
type Firestore struct {
	BaseURL    string `mapstructure:"base_url"`
	Project    string `mapstructure:"project"`
	Collection string `mapstructure:"collection"`
}

// Transifex configures the translation vendor. Token only comes from the environment.
type Transifex struct {
	BaseURL        string   `mapstructure:"base_url"`
	Project        string   `mapstructure:"project"`
	SourceLanguage string   `mapstructure:"source_language"`
	Languages      []string `mapstructure:"languages"`
	Token          string   `mapstructure:"-"`
}

// Cache configures the optional Redis cache of pulled translations.
// An empty RedisAddr disables it.
type Cache struct {
	RedisAddr string        `mapstructure:"redis_addr"`
	Password  string        `mapstructure:"password"`
	DB        int           `mapstructure:"db"`
	TTL       time.Duration `mapstructure:"ttl"`
	Prefix    string        `mapstructure:"prefix"`
	LockTTL   time.Duration `mapstructure:"lock_ttl"`
}

// env holds the settings read from the environment.
type env struct {
	TransifexToken string `envconfig:"TRANSIFEX_TOKEN"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		SourceDir: "src",
		Firestore: Firestore{
			BaseURL:    "https://firestore.googleapis.com/v1",
			Project:    "reportit-script-builder",
			Collection: "script",
		},
		Transifex: Transifex{
			BaseURL:        "https://www.transifex.com/api/2",
			Project:        "equalityorgil",
			SourceLanguage: "he",
			Languages:      []string{"ar", "am", "en", "ru"},
		},
		ScriptKinds:  slices.Clone(domain.ScriptKinds),
		DatasetKinds: slices.Clone(domain.DatasetKinds),
		ScriptFields: []string{"show", "say"},
		Cache: Cache{
			TTL:     time.Hour,
			Prefix:  "scriptsync:",
			LockTTL: 2 * time.Minute,
		},
		LogLevel: "info",
	}
}

// Load reads path over the defaults, then the environment.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	default:
		if err := decode(data, &cfg); err != nil {
			return nil, fmt.Errorf("invalid config %s: %w", path, err)
		}
	}

	var e env
	if err := envconfig.Process("", &e); err != nil {
		return nil, fmt.Errorf("processing env vars: %w", err)
	}
	cfg.Transifex.Token = e.TransifexToken

	return &cfg, nil
}

func decode(data []byte, cfg *Config) error {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
		ErrorUnused: true,
		// Lists from the file replace the defaults instead of overwriting them in place.
		ZeroFields:  true,
		Result:      cfg,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// SyncEnabled reports whether a vendor credential is configured.
func (c *Config) SyncEnabled() bool {
	return c.Transifex.Token != ""
}
