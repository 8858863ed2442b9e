package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"twminer/internal/model"
)

// Config is the application's configuration model.
type Config struct {
	Credentials CredentialsConfig `yaml:"credentials" envPrefix:"X_"`
	API         APIConfig         `yaml:"api" envPrefix:"X_API_"`
	Search      SearchConfig      `yaml:"search" envPrefix:"SEARCH_"`
	Translate   TranslateConfig   `yaml:"translate" envPrefix:"TRANSLATE_"`
	Storage     StorageConfig     `yaml:"storage" envPrefix:"STORAGE_"`
	Log         LogConfig         `yaml:"log" envPrefix:"LOG_"`
	Metrics     MetricsConfig     `yaml:"metrics" envPrefix:"METRICS_"`
}

// CredentialsConfig holds the OAuth 1.0a user-context secrets.
type CredentialsConfig struct {
	ConsumerKey    string `yaml:"consumerKey" env:"CONSUMER_KEY"`
	ConsumerSecret string `yaml:"consumerSecret" env:"CONSUMER_SECRET"`
	AccessToken    string `yaml:"accessToken" env:"ACCESS_TOKEN"`
	AccessSecret   string `yaml:"accessSecret" env:"ACCESS_SECRET"`
}

// APIConfig tunes the X API transport.
type APIConfig struct {
	RequestTimeout time.Duration `yaml:"requestTimeout" env:"REQUEST_TIMEOUT"`
	RPS            float64       `yaml:"rps" env:"RPS"`
	Burst          int           `yaml:"burst" env:"BURST"`
	// MaxRateLimitWaits caps how many exhausted windows one call sits out.
	// Zero waits forever.
	MaxRateLimitWaits int `yaml:"maxRateLimitWaits" env:"MAX_RATE_LIMIT_WAITS"`
	// VerifyCredentials is nil when no source sets it.
	VerifyCredentials *bool `yaml:"verifyCredentials,omitempty" env:"VERIFY_CREDENTIALS"`
}

// Verify reports whether credentials should be checked at startup.
func (a APIConfig) Verify() bool {
	return a.VerifyCredentials != nil && *a.VerifyCredentials
}

type SearchConfig struct {
	Count int `yaml:"count" env:"COUNT"`
}

type TranslateConfig struct {
	BaseURL string        `yaml:"baseURL" env:"BASE_URL"`
	Target  string        `yaml:"target" env:"TARGET"`
	Timeout time.Duration `yaml:"timeout" env:"TIMEOUT"`
}

type StorageConfig struct {
	// DBPath enables the query history when set.
	DBPath string `yaml:"dbPath" env:"DB_PATH"`
}

type LogConfig struct {
	Path  string `yaml:"path" env:"PATH"`
	Level string `yaml:"level" env:"LEVEL"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr" env:"ADDR"`
}

// Default returns a sensible default configuration.
func Default() Config {
	return Config{
		API: APIConfig{
			RequestTimeout: 15 * time.Second,
			RPS:            1,
			Burst:          5,
		},
		Search: SearchConfig{Count: 20},
		Translate: TranslateConfig{
			BaseURL: "https://translate.googleapis.com",
			Target:  "en",
			Timeout: 10 * time.Second,
		},
		Log: LogConfig{Path: "./twminer.log", Level: "info"},
	}
}

// ModelCredentials returns the credentials as the domain type.
func (c Config) ModelCredentials() model.Credentials {
	return model.Credentials{
		ConsumerKey:    c.Credentials.ConsumerKey,
		ConsumerSecret: c.Credentials.ConsumerSecret,
		AccessToken:    c.Credentials.AccessToken,
		AccessSecret:   c.Credentials.AccessSecret,
	}
}

// Load resolves the configuration from the environment, the YAML file at
// path (optional) and the defaults, in that priority order.
func Load(path string) (Config, error) {
	return newBuilder().
		withEnv().
		withYAML(path).
		withDefaults().
		build()
}

// readYAML reads a YAML config from path.
func readYAML(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config file: %w", err)
	}
	return cfg, nil
}

// Save writes YAML config to path, creating directories as needed.
func Save(path string, cfg Config) error {
	if path == "" {
		return errors.New("empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}
