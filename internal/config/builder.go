package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// builder collects partial configs; earlier sources win over later ones.
type builder struct {
	configs []*Config
	err     error
}

func newBuilder() *builder {
	return &builder{configs: make([]*Config, 0, 3)}
}

func (b *builder) build() (Config, error) {
	if b.err != nil {
		return Config{}, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	cfg := Config{}
	for _, c := range b.configs {
		// pointers are taken whole, so an explicit false is kept
		if err := mergo.Merge(&cfg, c, mergo.WithoutDereference); err != nil {
			return Config{}, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return cfg, cfg.validate()
}

func (b *builder) withEnv() *builder {
	envCfg := &Config{}
	if err := env.Parse(envCfg); err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error getting env configs: %w", err))
		return b
	}
	b.configs = append(b.configs, envCfg)
	return b
}

func (b *builder) withYAML(path string) *builder {
	if path == "" {
		return b
	}
	cfg, err := readYAML(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, &cfg)
	return b
}

func (b *builder) withDefaults() *builder {
	def := Default()
	b.configs = append(b.configs, &def)
	return b
}
