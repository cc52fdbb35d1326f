package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// build merges the accumulated configs in registration order. mergo only
// fills fields still at their zero value, so earlier sources take priority.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags := ParseFlags()

	b.configs = append(b.configs, flags)
	return b
}

// withJSON merges an optional JSON config file. The path may come from any
// earlier source (env CONFIG variable or -c/-config flag).
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
			break
		}
	}

	if jsonPath != "" {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}

// withDefaults registers the built-in fallback values. It is always the last
// layer, so it only fills what no other source provided. The insecure token
// sign key fallback is deliberate; main warns when it ends up in effect.
func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, &StructuredConfig{
		Auth: Auth{
			TokenSignKey:  InsecureDefaultTokenSignKey,
			TokenIssuer:   "harborlight-intake",
			TokenDuration: 8 * time.Hour,
			AdminUsername: "admin",
		},
		Storage: Storage{
			DB: DB{
				MaxOpenConns: 10,
				MaxIdleConns: 4,
			},
		},
		Server: Server{
			HTTPAddress:    "0.0.0.0:3001",
			RequestTimeout: 30 * time.Second,
		},
	})
	return b
}
