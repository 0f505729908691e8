// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
)

// configBuilder collects config layers in priority order. Errors of every
// layer are kept so that one build reports all broken sources at once.
type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{configs: make([]*StructuredConfig, 0, 4)}
}

func (b *configBuilder) add(cfg *StructuredConfig) *configBuilder {
	b.configs = append(b.configs, cfg)
	return b
}

func (b *configBuilder) fail(err error) *configBuilder {
	b.err = errors.Join(b.err, err)
	return b
}

// build merges the layers; non-zero fields of later layers win.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("build config: %w", b.err)
	}

	merged := &StructuredConfig{}
	for i, layer := range b.configs {
		if err := mergo.Merge(merged, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merge config layer %d: %w", i, err)
		}
	}
	return merged, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	return b.add(defaultConfig())
}

// withDotEnv exports the variables of a .env file into the process
// environment. Variables that are already set keep their values.
func (b *configBuilder) withDotEnv(paths ...string) *configBuilder {
	err := godotenv.Load(paths...)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return b
	}
	return b.fail(fmt.Errorf("load .env: %w", err))
}

func (b *configBuilder) withEnv() *configBuilder {
	cfg := &StructuredConfig{}
	if err := parseEnv(cfg); err != nil {
		return b.fail(err)
	}
	return b.add(cfg)
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	cfg, err := ParseFlags(args)
	if err != nil {
		return b.fail(err)
	}
	return b.add(cfg)
}

// withJSON adds the file named by the latest layer that sets JSONFilePath.
func (b *configBuilder) withJSON() *configBuilder {
	path := ""
	for i := len(b.configs) - 1; i >= 0 && path == ""; i-- {
		path = b.configs[i].JSONFilePath
	}
	if path == "" {
		return b
	}

	cfg, err := parseJSON(path)
	if err != nil {
		return b.fail(err)
	}
	return b.add(cfg)
}
