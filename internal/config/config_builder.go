// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects configuration layers and merges them in priority
// order. Each layer is filled independently; build decides the order.
type configBuilder struct {
	defaults *StructuredConfig
	file     *StructuredConfig
	dotEnv   *StructuredConfig
	env      *StructuredConfig
	flags    *StructuredConfig
	err      error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{}
}

// layers returns the non-nil layers, lowest priority first.
func (b *configBuilder) layers() []*StructuredConfig {
	all := []*StructuredConfig{b.defaults, b.file, b.dotEnv, b.env, b.flags}
	layers := make([]*StructuredConfig, 0, len(all))
	for _, l := range all {
		if l != nil {
			layers = append(layers, l)
		}
	}
	return layers
}

func (b *configBuilder) merge() (*StructuredConfig, error) {
	config := new(StructuredConfig)
	for _, cfg := range b.layers() {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	return config, nil
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config, err := b.merge()
	if err != nil {
		return nil, err
	}

	config.applyDerivedDefaults()
	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.defaults = defaultConfig()
	return b
}

// withEnv reads the .env file (its path coming from DOTENV_PATH or the
// default) and the process environment as two separate layers.
func (b *configBuilder) withEnv() *configBuilder {
	procEnv := processEnvironment()

	envCfg := &StructuredConfig{}
	if err := parseEnvFrom(envCfg, procEnv); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.env = envCfg

	dotEnvPath := DefaultDotEnvPath
	if envCfg.DotEnvPath != "" {
		dotEnvPath = envCfg.DotEnvPath
	}
	return b.withDotEnv(dotEnvPath)
}

func (b *configBuilder) withDotEnv(path string) *configBuilder {
	values, err := readDotEnv(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	if len(values) == 0 {
		return b
	}

	dotEnvCfg := &StructuredConfig{}
	if err := parseEnvFrom(dotEnvCfg, values); err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("%s: %w", path, err))
		return b
	}
	b.dotEnv = dotEnvCfg
	return b
}

// withFlags parses args. A -env-file flag re-reads the .env layer from the
// given path.
func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.flags = flags

	if flags.DotEnvPath != "" {
		b.dotEnv = nil
		return b.withDotEnv(flags.DotEnvPath)
	}
	return b
}

// withFile loads the config file named by the highest-priority layer that
// sets one. It must run after withEnv and withFlags.
func (b *configBuilder) withFile() *configBuilder {
	var path string
	for _, cfg := range b.layers() {
		if cfg.FilePath != "" {
			path = cfg.FilePath
		}
	}

	if path == "" {
		return b
	}

	fileCfg, err := parseFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.file = fileCfg
	return b
}
