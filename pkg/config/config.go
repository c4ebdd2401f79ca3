// Copyright 2026 sepilot
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config holds the run configuration for the migration pipelines.
// Running without a config file reproduces the original hard-coded runs.
package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🔧 RunConfig configures one pipeline's walk: which roots to visit, which
// extensions are candidates, and which paths to skip.
type RunConfig struct {
	Roots          []string `json:"roots" yaml:"roots"`
	Extensions     []string `json:"extensions,omitempty" yaml:"extensions,omitempty"`
	IgnorePatterns []string `json:"ignore_patterns,omitempty" yaml:"ignore_patterns,omitempty"`
}

// 📚 Config represents the complete configuration
type Config struct {
	ContextAPI RunConfig `json:"context_api" yaml:"context_api"`
	SafeAPI    RunConfig `json:"safe_api" yaml:"safe_api"`
}

// defaultExtensions is the TypeScript-family extension filter.
var defaultExtensions = []string{".ts", ".tsx"}

// defaultIgnores keeps dependency trees out of the walk.
var defaultIgnores = []string{"**/node_modules/**"}

// 🎯 Default returns the built-in configuration matching the original runs.
func Default() *Config {
	return &Config{
		ContextAPI: RunConfig{
			Roots:          []string{"sepilot-desktop-extension-editor-local/src"},
			Extensions:     defaultExtensions,
			IgnorePatterns: defaultIgnores,
		},
		SafeAPI: RunConfig{
			Roots: []string{
				"sepilot-desktop-extension-editor-local/src",
				"sepilot-desktop-extension-browser-local/src",
			},
			Extensions:     defaultExtensions,
			IgnorePatterns: defaultIgnores,
		},
	}
}

// 🎯 Load loads the configuration from a file. An empty path yields the
// built-in defaults.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)

	if path == "" {
		logger.Debug().Msg("no config file, using built-in defaults")
		cfg := Default()
		if err := cfg.Validate(); err != nil {
			return nil, errors.Errorf("validating default config: %w", err)
		}
		return cfg, nil
	}

	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate checks the configuration and fills in defaults.
func (cfg *Config) Validate() error {
	if err := cfg.ContextAPI.validate("context_api"); err != nil {
		return err
	}
	if err := cfg.SafeAPI.validate("safe_api"); err != nil {
		return err
	}
	return nil
}

func (rc *RunConfig) validate(name string) error {
	if len(rc.Roots) == 0 {
		return errors.Errorf("%s: at least one root is required", name)
	}
	for i, root := range rc.Roots {
		rc.Roots[i] = filepath.Clean(root)
	}
	if len(rc.Extensions) == 0 {
		rc.Extensions = defaultExtensions
	}
	for _, ext := range rc.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return errors.Errorf("%s: extension %q must start with a dot", name, ext)
		}
	}
	if rc.IgnorePatterns == nil {
		rc.IgnorePatterns = defaultIgnores
	}
	return nil
}
