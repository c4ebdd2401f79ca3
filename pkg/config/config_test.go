package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Clean("sepilot-desktop-extension-editor-local/src")}, cfg.ContextAPI.Roots)
	assert.Equal(t, []string{
		filepath.Clean("sepilot-desktop-extension-editor-local/src"),
		filepath.Clean("sepilot-desktop-extension-browser-local/src"),
	}, cfg.SafeAPI.Roots)
	assert.Equal(t, []string{".ts", ".tsx"}, cfg.ContextAPI.Extensions)
	assert.Equal(t, []string{"**/node_modules/**"}, cfg.SafeAPI.IgnorePatterns)
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "migrate.yaml", `
context_api:
  roots:
    - editor/src
safe_api:
  roots:
    - editor/src
    - browser/src
  extensions:
    - .ts
`)

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Clean("editor/src")}, cfg.ContextAPI.Roots)
	// Unset fields keep their defaults.
	assert.Equal(t, []string{".ts", ".tsx"}, cfg.ContextAPI.Extensions)
	assert.Equal(t, []string{".ts"}, cfg.SafeAPI.Extensions)
	assert.Len(t, cfg.SafeAPI.Roots, 2)
}

func TestLoad_YAML_UnknownFieldRejected(t *testing.T) {
	path := writeConfig(t, "migrate.yaml", `
context_api:
  roots: [editor/src]
  bogus: true
`)

	_, err := Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestLoad_HCL(t *testing.T) {
	path := writeConfig(t, "migrate.hcl", `
context_api {
  roots = ["editor/src"]
  ignore_patterns = ["**/generated/**"]
}

safe_api {
  roots = ["editor/src", "browser/src"]
}
`)

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Clean("editor/src")}, cfg.ContextAPI.Roots)
	assert.Equal(t, []string{"**/generated/**"}, cfg.ContextAPI.IgnorePatterns)
	assert.Equal(t, []string{".ts", ".tsx"}, cfg.SafeAPI.Extensions)
	assert.Len(t, cfg.SafeAPI.Roots, 2)
}

func TestLoad_HCL_CwdVariable(t *testing.T) {
	path := writeConfig(t, "migrate.hcl", `
context_api {
  roots = ["${cwd}/editor/src"]
}
`)

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(cwd, "editor", "src")}, cfg.ContextAPI.Roots)
}

func TestLoad_NoParser(t *testing.T) {
	path := writeConfig(t, "migrate.toml", "whatever = true")

	_, err := Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no parser found")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantError string
	}{
		{
			name:   "valid_defaults",
			mutate: func(cfg *Config) {},
		},
		{
			name: "missing_roots",
			mutate: func(cfg *Config) {
				cfg.ContextAPI.Roots = nil
			},
			wantError: "context_api: at least one root is required",
		},
		{
			name: "extension_without_dot",
			mutate: func(cfg *Config) {
				cfg.SafeAPI.Extensions = []string{"ts"}
			},
			wantError: `safe_api: extension "ts" must start with a dot`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}

			require.NoError(t, err)
		})
	}
}
