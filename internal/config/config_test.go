package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "md2html.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
theme: light
input:
  defaultDir: ./docs
output:
  defaultDir: ./site
document:
  title: Handbook
toc:
  enabled: true
  title: Contents
  minDepth: 1
  maxDepth: 4
assets:
  basePath: ./assets
workers: 4
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Theme != "light" {
		t.Errorf("Theme = %q, want light", cfg.Theme)
	}
	if cfg.Input.DefaultDir != "./docs" {
		t.Errorf("Input.DefaultDir = %q", cfg.Input.DefaultDir)
	}
	if cfg.Output.DefaultDir != "./site" {
		t.Errorf("Output.DefaultDir = %q", cfg.Output.DefaultDir)
	}
	if cfg.Document.Title != "Handbook" {
		t.Errorf("Document.Title = %q", cfg.Document.Title)
	}
	if !cfg.TOC.Enabled || cfg.TOC.Title != "Contents" || cfg.TOC.MinDepth != 1 || cfg.TOC.MaxDepth != 4 {
		t.Errorf("TOC = %+v", cfg.TOC)
	}
	if cfg.Assets.BasePath != "./assets" {
		t.Errorf("Assets.BasePath = %q", cfg.Assets.BasePath)
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Parallel()

	// A minimal file keeps the built-in defaults for omitted fields.
	path := writeConfig(t, "toc:\n  enabled: true\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Theme != "dark" {
		t.Errorf("Theme = %q, want the dark default", cfg.Theme)
	}
	if !cfg.TOC.Enabled {
		t.Error("TOC.Enabled = false, want true")
	}
}

func TestLoadConfigNotFound(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("LoadConfig() error = %v, want ErrConfigNotFound", err)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "theme: [unterminated\n")
	_, err := LoadConfig(path)
	if !errors.Is(err, ErrConfigParse) {
		t.Errorf("LoadConfig() error = %v, want ErrConfigParse", err)
	}
}

func TestLoadConfigUnknownField(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "theme: dark\ncolour: blue\n")
	_, err := LoadConfig(path)
	if !errors.Is(err, ErrConfigParse) {
		t.Errorf("LoadConfig() error = %v, want ErrConfigParse for unknown field", err)
	}
}

func TestValidateFieldLengths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"theme too long", func(c *Config) { c.Theme = strings.Repeat("x", MaxThemeLength+1) }},
		{"title too long", func(c *Config) { c.Document.Title = strings.Repeat("x", MaxTitleLength+1) }},
		{"toc title too long", func(c *Config) { c.TOC.Title = strings.Repeat("x", MaxTOCTitleLength+1) }},
		{"input dir too long", func(c *Config) { c.Input.DefaultDir = strings.Repeat("x", MaxPathLength+1) }},
		{"asset path too long", func(c *Config) { c.Assets.BasePath = strings.Repeat("x", MaxPathLength+1) }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrFieldTooLong) {
				t.Errorf("Validate() error = %v, want ErrFieldTooLong", err)
			}
		})
	}
}

func TestValidateDefaultsPass(t *testing.T) {
	t.Parallel()

	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("Validate() error = %v for defaults", err)
	}
}
