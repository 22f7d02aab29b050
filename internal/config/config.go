// Package config loads and validates YAML configuration for md2html.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-md2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrFieldTooLong   = errors.New("field exceeds maximum length")
)

// Field length limits. Config files are user input; bounding field sizes
// keeps a malformed file from producing absurd documents.
const (
	MaxThemeLength    = 50   // theme name
	MaxTitleLength    = 200  // document or TOC title
	MaxPathLength     = 4096 // directory paths
	MaxTOCTitleLength = 100  // TOC heading
)

// Config holds all configuration for document generation.
type Config struct {
	Theme    string         `yaml:"theme"`
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Document DocumentConfig `yaml:"document"`
	TOC      TOCConfig      `yaml:"toc"`
	Assets   AssetsConfig   `yaml:"assets"`
	Workers  int            `yaml:"workers"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// DocumentConfig defines document metadata options.
type DocumentConfig struct {
	Title string `yaml:"title"` // Optional - auto: first H1 -> filename stem
}

// TOCConfig defines table of contents options.
type TOCConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Title    string `yaml:"title"`    // Empty = no title above TOC
	MinDepth int    `yaml:"minDepth"` // 1-6, default 2
	MaxDepth int    `yaml:"maxDepth"` // 1-6, default 3
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Theme: "dark",
	}
}

// LoadConfig reads and parses a YAML config file.
// Returns ErrConfigNotFound if the file does not exist, ErrConfigParse on
// malformed YAML or unknown fields.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path supplied by the user on purpose
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field lengths. Called automatically by LoadConfig, but
// available for consumers who construct Config manually.
func (c *Config) Validate() error {
	checks := []struct {
		field string
		value string
		max   int
	}{
		{"theme", c.Theme, MaxThemeLength},
		{"input.defaultDir", c.Input.DefaultDir, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"document.title", c.Document.Title, MaxTitleLength},
		{"toc.title", c.TOC.Title, MaxTOCTitleLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
	}
	for _, check := range checks {
		if len(check.value) > check.max {
			return fmt.Errorf("%w: %s (%d > %d)", ErrFieldTooLong, check.field, len(check.value), check.max)
		}
	}
	return nil
}
