package md2html

import "fmt"

// Built-in theme names.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// DefaultTheme is used when Input.Theme is empty.
const DefaultTheme = ThemeDark

// TOC depth bounds (HTML heading levels).
const (
	MinTOCDepth = 1
	MaxTOCDepth = 6
)

// Default TOC depth range: skip the document H1, include H2-H3.
const (
	DefaultTOCMinDepth = 2
	DefaultTOCMaxDepth = 3
)

// Input contains rendering parameters for a single document.
type Input struct {
	Markdown string // Markdown content (required)
	Theme    string // Theme name (optional, "" = DefaultTheme)
	Title    string // Document title (optional, "" = auto from first H1)
	TOC      *TOC   // Table of contents config (optional, nil = no TOC)
}

// TOC configures table of contents generation.
type TOC struct {
	Title    string // Heading above the TOC (optional)
	MinDepth int    // Minimum heading level (0 = DefaultTOCMinDepth)
	MaxDepth int    // Maximum heading level (0 = DefaultTOCMaxDepth)
}

// Validate checks that TOC settings are valid.
// Returns nil if t is nil (nil means no TOC).
func (t *TOC) Validate() error {
	if t == nil {
		return nil
	}
	min, max := t.depths()
	if min < MinTOCDepth || min > MaxTOCDepth {
		return fmt.Errorf("%w: min depth %d (must be %d-%d)", ErrInvalidTOCDepth, min, MinTOCDepth, MaxTOCDepth)
	}
	if max < MinTOCDepth || max > MaxTOCDepth {
		return fmt.Errorf("%w: max depth %d (must be %d-%d)", ErrInvalidTOCDepth, max, MinTOCDepth, MaxTOCDepth)
	}
	if min > max {
		return fmt.Errorf("%w: min depth %d exceeds max depth %d", ErrInvalidTOCDepth, min, max)
	}
	return nil
}

// depths returns the effective depth range with defaults applied.
func (t *TOC) depths() (min, max int) {
	min, max = t.MinDepth, t.MaxDepth
	if min == 0 {
		min = DefaultTOCMinDepth
	}
	if max == 0 {
		max = DefaultTOCMaxDepth
	}
	return min, max
}

// Option configures a Service.
type Option func(*serviceConfig)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	assetPath string
}

// WithAssetPath sets a custom asset directory. Styles and templates found
// there take precedence over the embedded defaults.
func WithAssetPath(path string) Option {
	return func(c *serviceConfig) {
		c.assetPath = path
	}
}
