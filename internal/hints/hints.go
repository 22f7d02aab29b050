// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// ForUnknownTheme returns a hint listing the valid theme names.
func ForUnknownTheme(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("valid themes: " + strings.Join(available, ", "))
}

// ForConfigNotFound returns a hint for config file not found errors.
func ForConfigNotFound() string {
	return format("use --config /path/to/file.yaml")
}

// ForAssetPath returns a hint for invalid custom asset directories.
func ForAssetPath() string {
	return format("--asset-path must point to a directory containing styles/ and templates/")
}

// format renders a single hint line.
func format(hint string) string {
	return "\n  hint: " + hint
}
