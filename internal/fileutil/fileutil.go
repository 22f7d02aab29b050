// Package fileutil provides path utility functions.
package fileutil

import (
	"path/filepath"
	"strings"
)

// ReplaceExtension returns path with its extension swapped for newExt.
// newExt must include the leading dot. A path without an extension gets
// newExt appended.
//
//	ReplaceExtension("docs/readme.md", ".html") -> "docs/readme.html"
func ReplaceExtension(path, newExt string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + newExt
}

// Stem returns the base name of the path without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
