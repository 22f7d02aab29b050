package md2html

import "errors"

// Sentinel errors for library operations.
var (
	ErrUnknownTheme   = errors.New("unknown theme")
	ErrDocumentRender = errors.New("document rendering failed")

	// TOC validation errors.
	ErrInvalidTOCDepth = errors.New("invalid TOC depth")

	// Asset loading errors.
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
