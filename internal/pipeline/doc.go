// Package pipeline implements the Markdown-to-HTML conversion pipeline.
//
// This package handles the stages between raw Markdown in and a finished
// document out:
//   - Markdown preprocessing (line normalization, highlight syntax)
//   - Markdown to HTML fragment conversion via Goldmark
//   - Table of contents generation and injection
//   - Themed document rendering (stylesheet, wrapper, fragment)
//
// Theme selection and asset loading are handled by the root md2html package
// together with internal/assets. This separation keeps the pipeline focused
// on document structure and content, independent of where stylesheets and
// templates come from.
package pipeline
