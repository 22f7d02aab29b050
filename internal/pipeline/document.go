package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
)

// ErrDocumentRender indicates document template rendering failed.
var ErrDocumentRender = errors.New("document rendering failed")

// DefaultTitle is used when no title can be derived from the document.
const DefaultTitle = "Document"

// DocumentData holds the values rendered into the document template.
type DocumentData struct {
	Title   string        // <title> text
	Theme   string        // theme name, written into data-color-mode and friends
	Style   template.CSS  // theme stylesheet, inlined in <style>
	Content template.HTML // converted Markdown fragment
}

// DocumentRenderer defines the contract for rendering the document shell.
type DocumentRenderer interface {
	RenderDocument(ctx context.Context, data DocumentData) (string, error)
}

// TemplateRenderer renders the themed HTML document shell from a template.
// The template receives the stylesheet, theme name, and converted fragment;
// with fixed inputs the output is byte-identical across runs.
type TemplateRenderer struct {
	tmpl *template.Template
}

// NewTemplateRenderer creates a TemplateRenderer from template content.
// Returns error if the template cannot be parsed.
func NewTemplateRenderer(tmplContent string) (*TemplateRenderer, error) {
	tmpl, err := template.New("document").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("parsing document template: %w", err)
	}
	return &TemplateRenderer{tmpl: tmpl}, nil
}

// RenderDocument renders the complete HTML document.
// An empty title falls back to DefaultTitle.
func (r *TemplateRenderer) RenderDocument(ctx context.Context, data DocumentData) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if data.Title == "" {
		data.Title = DefaultTitle
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDocumentRender, err)
	}
	return buf.String(), nil
}

// Compile-time interface check.
var _ DocumentRenderer = (*TemplateRenderer)(nil)
