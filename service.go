package md2html

import (
	"context"
	"fmt"
	"html/template"
	"slices"

	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// Service orchestrates the markdown-to-HTML pipeline.
type Service struct {
	cfg          serviceConfig
	loader       assets.AssetLoader
	preprocessor pipeline.MarkdownPreprocessor
	converter    pipeline.HTMLConverter
	tocInjector  pipeline.TOCInjector
	renderer     pipeline.DocumentRenderer
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithAssetPath).
func New(opts ...Option) (*Service, error) {
	cfg := serviceConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	loader, err := assets.NewAssetResolver(cfg.assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}

	tmplContent, err := loader.LoadTemplate(assets.DocumentTemplate)
	if err != nil {
		return nil, fmt.Errorf("loading document template: %w", err)
	}
	renderer, err := pipeline.NewTemplateRenderer(tmplContent)
	if err != nil {
		return nil, err
	}

	return &Service{
		cfg:          cfg,
		loader:       loader,
		preprocessor: &pipeline.CommonMarkPreprocessor{},
		converter:    pipeline.NewGoldmarkConverter(),
		tocInjector:  pipeline.NewTOCInjection(),
		renderer:     renderer,
	}, nil
}

// Themes returns the theme names this service accepts, sorted.
func (s *Service) Themes() ([]string, error) {
	return s.loader.Themes()
}

// Render runs the full pipeline and returns the themed HTML document.
// The context is used for cancellation.
func (s *Service) Render(ctx context.Context, input Input) (string, error) {
	theme, err := s.validateInput(input)
	if err != nil {
		return "", err
	}

	// Preprocess markdown
	mdContent := s.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	// Convert to HTML fragment
	fragment, err := s.converter.ToHTML(ctx, mdContent)
	if err != nil {
		return "", fmt.Errorf("converting to HTML: %w", err)
	}
	fragment = pipeline.ConvertMarkPlaceholders(fragment)

	// Inject TOC (if requested)
	var tocData *pipeline.TOCData
	if input.TOC != nil {
		min, max := input.TOC.depths()
		tocData = &pipeline.TOCData{
			Title:    input.TOC.Title,
			MinDepth: min,
			MaxDepth: max,
		}
	}
	fragment, err = s.tocInjector.InjectTOC(ctx, fragment, tocData)
	if err != nil {
		return "", fmt.Errorf("injecting TOC: %w", err)
	}

	// Resolve title: explicit > first H1 > default
	title := input.Title
	if title == "" {
		title = pipeline.DeriveTitle(mdContent)
	}

	// Load theme stylesheet and render the document shell
	css, err := s.loader.LoadStyle(theme)
	if err != nil {
		return "", fmt.Errorf("loading theme %q: %w", theme, err)
	}

	doc, err := s.renderer.RenderDocument(ctx, pipeline.DocumentData{
		Title:   title,
		Theme:   theme,
		Style:   template.CSS(css),
		Content: template.HTML(fragment), // #nosec G203 -- fragment produced by goldmark without WithUnsafe
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDocumentRender, err)
	}

	return doc, nil
}

// validateInput checks the TOC settings and resolves the theme name.
// Empty markdown is valid input and renders an empty-body document.
func (s *Service) validateInput(input Input) (string, error) {
	if err := input.TOC.Validate(); err != nil {
		return "", err
	}

	theme := input.Theme
	if theme == "" {
		theme = DefaultTheme
	}
	known, err := s.loader.Themes()
	if err != nil {
		return "", err
	}
	if !slices.Contains(known, theme) {
		return "", fmt.Errorf("%w: %q (valid themes: %v)", ErrUnknownTheme, theme, known)
	}
	return theme, nil
}
