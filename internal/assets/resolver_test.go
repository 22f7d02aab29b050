package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestNewAssetResolverEmbeddedOnly(t *testing.T) {
	t.Parallel()

	resolver, err := NewAssetResolver("")
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	css, err := resolver.LoadStyle("dark")
	if err != nil {
		t.Fatalf("LoadStyle() error = %v", err)
	}
	if !strings.Contains(css, ".github-markdown-body") {
		t.Error("LoadStyle() should serve the embedded stylesheet")
	}
}

func TestNewAssetResolverInvalidCustomPath(t *testing.T) {
	t.Parallel()

	_, err := NewAssetResolver("/nonexistent/custom/assets")
	if !errors.Is(err, ErrInvalidBasePath) {
		t.Errorf("NewAssetResolver() error = %v, want ErrInvalidBasePath", err)
	}
}

func TestAssetResolverCustomPrecedence(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeAsset(t, dir, "styles", "dark.css", "/* custom dark */")

	resolver, err := NewAssetResolver(dir)
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	css, err := resolver.LoadStyle("dark")
	if err != nil {
		t.Fatalf("LoadStyle() error = %v", err)
	}
	if css != "/* custom dark */" {
		t.Errorf("LoadStyle() = %q, want the custom override", css)
	}
}

func TestAssetResolverFallbackToEmbedded(t *testing.T) {
	t.Parallel()

	// Custom dir overrides only one theme; the other falls back to embedded.
	dir := t.TempDir()
	writeAsset(t, dir, "styles", "sepia.css", "/* sepia */")

	resolver, err := NewAssetResolver(dir)
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	css, err := resolver.LoadStyle("light")
	if err != nil {
		t.Fatalf("LoadStyle() error = %v", err)
	}
	if !strings.HasPrefix(css, "/* light:") {
		t.Error("LoadStyle() should fall back to the embedded stylesheet")
	}

	tmpl, err := resolver.LoadTemplate(DocumentTemplate)
	if err != nil {
		t.Fatalf("LoadTemplate() error = %v", err)
	}
	if !strings.Contains(tmpl, "{{.Content}}") {
		t.Error("LoadTemplate() should fall back to the embedded template")
	}
}

func TestAssetResolverThemesUnion(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeAsset(t, dir, "styles", "sepia.css", "")
	writeAsset(t, dir, "styles", "dark.css", "/* override */")

	resolver, err := NewAssetResolver(dir)
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	themes, err := resolver.Themes()
	if err != nil {
		t.Fatalf("Themes() error = %v", err)
	}
	want := []string{"dark", "light", "sepia"}
	if len(themes) != len(want) {
		t.Fatalf("Themes() = %v, want %v", themes, want)
	}
	for i := range want {
		if themes[i] != want[i] {
			t.Errorf("Themes()[%d] = %q, want %q", i, themes[i], want[i])
		}
	}
}

func TestAssetResolverNotFoundInEither(t *testing.T) {
	t.Parallel()

	resolver, err := NewAssetResolver(t.TempDir())
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	if _, err := resolver.LoadStyle("missing"); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("LoadStyle() error = %v, want ErrStyleNotFound", err)
	}
}
