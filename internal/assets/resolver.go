package assets

import (
	"errors"
	"sort"
)

// AssetResolver combines custom and embedded loaders with fallback logic.
// When a custom loader is configured, it tries custom first, then falls back
// to embedded if the asset is not found in the custom location.
type AssetResolver struct {
	custom   AssetLoader // nil if no custom path configured
	embedded AssetLoader
}

// NewAssetResolver creates an AssetResolver.
// If customBasePath is empty, only embedded assets are used.
// If customBasePath is set, custom assets take precedence with fallback to embedded.
// Returns error if customBasePath is set but invalid.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	resolver := &AssetResolver{
		embedded: NewEmbeddedLoader(),
	}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// LoadStyle loads a theme stylesheet, trying the custom loader first.
func (r *AssetResolver) LoadStyle(name string) (string, error) {
	return r.loadWithFallback(func(loader AssetLoader) (string, error) {
		return loader.LoadStyle(name)
	}, ErrStyleNotFound)
}

// LoadTemplate loads an HTML template, trying the custom loader first.
func (r *AssetResolver) LoadTemplate(name string) (string, error) {
	return r.loadWithFallback(func(loader AssetLoader) (string, error) {
		return loader.LoadTemplate(name)
	}, ErrTemplateNotFound)
}

// Themes returns the union of custom and embedded theme names, sorted and
// deduplicated. Custom themes extend rather than replace the embedded set.
func (r *AssetResolver) Themes() ([]string, error) {
	names, err := r.embedded.Themes()
	if err != nil {
		return nil, err
	}

	if r.custom != nil {
		customNames, err := r.custom.Themes()
		if err != nil {
			return nil, err
		}
		names = append(names, customNames...)
	}

	sort.Strings(names)
	deduped := names[:0]
	for i, name := range names {
		if i == 0 || name != names[i-1] {
			deduped = append(deduped, name)
		}
	}
	return deduped, nil
}

// loadWithFallback tries the custom loader first, falling back to embedded
// when the asset is missing (notFound). Other custom loader errors, like
// path traversal or read failures, are returned as-is.
func (r *AssetResolver) loadWithFallback(load func(AssetLoader) (string, error), notFound error) (string, error) {
	if r.custom != nil {
		content, err := load(r.custom)
		if err == nil {
			return content, nil
		}
		if !errors.Is(err, notFound) {
			return "", err
		}
	}
	return load(r.embedded)
}

// Compile-time interface check.
var _ AssetLoader = (*AssetResolver)(nil)
