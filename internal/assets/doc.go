// Package assets provides theme stylesheets and the HTML document template.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in themes)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// EmbeddedLoader provides the built-in themes (dark, light) and the document
// template embedded at compile time.
//
// FilesystemLoader allows users to provide custom assets from a directory,
// with path traversal protection and symlink resolution.
//
// AssetResolver is the primary loader used by the converter. It tries the
// custom FilesystemLoader first, falling back to EmbeddedLoader if the asset
// is not found in the custom location. This enables overriding specific
// assets while keeping defaults.
//
// # Theme Enumeration
//
// The set of valid themes is not hardcoded: every .css file under styles/ is
// a theme, and Themes() lists them. Dropping sepia.css into a custom asset
// directory makes "sepia" a valid --theme value.
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css           # theme stylesheets (e.g., dark.css)
//	└── templates/
//	    └── document.html        # document shell template
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
