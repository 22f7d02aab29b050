// Package md2html converts Markdown documents to themed, self-contained HTML.
//
// # Quick Start
//
// Create a service and render markdown with a theme:
//
//	svc, err := md2html.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	doc, err := svc.Render(ctx, md2html.Input{
//	    Markdown: "# Hello\n\nWorld",
//	    Theme:    md2html.ThemeDark,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.html", []byte(doc), 0644)
//
// The result is a complete HTML5 document with the theme stylesheet inlined,
// suitable for opening directly in a browser.
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Markdown preprocessing (line normalization, ==highlight== syntax)
//  2. Markdown to HTML conversion via Goldmark (GFM, syntax highlighting)
//  3. Optional table of contents injection
//  4. Themed document rendering (stylesheet + GitHub-style wrapper)
//
// # Themes
//
// Themes are named stylesheets. The built-in set ("dark", "light") is embedded
// at compile time; the valid theme names for a service are whatever its asset
// loader can enumerate:
//
//	themes, err := svc.Themes()
//
// # Custom Assets
//
// Override or extend the built-in themes from a directory on disk:
//
//	svc, err := md2html.New(md2html.WithAssetPath("/path/to/assets"))
//
// Asset directory structure:
//
//	assets/
//	├── styles/
//	│   └── sepia.css
//	└── templates/
//	    └── document.html
//
// Custom assets take precedence, with fallback to the embedded defaults.
package md2html
