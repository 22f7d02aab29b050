package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html [flags] <markdown_file_or_dir>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert Markdown documents to themed HTML with GitHub styling.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  markdown_file_or_dir   Markdown file, or directory to convert recursively")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -t, --theme <name>       Output theme: dark, light (default: dark)")
	fmt.Fprintln(w, "  -o, --output <path>      Output file or directory (default: next to input)")
	fmt.Fprintln(w, "  -c, --config <path>      YAML config file")
	fmt.Fprintln(w, "  -w, --workers <n>        Parallel workers for directory input (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --title <s>          Document title (\"\" = auto from first H1)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Table of Contents:")
	fmt.Fprintln(w, "      --toc                Insert a numbered table of contents")
	fmt.Fprintln(w, "      --toc-title <s>      TOC heading text")
	fmt.Fprintln(w, "      --toc-min-depth <n>  Min heading depth (1-6, default: 2)")
	fmt.Fprintln(w, "      --toc-max-depth <n>  Max heading depth (1-6, default: 3)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Assets:")
	fmt.Fprintln(w, "      --asset-path <dir>   Custom asset directory (styles/, templates/)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "  -v, --verbose            Show progress detail")
	fmt.Fprintln(w, "  -q, --quiet              Only show errors")
	fmt.Fprintln(w, "      --version            Print version and exit")
	fmt.Fprintln(w, "  -h, --help               Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment: MD2HTML_CONFIG, MD2HTML_THEME, MD2HTML_INPUT_DIR,")
	fmt.Fprintln(w, "             MD2HTML_OUTPUT_DIR, MD2HTML_ASSET_PATH, MD2HTML_WORKERS")
}
