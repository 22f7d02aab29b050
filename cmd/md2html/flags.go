package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the md2html CLI.
type cliFlags struct {
	theme     string
	output    string
	config    string
	title     string
	assetPath string
	workers   int

	toc         bool
	tocTitle    string
	tocMinDepth int
	tocMaxDepth int

	verbose bool
	quiet   bool
	version bool
}

// parseFlags parses CLI flags and returns positional args.
// args excludes the program name.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("md2html", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.theme, "theme", "t", "", "output theme (default: dark)")
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.StringVarP(&f.config, "config", "c", "", "config file path")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers for directory input (0 = auto)")
	fs.StringVar(&f.title, "title", "", "document title (\"\" = auto from first H1)")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")

	fs.BoolVar(&f.toc, "toc", false, "insert a numbered table of contents")
	fs.StringVar(&f.tocTitle, "toc-title", "", "table of contents heading")
	fs.IntVar(&f.tocMinDepth, "toc-min-depth", 0, "min heading depth for TOC (1-6, default: 2)")
	fs.IntVar(&f.tocMaxDepth, "toc-max-depth", 0, "max heading depth for TOC (1-6, default: 3)")

	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show progress detail")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
