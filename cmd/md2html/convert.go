package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/hints"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput      = errors.New("no input specified")
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWriteHTML    = errors.New("failed to write HTML file")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// run orchestrates the conversion process.
func run(ctx context.Context, positionalArgs []string, flags *cliFlags, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	// Load configuration (flag beats env for the config path itself)
	cfgPath := flags.config
	if cfgPath == "" {
		cfgPath = envCfg.ConfigPath
	}
	cfg := config.DefaultConfig()
	if cfgPath != "" {
		var err error
		cfg, err = config.LoadConfig(cfgPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Precedence: flags > env > config > defaults
	mergeEnv(envCfg, cfg)
	mergeFlags(flags, cfg)

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}

	outputDir := cfg.Output.DefaultDir
	if flags.output != "" {
		outputDir = flags.output
	}

	files, err := discoverFiles(inputPath, outputDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no markdown files under %s", ErrNoInput, inputPath)
	}

	factory := func() (*md2html.Service, error) {
		return md2html.New(md2html.WithAssetPath(cfg.Assets.BasePath))
	}

	// Validate the theme once up front so a bad --theme fails before any
	// file is touched, with a hint listing the valid names.
	svc, err := factory()
	if err != nil {
		return err
	}
	if err := validateTheme(svc, cfg.Theme); err != nil {
		return err
	}

	input := buildInput(cfg)

	if len(files) == 1 {
		res := convertOne(ctx, svc, files[0], input)
		report(env, flags, res)
		return res.Err
	}

	poolSize := resolvePoolSize(cfg.Workers)
	if flags.verbose {
		fmt.Fprintf(env.Stderr, "converting %d files with %d workers\n", len(files), poolSize)
	}
	pool := NewServicePool(poolSize, factory)

	return convertBatch(ctx, pool, files, input, env, flags)
}

// resolveInputPath returns the positional input, falling back to the
// configured default input directory.
func resolveInputPath(positionalArgs []string, cfg *config.Config) (string, error) {
	if len(positionalArgs) > 0 {
		return positionalArgs[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", fmt.Errorf("%w: pass a markdown file or set input.defaultDir", ErrNoInput)
}

// mergeEnv applies environment overrides onto the config.
func mergeEnv(env *envConfig, cfg *config.Config) {
	if env.Theme != "" {
		cfg.Theme = env.Theme
	}
	if env.InputDir != "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.AssetPath != "" {
		cfg.Assets.BasePath = env.AssetPath
	}
	if env.Workers > 0 {
		cfg.Workers = env.Workers
	}
}

// mergeFlags applies CLI flags onto the config (CLI wins).
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.theme != "" {
		cfg.Theme = flags.theme
	}
	if flags.title != "" {
		cfg.Document.Title = flags.title
	}
	if flags.assetPath != "" {
		cfg.Assets.BasePath = flags.assetPath
	}
	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}
	if flags.toc {
		cfg.TOC.Enabled = true
	}
	if flags.tocTitle != "" {
		cfg.TOC.Title = flags.tocTitle
	}
	if flags.tocMinDepth > 0 {
		cfg.TOC.MinDepth = flags.tocMinDepth
	}
	if flags.tocMaxDepth > 0 {
		cfg.TOC.MaxDepth = flags.tocMaxDepth
	}
}

// buildInput translates config into library input shared by all files.
func buildInput(cfg *config.Config) md2html.Input {
	input := md2html.Input{
		Theme: cfg.Theme,
		Title: cfg.Document.Title,
	}
	if cfg.TOC.Enabled {
		input.TOC = &md2html.TOC{
			Title:    cfg.TOC.Title,
			MinDepth: cfg.TOC.MinDepth,
			MaxDepth: cfg.TOC.MaxDepth,
		}
	}
	return input
}

// validateTheme checks the theme name against the service's theme set.
func validateTheme(svc *md2html.Service, theme string) error {
	if theme == "" {
		return nil
	}
	known, err := svc.Themes()
	if err != nil {
		return err
	}
	if !slices.Contains(known, theme) {
		return fmt.Errorf("%w: %q%s", md2html.ErrUnknownTheme, theme, hints.ForUnknownTheme(known))
	}
	return nil
}

// convertOne reads, renders, and writes a single file.
func convertOne(ctx context.Context, svc *md2html.Service, file FileToConvert, input md2html.Input) ConversionResult {
	start := time.Now()
	res := ConversionResult{InputPath: file.InputPath, OutputPath: file.OutputPath}

	data, err := os.ReadFile(file.InputPath) // #nosec G304 -- user-supplied input path
	if err != nil {
		res.Err = fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		res.Duration = time.Since(start)
		return res
	}

	input.Markdown = string(data)
	// Per-file title fallback: first H1 wins inside the library; the stem
	// is only used when the document has no H1 at all.
	if input.Title == "" {
		input.Title = deriveFallbackTitle(file.InputPath, input.Markdown)
	}

	doc, err := svc.Render(ctx, input)
	if err != nil {
		res.Err = err
		res.Duration = time.Since(start)
		return res
	}

	if dir := filepath.Dir(file.OutputPath); dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			res.Err = fmt.Errorf("%w: %v", ErrWriteHTML, err)
			res.Duration = time.Since(start)
			return res
		}
	}
	if err := os.WriteFile(file.OutputPath, []byte(doc), filePermissions); err != nil {
		res.Err = fmt.Errorf("%w: %v", ErrWriteHTML, err)
	}
	res.Duration = time.Since(start)
	return res
}

// deriveFallbackTitle returns the filename stem when the markdown has no H1.
// The library derives the H1 title itself; passing "" here would fall back
// to a generic default instead of the filename.
func deriveFallbackTitle(path, markdown string) string {
	if pipeline.DeriveTitle(markdown) != "" {
		return "" // let the library derive it
	}
	return fileutil.Stem(path)
}

// convertBatch converts files in parallel using the service pool.
// All files are attempted; the first error (in input order) is returned.
func convertBatch(ctx context.Context, pool *ServicePool, files []FileToConvert, input md2html.Input, env *Environment, flags *cliFlags) error {
	results := make([]ConversionResult, len(files))

	var wg sync.WaitGroup
	for i, file := range files {
		wg.Add(1)
		go func(i int, file FileToConvert) {
			defer wg.Done()

			svc, err := pool.Acquire()
			if err != nil {
				results[i] = ConversionResult{InputPath: file.InputPath, OutputPath: file.OutputPath, Err: err}
				return
			}
			defer pool.Release(svc)

			results[i] = convertOne(ctx, svc, file, input)
		}(i, file)
	}
	wg.Wait()

	var firstErr error
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(env.Stderr, "error: %s: %v\n", res.InputPath, res.Err)
			if firstErr == nil {
				firstErr = res.Err
			}
			continue
		}
		report(env, flags, res)
	}
	return firstErr
}

// report prints the success line for one conversion.
// Errors are printed by the caller: main for single files, convertBatch for
// per-file failures in a batch.
func report(env *Environment, flags *cliFlags, res ConversionResult) {
	if res.Err != nil || flags.quiet {
		return
	}
	if flags.verbose {
		fmt.Fprintf(env.Stdout, "Rendered %s -> %s (%s)\n", res.InputPath, res.OutputPath, res.Duration.Round(time.Millisecond))
		return
	}
	fmt.Fprintf(env.Stdout, "Rendered %s\n", res.OutputPath)
}

// hintFor returns an actionable hint for well-known failures.
func hintFor(err error) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound()
	case errors.Is(err, md2html.ErrInvalidAssetPath), errors.Is(err, assets.ErrInvalidBasePath):
		return hints.ForAssetPath()
	}
	return ""
}
