package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
)

// runCLI invokes run with captured output streams.
func runCLI(t *testing.T, args []string) (stdout, stderr string, err error) {
	t.Helper()

	flags, positional, perr := parseFlags(args)
	if perr != nil {
		t.Fatalf("parseFlags(%v) error = %v", args, perr)
	}

	var out, errOut bytes.Buffer
	env := &Environment{Stdout: &out, Stderr: &errOut}
	err = run(context.Background(), positional, flags, env)
	return out.String(), errOut.String(), err
}

func writeMarkdown(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestRunSingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeMarkdown(t, dir, "doc.md", "# Sample Document\n\n- item one\n- item two\n\n```\nfmt.Println(\"hi\")\n```\n")

	stdout, _, err := runCLI(t, []string{input})
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	outPath := filepath.Join(dir, "doc.html")
	if !strings.Contains(stdout, "Rendered "+outPath) {
		t.Errorf("stdout = %q, want rendered notice", stdout)
	}

	html, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	doc := string(html)
	wants := []string{
		"<!DOCTYPE html>",
		"<h1",
		"Sample Document",
		"<li>item one</li>",
		"<pre",
		`data-color-mode="dark"`,
		"<title>Sample Document</title>",
	}
	for _, want := range wants {
		if !strings.Contains(doc, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(doc, `data-color-mode="light"`) {
		t.Error("output contains the light theme marker alongside dark")
	}
}

func TestRunLightTheme(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeMarkdown(t, dir, "doc.md", "# Hi")

	if _, _, err := runCLI(t, []string{"-t", "light", input}); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	html, err := os.ReadFile(filepath.Join(dir, "doc.html"))
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if !strings.Contains(string(html), `data-color-mode="light"`) {
		t.Error("output missing light theme marker")
	}
	if strings.Contains(string(html), `data-color-mode="dark"`) {
		t.Error("output contains the dark theme marker alongside light")
	}
}

func TestRunUnknownTheme(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeMarkdown(t, dir, "doc.md", "# Hi")

	_, _, err := runCLI(t, []string{"-t", "sepia", input})
	if !errors.Is(err, md2html.ErrUnknownTheme) {
		t.Fatalf("run() error = %v, want ErrUnknownTheme", err)
	}
	if exitCodeFor(err) != ExitUsage {
		t.Errorf("exit code = %d, want %d", exitCodeFor(err), ExitUsage)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "doc.html")); !os.IsNotExist(statErr) {
		t.Error("no output file should be written for an invalid theme")
	}
	if !strings.Contains(err.Error(), "valid themes:") {
		t.Errorf("error = %q, want theme hint", err)
	}
}

func TestRunMissingFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	missing := filepath.Join(dir, "absent.md")

	_, _, err := runCLI(t, []string{missing})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("run() error = %v, want os.ErrNotExist", err)
	}
	if exitCodeFor(err) != ExitIO {
		t.Errorf("exit code = %d, want %d", exitCodeFor(err), ExitIO)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "absent.html")); !os.IsNotExist(statErr) {
		t.Error("no output file should be written for a missing input")
	}
}

func TestRunWrongExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeMarkdown(t, dir, "notes.txt", "# Hi")

	_, _, err := runCLI(t, []string{input})
	if !errors.Is(err, ErrInvalidExtension) {
		t.Errorf("run() error = %v, want ErrInvalidExtension", err)
	}
}

func TestRunNoInput(t *testing.T) {
	t.Parallel()

	_, _, err := runCLI(t, nil)
	if !errors.Is(err, ErrNoInput) {
		t.Errorf("run() error = %v, want ErrNoInput", err)
	}
}

func TestRunIdempotent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeMarkdown(t, dir, "doc.md", "# Same\n\ncontent\n")
	outPath := filepath.Join(dir, "doc.html")

	if _, _, err := runCLI(t, []string{input}); err != nil {
		t.Fatalf("first run() error = %v", err)
	}
	first, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if _, _, err := runCLI(t, []string{input}); err != nil {
		t.Fatalf("second run() error = %v", err)
	}
	second, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("re-running over an existing output should produce identical bytes")
	}
}

func TestRunExplicitOutputFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeMarkdown(t, dir, "doc.md", "# Hi")
	outPath := filepath.Join(dir, "custom", "index.html")

	if _, _, err := runCLI(t, []string{"-o", outPath, input}); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if _, err := os.Stat(outPath); err != nil {
		t.Errorf("expected output at %s: %v", outPath, err)
	}
}

func TestRunDirectoryBatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeMarkdown(t, dir, "a.md", "# A")
	writeMarkdown(t, dir, filepath.Join("nested", "b.md"), "# B")
	writeMarkdown(t, dir, "skip.txt", "not markdown")

	out := filepath.Join(t.TempDir(), "site")
	stdout, _, err := runCLI(t, []string{"-o", out, dir})
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	for _, rel := range []string{"a.html", filepath.Join("nested", "b.html")} {
		if _, err := os.Stat(filepath.Join(out, rel)); err != nil {
			t.Errorf("expected output %s: %v", rel, err)
		}
	}
	if strings.Count(stdout, "Rendered ") != 2 {
		t.Errorf("stdout = %q, want two rendered notices", stdout)
	}
}

func TestRunBatchContinuesPastFailures(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeMarkdown(t, dir, "good.md", "# Good")
	// A dangling symlink discovers fine but fails on read.
	if err := os.Symlink(filepath.Join(dir, "gone"), filepath.Join(dir, "broken.md")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	out := filepath.Join(t.TempDir(), "site")
	_, stderr, err := runCLI(t, []string{"-o", out, dir})
	if !errors.Is(err, ErrReadMarkdown) {
		t.Fatalf("run() error = %v, want ErrReadMarkdown from the bad file", err)
	}
	if !strings.Contains(stderr, "broken.md") {
		t.Errorf("stderr = %q, want per-file error for broken.md", stderr)
	}
	if _, statErr := os.Stat(filepath.Join(out, "good.html")); statErr != nil {
		t.Errorf("good file should still convert: %v", statErr)
	}
}

func TestRunEmptyFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeMarkdown(t, dir, "empty.md", "")

	if _, _, err := runCLI(t, []string{input}); err != nil {
		t.Fatalf("run() error = %v, want empty input converted", err)
	}

	html, err := os.ReadFile(filepath.Join(dir, "empty.html"))
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	doc := string(html)
	for _, want := range []string{"<!DOCTYPE html>", `data-color-mode="dark"`, "<title>empty</title>"} {
		if !strings.Contains(doc, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRunUnwritableOutput(t *testing.T) {
	t.Parallel()

	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	dir := t.TempDir()
	input := writeMarkdown(t, dir, "doc.md", "# Hi")

	out := filepath.Join(t.TempDir(), "locked")
	if err := os.Mkdir(out, 0o500); err != nil {
		t.Fatalf("Mkdir() error = %v", err)
	}

	_, _, err := runCLI(t, []string{"-o", out, input})
	if !errors.Is(err, ErrWriteHTML) {
		t.Fatalf("run() error = %v, want ErrWriteHTML", err)
	}
	if exitCodeFor(err) != ExitIO {
		t.Errorf("exit code = %d, want %d", exitCodeFor(err), ExitIO)
	}
}

func TestRunQuietSuppressesOutput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeMarkdown(t, dir, "doc.md", "# Hi")

	stdout, _, err := runCLI(t, []string{"-q", input})
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty in quiet mode", stdout)
	}
}

func TestRunVerboseShowsDetail(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeMarkdown(t, dir, "doc.md", "# Hi")

	stdout, _, err := runCLI(t, []string{"-v", input})
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(stdout, "->") {
		t.Errorf("stdout = %q, want verbose source -> target line", stdout)
	}
}

func TestRunWithTOC(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeMarkdown(t, dir, "doc.md", "# Doc\n\n## One\n\ntext\n\n## Two\n")

	if _, _, err := runCLI(t, []string{"--toc", "--toc-title", "Contents", input}); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	html, err := os.ReadFile(filepath.Join(dir, "doc.html"))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	for _, want := range []string{`<nav class="toc">`, "Contents", "1. One", "2. Two"} {
		if !strings.Contains(string(html), want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRunTitleFallbackToStem(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeMarkdown(t, dir, "release-notes.md", "plain paragraph, no heading\n")

	if _, _, err := runCLI(t, []string{input}); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	html, err := os.ReadFile(filepath.Join(dir, "release-notes.html"))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(html), "<title>release-notes</title>") {
		t.Error("title should fall back to the filename stem")
	}
}

func TestRunConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeMarkdown(t, dir, "doc.md", "# Hi")
	cfgPath := filepath.Join(dir, "md2html.yaml")
	if err := os.WriteFile(cfgPath, []byte("theme: light\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if _, _, err := runCLI(t, []string{"-c", cfgPath, input}); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	html, err := os.ReadFile(filepath.Join(dir, "doc.html"))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(html), `data-color-mode="light"`) {
		t.Error("config theme should apply")
	}
}

func TestRunConfigNotFound(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeMarkdown(t, dir, "doc.md", "# Hi")

	_, _, err := runCLI(t, []string{"-c", filepath.Join(dir, "absent.yaml"), input})
	if !errors.Is(err, config.ErrConfigNotFound) {
		t.Fatalf("run() error = %v, want ErrConfigNotFound", err)
	}
	if hint := hintFor(err); !strings.Contains(hint, "--config") {
		t.Errorf("hintFor() = %q, want config hint", hint)
	}
}

func TestRunFlagBeatsConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeMarkdown(t, dir, "doc.md", "# Hi")
	cfgPath := filepath.Join(dir, "md2html.yaml")
	if err := os.WriteFile(cfgPath, []byte("theme: light\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if _, _, err := runCLI(t, []string{"-c", cfgPath, "-t", "dark", input}); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	html, err := os.ReadFile(filepath.Join(dir, "doc.html"))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(html), `data-color-mode="dark"`) {
		t.Error("the --theme flag should beat the config file")
	}
}

func TestRunEnvTheme(t *testing.T) {
	t.Setenv("MD2HTML_THEME", "light")

	dir := t.TempDir()
	input := writeMarkdown(t, dir, "doc.md", "# Hi")

	if _, _, err := runCLI(t, []string{input}); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	html, err := os.ReadFile(filepath.Join(dir, "doc.html"))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(html), `data-color-mode="light"`) {
		t.Error("MD2HTML_THEME should apply")
	}
}

func TestRunCustomAssetTheme(t *testing.T) {
	t.Parallel()

	assetDir := t.TempDir()
	stylesDir := filepath.Join(assetDir, "styles")
	if err := os.MkdirAll(stylesDir, 0o750); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	css := "/* sepia: warm reading theme */ body { background: tan; }"
	if err := os.WriteFile(filepath.Join(stylesDir, "sepia.css"), []byte(css), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	dir := t.TempDir()
	input := writeMarkdown(t, dir, "doc.md", "# Hi")

	if _, _, err := runCLI(t, []string{"--asset-path", assetDir, "-t", "sepia", input}); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	html, err := os.ReadFile(filepath.Join(dir, "doc.html"))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(html), "background: tan") {
		t.Error("custom theme stylesheet should be inlined")
	}
}

func TestRunInvalidWorkers(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeMarkdown(t, dir, "doc.md", "# Hi")

	_, _, err := runCLI(t, []string{"-w", "100", input})
	if !errors.Is(err, ErrInvalidWorkerCount) {
		t.Errorf("run() error = %v, want ErrInvalidWorkerCount", err)
	}
}
