package generator

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/unjucks/unjucks/internal/template/model"
)

// newTemplate builds an in-memory template rooted at a temp dir.
func newTemplate(t *testing.T, files ...model.TemplateFile) *model.Template {
	t.Helper()
	return &model.Template{
		Generator: "widget",
		Name:      "new",
		RootPath:  t.TempDir(),
		Files:     files,
	}
}

func textFile(path, content string) model.TemplateFile {
	return model.TemplateFile{Path: path, Content: []byte(content), Mode: 0o644}
}

func generate(t *testing.T, tpl *model.Template, vars model.Variables, dest string, force bool) *Result {
	t.Helper()
	g, err := New(tpl)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	result, err := g.Generate(context.Background(), Options{
		Template:  tpl,
		Variables: vars,
		DestDir:   dest,
		Force:     force,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	return result
}

func readOutput(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestGenerateCreatesFiles(t *testing.T) {
	tpl := newTemplate(t,
		textFile("{{ name | kebabCase }}.go.njk", "package {{ name | snakeCase }}\n"),
		textFile("docs/readme.md", "# {{ name | titleCase }}\n"),
	)
	dest := t.TempDir()

	result := generate(t, tpl, model.Variables{"name": "UserProfile"}, dest, false)

	if result.FilesCreated != 2 {
		t.Fatalf("FilesCreated = %d, want 2 (errors: %v)", result.FilesCreated, result.Errors)
	}
	if got := readOutput(t, filepath.Join(dest, "user-profile.go")); got != "package user_profile\n" {
		t.Errorf("rendered content = %q", got)
	}
	if got := readOutput(t, filepath.Join(dest, "docs", "readme.md")); got != "# User Profile\n" {
		t.Errorf("rendered content = %q", got)
	}
}

func TestGenerateFrontmatterTo(t *testing.T) {
	tpl := newTemplate(t, textFile("component.njk",
		"---\nto: \"src/{{ name | pascalCase }}/index.ts\"\n---\nexport const {{ name | camelCase }} = null;\n"))
	dest := t.TempDir()

	result := generate(t, tpl, model.Variables{"name": "my widget"}, dest, false)

	if result.FilesCreated != 1 {
		t.Fatalf("FilesCreated = %d, want 1 (errors: %v)", result.FilesCreated, result.Errors)
	}
	got := readOutput(t, filepath.Join(dest, "src", "MyWidget", "index.ts"))
	if got != "export const myWidget = null;\n" {
		t.Errorf("rendered content = %q", got)
	}
}

func TestGenerateSkipsExistingWithoutForce(t *testing.T) {
	tpl := newTemplate(t, textFile("main.go.njk", "package main // v2\n"))
	dest := t.TempDir()
	existing := filepath.Join(dest, "main.go")
	if err := os.WriteFile(existing, []byte("package main // v1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	result := generate(t, tpl, model.Variables{}, dest, false)
	if result.FilesSkipped != 1 || result.FilesCreated != 0 {
		t.Fatalf("skipped=%d created=%d, want 1/0", result.FilesSkipped, result.FilesCreated)
	}
	if got := readOutput(t, existing); got != "package main // v1\n" {
		t.Errorf("existing file was modified: %q", got)
	}

	result = generate(t, tpl, model.Variables{}, dest, true)
	if result.FilesOverwritten != 1 {
		t.Fatalf("FilesOverwritten = %d, want 1", result.FilesOverwritten)
	}
	if got := readOutput(t, existing); got != "package main // v2\n" {
		t.Errorf("force did not overwrite: %q", got)
	}
}

func TestGenerateInject(t *testing.T) {
	tpl := newTemplate(t, textFile("dep.njk",
		"---\nto: \"go.mod\"\ninject: true\nafter: \"require (\"\n---\n\tgithub.com/acme/{{ name }} v1.0.0\n"))
	dest := t.TempDir()
	target := filepath.Join(dest, "go.mod")
	if err := os.WriteFile(target, []byte("module app\n\nrequire (\n)\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	result := generate(t, tpl, model.Variables{"name": "kit"}, dest, false)
	if result.FilesInjected != 1 {
		t.Fatalf("FilesInjected = %d, want 1 (errors: %v)", result.FilesInjected, result.Errors)
	}
	want := "module app\n\nrequire (\n\tgithub.com/acme/kit v1.0.0\n)\n"
	if got := readOutput(t, target); got != want {
		t.Errorf("injected = %q, want %q", got, want)
	}

	// Second run skips: snippet already present.
	result = generate(t, tpl, model.Variables{"name": "kit"}, dest, false)
	if result.FilesSkipped != 1 || result.FilesInjected != 0 {
		t.Errorf("rerun: skipped=%d injected=%d, want 1/0", result.FilesSkipped, result.FilesInjected)
	}
}

func TestGenerateInjectMissingTarget(t *testing.T) {
	tpl := newTemplate(t, textFile("dep.njk",
		"---\nto: \"notes.txt\"\ninject: true\nappend: true\n---\nhello\n"))
	dest := t.TempDir()

	result := generate(t, tpl, model.Variables{}, dest, false)
	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 error for missing target, got %v", result.Errors)
	}
}

func TestGenerateInjectCreateIfMissing(t *testing.T) {
	tpl := newTemplate(t, textFile("dep.njk",
		"---\nto: \"notes.txt\"\ninject: true\nappend: true\ncreateIfMissing: true\n---\nhello\n"))
	dest := t.TempDir()

	result := generate(t, tpl, model.Variables{}, dest, false)
	if result.FilesInjected != 1 {
		t.Fatalf("FilesInjected = %d, want 1 (errors: %v)", result.FilesInjected, result.Errors)
	}
	if got := readOutput(t, filepath.Join(dest, "notes.txt")); got != "hello\n" {
		t.Errorf("created target = %q", got)
	}
}

func TestGenerateInjectPreservesTargetMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}

	tpl := newTemplate(t, textFile("step.njk",
		"---\nto: \"run.sh\"\ninject: true\nappend: true\n---\necho {{ name }}\n"))
	dest := t.TempDir()
	target := filepath.Join(dest, "run.sh")
	if err := os.WriteFile(target, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	result := generate(t, tpl, model.Variables{"name": "ok"}, dest, false)
	if result.FilesInjected != 1 {
		t.Fatalf("FilesInjected = %d, want 1 (errors: %v)", result.FilesInjected, result.Errors)
	}
	info, err := os.Stat(target)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o755 {
		t.Errorf("mode after injection = %o, want 755", info.Mode().Perm())
	}
}

func TestGenerateInjectChmod(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}

	tpl := newTemplate(t, textFile("step.njk",
		"---\nto: \"run.sh\"\ninject: true\nappend: true\nchmod: \"755\"\n---\necho hi\n"))
	dest := t.TempDir()
	target := filepath.Join(dest, "run.sh")
	if err := os.WriteFile(target, []byte("#!/bin/sh\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	result := generate(t, tpl, model.Variables{}, dest, false)
	if result.FilesInjected != 1 {
		t.Fatalf("FilesInjected = %d, want 1 (errors: %v)", result.FilesInjected, result.Errors)
	}
	info, err := os.Stat(target)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o755 {
		t.Errorf("mode after injection = %o, want 755", info.Mode().Perm())
	}
}

func TestGenerateSkipIf(t *testing.T) {
	tpl := newTemplate(t, textFile("opt.txt.njk",
		"---\nto: \"opt.txt\"\nskipIf: \"{{ minimal }}\"\n---\noptional content\n"))
	dest := t.TempDir()

	result := generate(t, tpl, model.Variables{"minimal": true}, dest, false)
	if result.FilesSkipped != 1 || result.FilesCreated != 0 {
		t.Fatalf("skipped=%d created=%d, want 1/0", result.FilesSkipped, result.FilesCreated)
	}

	result = generate(t, tpl, model.Variables{"minimal": false}, dest, false)
	if result.FilesCreated != 1 {
		t.Fatalf("FilesCreated = %d, want 1 (errors: %v)", result.FilesCreated, result.Errors)
	}
}

func TestGenerateUnlessExists(t *testing.T) {
	tpl := newTemplate(t, textFile("cfg.yaml.njk",
		"---\nto: \"cfg.yaml\"\nunlessExists: true\n---\ndefault: true\n"))
	dest := t.TempDir()
	if err := os.WriteFile(filepath.Join(dest, "cfg.yaml"), []byte("user: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	// unlessExists wins even with force.
	g, err := New(tpl)
	if err != nil {
		t.Fatal(err)
	}
	result, err := g.Generate(context.Background(), Options{
		Template: tpl, Variables: model.Variables{}, DestDir: dest, Force: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.FilesSkipped != 1 {
		t.Fatalf("FilesSkipped = %d, want 1", result.FilesSkipped)
	}
	if got := readOutput(t, filepath.Join(dest, "cfg.yaml")); got != "user: true\n" {
		t.Errorf("unlessExists target modified: %q", got)
	}
}

func TestGenerateChmod(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}

	tpl := newTemplate(t, textFile("run.sh.njk",
		"---\nto: \"run.sh\"\nchmod: \"755\"\n---\n#!/bin/sh\necho {{ name }}\n"))
	dest := t.TempDir()

	generate(t, tpl, model.Variables{"name": "ok"}, dest, false)

	info, err := os.Stat(filepath.Join(dest, "run.sh"))
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o755 {
		t.Errorf("mode = %o, want 755", info.Mode().Perm())
	}
}

func TestGenerateBinaryCopiedVerbatim(t *testing.T) {
	payload := []byte{0x89, 'P', 'N', 'G', 0x00, '{', '{', 0x01}
	tpl := newTemplate(t, model.TemplateFile{Path: "logo.png", Content: payload, Mode: 0o644, IsBinary: true})
	dest := t.TempDir()

	result := generate(t, tpl, model.Variables{}, dest, false)
	if result.FilesCreated != 1 {
		t.Fatalf("FilesCreated = %d, want 1 (errors: %v)", result.FilesCreated, result.Errors)
	}
	got, err := os.ReadFile(filepath.Join(dest, "logo.png"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(payload) {
		t.Error("binary content was altered")
	}
}

func TestGenerateIgnorePatterns(t *testing.T) {
	tpl := newTemplate(t,
		textFile("keep.txt", "keep\n"),
		textFile("skip.bak", "skip\n"),
		textFile("notes/draft.tmp", "skip\n"),
	)
	tpl.Config.Settings = &model.TemplateSettings{IgnorePatterns: []string{"*.bak", "notes/*.tmp"}}
	dest := t.TempDir()

	result := generate(t, tpl, model.Variables{}, dest, false)
	if result.FilesCreated != 1 {
		t.Fatalf("FilesCreated = %d, want 1 (errors: %v)", result.FilesCreated, result.Errors)
	}
	if _, err := os.Stat(filepath.Join(dest, "skip.bak")); !os.IsNotExist(err) {
		t.Error("ignored file was written")
	}
}

func TestGenerateRejectsEscapingPaths(t *testing.T) {
	tpl := newTemplate(t, textFile("evil.njk", "---\nto: \"../outside.txt\"\n---\nx\n"))
	dest := t.TempDir()

	result := generate(t, tpl, model.Variables{}, dest, false)
	if len(result.Errors) != 1 {
		t.Fatalf("expected path error, got %v", result.Errors)
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(dest), "outside.txt")); !os.IsNotExist(err) {
		t.Error("file escaped the destination directory")
	}
}

func TestDryRunWritesNothing(t *testing.T) {
	tpl := newTemplate(t, textFile("a.txt.njk", "A: {{ name }}\n"))
	dest := t.TempDir()

	g, err := New(tpl)
	if err != nil {
		t.Fatal(err)
	}
	result, err := g.DryRun(context.Background(), Options{
		Template: tpl, Variables: model.Variables{"name": "x"}, DestDir: dest,
	})
	if err != nil {
		t.Fatal(err)
	}

	if result.FilesCreated != 1 {
		t.Fatalf("FilesCreated = %d, want 1", result.FilesCreated)
	}
	if len(result.Planned) != 1 || string(result.Planned[0].Content) != "A: x\n" {
		t.Errorf("planned = %+v", result.Planned)
	}
	entries, err := os.ReadDir(dest)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("dry run wrote %d entries", len(entries))
	}
}

func TestGenerateShellHook(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell hooks require sh")
	}

	tpl := newTemplate(t, textFile("marker.txt.njk",
		"---\nto: \"marker.txt\"\nsh: \"touch hook-ran\"\n---\nx\n"))
	dest := t.TempDir()

	// Without --allow-shell the hook must not run.
	generate(t, tpl, model.Variables{}, dest, false)
	if _, err := os.Stat(filepath.Join(dest, "hook-ran")); !os.IsNotExist(err) {
		t.Fatal("hook ran without --allow-shell")
	}

	g, err := New(tpl)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.Generate(context.Background(), Options{
		Template: tpl, Variables: model.Variables{}, DestDir: dest,
		Force: true, AllowShell: true,
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dest, "hook-ran")); err != nil {
		t.Error("hook did not run with --allow-shell")
	}
}

func TestGenerateInjectShellHook(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell hooks require sh")
	}

	tpl := newTemplate(t, textFile("dep.njk",
		"---\nto: \"notes.txt\"\ninject: true\nappend: true\ncreateIfMissing: true\nsh: \"touch hook-ran\"\n---\nhello\n"))
	dest := t.TempDir()

	g, err := New(tpl)
	if err != nil {
		t.Fatal(err)
	}
	result, err := g.Generate(context.Background(), Options{
		Template: tpl, Variables: model.Variables{}, DestDir: dest, AllowShell: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.FilesInjected != 1 {
		t.Fatalf("FilesInjected = %d, want 1 (errors: %v)", result.FilesInjected, result.Errors)
	}
	marker := filepath.Join(dest, "hook-ran")
	if _, err := os.Stat(marker); err != nil {
		t.Error("hook did not run after injection")
	}

	// A rerun that skips the injection must not rerun the hook.
	if err := os.Remove(marker); err != nil {
		t.Fatal(err)
	}
	if _, err := g.Generate(context.Background(), Options{
		Template: tpl, Variables: model.Variables{}, DestDir: dest, AllowShell: true,
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(marker); !os.IsNotExist(err) {
		t.Error("hook ran for a skipped injection")
	}
}

func TestNewIgnorerInvalidPattern(t *testing.T) {
	if _, err := NewIgnorer([]string{"[unclosed"}); err == nil {
		t.Error("expected error for invalid pattern")
	}
}
