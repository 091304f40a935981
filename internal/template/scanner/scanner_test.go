package scanner

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/unjucks/unjucks/internal/template/model"
)

// writeFixture creates a file (and parents) under root.
func writeFixture(t *testing.T, root, relPath, content string) {
	t.Helper()
	path := filepath.Join(root, relPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", relPath, err)
	}
}

// newFixtureRoot builds a templates root with two generators.
func newFixtureRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	writeFixture(t, root, "component/new/unjucks.yaml", `
description: New component
variables:
  name:
    type: string
    required: true
`)
	writeFixture(t, root, "component/new/{{ name | kebabCase }}.go.njk", "package {{ name | snakeCase }}\n")
	writeFixture(t, root, "component/new/testdata/fixture.txt", "static\n")
	writeFixture(t, root, "component/story/story.md.njk", "# {{ title }}\n")
	writeFixture(t, root, "api/endpoint/handler.go.njk", "// {{ name }}\n")

	return root
}

func TestResolveRoot(t *testing.T) {
	base := t.TempDir()
	templatesDir := filepath.Join(base, model.TemplatesDirName)
	nested := filepath.Join(base, "src", "deep")
	if err := os.MkdirAll(templatesDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	t.Run("found in parent", func(t *testing.T) {
		got, err := ResolveRoot(nested, "")
		if err != nil {
			t.Fatalf("ResolveRoot() error = %v", err)
		}
		if got != templatesDir {
			t.Errorf("ResolveRoot() = %q, want %q", got, templatesDir)
		}
	})

	t.Run("override used directly", func(t *testing.T) {
		got, err := ResolveRoot(nested, templatesDir)
		if err != nil {
			t.Fatalf("ResolveRoot() error = %v", err)
		}
		if got != templatesDir {
			t.Errorf("ResolveRoot() = %q, want %q", got, templatesDir)
		}
	})

	t.Run("missing override fails", func(t *testing.T) {
		_, err := ResolveRoot(nested, filepath.Join(base, "nope"))
		var scanErr *ScanError
		if !errors.As(err, &scanErr) || scanErr.Type != RootNotFound {
			t.Errorf("expected RootNotFound, got %v", err)
		}
	})
}

func TestListGenerators(t *testing.T) {
	root := newFixtureRoot(t)
	s := New(root)

	generators, err := s.ListGenerators()
	if err != nil {
		t.Fatalf("ListGenerators() error = %v", err)
	}

	if len(generators) != 2 {
		t.Fatalf("got %d generators, want 2", len(generators))
	}
	if generators[0].Name != "api" || generators[1].Name != "component" {
		t.Errorf("generators = %v, want sorted [api component]", generators)
	}
	if !reflect.DeepEqual(generators[1].Templates, []string{"new", "story"}) {
		t.Errorf("component templates = %v, want [new story]", generators[1].Templates)
	}
}

func TestLoadTemplate(t *testing.T) {
	root := newFixtureRoot(t)
	s := New(root)

	tpl, err := s.LoadTemplate("component", "new")
	if err != nil {
		t.Fatalf("LoadTemplate() error = %v", err)
	}

	if tpl.FullName() != "component/new" {
		t.Errorf("FullName() = %q", tpl.FullName())
	}
	if len(tpl.Files) != 2 {
		t.Fatalf("got %d files, want 2 (config excluded)", len(tpl.Files))
	}
	for _, f := range tpl.Files {
		if filepath.Base(f.Path) == model.TemplateConfigFile {
			t.Errorf("config file leaked into template files: %s", f.Path)
		}
	}

	def, ok := tpl.Config.Variables["name"]
	if !ok {
		t.Fatal("variable 'name' not loaded from unjucks.yaml")
	}
	if !def.Required || def.Type != model.VarTypeString {
		t.Errorf("name def = %+v, want required string", def)
	}
}

func TestLoadTemplateConfigMergesGeneratorLevel(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "svc/unjucks.yaml", `
variables:
  owner:
    type: string
    default: platform
  name:
    type: string
`)
	writeFixture(t, root, "svc/grpc/unjucks.yaml", `
variables:
  name:
    type: string
    required: true
`)
	writeFixture(t, root, "svc/grpc/main.go.njk", "package main\n")

	tpl, err := New(root).LoadTemplate("svc", "grpc")
	if err != nil {
		t.Fatalf("LoadTemplate() error = %v", err)
	}

	if tpl.Config.Variables["owner"].Default != "platform" {
		t.Error("generator-level variable not inherited")
	}
	if !tpl.Config.Variables["name"].Required {
		t.Error("template-level override not applied")
	}
}

func TestLoadTemplateErrors(t *testing.T) {
	root := newFixtureRoot(t)
	s := New(root)

	tests := []struct {
		name      string
		generator string
		template  string
		wantType  ScanErrorType
	}{
		{"unknown generator", "nope", "new", GeneratorNotFound},
		{"unknown template", "component", "nope", TemplateNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.LoadTemplate(tt.generator, tt.template)
			var scanErr *ScanError
			if !errors.As(err, &scanErr) || scanErr.Type != tt.wantType {
				t.Errorf("got %v, want type %d", err, tt.wantType)
			}
		})
	}
}

func TestLoadTemplateInvalidConfig(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "bad/tpl/unjucks.yaml", "variables: [not a map\n")
	writeFixture(t, root, "bad/tpl/file.txt", "x\n")

	_, err := New(root).LoadTemplate("bad", "tpl")
	var scanErr *ScanError
	if !errors.As(err, &scanErr) || scanErr.Type != ConfigParseFailed {
		t.Errorf("expected ConfigParseFailed, got %v", err)
	}
}

func TestCollectFilesDetectsBinary(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "gen/tpl/logo.png", "\x89PNG\x00\x00")
	writeFixture(t, root, "gen/tpl/data.bin", string([]byte{1, 0, 2}))
	writeFixture(t, root, "gen/tpl/readme.md.njk", "# {{ name }}\n")

	tpl, err := New(root).LoadTemplate("gen", "tpl")
	if err != nil {
		t.Fatalf("LoadTemplate() error = %v", err)
	}

	byPath := map[string]model.TemplateFile{}
	for _, f := range tpl.Files {
		byPath[f.Path] = f
	}

	if !byPath["logo.png"].IsBinary {
		t.Error("logo.png should be binary by extension")
	}
	if !byPath["data.bin"].IsBinary {
		t.Error("data.bin should be binary by content")
	}
	if byPath["readme.md.njk"].IsBinary {
		t.Error("readme.md.njk should not be binary")
	}
}

func TestScanVariables(t *testing.T) {
	tpl := &model.Template{
		Files: []model.TemplateFile{
			{
				Path:    "{{ name | kebabCase }}/main.go.njk",
				Content: []byte("package {{ pkg }}\n{% if withTests %}// tests{% endif %}\n{% for f in fields %}{{ f }}{% endfor %}\n{{ now | formatDate }}\n"),
			},
			{Path: "logo.png", Content: []byte{0}, IsBinary: true},
		},
	}

	got := ScanVariables(tpl)
	want := []string{"f", "fields", "name", "pkg", "withTests"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ScanVariables() = %v, want %v", got, want)
	}
}

func TestUndeclaredVariables(t *testing.T) {
	tpl := &model.Template{
		Files: []model.TemplateFile{
			{Path: "a.txt", Content: []byte("{{ name }} {{ extra }}")},
		},
		Config: model.TemplateConfig{
			Variables: map[string]model.VarDef{"name": {Type: model.VarTypeString}},
		},
	}

	got := UndeclaredVariables(tpl)
	if !reflect.DeepEqual(got, []string{"extra"}) {
		t.Errorf("UndeclaredVariables() = %v, want [extra]", got)
	}
}
