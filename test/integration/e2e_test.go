package integration

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/unjucks/unjucks/internal/app"
	"github.com/unjucks/unjucks/internal/template/model"
)

// TestE2E_GenerateComponent runs the full pipeline: template discovery,
// frontmatter, filters in file names and bodies, and skip conditions.
func TestE2E_GenerateComponent(t *testing.T) {
	tempDir := t.TempDir()
	templatesRoot := copyFixtureToTemp(t, "basic", tempDir)
	destDir := filepath.Join(tempDir, "out")

	result, err := app.Generate(context.Background(), app.GenerateOptions{
		TemplatesRoot: templatesRoot,
		Generator:     "component",
		Template:      "new",
		Vars:          model.Variables{"name": "userProfile"},
		DestDir:       destDir,
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if result.FilesCreated != 2 {
		t.Errorf("expected 2 files created, got %d", result.FilesCreated)
	}
	if result.FilesSkipped != 1 {
		t.Errorf("expected 1 file skipped (tests disabled), got %d", result.FilesSkipped)
	}

	// Frontmatter "to" with filters controls the output path.
	goFile := readFile(t, filepath.Join(destDir, "user-profile", "UserProfile.go"))
	if !strings.Contains(goFile, "package user_profile") {
		t.Errorf("unexpected go file content:\n%s", goFile)
	}
	// Generator-level variable default flows into the body.
	if !strings.Contains(goFile, "Maintained by dev.") {
		t.Errorf("generator-level default missing:\n%s", goFile)
	}

	// Filters in the file name itself.
	mdFile := readFile(t, filepath.Join(destDir, "user-profile.md"))
	if !strings.Contains(mdFile, "# User Profile") {
		t.Errorf("unexpected markdown content:\n%s", mdFile)
	}

	// skipIf suppressed the test file.
	testPath := filepath.Join(destDir, "user-profile", "UserProfile_test.go")
	if _, err := os.Stat(testPath); !os.IsNotExist(err) {
		t.Errorf("test file should be skipped when withTests is false")
	}
}

// TestE2E_GenerateWithTests verifies boolean variables flip skip
// conditions, and that existing files survive without --force.
func TestE2E_GenerateWithTests(t *testing.T) {
	tempDir := t.TempDir()
	templatesRoot := copyFixtureToTemp(t, "basic", tempDir)
	destDir := filepath.Join(tempDir, "out")

	opts := app.GenerateOptions{
		TemplatesRoot: templatesRoot,
		Generator:     "component",
		Template:      "new",
		Vars:          model.Variables{"name": "billing"},
		DestDir:       destDir,
	}

	if _, err := app.Generate(context.Background(), opts); err != nil {
		t.Fatalf("first Generate failed: %v", err)
	}

	// Second run with tests enabled: new test file created, the
	// existing files skipped.
	opts.Vars = model.Variables{"name": "billing", "withTests": true}
	result, err := app.Generate(context.Background(), opts)
	if err != nil {
		t.Fatalf("second Generate failed: %v", err)
	}
	if result.FilesCreated != 1 {
		t.Errorf("expected only the test file created, got %d", result.FilesCreated)
	}
	if result.FilesSkipped != 2 {
		t.Errorf("expected 2 existing files skipped, got %d", result.FilesSkipped)
	}

	if _, err := os.Stat(filepath.Join(destDir, "billing", "Billing_test.go")); err != nil {
		t.Errorf("expected test file: %v", err)
	}

	// Force overwrites everything.
	opts.Force = true
	result, err = app.Generate(context.Background(), opts)
	if err != nil {
		t.Fatalf("forced Generate failed: %v", err)
	}
	if result.FilesOverwritten != 3 {
		t.Errorf("expected 3 files overwritten with force, got %d", result.FilesOverwritten)
	}
}

// TestE2E_Injection covers createIfMissing, anchored injection, and
// idempotent reruns.
func TestE2E_Injection(t *testing.T) {
	tempDir := t.TempDir()
	templatesRoot := copyFixtureToTemp(t, "basic", tempDir)
	destDir := filepath.Join(tempDir, "out")

	opts := app.GenerateOptions{
		TemplatesRoot: templatesRoot,
		Generator:     "hook",
		Template:      "register",
		Vars:          model.Variables{"module": "userAccounts"},
		DestDir:       destDir,
	}

	routesPath := filepath.Join(destDir, "routes.txt")
	if err := os.MkdirAll(destDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(routesPath, []byte("# routes\n"), 0644); err != nil {
		t.Fatal(err)
	}

	result, err := app.Generate(context.Background(), opts)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if result.FilesInjected != 1 {
		t.Errorf("expected 1 injection, got %d", result.FilesInjected)
	}

	routes := readFile(t, routesPath)
	if !strings.HasPrefix(routes, "# routes\n") {
		t.Errorf("anchor line lost:\n%s", routes)
	}
	if !strings.Contains(routes, "route user-accounts") {
		t.Errorf("injected line missing:\n%s", routes)
	}

	// Rerunning the same injection changes nothing.
	result, err = app.Generate(context.Background(), opts)
	if err != nil {
		t.Fatalf("rerun failed: %v", err)
	}
	if result.FilesInjected != 0 || result.FilesSkipped != 1 {
		t.Errorf("rerun should be idempotent: injected=%d skipped=%d",
			result.FilesInjected, result.FilesSkipped)
	}
	if after := readFile(t, routesPath); after != routes {
		t.Errorf("rerun modified the target:\n%s", after)
	}

	// A second module lands below the same anchor.
	opts.Vars = model.Variables{"module": "billing"}
	if _, err := app.Generate(context.Background(), opts); err != nil {
		t.Fatalf("second module failed: %v", err)
	}
	routes = readFile(t, routesPath)
	if !strings.Contains(routes, "route user-accounts") || !strings.Contains(routes, "route billing") {
		t.Errorf("expected both routes:\n%s", routes)
	}

	// createIfMissing: a fresh destination gets the file created with
	// the snippet as its whole content.
	freshDest := filepath.Join(tempDir, "fresh")
	opts.DestDir = freshDest
	opts.Vars = model.Variables{"module": "audit"}
	if _, err := app.Generate(context.Background(), opts); err != nil {
		t.Fatalf("createIfMissing run failed: %v", err)
	}
	created := readFile(t, filepath.Join(freshDest, "routes.txt"))
	if created != "route audit\n" {
		t.Errorf("createIfMissing content = %q", created)
	}
}

// TestE2E_ListAndInspect exercises discovery of generators and the
// template inspection report.
func TestE2E_ListAndInspect(t *testing.T) {
	tempDir := t.TempDir()
	templatesRoot := copyFixtureToTemp(t, "basic", tempDir)

	generators, err := app.List(app.ListOptions{TemplatesRoot: templatesRoot})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(generators) != 2 {
		t.Fatalf("expected 2 generators, got %d", len(generators))
	}
	if generators[0].Name != "component" || generators[1].Name != "hook" {
		t.Errorf("unexpected generators: %v", generators)
	}
	if len(generators[0].Templates) != 1 || generators[0].Templates[0] != "new" {
		t.Errorf("unexpected templates: %v", generators[0].Templates)
	}

	info, err := app.Inspect(app.GenerateOptions{
		TemplatesRoot: templatesRoot,
		Generator:     "component",
		Template:      "new",
	})
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}

	// Generator-level and template-level declarations merge.
	declared := make([]string, len(info.Declared))
	for i, v := range info.Declared {
		declared[i] = v.Name
	}
	want := []string{"author", "name", "withTests"}
	if len(declared) != len(want) {
		t.Fatalf("declared = %v, want %v", declared, want)
	}
	for i := range want {
		if declared[i] != want[i] {
			t.Errorf("declared = %v, want %v", declared, want)
			break
		}
	}

	if len(info.Files) != 3 {
		t.Errorf("expected 3 template files, got %v", info.Files)
	}
	if len(info.Undeclared) != 0 {
		t.Errorf("expected no undeclared variables, got %v", info.Undeclared)
	}
}

// TestE2E_InitThenGenerate scaffolds a generator and runs it.
func TestE2E_InitThenGenerate(t *testing.T) {
	projectDir := t.TempDir()

	initResult, err := app.Init(app.InitOptions{Dir: projectDir, Generator: "widget"})
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if len(initResult.Files) != 2 {
		t.Fatalf("expected 2 scaffold files, got %v", initResult.Files)
	}

	destDir := t.TempDir()
	result, err := app.Generate(context.Background(), app.GenerateOptions{
		StartDir:  projectDir,
		Generator: "widget",
		Template:  "new",
		Vars:      model.Variables{"name": "navBar"},
		DestDir:   destDir,
	})
	if err != nil {
		t.Fatalf("Generate from scaffold failed: %v", err)
	}
	if result.FilesCreated != 1 {
		t.Errorf("expected 1 file created, got %d", result.FilesCreated)
	}

	content := readFile(t, filepath.Join(destDir, "nav-bar", "nav_bar.txt"))
	if !strings.Contains(content, "Hello Nav Bar!") {
		t.Errorf("unexpected scaffold output:\n%s", content)
	}
}
