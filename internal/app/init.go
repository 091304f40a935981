package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/unjucks/unjucks/internal/debug"
	"github.com/unjucks/unjucks/internal/template/model"
)

// InitOptions contains options for scaffolding a new generator.
type InitOptions struct {
	// Dir is the project directory receiving the templates root.
	Dir string
	// Generator is the generator name to scaffold.
	Generator string
	// Template is the template name to scaffold. Defaults to "new".
	Template string
}

// InitResult reports what Init created.
type InitResult struct {
	// Root is the templates root directory.
	Root string
	// TemplateDir is the scaffolded template directory.
	TemplateDir string
	// Files lists the created file paths.
	Files []string
}

const initConfigContent = `name: %s
description: Describe what this template generates.

variables:
  name:
    type: string
    description: Name of the thing to generate
    required: true
`

const initTemplateContent = `---
to: "{{ name | kebabCase }}/{{ name | snakeCase }}.txt"
---
Hello {{ name | titleCase }}!
`

// Init scaffolds a templates root with one generator and a starter
// template. Existing files are never overwritten.
func Init(opts InitOptions) (*InitResult, error) {
	if opts.Generator == "" {
		return nil, NewInitError("generator name is required", nil)
	}
	if opts.Dir == "" {
		opts.Dir = "."
	}
	if opts.Template == "" {
		opts.Template = "new"
	}

	root := filepath.Join(opts.Dir, model.TemplatesDirName)
	templateDir := filepath.Join(root, opts.Generator, opts.Template)
	if err := os.MkdirAll(templateDir, 0755); err != nil {
		return nil, NewInitError("failed to create template directory", err)
	}

	result := &InitResult{Root: root, TemplateDir: templateDir}

	files := []struct {
		path    string
		content string
	}{
		{filepath.Join(templateDir, model.TemplateConfigFile), fmt.Sprintf(initConfigContent, opts.Template)},
		{filepath.Join(templateDir, "hello.txt"+model.TemplateSuffix), initTemplateContent},
	}

	for _, f := range files {
		if _, err := os.Stat(f.path); err == nil {
			debug.Debug("[app] Init: %s already exists, skipping", f.path)
			continue
		}
		if err := os.WriteFile(f.path, []byte(f.content), 0644); err != nil {
			return nil, NewInitError(fmt.Sprintf("failed to write %s", f.path), err)
		}
		result.Files = append(result.Files, f.path)
	}

	debug.Debug("[app] Scaffolded generator %s/%s (%d file(s))", opts.Generator, opts.Template, len(result.Files))
	return result, nil
}
