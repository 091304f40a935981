package app

import (
	"sort"

	"github.com/unjucks/unjucks/internal/debug"
	"github.com/unjucks/unjucks/internal/template/model"
	"github.com/unjucks/unjucks/internal/template/scanner"
)

// ListOptions contains options for listing generators.
type ListOptions struct {
	// StartDir is where templates root discovery starts.
	StartDir string
	// TemplatesRoot overrides templates root discovery.
	TemplatesRoot string
}

// List returns the generators available under the templates root,
// each with its templates.
func List(opts ListOptions) ([]model.Generator, error) {
	startDir := opts.StartDir
	if startDir == "" {
		startDir = "."
	}

	root, err := scanner.ResolveRoot(startDir, opts.TemplatesRoot)
	if err != nil {
		return nil, NewListError("failed to locate templates directory", err)
	}

	generators, err := scanner.New(root).ListGenerators()
	if err != nil {
		return nil, NewListError("failed to list generators", err)
	}

	debug.Debug("[app] Listed %d generator(s)", len(generators))
	return generators, nil
}

// VarInfo describes one declared variable for display.
type VarInfo struct {
	// Name is the variable name.
	Name string
	// Def is the variable declaration.
	Def model.VarDef
}

// TemplateInfo is the inspection report for a template.
type TemplateInfo struct {
	// Template is the loaded template.
	Template *model.Template
	// Declared lists declared variables sorted by name.
	Declared []VarInfo
	// Undeclared lists variables referenced by template content but
	// not declared in any config.
	Undeclared []string
	// Files lists the template's file paths relative to its root.
	Files []string
}

// Inspect loads a template and reports its variables and files.
func Inspect(opts GenerateOptions) (*TemplateInfo, error) {
	tpl, err := LoadTemplate(opts)
	if err != nil {
		return nil, NewInspectError("failed to inspect template", err)
	}

	info := &TemplateInfo{
		Template:   tpl,
		Undeclared: scanner.UndeclaredVariables(tpl),
	}

	for name, def := range tpl.Config.Variables {
		info.Declared = append(info.Declared, VarInfo{Name: name, Def: def})
	}
	sort.Slice(info.Declared, func(i, j int) bool {
		return info.Declared[i].Name < info.Declared[j].Name
	})

	for _, file := range tpl.Files {
		info.Files = append(info.Files, file.Path)
	}
	sort.Strings(info.Files)

	return info, nil
}
