package app

import (
	"context"
	"fmt"

	"github.com/unjucks/unjucks/internal/debug"
	"github.com/unjucks/unjucks/internal/template/generator"
	"github.com/unjucks/unjucks/internal/template/model"
	"github.com/unjucks/unjucks/internal/template/scanner"
)

// GenerateOptions contains options for the generate workflow.
type GenerateOptions struct {
	// StartDir is where templates root discovery starts. Defaults to
	// the current directory.
	StartDir string
	// TemplatesRoot overrides templates root discovery.
	TemplatesRoot string
	// Generator is the generator name.
	Generator string
	// Template is the template name within the generator.
	Template string
	// ConfigVars are project-level default variable values.
	ConfigVars model.Variables
	// Vars are caller-provided variable values. They win over
	// ConfigVars and declared defaults.
	Vars model.Variables
	// DestDir is the destination directory for output files.
	DestDir string
	// Force overwrites existing files.
	Force bool
	// DryRun plans without writing.
	DryRun bool
	// AllowShell permits frontmatter sh hooks.
	AllowShell bool
	// IgnorePatterns are extra glob patterns excluded from the run.
	IgnorePatterns []string
	// PreserveExecutable sets the executable-bit behavior for
	// templates that do not set it themselves.
	PreserveExecutable *bool
	// SkipValidation bypasses variable validation. Used by callers
	// that validate interactively.
	SkipValidation bool
}

// Generate loads a template, resolves its variables, and runs the
// generation pipeline against the destination directory.
func Generate(ctx context.Context, opts GenerateOptions) (*generator.Result, error) {
	if opts.Generator == "" || opts.Template == "" {
		return nil, NewGenerateError("generator and template names are required", nil)
	}
	if opts.DestDir == "" {
		opts.DestDir = "."
	}
	if opts.StartDir == "" {
		opts.StartDir = "."
	}

	tpl, err := LoadTemplate(opts)
	if err != nil {
		return nil, err
	}

	vars, err := resolveRunVariables(tpl, opts)
	if err != nil {
		return nil, err
	}

	if len(opts.IgnorePatterns) > 0 {
		tpl.Config.Settings = mergeIgnorePatterns(tpl.Config.Settings, opts.IgnorePatterns)
	}
	if opts.PreserveExecutable != nil {
		tpl.Config.Settings = mergePreserveExecutable(tpl.Config.Settings, opts.PreserveExecutable)
	}

	gen, err := generator.New(tpl)
	if err != nil {
		return nil, NewGenerateError("failed to initialize generator", err)
	}

	genOpts := generator.Options{
		Template:   tpl,
		Variables:  vars,
		DestDir:    opts.DestDir,
		Force:      opts.Force,
		AllowShell: opts.AllowShell,
	}

	debug.Debug("[app] Generating %s into %s (dry-run=%v)", tpl.FullName(), opts.DestDir, opts.DryRun)
	if opts.DryRun {
		return gen.DryRun(ctx, genOpts)
	}
	return gen.Generate(ctx, genOpts)
}

// LoadTemplate resolves the templates root and loads the requested
// template with its merged configuration.
func LoadTemplate(opts GenerateOptions) (*model.Template, error) {
	startDir := opts.StartDir
	if startDir == "" {
		startDir = "."
	}

	root, err := scanner.ResolveRoot(startDir, opts.TemplatesRoot)
	if err != nil {
		return nil, NewGenerateError("failed to locate templates directory", err)
	}

	tpl, err := scanner.New(root).LoadTemplate(opts.Generator, opts.Template)
	if err != nil {
		return nil, NewGenerateError(
			fmt.Sprintf("failed to load template %s/%s", opts.Generator, opts.Template), err)
	}
	return tpl, nil
}

// resolveRunVariables layers declared defaults, project config values,
// and caller values, resolves @file: references, and validates the
// result.
func resolveRunVariables(tpl *model.Template, opts GenerateOptions) (model.Variables, error) {
	vars := ResolveVariables(tpl.Config, opts.ConfigVars, opts.Vars)

	vars, err := ResolveFileRefs(vars, opts.StartDir)
	if err != nil {
		return nil, err
	}

	if !opts.SkipValidation {
		if err := ValidateVariables(tpl.Config, vars); err != nil {
			return nil, err
		}
	}
	return vars, nil
}

// mergePreserveExecutable applies a project-level default. A value the
// template sets itself wins.
func mergePreserveExecutable(settings *model.TemplateSettings, preserve *bool) *model.TemplateSettings {
	if settings == nil {
		settings = &model.TemplateSettings{}
	}
	if settings.PreserveExecutable != nil {
		return settings
	}
	merged := *settings
	merged.PreserveExecutable = preserve
	return &merged
}

func mergeIgnorePatterns(settings *model.TemplateSettings, extra []string) *model.TemplateSettings {
	if settings == nil {
		settings = &model.TemplateSettings{}
	}
	merged := *settings
	merged.IgnorePatterns = append(append([]string{}, settings.IgnorePatterns...), extra...)
	return &merged
}
