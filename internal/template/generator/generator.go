// Package generator runs the unjucks pipeline for a loaded template:
// render file paths and bodies, honor frontmatter directives, and
// write or inject output files.
package generator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/unjucks/unjucks/internal/debug"
	"github.com/unjucks/unjucks/internal/template/engine"
	"github.com/unjucks/unjucks/internal/template/frontmatter"
	"github.com/unjucks/unjucks/internal/template/injector"
	"github.com/unjucks/unjucks/internal/template/model"
)

// Generator generates output files from templates.
type Generator interface {
	// Generate runs the pipeline and writes output files.
	Generate(ctx context.Context, opts Options) (*Result, error)

	// DryRun runs the pipeline without writing, returning the plan.
	DryRun(ctx context.Context, opts Options) (*Result, error)
}

// Options configures a generation run.
type Options struct {
	// Template is the loaded template to generate from.
	Template *model.Template

	// Variables holds the variable values for rendering.
	Variables model.Variables

	// DestDir is the destination directory for output files.
	DestDir string

	// Force overwrites existing files. Without it, existing files are
	// skipped (frontmatter injections still apply).
	Force bool

	// AllowShell enables frontmatter "sh" hooks.
	AllowShell bool
}

// FileAction describes what the pipeline did (or would do) to a file.
type FileAction string

const (
	// ActionCreate indicates a new file is written.
	ActionCreate FileAction = "create"
	// ActionOverwrite indicates an existing file is replaced.
	ActionOverwrite FileAction = "overwrite"
	// ActionInject indicates content is injected into an existing file.
	ActionInject FileAction = "inject"
	// ActionSkip indicates the file is left untouched.
	ActionSkip FileAction = "skip"
)

// PlannedFile describes one output file of a run.
type PlannedFile struct {
	// Path is the output file path.
	Path string
	// Action is what happens to the file.
	Action FileAction
	// Reason explains a skip (already exists, skipIf, unlessExists).
	Reason string
	// Content is the rendered content (populated in dry-run mode).
	Content []byte
}

// Result contains generation statistics.
type Result struct {
	// FilesCreated is the number of new files written.
	FilesCreated int
	// FilesOverwritten is the number of existing files replaced.
	FilesOverwritten int
	// FilesInjected is the number of files modified by injection.
	FilesInjected int
	// FilesSkipped is the number of files left untouched.
	FilesSkipped int
	// Errors contains non-fatal per-file errors.
	Errors []error
	// Planned lists every processed file with its action.
	Planned []PlannedFile
}

// DefaultGenerator implements Generator.
type DefaultGenerator struct {
	engine engine.Engine
	writer Writer
}

// New creates a generator for the given template. The engine's include
// root is the template directory.
func New(tpl *model.Template) (*DefaultGenerator, error) {
	eng, err := engine.New(tpl.RootPath)
	if err != nil {
		return nil, err
	}

	settings := tpl.Config.EffectiveSettings()
	preserve := settings.PreserveExecutable == nil || *settings.PreserveExecutable
	return &DefaultGenerator{
		engine: eng,
		writer: NewFileWriter(preserve),
	}, nil
}

// Generate runs the pipeline and writes output files.
func (g *DefaultGenerator) Generate(ctx context.Context, opts Options) (*Result, error) {
	return g.run(ctx, opts, false)
}

// DryRun runs the pipeline without writing files.
func (g *DefaultGenerator) DryRun(ctx context.Context, opts Options) (*Result, error) {
	return g.run(ctx, opts, true)
}

func (g *DefaultGenerator) run(ctx context.Context, opts Options, dryRun bool) (*Result, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	debug.Debug("[generator] Starting generation: template=%s dest=%s dryRun=%v force=%v",
		opts.Template.FullName(), opts.DestDir, dryRun, opts.Force)

	settings := opts.Template.Config.EffectiveSettings()
	ignorer, err := NewIgnorer(settings.IgnorePatterns)
	if err != nil {
		return nil, err
	}

	result := &Result{}

	if !dryRun && !g.writer.Exists(opts.DestDir) {
		if err := g.writer.CreateDir(opts.DestDir); err != nil {
			return nil, err
		}
	}

	for _, file := range opts.Template.Files {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if ignorer.Match(file.Path) {
			debug.Debug("[generator] Ignoring file: %s", file.Path)
			continue
		}

		planned, err := g.processFile(ctx, file, opts, dryRun)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("%s: %w", file.Path, err))
			continue
		}
		if planned == nil {
			continue
		}

		result.Planned = append(result.Planned, *planned)
		switch planned.Action {
		case ActionCreate:
			result.FilesCreated++
		case ActionOverwrite:
			result.FilesOverwritten++
		case ActionInject:
			result.FilesInjected++
		case ActionSkip:
			result.FilesSkipped++
		}
	}

	debug.Debug("[generator] Generation complete: created=%d overwritten=%d injected=%d skipped=%d errors=%d",
		result.FilesCreated, result.FilesOverwritten, result.FilesInjected,
		result.FilesSkipped, len(result.Errors))
	return result, nil
}

// processFile runs the pipeline for a single template file.
func (g *DefaultGenerator) processFile(ctx context.Context, file model.TemplateFile, opts Options, dryRun bool) (*PlannedFile, error) {
	// Binary files are copied verbatim under their rendered path.
	if file.IsBinary {
		outPath, err := g.renderPath(file.Path, opts.Variables)
		if err != nil {
			return nil, err
		}
		return g.writeFile(filepath.Join(opts.DestDir, outPath), file.Content, file.Mode, opts, dryRun)
	}

	spec, body, err := frontmatter.Parse(file.Content)
	if err != nil {
		return nil, err
	}

	vars := opts.Variables
	if len(spec.Custom) > 0 {
		vars = vars.Merge(model.Variables{"frontmatter": spec.Custom})
	}

	rendered, err := g.engine.Render(body, vars)
	if err != nil {
		return nil, NewProcessError(file.Path, err)
	}

	outPath, err := g.outputPath(file.Path, spec, vars)
	if err != nil {
		return nil, err
	}
	target := filepath.Join(opts.DestDir, outPath)

	skipIf, err := g.renderField(spec.SkipIf, vars)
	if err != nil {
		return nil, err
	}

	if isTruthy(skipIf) {
		debug.Debug("[generator] skipIf is truthy, skipping %s", outPath)
		return &PlannedFile{Path: target, Action: ActionSkip, Reason: "skipIf"}, nil
	}

	if spec.UnlessExists && g.writer.Exists(target) {
		debug.Debug("[generator] unlessExists: target present, skipping %s", outPath)
		return &PlannedFile{Path: target, Action: ActionSkip, Reason: "unlessExists"}, nil
	}

	if spec.Inject {
		planned, err := g.injectFile(target, rendered, skipIf, spec, vars, opts, dryRun)
		if err != nil {
			return nil, err
		}
		if planned.Action != ActionSkip && !dryRun {
			if err := g.runShellHook(ctx, spec, vars, opts); err != nil {
				return planned, err
			}
		}
		return planned, nil
	}

	mode := file.Mode
	if chmod, set, err := frontmatter.ParseChmod(spec.Chmod); err != nil {
		return nil, err
	} else if set {
		mode = chmod
	}

	planned, err := g.writeFile(target, rendered, mode, opts, dryRun)
	if err != nil {
		return nil, err
	}

	if planned.Action != ActionSkip && !dryRun {
		if err := g.runShellHook(ctx, spec, vars, opts); err != nil {
			return planned, err
		}
	}
	return planned, nil
}

// injectFile applies an injection spec to its target file.
func (g *DefaultGenerator) injectFile(target string, rendered []byte, skipIf string, spec *model.FileSpec, vars model.Variables, opts Options, dryRun bool) (*PlannedFile, error) {
	// Rewriting the target must not change its permissions: keep the
	// current mode, let chmod override it, and give freshly created
	// targets 0644.
	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(target); statErr == nil {
		mode = info.Mode().Perm()
	}
	if chmod, set, err := frontmatter.ParseChmod(spec.Chmod); err != nil {
		return nil, err
	} else if set {
		mode = chmod
	}

	existing, err := os.ReadFile(target)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, NewWriteError(target, err)
		}
		if !spec.CreateIfMissing {
			return nil, NewInjectTargetError(target)
		}
		existing = nil
	}

	// For injections, a non-truthy skipIf pattern found in the target
	// means the injection was already made by other means.
	if skipIf != "" && len(existing) > 0 && strings.Contains(string(existing), skipIf) {
		return &PlannedFile{Path: target, Action: ActionSkip, Reason: "skipIf"}, nil
	}

	// Anchor patterns are rendered before matching.
	applied := *spec
	if applied.Before, err = g.renderField(spec.Before, vars); err != nil {
		return nil, err
	}
	if applied.After, err = g.renderField(spec.After, vars); err != nil {
		return nil, err
	}

	updated, action, err := injector.Apply(existing, rendered, &applied)
	if err != nil {
		return nil, err
	}
	if action == injector.AlreadyPresent {
		return &PlannedFile{Path: target, Action: ActionSkip, Reason: "already present"}, nil
	}

	if dryRun {
		return &PlannedFile{Path: target, Action: ActionInject, Content: updated}, nil
	}

	if err := g.writer.WriteFile(target, updated, mode); err != nil {
		return nil, err
	}
	return &PlannedFile{Path: target, Action: ActionInject}, nil
}

// writeFile writes content honoring force semantics.
func (g *DefaultGenerator) writeFile(target string, content []byte, mode os.FileMode, opts Options, dryRun bool) (*PlannedFile, error) {
	exists := g.writer.Exists(target)

	if exists && !opts.Force {
		debug.Debug("[generator] Skipping existing file: %s", target)
		return &PlannedFile{Path: target, Action: ActionSkip, Reason: "already exists"}, nil
	}

	action := ActionCreate
	if exists {
		action = ActionOverwrite
	}

	if dryRun {
		return &PlannedFile{Path: target, Action: action, Content: content}, nil
	}

	if err := g.writer.WriteFile(target, content, mode); err != nil {
		return nil, err
	}
	return &PlannedFile{Path: target, Action: action}, nil
}

// outputPath resolves the destination-relative output path for a file.
func (g *DefaultGenerator) outputPath(filePath string, spec *model.FileSpec, vars model.Variables) (string, error) {
	if spec.To != "" {
		rendered, err := g.renderField(spec.To, vars)
		if err != nil {
			return "", err
		}
		return validateOutputPath(rendered)
	}

	rendered, err := g.renderPath(filePath, vars)
	if err != nil {
		return "", err
	}
	return validateOutputPath(rendered)
}

// renderPath renders a template-relative file path and strips the
// template suffix.
func (g *DefaultGenerator) renderPath(path string, vars model.Variables) (string, error) {
	rendered, err := g.engine.RenderString(path, vars)
	if err != nil {
		return "", NewProcessError(path, err)
	}
	return strings.TrimSuffix(rendered, model.TemplateSuffix), nil
}

// renderField renders a frontmatter string field; empty stays empty.
func (g *DefaultGenerator) renderField(field string, vars model.Variables) (string, error) {
	if field == "" {
		return "", nil
	}
	rendered, err := g.engine.RenderString(field, vars)
	if err != nil {
		return "", NewProcessError(field, err)
	}
	return strings.TrimSpace(rendered), nil
}

// validateOutputPath rejects absolute paths and traversal outside the
// destination directory.
func validateOutputPath(path string) (string, error) {
	if path == "" {
		return "", NewPathError(path, "empty output path")
	}
	if filepath.IsAbs(path) {
		return "", NewPathError(path, "output path must be relative")
	}
	clean := filepath.Clean(filepath.FromSlash(path))
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", NewPathError(path, "output path escapes destination directory")
	}
	return clean, nil
}

// isTruthy reports whether a rendered skipIf value is a truthy literal.
func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "yes", "1", "on":
		return true
	}
	return false
}

// validateOptions validates Options.
func validateOptions(opts Options) error {
	if opts.Template == nil {
		return fmt.Errorf("template cannot be nil")
	}
	if opts.Variables == nil {
		return fmt.Errorf("variables cannot be nil")
	}
	if opts.DestDir == "" {
		return fmt.Errorf("destination directory cannot be empty")
	}
	if len(opts.Template.Files) == 0 {
		return fmt.Errorf("template has no files")
	}
	return nil
}
