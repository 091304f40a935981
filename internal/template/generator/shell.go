package generator

import (
	"context"
	"os"
	"os/exec"

	"github.com/unjucks/unjucks/internal/debug"
	"github.com/unjucks/unjucks/internal/template/model"
)

// runShellHook executes the frontmatter "sh" hook in the destination
// directory. Hooks never run unless the caller passed --allow-shell.
func (g *DefaultGenerator) runShellHook(ctx context.Context, spec *model.FileSpec, vars model.Variables, opts Options) error {
	if spec.Sh == "" {
		return nil
	}
	if !opts.AllowShell {
		debug.Debug("[generator] Shell hook present but --allow-shell not set, skipping: %q", spec.Sh)
		return nil
	}

	command, err := g.renderField(spec.Sh, vars)
	if err != nil {
		return err
	}
	if command == "" {
		return nil
	}

	debug.Debug("[generator] Running shell hook: %q", command)
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Dir = opts.DestDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return NewShellHookError(command, err)
	}
	return nil
}
