// Package engine wraps the pongo2 template engine with the unjucks
// filter pipeline and rendering helpers for bodies, frontmatter
// strings, and file paths.
package engine

import (
	"time"

	"github.com/flosch/pongo2/v6"

	"github.com/unjucks/unjucks/internal/debug"
	"github.com/unjucks/unjucks/internal/template/filters"
	"github.com/unjucks/unjucks/internal/template/model"
)

// Engine renders template text with variable substitution.
type Engine interface {
	// Render processes template content with the given variables.
	Render(input []byte, vars model.Variables) ([]byte, error)

	// RenderString processes a single template expression, as found in
	// frontmatter fields ("to", "before", "skipIf") and file paths.
	RenderString(input string, vars model.Variables) (string, error)

	// Validate checks template syntax without rendering.
	Validate(input []byte) error
}

// PongoEngine implements Engine on pongo2.
type PongoEngine struct {
	set *pongo2.TemplateSet
}

// New creates a rendering engine rooted at templateRoot. Includes and
// extends resolve relative to that directory.
func New(templateRoot string) (*PongoEngine, error) {
	if err := filters.Register(); err != nil {
		return nil, err
	}

	// Generated files are source code and config, not HTML.
	pongo2.SetAutoescape(false)

	loader, err := pongo2.NewLocalFileSystemLoader(templateRoot)
	if err != nil {
		return nil, err
	}

	set := pongo2.NewSet("unjucks", loader)
	debug.Debug("[engine] Created template set rooted at %s", templateRoot)

	return &PongoEngine{set: set}, nil
}

// Render processes template content with the given variables.
func (e *PongoEngine) Render(input []byte, vars model.Variables) ([]byte, error) {
	tpl, err := e.set.FromBytes(input)
	if err != nil {
		return nil, err
	}
	return tpl.ExecuteBytes(buildContext(vars))
}

// RenderString processes a single template expression.
func (e *PongoEngine) RenderString(input string, vars model.Variables) (string, error) {
	tpl, err := e.set.FromString(input)
	if err != nil {
		return "", err
	}
	return tpl.Execute(buildContext(vars))
}

// Validate checks template syntax without rendering.
func (e *PongoEngine) Validate(input []byte) error {
	_, err := e.set.FromBytes(input)
	return err
}

// buildContext converts variables to a pongo2 context and adds the
// ambient values every render receives.
func buildContext(vars model.Variables) pongo2.Context {
	ctx := pongo2.Context{
		"now": time.Now(),
	}
	for name, value := range vars {
		ctx[name] = value
	}
	return ctx
}
