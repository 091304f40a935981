package model

// Generator is a named directory under the templates root grouping
// related templates (e.g. "component", "api").
type Generator struct {
	// Name is the generator directory name.
	Name string
	// Path is the absolute path to the generator directory.
	Path string
	// Templates are the template names available under this generator.
	Templates []string
	// Config is the generator-level unjucks.yaml, if present.
	Config *TemplateConfig
}

// Template represents a loaded template ready for generation.
type Template struct {
	// Generator is the owning generator name.
	Generator string
	// Name is the template directory name.
	Name string
	// RootPath is the absolute path to the template directory.
	RootPath string
	// Files are all template files found under RootPath.
	Files []TemplateFile
	// Config is the effective configuration: template-level
	// unjucks.yaml merged over the generator-level one.
	Config TemplateConfig
}

// FullName returns "generator/template" for display.
func (t *Template) FullName() string {
	return t.Generator + "/" + t.Name
}
