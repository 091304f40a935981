package config

// Config represents project-level unjucks configuration, read from
// .unjucks.yaml in the destination directory or one of its parents.
type Config struct {
	// Templates is the templates root directory, relative to the
	// config file when not absolute. Overrides discovery.
	Templates string `yaml:"templates,omitempty"`
	// PacksDir is where remote template packs install to.
	PacksDir string `yaml:"packs_dir,omitempty"`
	// Vars holds project-wide default variable values, merged below
	// command-line and prompted values.
	Vars map[string]interface{} `yaml:"vars,omitempty"`
	// Generation holds generation behavior settings.
	Generation GenerationConfig `yaml:"generation,omitempty"`
	// Output holds display settings.
	Output OutputConfig `yaml:"output,omitempty"`
	// Watch holds watch mode settings.
	Watch WatchConfig `yaml:"watch,omitempty"`

	// Path is where the config was loaded from. Empty for defaults.
	Path string `yaml:"-"`
}

// GenerationConfig controls how files are produced.
type GenerationConfig struct {
	// Dest is the default destination directory.
	Dest string `yaml:"dest,omitempty"`
	// Force overwrites existing files without asking.
	Force bool `yaml:"force,omitempty"`
	// AllowShell permits frontmatter sh hooks to run.
	AllowShell bool `yaml:"allow_shell,omitempty"`
	// PreserveExecutable carries executable bits from template files.
	PreserveExecutable *bool `yaml:"preserve_executable,omitempty"`
	// Prompts enables interactive prompting for missing variables.
	// Setting it false is equivalent to always passing --skip-prompts.
	Prompts *bool `yaml:"prompts,omitempty"`
	// IgnorePatterns are glob patterns excluded from every template.
	IgnorePatterns []string `yaml:"ignore_patterns,omitempty"`
}

// OutputConfig controls terminal output.
type OutputConfig struct {
	// Color enables colored output.
	Color *bool `yaml:"color,omitempty"`
	// Quiet suppresses non-error output.
	Quiet bool `yaml:"quiet,omitempty"`
}

// WatchConfig controls watch mode.
type WatchConfig struct {
	// DebounceMs is the delay in milliseconds between a filesystem
	// event and the regeneration it triggers.
	DebounceMs int `yaml:"debounce_ms,omitempty"`
}

// PromptsEnabled reports whether interactive prompts are on,
// defaulting to true.
func (g GenerationConfig) PromptsEnabled() bool {
	if g.Prompts == nil {
		return true
	}
	return *g.Prompts
}

// ColorEnabled reports whether color output is on, defaulting to true.
func (o OutputConfig) ColorEnabled() bool {
	if o.Color == nil {
		return true
	}
	return *o.Color
}
