package model

// TemplateConfig represents the unjucks.yaml file found at generator or
// template level. A template-level file overrides the generator-level
// one field by field.
type TemplateConfig struct {
	// Name is an optional display name for the generator/template.
	Name string `yaml:"name,omitempty"`
	// Description is a human-readable description.
	Description string `yaml:"description,omitempty"`
	// Variables defines template variables keyed by name.
	Variables map[string]VarDef `yaml:"variables,omitempty"`
	// Settings contains generation settings.
	Settings *TemplateSettings `yaml:"settings,omitempty"`
}

// VarDef defines a template variable with validation rules.
type VarDef struct {
	// Type is the variable type. Defaults to string when empty.
	Type VarType `yaml:"type,omitempty"`
	// Description is a human-readable description of the variable.
	Description string `yaml:"description,omitempty"`
	// Help is additional help text shown on demand during prompting.
	Help string `yaml:"help,omitempty"`
	// Required indicates the variable must have a value.
	Required bool `yaml:"required,omitempty"`
	// Default is the default value if not provided.
	Default interface{} `yaml:"default,omitempty"`
	// Example is an example value for documentation.
	Example interface{} `yaml:"example,omitempty"`
	// Pattern is a regex validation pattern (string variables only).
	Pattern string `yaml:"pattern,omitempty"`
	// Choices restricts the value to a fixed set (string variables only).
	Choices []string `yaml:"choices,omitempty"`
	// Min is the minimum value (int variables only).
	Min *int `yaml:"min,omitempty"`
	// Max is the maximum value (int variables only).
	Max *int `yaml:"max,omitempty"`
	// MinFloat is the minimum value (number variables only).
	MinFloat *float64 `yaml:"min_float,omitempty"`
	// MaxFloat is the maximum value (number variables only).
	MaxFloat *float64 `yaml:"max_float,omitempty"`
}

// TemplateSettings contains template-specific generation settings.
type TemplateSettings struct {
	// PreserveExecutable preserves the executable bit from template files.
	PreserveExecutable *bool `yaml:"preserve_executable,omitempty"`
	// IgnorePatterns are glob patterns for files to skip during generation.
	IgnorePatterns []string `yaml:"ignore_patterns,omitempty"`
	// BinaryExtensions are file extensions to copy without rendering.
	BinaryExtensions []string `yaml:"binary_extensions,omitempty"`
	// IncludeDotfiles includes hidden files in generation. Defaults to true.
	IncludeDotfiles *bool `yaml:"include_dotfiles,omitempty"`
}

// Merge layers override on top of base, returning the effective config.
// Variables are merged by name; settings fields override individually.
func (base TemplateConfig) Merge(override TemplateConfig) TemplateConfig {
	out := TemplateConfig{
		Name:        base.Name,
		Description: base.Description,
		Variables:   map[string]VarDef{},
	}

	for name, def := range base.Variables {
		out.Variables[name] = def
	}
	for name, def := range override.Variables {
		out.Variables[name] = def
	}

	if override.Name != "" {
		out.Name = override.Name
	}
	if override.Description != "" {
		out.Description = override.Description
	}

	out.Settings = mergeSettings(base.Settings, override.Settings)
	return out
}

func mergeSettings(base, override *TemplateSettings) *TemplateSettings {
	if base == nil && override == nil {
		return nil
	}

	out := TemplateSettings{}
	if base != nil {
		out = *base
	}
	if override == nil {
		return &out
	}

	if override.PreserveExecutable != nil {
		out.PreserveExecutable = override.PreserveExecutable
	}
	if override.IncludeDotfiles != nil {
		out.IncludeDotfiles = override.IncludeDotfiles
	}
	if len(override.IgnorePatterns) > 0 {
		out.IgnorePatterns = append([]string(nil), override.IgnorePatterns...)
	}
	if len(override.BinaryExtensions) > 0 {
		out.BinaryExtensions = append([]string(nil), override.BinaryExtensions...)
	}
	return &out
}

// EffectiveSettings returns the settings with defaults applied.
func (c TemplateConfig) EffectiveSettings() TemplateSettings {
	preserve := true
	dotfiles := true
	out := TemplateSettings{
		PreserveExecutable: &preserve,
		IncludeDotfiles:    &dotfiles,
		BinaryExtensions:   DefaultBinaryExtensions(),
	}

	if c.Settings == nil {
		return out
	}

	if c.Settings.PreserveExecutable != nil {
		out.PreserveExecutable = c.Settings.PreserveExecutable
	}
	if c.Settings.IncludeDotfiles != nil {
		out.IncludeDotfiles = c.Settings.IncludeDotfiles
	}
	if len(c.Settings.IgnorePatterns) > 0 {
		out.IgnorePatterns = append([]string(nil), c.Settings.IgnorePatterns...)
	}
	if len(c.Settings.BinaryExtensions) > 0 {
		out.BinaryExtensions = append([]string(nil), c.Settings.BinaryExtensions...)
	}
	return out
}

// DefaultBinaryExtensions returns file extensions treated as binary.
func DefaultBinaryExtensions() []string {
	return []string{
		// Images
		".png", ".jpg", ".jpeg", ".gif", ".bmp", ".ico",
		// Archives
		".zip", ".tar", ".gz", ".bz2", ".xz", ".rar", ".7z",
		// Executables
		".exe", ".dll", ".so", ".dylib", ".bin",
		// Media
		".mp3", ".mp4", ".avi", ".mov", ".wav",
		// Documents
		".pdf", ".doc", ".docx", ".xls", ".xlsx",
		// Fonts
		".ttf", ".otf", ".woff", ".woff2",
	}
}
