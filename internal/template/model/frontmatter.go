package model

// FileSpec is the parsed YAML frontmatter of a single template file,
// describing where the rendered body goes and how it is written.
type FileSpec struct {
	// To is the output path relative to the destination directory.
	// Rendered through the template engine before use. When empty, the
	// template file's own (rendered) relative path is used.
	To string `yaml:"to,omitempty"`

	// Inject writes the rendered body into an existing file instead of
	// creating a new one. Requires exactly one anchor field below.
	Inject bool `yaml:"inject,omitempty"`
	// Before injects the body before the first line matching this
	// pattern. Rendered before matching.
	Before string `yaml:"before,omitempty"`
	// After injects the body after the first line matching this
	// pattern. Rendered before matching.
	After string `yaml:"after,omitempty"`
	// Prepend injects the body at the start of the target file.
	Prepend bool `yaml:"prepend,omitempty"`
	// Append injects the body at the end of the target file.
	Append bool `yaml:"append,omitempty"`
	// LineAt injects the body at this 1-based line number.
	LineAt int `yaml:"lineAt,omitempty"`
	// CreateIfMissing creates the injection target when it is absent
	// instead of failing.
	CreateIfMissing bool `yaml:"createIfMissing,omitempty"`

	// SkipIf skips the file when the rendered expression is truthy
	// ("true", "yes", "1") or, for injections, when the rendered value
	// already appears in the target file.
	SkipIf string `yaml:"skipIf,omitempty"`
	// UnlessExists skips the file when the output path already exists,
	// regardless of the force flag.
	UnlessExists bool `yaml:"unlessExists,omitempty"`

	// Chmod is an octal permission string ("755") for the output file.
	Chmod string `yaml:"chmod,omitempty"`
	// Sh is a shell hook run after the file is written. Only executed
	// when the CLI is invoked with --allow-shell.
	Sh string `yaml:"sh,omitempty"`

	// Custom holds unrecognized frontmatter keys. They are exposed to
	// the template context under "frontmatter".
	Custom map[string]interface{} `yaml:",inline"`
}

// HasAnchor reports whether any injection anchor is set.
func (s *FileSpec) HasAnchor() bool {
	return s.Before != "" || s.After != "" || s.Prepend || s.Append || s.LineAt > 0
}

// AnchorCount returns how many injection anchors are set. Exactly one
// must be set when Inject is true.
func (s *FileSpec) AnchorCount() int {
	n := 0
	if s.Before != "" {
		n++
	}
	if s.After != "" {
		n++
	}
	if s.Prepend {
		n++
	}
	if s.Append {
		n++
	}
	if s.LineAt > 0 {
		n++
	}
	return n
}
