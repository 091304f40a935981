package generator

import (
	"path"

	"github.com/gobwas/glob"

	"github.com/unjucks/unjucks/internal/debug"
)

// Ignorer matches template-relative paths against glob ignore
// patterns. Patterns without a slash match against the base name, so
// "*.bak" ignores backup files in any directory.
type Ignorer struct {
	full []glob.Glob
	base []glob.Glob
}

// NewIgnorer compiles ignore patterns. Invalid patterns are an error.
func NewIgnorer(patterns []string) (*Ignorer, error) {
	ig := &Ignorer{}
	for _, pattern := range patterns {
		compiled, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, NewPathError(pattern, "invalid ignore pattern")
		}
		if containsSlash(pattern) {
			ig.full = append(ig.full, compiled)
		} else {
			ig.base = append(ig.base, compiled)
		}
	}
	return ig, nil
}

// Match reports whether relPath matches any ignore pattern.
func (ig *Ignorer) Match(relPath string) bool {
	for _, g := range ig.full {
		if g.Match(relPath) {
			debug.Debug("[generator] Ignore match (path): %s", relPath)
			return true
		}
	}
	name := path.Base(relPath)
	for _, g := range ig.base {
		if g.Match(name) {
			debug.Debug("[generator] Ignore match (name): %s", relPath)
			return true
		}
	}
	return false
}

func containsSlash(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '/' {
			return true
		}
	}
	return false
}
