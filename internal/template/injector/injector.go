// Package injector inserts rendered snippets into existing files at a
// frontmatter-selected anchor (before/after pattern, prepend, append,
// or line number). Injection is idempotent: a snippet already present
// in the target leaves it unchanged.
package injector

import (
	"regexp"
	"strings"

	"github.com/unjucks/unjucks/internal/debug"
	"github.com/unjucks/unjucks/internal/template/model"
)

// Action describes the outcome of an injection.
type Action int

const (
	// Injected indicates the snippet was inserted.
	Injected Action = iota
	// AlreadyPresent indicates the target already contains the snippet.
	AlreadyPresent
)

// Apply inserts snippet into existing according to spec. The spec's
// Before/After fields must already be rendered. Returns the new
// content and the action taken.
func Apply(existing, snippet []byte, spec *model.FileSpec) ([]byte, Action, error) {
	if spec.AnchorCount() != 1 {
		return nil, 0, NewAnchorError(spec.AnchorCount())
	}

	snippetLines := splitLines(strings.TrimRight(string(snippet), "\n"))
	targetLines := splitLines(string(existing))

	if containsBlock(targetLines, snippetLines) {
		debug.Debug("[injector] Snippet already present, skipping")
		return existing, AlreadyPresent, nil
	}

	// An empty target (e.g. just created via createIfMissing) has no
	// anchor to find; the snippet becomes the whole file.
	var insertAt int
	switch {
	case len(targetLines) == 0:
		insertAt = 0
	case spec.Prepend:
		insertAt = 0
	case spec.Append:
		insertAt = len(targetLines)
	case spec.LineAt > 0:
		insertAt = spec.LineAt - 1
		if insertAt > len(targetLines) {
			insertAt = len(targetLines)
		}
	case spec.Before != "":
		idx, err := findAnchorLine(targetLines, spec.Before)
		if err != nil {
			return nil, 0, err
		}
		insertAt = idx
	case spec.After != "":
		idx, err := findAnchorLine(targetLines, spec.After)
		if err != nil {
			return nil, 0, err
		}
		insertAt = idx + 1
	}

	result := make([]string, 0, len(targetLines)+len(snippetLines))
	result = append(result, targetLines[:insertAt]...)
	result = append(result, snippetLines...)
	result = append(result, targetLines[insertAt:]...)

	joined := strings.Join(result, "\n")
	// Preserve the target's trailing newline; empty targets gain one.
	if len(existing) == 0 || strings.HasSuffix(string(existing), "\n") {
		joined += "\n"
	}

	debug.Debug("[injector] Inserted %d line(s) at line %d", len(snippetLines), insertAt+1)
	return []byte(joined), Injected, nil
}

// findAnchorLine returns the index of the first line matching pattern,
// first as a plain substring, then as a regular expression.
func findAnchorLine(lines []string, pattern string) (int, error) {
	for i, line := range lines {
		if strings.Contains(line, pattern) {
			return i, nil
		}
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		// Not a valid regexp either; report the missing anchor.
		return 0, NewAnchorNotFoundError(pattern)
	}
	for i, line := range lines {
		if re.MatchString(line) {
			return i, nil
		}
	}

	return 0, NewAnchorNotFoundError(pattern)
}

// containsBlock reports whether needle appears as consecutive lines in
// haystack.
func containsBlock(haystack, needle []string) bool {
	if len(needle) == 0 {
		return true
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		match := true
		for j := range needle {
			if haystack[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// splitLines splits on newlines, treating a trailing newline as a
// terminator rather than introducing an empty final line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
