package scanner

import (
	"regexp"
	"sort"

	"github.com/unjucks/unjucks/internal/debug"
	"github.com/unjucks/unjucks/internal/template/model"
)

// Expression scanning is a heuristic: it finds the leading identifier
// of {{ ... }} expressions and of {% if/elif/for ... %} tags. Complex
// expressions ("a.b", function calls) report their root identifier.
var (
	exprPattern = regexp.MustCompile(`\{\{-?\s*([a-zA-Z_][a-zA-Z0-9_]*)`)
	tagPattern  = regexp.MustCompile(`\{%-?\s*(?:if|elif)\s+(?:not\s+)?([a-zA-Z_][a-zA-Z0-9_]*)`)
	forPattern  = regexp.MustCompile(`\{%-?\s*for\s+[a-zA-Z_][a-zA-Z0-9_]*\s+in\s+([a-zA-Z_][a-zA-Z0-9_]*)`)
)

// ambient names are provided by the engine, not by the user.
var ambientNames = map[string]struct{}{
	"now":         {},
	"frontmatter": {},
}

// ScanVariables returns the sorted variable names referenced by the
// template's file bodies, frontmatter fields, and file paths.
func ScanVariables(tpl *model.Template) []string {
	found := map[string]struct{}{}

	scan := func(text string) {
		for _, pattern := range []*regexp.Regexp{exprPattern, tagPattern, forPattern} {
			for _, match := range pattern.FindAllStringSubmatch(text, -1) {
				name := match[1]
				if _, ambient := ambientNames[name]; ambient {
					continue
				}
				found[name] = struct{}{}
			}
		}
	}

	for _, file := range tpl.Files {
		scan(file.Path)
		if !file.IsBinary {
			scan(string(file.Content))
		}
	}

	names := make([]string, 0, len(found))
	for name := range found {
		names = append(names, name)
	}
	sort.Strings(names)

	debug.Debug("[scanner] ScanVariables: found %d unique variable(s): %v", len(names), names)
	return names
}

// UndeclaredVariables returns scanned variables that have no VarDef in
// the template config.
func UndeclaredVariables(tpl *model.Template) []string {
	var undeclared []string
	for _, name := range ScanVariables(tpl) {
		if _, ok := tpl.Config.Variables[name]; !ok {
			undeclared = append(undeclared, name)
		}
	}
	return undeclared
}
