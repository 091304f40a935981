// Package filters registers the unjucks filter pipeline on the pongo2
// engine: case conversion, inflection, slugs, date formatting, and
// escaping for LaTeX/Schema.org/JSON targets.
package filters

import (
	"fmt"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/unjucks/unjucks/internal/debug"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// Register installs all unjucks filters into the global pongo2 filter
// registry. Safe to call multiple times; registration happens once.
func Register() error {
	registerOnce.Do(func() {
		registerErr = registerAll()
	})
	return registerErr
}

func registerAll() error {
	all := map[string]pongo2.FilterFunction{
		// Case conversion
		"camelCase":    filterCamelCase,
		"pascalCase":   filterPascalCase,
		"snakeCase":    filterSnakeCase,
		"kebabCase":    filterKebabCase,
		"constantCase": filterConstantCase,
		"titleCase":    filterTitleCase,

		// Inflection
		"pluralize":   filterPluralize,
		"singularize": filterSingularize,

		// Slugs
		"slugify": filterSlugify,

		// Dates
		"formatDate":       filterFormatDate,
		"formatDateLocale": filterFormatDateLocale,

		// Escaping
		"latexEscape": filterLatexEscape,
		"schemaOrg":   filterSchemaOrg,
		"jsonEscape":  filterJSONEscape,
	}

	for name, fn := range all {
		// pongo2 ships builtins under some of these names (e.g. pluralize);
		// ours take precedence.
		if pongo2.FilterExists(name) {
			if err := pongo2.ReplaceFilter(name, fn); err != nil {
				return fmt.Errorf("register filter %q: %w", name, err)
			}
			continue
		}
		if err := pongo2.RegisterFilter(name, fn); err != nil {
			return fmt.Errorf("register filter %q: %w", name, err)
		}
	}

	debug.Debug("[filters] Registered %d filters", len(all))
	return nil
}

// filterError wraps err into a pongo2 error attributed to the filter.
func filterError(filter string, err error) *pongo2.Error {
	return &pongo2.Error{
		Sender:    "filter:" + filter,
		OrigError: err,
	}
}
