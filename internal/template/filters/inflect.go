package filters

import (
	"github.com/flosch/pongo2/v6"
	"github.com/gertd/go-pluralize"
	"github.com/goliatone/go-slug"
)

// A single pluralize client is shared by all renders. The client is
// read-only after construction.
var inflector = pluralize.NewClient()

func filterPluralize(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(inflector.Plural(in.String())), nil
}

func filterSingularize(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(inflector.Singular(in.String())), nil
}

func filterSlugify(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	normalized, err := slug.Normalize(in.String())
	if err != nil {
		return nil, filterError("slugify", err)
	}
	return pongo2.AsValue(normalized), nil
}
