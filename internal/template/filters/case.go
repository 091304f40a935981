package filters

import (
	"github.com/ettle/strcase"
	"github.com/flosch/pongo2/v6"
)

// Case conversion filters delegate to strcase, which handles acronym
// and digit boundaries ("HTTPServer2" -> "http_server_2").

func filterCamelCase(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(strcase.ToCamel(in.String())), nil
}

func filterPascalCase(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(strcase.ToPascal(in.String())), nil
}

func filterSnakeCase(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(strcase.ToSnake(in.String())), nil
}

func filterKebabCase(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(strcase.ToKebab(in.String())), nil
}

func filterConstantCase(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(strcase.ToSNAKE(in.String())), nil
}

func filterTitleCase(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(strcase.ToCase(in.String(), strcase.TitleCase, ' ')), nil
}
