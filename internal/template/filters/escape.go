package filters

import (
	"encoding/json"
	"strings"

	"github.com/ettle/strcase"
	"github.com/flosch/pongo2/v6"
)

// latexReplacer escapes the ten TeX special characters. Backslash must
// come first in intent but strings.Replacer applies non-overlapping
// replacements in one pass, so the escaped output is never re-escaped.
var latexReplacer = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

func filterLatexEscape(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsSafeValue(latexReplacer.Replace(in.String())), nil
}

// filterSchemaOrg maps a term to its Schema.org URI:
//
//	{{ "blog posting" | schemaOrg }} -> https://schema.org/BlogPosting
func filterSchemaOrg(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	term := strings.TrimSpace(in.String())
	if term == "" {
		return pongo2.AsValue(""), nil
	}

	// Already a URI; normalize to https.
	if strings.HasPrefix(term, "http://schema.org/") || strings.HasPrefix(term, "https://schema.org/") {
		return pongo2.AsSafeValue("https://schema.org/" + term[strings.LastIndex(term, "/")+1:]), nil
	}

	return pongo2.AsSafeValue("https://schema.org/" + strcase.ToPascal(term)), nil
}

// filterJSONEscape renders a value as a JSON string literal without the
// surrounding quotes, for embedding in generated JSON/JSON-LD files.
func filterJSONEscape(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	encoded, err := json.Marshal(in.String())
	if err != nil {
		return nil, filterError("jsonEscape", err)
	}
	return pongo2.AsSafeValue(string(encoded[1 : len(encoded)-1])), nil
}
