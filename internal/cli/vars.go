package cli

import (
	"fmt"
	"strings"

	"github.com/unjucks/unjucks/internal/app"
	"github.com/unjucks/unjucks/internal/template/model"
)

// parseVarFlags converts --var key=value flags into typed variable
// values, coercing each against the template's declaration when one
// exists. Undeclared variables stay strings.
func parseVarFlags(flags []string, defs map[string]model.VarDef) (model.Variables, error) {
	vars := make(model.Variables, len(flags))

	for _, flag := range flags {
		idx := strings.Index(flag, "=")
		if idx <= 0 {
			return nil, fmt.Errorf("invalid --var %q: expected key=value", flag)
		}
		name := strings.TrimSpace(flag[:idx])
		raw := flag[idx+1:]
		if name == "" {
			return nil, fmt.Errorf("invalid --var %q: empty variable name", flag)
		}

		if def, ok := defs[name]; ok {
			value, err := app.CoerceValue(def, raw)
			if err != nil {
				return nil, fmt.Errorf("invalid --var %s: %w", name, err)
			}
			vars[name] = value
			continue
		}
		vars[name] = raw
	}

	return vars, nil
}
