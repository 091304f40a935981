package app

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/unjucks/unjucks/internal/debug"
	"github.com/unjucks/unjucks/internal/template/model"
)

// fileRefPrefix marks a variable value whose content is read from a
// file relative to the working directory.
const fileRefPrefix = "@file:"

// ResolveVariables layers variable values for a template: declared
// defaults first, then each layer in order, later layers winning.
func ResolveVariables(cfg model.TemplateConfig, layers ...model.Variables) model.Variables {
	vars := make(model.Variables)

	for name, def := range cfg.Variables {
		if def.Default != nil {
			vars[name] = def.Default
		}
	}

	for _, layer := range layers {
		vars = vars.Merge(layer)
	}

	debug.Debug("[app] Resolved %d variable(s)", len(vars))
	return vars
}

// ResolveFileRefs replaces @file: prefixed string values with the
// content of the referenced file, resolved relative to baseDir. Paths
// escaping baseDir are rejected.
func ResolveFileRefs(vars model.Variables, baseDir string) (model.Variables, error) {
	out := vars.Clone()

	for name, value := range vars {
		strVal, ok := value.(string)
		if !ok || !strings.HasPrefix(strVal, fileRefPrefix) {
			continue
		}

		filename := strings.TrimSpace(strings.TrimPrefix(strVal, fileRefPrefix))
		if filename == "" {
			return nil, NewVariableLoadError(
				fmt.Sprintf("variable %s: @file: prefix without filename", name), nil)
		}
		if strings.Contains(filename, "..") {
			return nil, NewVariableLoadError(
				fmt.Sprintf("variable %s: @file: path must not contain '..'", name), nil)
		}

		path := filepath.Join(baseDir, filename)
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, NewVariableLoadError(
				fmt.Sprintf("variable %s: failed to read @file:%s", name, filename), err)
		}

		out[name] = string(content)
		debug.Debug("[app] Variable %q loaded from file (%d bytes)", name, len(content))
	}

	return out, nil
}

// CoerceValue converts a raw string value (from a command-line flag)
// to the declared variable type.
func CoerceValue(def model.VarDef, raw string) (interface{}, error) {
	switch def.Type {
	case model.VarTypeInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("expected an integer, got %q", raw)
		}
		return n, nil
	case model.VarTypeNumber:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("expected a number, got %q", raw)
		}
		return f, nil
	case model.VarTypeBool:
		switch strings.ToLower(raw) {
		case "true", "yes", "1", "on":
			return true, nil
		case "false", "no", "0", "off":
			return false, nil
		default:
			return nil, fmt.Errorf("expected a boolean, got %q", raw)
		}
	default:
		return raw, nil
	}
}

// ValidateVariables checks the resolved values against the template's
// variable declarations: required presence, pattern, choices, and
// numeric ranges.
func ValidateVariables(cfg model.TemplateConfig, vars model.Variables) error {
	names := make([]string, 0, len(cfg.Variables))
	for name := range cfg.Variables {
		names = append(names, name)
	}
	sort.Strings(names)

	var missing []string
	for _, name := range names {
		def := cfg.Variables[name]

		value, exists := vars[name]
		if !exists || value == nil {
			if def.Required {
				missing = append(missing, name)
			}
			continue
		}
		if strVal, ok := value.(string); ok && def.Required && strings.TrimSpace(strVal) == "" {
			missing = append(missing, name)
			continue
		}

		if err := validateValue(def, value); err != nil {
			return NewValidationError(fmt.Sprintf("variable %s: %v", name, err), nil)
		}
	}

	if len(missing) > 0 {
		return NewValidationError(
			fmt.Sprintf("missing required variables: %s", strings.Join(missing, ", ")), nil)
	}

	debug.Debug("[app] All variables validated")
	return nil
}

func validateValue(def model.VarDef, value interface{}) error {
	var rules []validation.Rule

	if def.Pattern != "" {
		re, err := regexp.Compile(def.Pattern)
		if err != nil {
			return fmt.Errorf("invalid pattern %q: %v", def.Pattern, err)
		}
		rules = append(rules, validation.Match(re))
	}
	if len(def.Choices) > 0 {
		choices := make([]interface{}, len(def.Choices))
		for i, c := range def.Choices {
			choices[i] = c
		}
		rules = append(rules, validation.In(choices...))
	}

	switch def.Type {
	case model.VarTypeInt:
		if def.Min != nil {
			rules = append(rules, validation.Min(*def.Min))
		}
		if def.Max != nil {
			rules = append(rules, validation.Max(*def.Max))
		}
		value = normalizeInt(value)
	case model.VarTypeNumber:
		if def.MinFloat != nil {
			rules = append(rules, validation.Min(*def.MinFloat))
		}
		if def.MaxFloat != nil {
			rules = append(rules, validation.Max(*def.MaxFloat))
		}
		value = normalizeFloat(value)
	}

	return validation.Validate(value, rules...)
}

// normalizeInt converts YAML and flag integer representations to int
// so range rules compare like with like.
func normalizeInt(value interface{}) interface{} {
	switch v := value.(type) {
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return value
	}
}

func normalizeFloat(value interface{}) interface{} {
	switch v := value.(type) {
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return value
	}
}
