package cli

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"github.com/AlecAivazis/survey/v2"

	"github.com/unjucks/unjucks/internal/template/model"
)

// PromptForVariables interactively prompts for every declared variable
// missing from existing, plus any undeclared names scanned from the
// template content (as plain strings). Returns only the newly
// collected values.
func PromptForVariables(cfg model.TemplateConfig, undeclared []string, existing model.Variables) (model.Variables, error) {
	vars := make(model.Variables)

	varNames := make([]string, 0, len(cfg.Variables))
	for name := range cfg.Variables {
		if _, ok := existing[name]; ok {
			continue
		}
		varNames = append(varNames, name)
	}
	sort.Strings(varNames)

	for _, name := range varNames {
		value, err := promptForVariable(name, cfg.Variables[name])
		if err != nil {
			return nil, fmt.Errorf("failed to prompt for variable %q: %w", name, err)
		}
		vars[name] = value
	}

	for _, name := range undeclared {
		if _, ok := existing[name]; ok {
			continue
		}
		if _, ok := vars[name]; ok {
			continue
		}
		value, err := promptString(name, model.VarDef{}, "")
		if err != nil {
			return nil, fmt.Errorf("failed to prompt for variable %q: %w", name, err)
		}
		vars[name] = value
	}

	return vars, nil
}

// promptForVariable prompts for a single variable based on its type.
func promptForVariable(name string, varDef model.VarDef) (interface{}, error) {
	// Use Help field if provided, otherwise fall back to Description
	help := varDef.Help
	if help == "" {
		help = varDef.Description
	}
	if varDef.Example != nil {
		help += fmt.Sprintf(" (example: %v)", varDef.Example)
	}

	if len(varDef.Choices) > 0 {
		return promptChoice(name, varDef, help)
	}

	switch varDef.Type {
	case model.VarTypeInt:
		return promptInt(name, varDef, help)
	case model.VarTypeNumber:
		return promptNumber(name, varDef, help)
	case model.VarTypeBool:
		return promptBool(name, varDef, help)
	default:
		return promptString(name, varDef, help)
	}
}

// promptMessage builds the prompt line shown for a variable.
func promptMessage(name string, varDef model.VarDef) string {
	message := name
	if varDef.Description != "" {
		message += " - " + varDef.Description
	}
	if varDef.Required {
		message += " (required)"
	}
	return message
}

// promptChoice prompts with a fixed list of options.
func promptChoice(name string, varDef model.VarDef, help string) (string, error) {
	var result string

	defaultVal := ""
	if s, ok := varDef.Default.(string); ok {
		defaultVal = s
	}

	prompt := &survey.Select{
		Message: promptMessage(name, varDef),
		Options: varDef.Choices,
		Help:    help,
	}
	if defaultVal != "" {
		prompt.Default = defaultVal
	}

	if err := survey.AskOne(prompt, &result); err != nil {
		return "", err
	}
	return result, nil
}

// promptString prompts for a string variable.
func promptString(name string, varDef model.VarDef, help string) (string, error) {
	var result string

	defaultVal := ""
	if varDef.Default != nil {
		if s, ok := varDef.Default.(string); ok {
			defaultVal = s
		}
	}

	prompt := &survey.Input{
		Message: promptMessage(name, varDef),
		Default: defaultVal,
		Help:    help,
	}

	var validators []survey.Validator
	if varDef.Required {
		validators = append(validators, survey.Required)
	}
	if varDef.Pattern != "" {
		validators = append(validators, matchPattern(varDef.Pattern, "value must match pattern: "+varDef.Pattern))
	}

	opts := []survey.AskOpt{}
	if len(validators) > 0 {
		opts = append(opts, survey.WithValidator(survey.ComposeValidators(validators...)))
	}

	if err := survey.AskOne(prompt, &result, opts...); err != nil {
		return "", err
	}
	return result, nil
}

// promptInt prompts for an integer variable.
func promptInt(name string, varDef model.VarDef, help string) (int, error) {
	var result string

	message := promptMessage(name, varDef)
	if varDef.Min != nil && varDef.Max != nil {
		message += fmt.Sprintf(" [%d-%d]", *varDef.Min, *varDef.Max)
	} else if varDef.Min != nil {
		message += fmt.Sprintf(" [>=%d]", *varDef.Min)
	} else if varDef.Max != nil {
		message += fmt.Sprintf(" [<=%d]", *varDef.Max)
	}

	defaultVal := ""
	if varDef.Default != nil {
		switch v := varDef.Default.(type) {
		case int:
			defaultVal = strconv.Itoa(v)
		case float64:
			defaultVal = strconv.Itoa(int(v))
		}
	}

	prompt := &survey.Input{
		Message: message,
		Default: defaultVal,
		Help:    help,
	}

	intValidator := func(val interface{}) error {
		str, ok := val.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", val)
		}
		if str == "" {
			if varDef.Required {
				return fmt.Errorf("value is required")
			}
			return nil
		}

		num, err := strconv.Atoi(str)
		if err != nil {
			return fmt.Errorf("must be an integer")
		}
		if varDef.Min != nil && num < *varDef.Min {
			return fmt.Errorf("must be >= %d", *varDef.Min)
		}
		if varDef.Max != nil && num > *varDef.Max {
			return fmt.Errorf("must be <= %d", *varDef.Max)
		}
		return nil
	}

	if err := survey.AskOne(prompt, &result, survey.WithValidator(intValidator)); err != nil {
		return 0, err
	}
	if result == "" {
		return 0, nil
	}
	return strconv.Atoi(result)
}

// promptNumber prompts for a floating-point number variable.
func promptNumber(name string, varDef model.VarDef, help string) (float64, error) {
	var result string

	message := promptMessage(name, varDef)
	if varDef.MinFloat != nil && varDef.MaxFloat != nil {
		message += fmt.Sprintf(" [%v-%v]", *varDef.MinFloat, *varDef.MaxFloat)
	} else if varDef.MinFloat != nil {
		message += fmt.Sprintf(" [>=%v]", *varDef.MinFloat)
	} else if varDef.MaxFloat != nil {
		message += fmt.Sprintf(" [<=%v]", *varDef.MaxFloat)
	}

	defaultVal := ""
	if varDef.Default != nil {
		switch v := varDef.Default.(type) {
		case float64:
			defaultVal = strconv.FormatFloat(v, 'f', -1, 64)
		case float32:
			defaultVal = strconv.FormatFloat(float64(v), 'f', -1, 64)
		case int:
			defaultVal = strconv.FormatFloat(float64(v), 'f', -1, 64)
		}
	}

	prompt := &survey.Input{
		Message: message,
		Default: defaultVal,
		Help:    help,
	}

	numberValidator := func(val interface{}) error {
		str, ok := val.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", val)
		}
		if str == "" {
			if varDef.Required {
				return fmt.Errorf("value is required")
			}
			return nil
		}

		num, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return fmt.Errorf("must be a number")
		}
		if varDef.MinFloat != nil && num < *varDef.MinFloat {
			return fmt.Errorf("must be >= %v", *varDef.MinFloat)
		}
		if varDef.MaxFloat != nil && num > *varDef.MaxFloat {
			return fmt.Errorf("must be <= %v", *varDef.MaxFloat)
		}
		return nil
	}

	if err := survey.AskOne(prompt, &result, survey.WithValidator(numberValidator)); err != nil {
		return 0, err
	}

	// Empty input on a non-required number becomes 0, same as promptInt.
	if result == "" {
		return 0, nil
	}
	return strconv.ParseFloat(result, 64)
}

// promptBool prompts for a boolean variable.
func promptBool(name string, varDef model.VarDef, help string) (bool, error) {
	var result bool

	defaultVal := false
	if varDef.Default != nil {
		if b, ok := varDef.Default.(bool); ok {
			defaultVal = b
		}
	}

	prompt := &survey.Confirm{
		Message: promptMessage(name, varDef),
		Default: defaultVal,
		Help:    help,
	}

	if err := survey.AskOne(prompt, &result); err != nil {
		return false, err
	}
	return result, nil
}

// matchPattern creates a survey validator for regex pattern matching.
func matchPattern(pattern string, message string) survey.Validator {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return func(val interface{}) error {
			return fmt.Errorf("invalid pattern: %s", pattern)
		}
	}
	return func(val interface{}) error {
		str, ok := val.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", val)
		}
		if !re.MatchString(str) {
			return fmt.Errorf("%s", message)
		}
		return nil
	}
}
