package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unjucks/unjucks/internal/app"
	"github.com/unjucks/unjucks/internal/template/model"
)

// helpCmd replaces cobra's built-in help command. With two arguments
// naming a generator and template it shows that template's variables
// and files; otherwise it behaves like regular command help.
var helpCmd = &cobra.Command{
	Use:   "help [command | <generator> <template>]",
	Short: "Help about a command or template",
	Long: `Show help for a command, or inspect a template.

Examples:
  unjucks help generate
  unjucks help component new`,
	Run: runHelp,
}

func runHelp(cmd *cobra.Command, args []string) {
	if len(args) == 2 {
		if err := showTemplateHelp(args[0], args[1]); err == nil {
			return
		}
	}

	// Fall back to command help, matching cobra's default behavior.
	target, _, err := rootCmd.Find(args)
	if err != nil || target == nil {
		rootCmd.Printf("Unknown help topic %#q\n", args)
		_ = rootCmd.Usage()
		return
	}
	_ = target.Help()
}

func showTemplateHelp(generatorName, templateName string) error {
	cfg, err := loadProjectConfig()
	if err != nil {
		return err
	}

	info, err := app.Inspect(app.GenerateOptions{
		StartDir:      ".",
		TemplatesRoot: templatesRoot(cfg),
		Generator:     generatorName,
		Template:      templateName,
	})
	if err != nil {
		return err
	}

	printHeader(info.Template.FullName())
	if info.Template.Config.Description != "" {
		printInfo("%s", info.Template.Config.Description)
	}

	if len(info.Declared) > 0 {
		printHeader("Variables")
		for _, v := range info.Declared {
			printInfo("  %s", formatVarInfo(v))
		}
	}
	if len(info.Undeclared) > 0 {
		printHeader("Undeclared variables (prompted as strings)")
		for _, name := range info.Undeclared {
			printInfo("  %s", name)
		}
	}

	printHeader("Files")
	for _, file := range info.Files {
		printInfo("  %s", file)
	}
	return nil
}

// formatVarInfo renders one declared variable for the help listing.
func formatVarInfo(v app.VarInfo) string {
	typ := v.Def.Type
	if typ == "" {
		typ = model.VarTypeString
	}

	line := fmt.Sprintf("%s (%s)", v.Name, typ)
	if v.Def.Required {
		line += " required"
	}
	if v.Def.Default != nil {
		line += fmt.Sprintf(" default=%v", v.Def.Default)
	}
	if len(v.Def.Choices) > 0 {
		line += fmt.Sprintf(" choices=%v", v.Def.Choices)
	}
	if v.Def.Description != "" {
		line += "  " + v.Def.Description
	}
	return line
}
