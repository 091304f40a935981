package cli

import (
	"github.com/spf13/cobra"

	"github.com/unjucks/unjucks/internal/app"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available generators and templates",
	Long: `List the generators found under the templates directory, with
their templates and descriptions.

Examples:
  unjucks list
  unjucks list --templates ./my-templates`,
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadProjectConfig()
	if err != nil {
		return err
	}

	generators, err := app.List(app.ListOptions{
		StartDir:      ".",
		TemplatesRoot: templatesRoot(cfg),
	})
	if err != nil {
		return err
	}

	if len(generators) == 0 {
		printInfo("No generators found.")
		return nil
	}

	for _, gen := range generators {
		printHeader(gen.Name)
		if gen.Config != nil && gen.Config.Description != "" {
			printInfo("%s", gen.Config.Description)
		}
		for _, tpl := range gen.Templates {
			printInfo("  %s/%s", gen.Name, tpl)
		}
	}
	return nil
}
