package cli

import (
	"github.com/spf13/cobra"

	"github.com/unjucks/unjucks/internal/app"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init <generator> [template]",
	Short: "Scaffold a new generator",
	Long: `Create a _templates directory with a starter generator.

The scaffold contains an unjucks.yaml declaring one variable and an
example template file demonstrating frontmatter and filters.

Examples:
  unjucks init component
  unjucks init api endpoint`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runInit,
}

var initDir string

func init() {
	initCmd.Flags().StringVar(&initDir, "dir", ".", "Project directory receiving the templates root")
}

func runInit(cmd *cobra.Command, args []string) error {
	opts := app.InitOptions{
		Dir:       initDir,
		Generator: args[0],
	}
	if len(args) == 2 {
		opts.Template = args[1]
	}

	result, err := app.Init(opts)
	if err != nil {
		return err
	}

	if len(result.Files) == 0 {
		printWarning("Nothing created, scaffold files already exist in %s", result.TemplateDir)
		return nil
	}
	for _, file := range result.Files {
		printSuccess("create    %s", file)
	}
	printInfo("Scaffolded %s. Try: unjucks generate %s %s --var name=example",
		result.TemplateDir, opts.Generator, templateNameOrDefault(opts.Template))
	return nil
}

func templateNameOrDefault(name string) string {
	if name == "" {
		return "new"
	}
	return name
}
