package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/unjucks/unjucks/internal/debug"
	"github.com/unjucks/unjucks/internal/version"
)

// Alias version variables for compatibility
var (
	Version   = version.Version
	GitCommit = version.GitCommit
	BuildDate = version.BuildDate
)

// Global flags
var (
	globalNoColor   bool
	globalQuiet     bool
	globalDebug     bool
	globalTemplates string
	globalConfig    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "unjucks",
	Short: "Template-driven code generator",
	Long: `unjucks generates files from Nunjucks-style templates.

Templates live under a _templates directory: each subdirectory is a
generator, and each directory below that is a template. Template files
may carry a YAML frontmatter block controlling the output path,
injection into existing files, and conditional skips.

Use "unjucks list" to see available generators, "unjucks help
<generator> <template>" to see a template's variables, and "unjucks
generate <generator> <template>" to run one.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug.SetDebug(globalDebug)
		if globalNoColor {
			debug.SetNoColor(true)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, "quiet", "q", false, "Suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&globalDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&globalTemplates, "templates", "", "Templates directory (overrides discovery)")
	rootCmd.PersistentFlags().StringVar(&globalConfig, "config", "", "Path to .unjucks.yaml")

	// Replace the built-in help command so "unjucks help <generator>
	// <template>" inspects templates.
	rootCmd.SetHelpCommand(helpCmd)

	// Add subcommands
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(packCmd)
	rootCmd.AddCommand(versionCmd)
}

// printError prints an error message to stderr
func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
