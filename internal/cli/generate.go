package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/unjucks/unjucks/internal/app"
	"github.com/unjucks/unjucks/internal/config"
	"github.com/unjucks/unjucks/internal/debug"
	"github.com/unjucks/unjucks/internal/template/generator"
	"github.com/unjucks/unjucks/internal/template/scanner"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate <generator> <template>",
	Short: "Generate files from a template",
	Long: `Generate files from a template into the destination directory.

Variable values are resolved in order: template defaults, project
config vars, --var flags, then interactive prompts for anything still
missing (unless --skip-prompts).

Examples:
  unjucks generate component new --var name=userProfile
  unjucks generate component new --dest src --force
  unjucks generate api endpoint --dry-run
  unjucks generate component new --watch`,
	Aliases: []string{"gen", "g"},
	Args:    cobra.ExactArgs(2),
	RunE:    runGenerate,
}

// Generate command flags
var (
	generateDest        string
	generateVars        []string
	generateForce       bool
	generateDryRun      bool
	generateSkipPrompts bool
	generateAllowShell  bool
	generateWatch       bool
)

func init() {
	generateCmd.Flags().StringVarP(&generateDest, "dest", "d", "", "Destination directory (default from config, else .)")
	generateCmd.Flags().StringArrayVar(&generateVars, "var", nil, "Variable value as key=value (repeatable)")
	generateCmd.Flags().BoolVarP(&generateForce, "force", "f", false, "Overwrite existing files")
	generateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false, "Show planned actions without writing")
	generateCmd.Flags().BoolVar(&generateSkipPrompts, "skip-prompts", false, "Never prompt; fail on missing required variables")
	generateCmd.Flags().BoolVar(&generateAllowShell, "allow-shell", false, "Allow frontmatter sh hooks to run")
	generateCmd.Flags().BoolVarP(&generateWatch, "watch", "w", false, "Regenerate when template files change")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadProjectConfig()
	if err != nil {
		return err
	}

	dest := generateDest
	if dest == "" {
		dest = cfg.Generation.Dest
	}

	opts := app.GenerateOptions{
		StartDir:           ".",
		TemplatesRoot:      templatesRoot(cfg),
		Generator:          args[0],
		Template:           args[1],
		ConfigVars:         cfg.Vars,
		DestDir:            dest,
		Force:              generateForce || cfg.Generation.Force,
		DryRun:             generateDryRun,
		AllowShell:         generateAllowShell || cfg.Generation.AllowShell,
		IgnorePatterns:     cfg.Generation.IgnorePatterns,
		PreserveExecutable: cfg.Generation.PreserveExecutable,
	}

	tpl, err := app.LoadTemplate(opts)
	if err != nil {
		return err
	}

	vars, err := parseVarFlags(generateVars, tpl.Config.Variables)
	if err != nil {
		return err
	}

	if !generateSkipPrompts && !generateWatch && cfg.Generation.PromptsEnabled() {
		known := app.ResolveVariables(tpl.Config, cfg.Vars, vars)
		prompted, err := PromptForVariables(tpl.Config, scanner.UndeclaredVariables(tpl), known)
		if err != nil {
			return err
		}
		vars = vars.Merge(prompted)
	}
	opts.Vars = vars

	if generateWatch {
		return runWatch(cmd, cfg, opts)
	}

	result, err := app.Generate(cmd.Context(), opts)
	if err != nil {
		return err
	}

	printResult(tpl.FullName(), result, generateDryRun)
	if len(result.Errors) > 0 {
		return fmt.Errorf("%d file(s) failed", len(result.Errors))
	}
	return nil
}

func runWatch(cmd *cobra.Command, cfg *config.Config, opts app.GenerateOptions) error {
	printProgress("Watching %s/%s (ctrl-c to stop)", opts.Generator, opts.Template)

	// Watch reruns must propagate template edits into existing outputs.
	opts.Force = true

	return app.Watch(cmd.Context(), app.WatchOptions{
		Generate: opts,
		Debounce: time.Duration(cfg.Watch.DebounceMs) * time.Millisecond,
		OnRun: func(result *generator.Result, err error) {
			if err != nil {
				printErrorMsg("%v", err)
				return
			}
			printResult(opts.Generator+"/"+opts.Template, result, opts.DryRun)
		},
	})
}

// printResult prints per-file actions and a summary line.
func printResult(name string, result *generator.Result, dryRun bool) {
	for _, planned := range result.Planned {
		switch planned.Action {
		case generator.ActionCreate:
			printSuccess("create    %s", planned.Path)
		case generator.ActionOverwrite:
			printWarning("overwrite %s", planned.Path)
		case generator.ActionInject:
			printSuccess("inject    %s", planned.Path)
		case generator.ActionSkip:
			if planned.Reason != "" {
				printDim("skip      %s (%s)", planned.Path, planned.Reason)
			} else {
				printDim("skip      %s", planned.Path)
			}
		}
	}

	for _, err := range result.Errors {
		printErrorMsg("%v", err)
	}

	summary := fmt.Sprintf("%s: %d created, %d overwritten, %d injected, %d skipped",
		name, result.FilesCreated, result.FilesOverwritten, result.FilesInjected, result.FilesSkipped)
	if dryRun {
		summary += " (dry run, nothing written)"
	}
	printInfo("%s", summary)
}

// loadProjectConfig loads .unjucks.yaml from --config or by discovery
// and folds its output settings into the global display state.
func loadProjectConfig() (*config.Config, error) {
	loader := config.NewLoader()
	var cfg *config.Config
	var err error
	if globalConfig != "" {
		cfg, err = loader.Load(globalConfig)
	} else {
		cfg, err = loader.Discover(".")
	}
	if err != nil {
		return nil, err
	}
	applyOutputConfig(cfg)
	return cfg, nil
}

// applyOutputConfig applies the config file's output section. Flags
// only tighten output; they never re-enable what the config turned
// off.
func applyOutputConfig(cfg *config.Config) {
	if cfg.Output.Quiet {
		globalQuiet = true
	}
	if !cfg.Output.ColorEnabled() {
		debug.SetNoColor(true)
	}
}

// templatesRoot returns the templates root override, preferring the
// --templates flag over the config file.
func templatesRoot(cfg *config.Config) string {
	if globalTemplates != "" {
		return globalTemplates
	}
	return cfg.Templates
}
