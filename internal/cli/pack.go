package cli

import (
	"github.com/spf13/cobra"

	"github.com/unjucks/unjucks/internal/app"
)

// packCmd groups template pack subcommands.
var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Manage installed template packs",
	Long: `Install and list template packs.

A pack is a GitHub repository (or subdirectory) containing generators.
Installed packs live under ~/.unjucks/packs and can be used as a
templates root via --templates.`,
}

// packAddCmd installs a pack.
var packAddCmd = &cobra.Command{
	Use:   "add <url>",
	Short: "Install a template pack from GitHub",
	Long: `Download a template pack and install it locally.

Accepts owner/repo shorthand, full GitHub URLs, and SSH URLs. A branch,
tag, or commit can be given with @ref, and a repository subdirectory as
a path suffix.

Examples:
  unjucks pack add acme/templates
  unjucks pack add acme/templates@v2.0.0
  unjucks pack add https://github.com/acme/templates/tree/main/_templates`,
	Args: cobra.ExactArgs(1),
	RunE: runPackAdd,
}

// packListCmd lists installed packs.
var packListCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed template packs",
	Args:  cobra.NoArgs,
	RunE:  runPackList,
}

var packDir string

func init() {
	packCmd.PersistentFlags().StringVar(&packDir, "packs-dir", "", "Packs directory (default ~/.unjucks/packs)")
	packCmd.AddCommand(packAddCmd)
	packCmd.AddCommand(packListCmd)
}

func runPackAdd(cmd *cobra.Command, args []string) error {
	cfg, err := loadProjectConfig()
	if err != nil {
		return err
	}

	packsDir := packDir
	if packsDir == "" {
		packsDir = cfg.PacksDir
	}

	printProgress("Installing %s", args[0])
	pack, err := app.PackAdd(cmd.Context(), app.PackAddOptions{
		URL:      args[0],
		PacksDir: packsDir,
	})
	if err != nil {
		return err
	}

	printSuccess("Installed %s", pack.Name)
	printInfo("Use it with: unjucks --templates %s list", pack.Path)
	return nil
}

func runPackList(cmd *cobra.Command, args []string) error {
	cfg, err := loadProjectConfig()
	if err != nil {
		return err
	}

	packsDir := packDir
	if packsDir == "" {
		packsDir = cfg.PacksDir
	}

	packs, err := app.PackList(packsDir)
	if err != nil {
		return err
	}

	if len(packs) == 0 {
		printInfo("No packs installed.")
		return nil
	}
	for _, pack := range packs {
		printInfo("%s\t%s", pack.Name, pack.Path)
	}
	return nil
}
