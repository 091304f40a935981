package cli

import (
	"encoding/json"
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Display version information for unjucks.

Examples:
  unjucks version
  unjucks version --short
  unjucks version --json`,
	RunE: runVersion,
}

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Show version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Output as JSON")
}

// buildInfo describes the running binary.
type buildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	BuiltAt   string `json:"built_at,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

func currentBuildInfo() buildInfo {
	return buildInfo{
		Version:   Version,
		Commit:    GitCommit,
		BuiltAt:   BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// format renders the human-readable form: the version line first, then
// build detail. "unknown" fields from non-release builds are omitted.
func (b buildInfo) format() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "unjucks %s (%s, %s)\n", b.Version, b.GoVersion, b.Platform)
	if b.Commit != "" && b.Commit != "unknown" {
		fmt.Fprintf(&sb, "  commit:   %s\n", b.Commit)
	}
	if b.BuiltAt != "" && b.BuiltAt != "unknown" {
		fmt.Fprintf(&sb, "  built at: %s\n", b.BuiltAt)
	}
	return sb.String()
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := currentBuildInfo()

	if versionShort {
		fmt.Println(info.Version)
		return nil
	}

	if versionJSON {
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal version info: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Print(info.format())
	return nil
}
