// Package version holds build-time version information.
package version

// Populated via ldflags during release builds.
var (
	// Version is the semantic version of the binary.
	Version = "dev"
	// GitCommit is the git commit hash the binary was built from.
	GitCommit = "unknown"
	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)
