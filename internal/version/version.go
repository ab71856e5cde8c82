// Package version holds build information set through -ldflags.
package version

import "fmt"

var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// String returns the version with its commit and build date.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Banner is the greeting printed when an interactive session starts.
func Banner() string {
	return fmt.Sprintf("gocalc %s. Type /help for help, /exit to quit.", Version)
}
