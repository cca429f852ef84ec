// Package buildinfo holds version data stamped in at link time.
package buildinfo

import "fmt"

// Set at build time via -ldflags "-X plotter/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for logs.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		if len(Commit) > 12 {
			return Commit[:12]
		}
		return Commit
	}
	return "dev"
}

// String is the full line printed by the version command.
func String() string {
	return fmt.Sprintf("plotter %s (commit %s, built %s)", Version, Commit, Date)
}
