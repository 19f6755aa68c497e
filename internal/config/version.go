package config

import "fmt"

// Build metadata, overridden with -ldflags "-X .../internal/config.Version=v1.2.0"
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// VersionString describes the running build
func VersionString() string {
	return fmt.Sprintf("osx-upgrade version %s (commit %s, built %s)", Version, Commit, Date)
}
