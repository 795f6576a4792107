// Package version provides build-time version information.
package version

// These variables are set at build time via ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String returns the commit and build date for the version template.
func String() string {
	return "commit: " + Commit + ", built: " + Date
}
