// Package version holds build metadata injected at link time via
// -ldflags "-X github.com/mj1618/menucli/internal/version.Version=...".
package version

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)
