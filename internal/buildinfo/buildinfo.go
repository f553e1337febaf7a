package buildinfo

import "fmt"

// Set at link time with -ldflags "-X github.com/JonMunkholm/cusipref/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("cusipref %s (commit=%s, date=%s)", Version, Commit, Date)
}
