package app

import "fmt"

// Build metadata injected via -ldflags, e.g.
//
//	go build -ldflags "-X github.com/lexicult/lexicult-backend/internal/app.Version=1.2.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion renders the build metadata for startup logs and the
// health endpoint.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
