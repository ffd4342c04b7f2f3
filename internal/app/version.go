package app

import (
	"fmt"
	"runtime/debug"
)

// Version, Commit, and BuildTime are set via ldflags at build time:
//
//	go build -ldflags "-X github.com/heartmarshall/plancatalog-backend/internal/app.Version=1.4.0"
//
// Without ldflags, Commit and BuildTime fall back to the VCS stamp the Go
// toolchain embeds in the binary.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	for _, s := range info.Settings {
		switch {
		case s.Key == "vcs.revision" && Commit == "unknown":
			Commit = shortRevision(s.Value)
		case s.Key == "vcs.time" && BuildTime == "unknown":
			BuildTime = s.Value
		}
	}
}

func shortRevision(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}

// BuildVersion returns a formatted version string for startup logs and the
// catalogctl --version flag.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
