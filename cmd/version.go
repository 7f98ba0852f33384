// Package cmd holds the build metadata shared by the teamforge binary.
package cmd

import "runtime/debug"

// Set with -ldflags "-X github.com/thoreinstein/teamforge/cmd.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func init() {
	if Version != "dev" {
		return
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	// go install github.com/thoreinstein/teamforge/cmd/teamforge@vX.Y.Z
	if v := info.Main.Version; v != "" && v != "(devel)" {
		Version = v
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			Commit = s.Value
		case "vcs.time":
			Date = s.Value
		}
	}
}
