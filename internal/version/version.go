package version

import (
	"runtime/debug"
	"strings"
)

// Set with -ldflags "-X loglens/internal/version.Version=...". When left at
// their defaults they are filled from the module build info, if any.
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

var readBuildInfo = debug.ReadBuildInfo

// String returns "version (commit) date", omitting the parts that are unknown.
func String() string {
	v, c, d := Version, Commit, Date
	if info, ok := readBuildInfo(); ok {
		if v == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			v = info.Main.Version
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if c == "" {
					c = s.Value
				}
			case "vcs.time":
				if d == "" {
					d = s.Value
				}
			}
		}
	}
	if len(c) > 12 {
		c = c[:12]
	}
	parts := []string{v}
	if c != "" {
		parts = append(parts, "("+c+")")
	}
	if d != "" {
		parts = append(parts, d)
	}
	return strings.Join(parts, " ")
}
