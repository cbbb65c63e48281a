// Package version reports the modgen build.
package version

import (
	"fmt"
	"runtime/debug"
)

// Set at build time via -ldflags "-X". Empty values fall back to the
// module and VCS data the Go toolchain embeds in the binary.
var (
	Version   = ""
	Commit    = ""
	BuildTime = ""
)

// Info describes one build of modgen.
type Info struct {
	Version   string
	Commit    string
	BuildTime string
	Dirty     bool
}

// Current merges the ldflags values with the embedded build info.
func Current() Info {
	info := Info{Version: Version, Commit: Commit, BuildTime: BuildTime}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info = fromBuildInfo(info, bi)
	}
	return info
}

func fromBuildInfo(info Info, bi *debug.BuildInfo) Info {
	if info.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.BuildTime == "" {
				info.BuildTime = s.Value
			}
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		}
	}
	return info
}

// String renders i for `modgen --version`.
func (i Info) String() string {
	v := i.Version
	if v == "" {
		v = "dev"
	}
	commit := orUnknown(shortCommit(i.Commit))
	if i.Dirty {
		commit += "-dirty"
	}
	return fmt.Sprintf("modgen %s (commit: %s, built: %s)", v, commit, orUnknown(i.BuildTime))
}

// String returns the version string of the running binary.
func String() string {
	return Current().String()
}

func shortCommit(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
