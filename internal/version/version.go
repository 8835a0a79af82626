// Package version reports which meshtint build is running.
//
// Release builds set Version, Commit and Date with -ldflags "-X ...". Builds
// made with go install or go build from a checkout leave them unset; Get then
// falls back to the module and VCS stamps in the binary's build info.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Values injected at link time, e.g.
// -X github.com/jmylchreest/meshtint/internal/version.Version=v1.2.3.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

const unknown = "unknown"

// Info describes a build.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	Modified  bool   `json:"modified,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the build description, preferring link-time values over the
// embedded build info.
func Get() Info {
	bi, _ := debug.ReadBuildInfo()
	return resolve(bi)
}

func resolve(bi *debug.BuildInfo) Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if bi == nil {
		return info
	}

	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == unknown {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Date == unknown {
				info.Date = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// String renders info on one line, e.g.
// "meshtint v1.2.3 (a1b2c3d4, 2026-01-02T03:04:05Z, go1.25.1 linux/amd64)".
func (i Info) String() string {
	build := i.GoVersion + " " + i.Platform
	if i.Commit == unknown {
		return fmt.Sprintf("meshtint %s (%s)", i.Version, build)
	}

	commit := shortCommit(i.Commit)
	if i.Modified {
		commit += "-dirty"
	}
	if i.Date == unknown {
		return fmt.Sprintf("meshtint %s (%s, %s)", i.Version, commit, build)
	}
	return fmt.Sprintf("meshtint %s (%s, %s, %s)", i.Version, commit, i.Date, build)
}

// String is Get().String().
func String() string {
	return Get().String()
}

// Short returns just the version, for cobra's --version flag.
func Short() string {
	return Get().Version
}

func shortCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}
