// Package version carries build metadata. The variables can be stamped with
//
//	go build -ldflags "-X github.com/alexiusacademia/gorcfiber/internal/version.GitCommit=$(git rev-parse --short HEAD)"
//
// Unstamped values fall back to the VCS settings the go tool embeds.
package version

import (
	"fmt"
	"runtime/debug"
)

const unknown = "unknown"

var (
	Version   = "0.1.0"
	BuildTime = unknown
	GitCommit = unknown

	Author = "Alexius Academia"
	Year   = "2025"
)

// Info is the resolved build metadata
type Info struct {
	Version   string
	Commit    string
	Built     string
	GoVersion string
	Modified  bool // built from a dirty tree
}

// Get resolves the build metadata. Stamped values take precedence over the
// embedded build settings.
func Get() Info {
	info := Info{Version: Version, Commit: GitCommit, Built: BuildTime}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	return info.merge(bi)
}

func (i Info) merge(bi *debug.BuildInfo) Info {
	i.GoVersion = bi.GoVersion
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if i.Commit == unknown {
				i.Commit = shortRevision(s.Value)
			}
		case "vcs.time":
			if i.Built == unknown {
				i.Built = s.Value
			}
		case "vcs.modified":
			i.Modified = s.Value == "true"
		}
	}
	return i
}

func (i Info) String() string {
	commit := i.Commit
	if i.Modified {
		commit += "-dirty"
	}
	s := fmt.Sprintf("gorcfiber v%s (commit %s, built %s", i.Version, commit, i.Built)
	if i.GoVersion != "" {
		s += ", " + i.GoVersion
	}
	return s + ")"
}

func shortRevision(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}
