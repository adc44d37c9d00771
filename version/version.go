// Package version exposes build version information. Version and Commit are
// meant to be set at build time with -ldflags; when they are not, the commit
// falls back to the VCS metadata stamped into the binary.
package version

import (
	"fmt"
	"runtime/debug"
)

var (
	// Version is the semantic release version, "dev" for local builds.
	Version = "dev"

	// Commit is the short VCS revision.
	Commit = ""
)

// Info is a snapshot of the build identity.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	GoVersion string `json:"go_version"`
	Modified  bool   `json:"modified"`
}

// Get assembles the build identity from ldflags values and, where those are
// unset, from the binary's embedded build info.
func Get() Info {
	info := Info{
		Version: Version,
		Commit:  Commit,
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = bi.GoVersion
		for _, setting := range bi.Settings {
			switch setting.Key {
			case "vcs.revision":
				if info.Commit == "" {
					info.Commit = setting.Value
				}
			case "vcs.modified":
				info.Modified = setting.Value == "true"
			}
		}
	}
	if len(info.Commit) > 7 {
		info.Commit = info.Commit[:7]
	}
	return info
}

// Short returns a single version string suitable for logs and banners.
func (i Info) Short() string {
	s := i.Version
	if i.Commit != "" {
		s = fmt.Sprintf("%s-%s", s, i.Commit)
	}
	if i.Modified {
		s += "-dirty"
	}
	return s
}
