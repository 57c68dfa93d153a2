// Package version reports how the swiftpoet binary was built and which
// manifest schemas it reads.
package version

import (
	"fmt"
	"runtime"

	"github.com/Masterminds/semver/v3"

	"github.com/teranos/swiftpoet/manifest"
)

// Set at build time via -ldflags "-X github.com/teranos/swiftpoet/internal/version.Version=...".
var (
	Version    = "dev"
	CommitHash = "dev"
	BuildTime  = "unknown"
)

// Info describes the running binary.
type Info struct {
	Version        string `json:"version"`
	CommitHash     string `json:"commit_hash"`
	BuildTime      string `json:"build_time"`
	ManifestSchema string `json:"manifest_schema"`
	GoVersion      string `json:"go_version"`
	Platform       string `json:"platform"`
}

// Get returns the build information of this binary.
func Get() Info {
	return Info{
		Version:        Version,
		CommitHash:     CommitHash,
		BuildTime:      BuildTime,
		ManifestSchema: manifest.SupportedSchemas,
		GoVersion:      runtime.Version(),
		Platform:       runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// Release returns the parsed version of a tagged build. Untagged builds
// report false.
func (i Info) Release() (*semver.Version, bool) {
	v, err := semver.NewVersion(i.Version)
	if err != nil {
		return nil, false
	}
	return v, true
}

// String returns e.g. "swiftpoet 1.2.0 (0123456, 2026-10-01)". Tags are
// printed without their "v" prefix.
func (i Info) String() string {
	name := "dev"
	if v, ok := i.Release(); ok {
		name = v.String()
	}
	return fmt.Sprintf("swiftpoet %s (%s, %s)", name, i.commit(), i.BuildTime)
}

func (i Info) commit() string {
	if len(i.CommitHash) > 7 {
		return i.CommitHash[:7]
	}
	return i.CommitHash
}
