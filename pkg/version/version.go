// Package version exposes build information set through -ldflags.
//
//	go build -ldflags "-X github.com/rshade/carbonmap/pkg/version.version=v0.3.0"
package version

import (
	"fmt"
	"runtime"
)

//nolint:gochecknoglobals // Set at link time.
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

// GetVersion returns the release version, "dev" for local builds.
func GetVersion() string {
	return version
}

// GetGitCommit returns the commit the binary was built from.
func GetGitCommit() string {
	return gitCommit
}

// GetBuildDate returns the build timestamp.
func GetBuildDate() string {
	return buildDate
}

// String returns a one-line description used by --version.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s, %s)", version, gitCommit, buildDate, runtime.Version())
}
