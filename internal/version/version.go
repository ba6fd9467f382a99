// Package version holds the build identity stamped in at link time:
//
//	go build -ldflags "-X github.com/pitchlab/shotmap/internal/version.Version=v1.2.3"
package version

var (
	// Version is the release tag, "dev" for local builds.
	Version = "dev"
	// GitSHA is the commit the binary was built from.
	GitSHA = "unknown"
	// BuildTime is the UTC build timestamp.
	BuildTime = "unknown"
)
