// Package version exposes build metadata injected at link time.
package version

// These variables are set at build time via ldflags.
//
//nolint:gochecknoglobals // Build metadata has to be settable by the linker.
var (
	// Version is the semantic version of the binary.
	Version = "0.1.0"
	// Commit is the VCS commit the binary was built from.
	Commit = "none"
	// BuildTime is the timestamp of the build.
	BuildTime = "unknown"
)

// Short returns just the semantic version.
func Short() string {
	return Version
}

// Full returns the version together with the commit and build timestamp.
func Full() string {
	return "version: " + Version + ", commit: " + Commit + ", built at: " + BuildTime
}
