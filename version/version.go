// Package version records build-time release information.
package version

// GitRelease is the release tag or commit, set at build time via ldflags.
var GitRelease = "dev"
