// Package version carries the release version string.
package version

// Version is the gffx release version. It can be overridden at build time
// with -ldflags "-X gffx/internal/version.Version=...".
var Version = "0.1.0"
