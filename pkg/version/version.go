// Package version exposes the build version of pagekit.
package version

// Set at build time with
// -ldflags "-X github.com/rshade/pagekit/pkg/version.version=v1.2.3".
//
//nolint:gochecknoglobals // Overridden by the linker.
var version = "dev"

// GetVersion returns the version pagekit was built with, or "dev".
func GetVersion() string {
	return version
}
