// Package version holds the build version, overridable at link time with
// -ldflags "-X github.com/dgallion1/pdfoutline/internal/version.Version=...".
package version

var Version = "0.2.0"

func String() string {
	return "v" + Version
}
