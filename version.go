// Package rtlview holds build metadata for the rtlview module.
package rtlview

import (
	_ "embed"
	"fmt"
	"io"
	"regexp"
	"runtime"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the module version in SemVer format (without `v`).
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns the git tag form of Version.
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}

// PrintVersion writes the one-line `--version` output for program.
func PrintVersion(w io.Writer, program string) {
	fmt.Fprintf(w, "%s %s (%s, %s/%s)\n", program, VersionTag(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
