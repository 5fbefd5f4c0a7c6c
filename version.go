// Package caretline is a single-line text field with a blinking caret for
// frame-driven programs. The widget lives in package editor; this package
// only carries the release version.
package caretline

import (
	_ "embed"
	"regexp"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// semver 2.0.0, without a leading "v".
var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

// Version returns the release, e.g. "0.1.0".
func Version() string { return strings.TrimSpace(embeddedVersion) }

// VersionTag returns Version as a git tag, e.g. "v0.1.0".
func VersionTag() string { return "v" + Version() }

// IsSemver reports whether v is a SemVer string without the "v" prefix.
func IsSemver(v string) bool { return semverRE.MatchString(strings.TrimSpace(v)) }
