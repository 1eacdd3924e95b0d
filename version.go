// Package scribe holds build metadata shared by the scribe command and its
// packages.
package scribe

import (
	_ "embed"
	"regexp"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Name is the program name used in window titles and the CLI.
const Name = "scribe"

// Version returns the release version in SemVer format (without `v`).
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

// Describe renders the version line printed by `scribe --version`.
// Empty commit or date values are omitted.
func Describe(commit, date string) string {
	var sb strings.Builder
	sb.WriteString(VersionTag())
	var extra []string
	if commit != "" {
		extra = append(extra, "commit: "+commit)
	}
	if date != "" {
		extra = append(extra, "built: "+date)
	}
	if len(extra) > 0 {
		sb.WriteString(" (" + strings.Join(extra, ", ") + ")")
	}
	return sb.String()
}
