package tagcheck

import "github.com/woozymasta/semver"

// UpdateType grades how far an available update jumps.
type UpdateType string

const (
	// UpdateMajor means the major component increased.
	UpdateMajor UpdateType = "major"
	// UpdateMinor means the minor component increased within the major.
	UpdateMinor UpdateType = "minor"
	// UpdatePatch means only the patch component changed.
	UpdatePatch UpdateType = "patch"
	// UpdateUnknown means one of the versions is not SemVer enough to
	// grade the jump.
	UpdateUnknown UpdateType = "unknown"
)

// String returns the wire form of the update type.
func (u UpdateType) String() string {
	return string(u)
}

// Severity grades the jump from current to latest. Informational only:
// it never influences status or ordering, which use ParseKey. Anything
// that does not parse as SemVer on both sides is UpdateUnknown.
func Severity(current, latest string) UpdateType {
	cur, ok := semver.Parse(current)
	if !ok || !cur.IsValid() {
		return UpdateUnknown
	}

	next, ok := semver.Parse(latest)
	if !ok || !next.IsValid() {
		return UpdateUnknown
	}

	switch {
	case next.Major != cur.Major:
		return UpdateMajor
	case next.Minor != cur.Minor:
		return UpdateMinor
	case next.Patch != cur.Patch:
		return UpdatePatch
	default:
		return UpdateUnknown
	}
}
