package hook

import (
	"strings"

	"github.com/coreos/go-semver/semver"
)

// Gate matches a host version by exact major and minor. The patch level is
// ignored: the defect being corrected was identified per major.minor build
// line, not per patch release.
type Gate struct {
	Major int64
	Minor int64
}

// Matches reports whether raw identifies a gated host version. A version
// string that does not parse never matches; the override then silently
// fails to apply, which is the intended behavior for a point patch.
func (g Gate) Matches(raw string) bool {
	v, err := semver.NewVersion(normalize(raw))
	if err != nil {
		return false
	}
	return v.Major == g.Major && v.Minor == g.Minor
}

// Func adapts the gate for registry.Override.
func (g Gate) Func() func(version string) bool {
	return g.Matches
}

// normalize pads host version strings like "28" or "28.1" to the
// three-component form semver requires.
func normalize(raw string) string {
	switch strings.Count(raw, ".") {
	case 0:
		return raw + ".0.0"
	case 1:
		return raw + ".0"
	default:
		return raw
	}
}
