package version

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/Masterminds/semver/v3"
)

// coercePattern extracts the first numeric version run from a loose token,
// tolerating leading garbage such as "v", "^" or vendor prefixes.
var coercePattern = regexp.MustCompile(`(\d+)(?:\.(\d+))?(?:\.(\d+))?`)

// Normalize coerces a loose version token into a canonical
// "major.minor.patch" string, zero-filling missing components.
// It returns an empty string when the token is empty or contains no
// parseable version.
func Normalize(v string) string {
	if v == "" {
		return ""
	}

	m := coercePattern.FindStringSubmatch(v)
	if m == nil {
		return ""
	}

	major, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		// Numeric run too large to be a real version.
		return ""
	}

	var minor, patch uint64
	if m[2] != "" {
		if minor, err = strconv.ParseUint(m[2], 10, 64); err != nil {
			return ""
		}
	}
	if m[3] != "" {
		if patch, err = strconv.ParseUint(m[3], 10, 64); err != nil {
			return ""
		}
	}

	return fmt.Sprintf("%d.%d.%d", major, minor, patch)
}

// parse returns the semver value of an already-normalized version string.
// Callers must only pass Normalize output.
func parse(canonical string) (*semver.Version, bool) {
	v, err := semver.NewVersion(canonical)
	if err != nil {
		return nil, false
	}
	return v, true
}
