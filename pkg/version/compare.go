package version

import "github.com/Masterminds/semver/v3"

// CompareOptions controls how strictly a resolved browser version is
// compared against a support-policy version.
type CompareOptions struct {
	// IgnoreMinor treats minor (and patch) version drift as compatible.
	IgnoreMinor bool

	// IgnorePatch treats patch version drift as compatible. When both
	// IgnorePatch and IgnoreMinor are set, IgnorePatch wins and only
	// patch-level drift is tolerated.
	IgnorePatch bool

	// AllowHigherVersions accepts any resolved version greater than or
	// equal to the policy version, overriding the tolerance flags.
	AllowHigherVersions bool
}

// Satisfies reports whether the resolved version satisfies the query
// version under the given options. Both inputs are normalized first; if
// either fails to normalize the result is false, never an error.
func Satisfies(resolved, query string, opts CompareOptions) bool {
	rn := Normalize(resolved)
	qn := Normalize(query)
	if rn == "" || qn == "" {
		return false
	}

	rv, ok := parse(rn)
	if !ok {
		return false
	}
	qv, ok := parse(qn)
	if !ok {
		return false
	}

	if opts.AllowHigherVersions {
		return rv.Compare(qv) >= 0
	}

	// Tolerance is expressed as a semver constraint on the query version:
	// "~" tolerates patch drift, "^" tolerates minor and patch drift, and
	// a bare version requires exact equality. IgnorePatch is checked
	// before IgnoreMinor, so setting both yields patch-only tolerance.
	ref := qn
	if opts.IgnorePatch {
		ref = "~" + qn
	} else if opts.IgnoreMinor {
		ref = "^" + qn
	}

	c, err := semver.NewConstraint(ref)
	if err != nil {
		return false
	}
	return c.Check(rv)
}
