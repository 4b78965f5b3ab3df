// Package version provides loose semantic version handling for browser
// version tokens: normalization of partial or noisy versions into canonical
// major.minor.patch form, expansion of hyphenated version ranges, and
// tolerance-aware comparison of a resolved browser version against a
// support-policy version.
//
// Browser versions in the wild are rarely clean semver. User agents report
// "14", "10.2", "91.0.4472.124" or worse, and support policies mix single
// versions with ranges like "10.0-10.2". This package coerces all of that
// into a single canonical form so the rest of the matching pipeline only
// ever deals with full three-part versions.
//
// # Usage
//
// Normalize a loose token:
//
//	v := version.Normalize("10.2") // "10.2.0"
//	v = version.Normalize("junk")  // ""
//
// Expand a range into concrete minor steps:
//
//	vs := version.ExpandRange("10.0-10.2") // ["10.0.0", "10.1.0", "10.2.0"]
//
// Compare with tolerance:
//
//	ok := version.Satisfies("10.2.1", "10.2.0", version.CompareOptions{IgnorePatch: true}) // true
//
// # Error Handling
//
// The package never returns errors. Unparseable input yields the zero value
// ("" from Normalize, nil from ExpandRange, false from Satisfies) so that
// malformed data degrades to "no match" instead of failing a whole match
// call. See the parent module's documentation for the rationale.
package version
