// Package browsers defines the canonical browser family vocabulary used
// throughout the matching pipeline and maps the short alias codes found in
// support-policy queries (caniuse-style identifiers such as "ie" or
// "ios_saf") onto canonical family names.
//
// # Usage
//
//	browsers.CanonicalFamily("ie_mob") // "ExplorerMobile"
//	browsers.CanonicalFamily("Chrome") // "Chrome" (canonical names pass through)
//
//	browsers.NormalizeQuery("ie 11")             // "Explorer 11"
//	browsers.NormalizeQuery("last 2 versions")   // unchanged
//
// NormalizeQuery rewrites only the first alias occurrence in the query
// text; a query mentioning two alias codes gets only the first rewritten.
// This mirrors the long-standing behavior of the upstream ecosystem and is
// relied upon by callers, so it is kept as is.
package browsers
