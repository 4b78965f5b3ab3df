// Package policy supplies the browser support policy consumed by the
// matcher: an ordered list of "Name Version" (or "Name Start-End") lines
// describing which browser versions a project supports.
//
// The package deliberately does not implement a browser-query language
// ("last 2 versions", "> 1%"). Resolving such expressions requires usage
// data and belongs to an external engine; embedders that have one plug it
// in through the Resolver interface. What this package ships are the two
// resolvers most projects need:
//
//   - StaticResolver — per-environment lists held in memory, handy for
//     tests and for applications that configure support matrices in code.
//   - FileResolver — reads a YAML policy file (browsers.yml) with a
//     defaults list and optional per-environment overrides.
//
// # Configuration
//
// Resolution is parameterized by Config: the environment name and the
// config path. Both fall back to the BROWSERSLIST_ENV and
// BROWSERSLIST_CONFIG environment variables (the conventional names in the
// browserslist ecosystem), and the path finally defaults to the current
// working directory.
//
// A policy file looks like:
//
//	defaults:
//	  - Chrome 88
//	  - Firefox 78-85
//	  - iOS 14.0
//	environments:
//	  legacy:
//	    - Explorer 11
//	    - Chrome 49
//
// # Error Handling
//
// Configuration problems are loud: a missing file, unparseable YAML or an
// unknown environment name return ErrConfigNotFound, ErrInvalidConfig or
// ErrUnknownEnvironment respectively (wrapped, test with errors.Is). This
// is intentional — a broken support policy is an application bug, unlike a
// malformed UA string which merely fails to match.
package policy
