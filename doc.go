// Package browserkit decides whether a browser, identified by its raw
// User-Agent string, falls inside a project's declared browser support
// policy.
//
// A support policy is a list of "Name Version" lines (versions may be
// hyphenated ranges) per environment — the shape produced by resolving
// browserslist-style queries. browserkit resolves the UA string into a
// canonical {family, version} identity despite the aliasing games browsers
// play, expands the policy into concrete entries and tests whether any
// entry accepts the resolved identity under a configurable version
// tolerance.
//
// Key behaviors:
//
//   - Ordered resolution heuristics: Safari-on-iOS, iOS web views, Opera
//     Mobile, Samsung Internet, IE, Gecko forks, Blink equivalents, legacy
//     Android — see pkg/agent.
//   - Version tolerance: patch drift ignored by default, minor drift and
//     higher-version acceptance opt-in — see pkg/version.
//   - Fail-closed data handling: a UA or version that cannot be understood
//     is "not supported", never an error.
//   - Loud configuration handling: a missing policy file or unknown
//     environment is an error, never silently "not supported".
//
// Basic Usage:
//
//	ok, err := browserkit.Match(r.UserAgent())
//	if err != nil {
//	    // broken policy configuration
//	}
//	if ok {
//	    // serve modern assets
//	}
//
// With options:
//
//	ok, err := browserkit.Match(r.UserAgent(),
//	    browserkit.WithBrowsers("Chrome 100", "ff 100"),
//	    browserkit.WithAllowHigherVersions(true),
//	)
//
// Embedders with a full browserslist query engine plug it in via
// WithResolver; the bundled resolvers read pre-resolved policy lines from
// memory or a YAML file (see pkg/policy).
package browserkit
