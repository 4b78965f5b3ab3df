package browserkit

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/browserkit/pkg/agent"
	"github.com/dmitrymomot/browserkit/pkg/browsers"
	"github.com/dmitrymomot/browserkit/pkg/policy"
	"github.com/dmitrymomot/browserkit/pkg/version"
)

// Options configures a Match call. Use the With* functions to build it.
type Options struct {
	browsers []string
	env      string
	path     string
	resolver policy.Resolver
	parser   agent.Parser
	compare  version.CompareOptions
}

// Option mutates Options.
type Option func(*Options)

// WithBrowsers supplies explicit support-policy queries instead of the
// configured policy. Alias codes ("ie 11") are rewritten to canonical
// family names before resolution.
func WithBrowsers(queries ...string) Option {
	return func(o *Options) { o.browsers = queries }
}

// WithEnv selects the policy environment (e.g. "production", "legacy").
func WithEnv(env string) Option {
	return func(o *Options) { o.env = env }
}

// WithPath locates the policy configuration; defaults to the current
// working directory.
func WithPath(path string) Option {
	return func(o *Options) { o.path = path }
}

// WithResolver replaces the default file-backed policy resolver.
func WithResolver(r policy.Resolver) Option {
	return func(o *Options) { o.resolver = r }
}

// WithParser replaces the default UA parser.
func WithParser(p agent.Parser) Option {
	return func(o *Options) { o.parser = p }
}

// WithIgnoreMinor treats minor version drift as compatible.
func WithIgnoreMinor(v bool) Option {
	return func(o *Options) { o.compare.IgnoreMinor = v }
}

// WithIgnorePatch treats patch version drift as compatible. Enabled by
// default; pass false for exact-version matching.
func WithIgnorePatch(v bool) Option {
	return func(o *Options) { o.compare.IgnorePatch = v }
}

// WithAllowHigherVersions accepts any version greater than or equal to a
// policy version, overriding the tolerance flags.
func WithAllowHigherVersions(v bool) Option {
	return func(o *Options) { o.compare.AllowHigherVersions = v }
}

func defaultOptions() Options {
	return Options{
		resolver: policy.FileResolver{},
		compare:  version.CompareOptions{IgnorePatch: true},
	}
}

// Match reports whether the browser identified by the UA string satisfies
// the support policy. An empty UA string never matches. Data problems (an
// unrecognizable UA, malformed versions, malformed ranges) yield false;
// only policy-configuration problems return an error.
func Match(ua string, opts ...Option) (bool, error) {
	if ua == "" {
		return false, nil
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	queries := make([]string, len(o.browsers))
	for i, q := range o.browsers {
		queries[i] = browsers.NormalizeQuery(q)
	}

	cfg := policy.FromEnv(policy.Config{Env: o.env, Path: o.path})
	lines, err := o.resolver.Resolve(queries, cfg)
	if err != nil {
		return false, fmt.Errorf("resolve support policy: %w", err)
	}
	entries := parseQueryList(lines)

	resolved := agent.Resolver{Parser: o.parser}.Resolve(ua)
	if resolved.Family == "" || resolved.Version == "" {
		return false, nil
	}

	for _, e := range entries {
		if e.version == "" {
			continue
		}
		if !strings.EqualFold(e.family, resolved.Family) {
			continue
		}
		if version.Satisfies(resolved.Version, e.version, o.compare) {
			return true, nil
		}
	}
	return false, nil
}

// ResolveUserAgent resolves a raw UA string into its canonical browser
// identity. See pkg/agent for the resolution rules.
func ResolveUserAgent(ua string) agent.Agent {
	return agent.Resolve(ua)
}

// NormalizeQuery rewrites the first browser alias code in a policy query
// into its canonical family name. See pkg/browsers.
func NormalizeQuery(query string) string {
	return browsers.NormalizeQuery(query)
}
