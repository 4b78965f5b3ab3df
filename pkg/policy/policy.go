package policy

import (
	"fmt"

	"github.com/dmitrymomot/browserkit/pkg/config"
)

// DefaultEnvironment is used when neither Config nor the process
// environment names one.
const DefaultEnvironment = "production"

// Config parameterizes policy resolution.
type Config struct {
	// Env selects the environment section of the policy. Empty means
	// DefaultEnvironment.
	Env string

	// Path locates the policy source (a file or a directory containing
	// one). Empty means the current working directory.
	Path string
}

// envConfig picks up the conventional browserslist environment variables.
type envConfig struct {
	Env  string `env:"BROWSERSLIST_ENV"`
	Path string `env:"BROWSERSLIST_CONFIG"`
}

// FromEnv fills the zero fields of cfg from BROWSERSLIST_ENV and
// BROWSERSLIST_CONFIG. Explicitly set fields win over the environment.
func FromEnv(cfg Config) Config {
	var ec envConfig
	if err := config.Load(&ec); err != nil {
		return cfg
	}
	if cfg.Env == "" {
		cfg.Env = ec.Env
	}
	if cfg.Path == "" {
		cfg.Path = ec.Path
	}
	return cfg
}

// Resolver expands support-policy queries into concrete "Name Version"
// lines. Implementations receive the caller's queries (already aliased to
// canonical family names, possibly nil) and decide how to expand them;
// the bundled resolvers treat non-empty queries as pre-resolved lines and
// otherwise fall back to their configured per-environment lists.
type Resolver interface {
	Resolve(queries []string, cfg Config) ([]string, error)
}

// StaticResolver serves policy lines from memory.
type StaticResolver struct {
	// Defaults is used when no environment section applies.
	Defaults []string

	// Environments holds per-environment overrides.
	Environments map[string][]string
}

// Resolve returns the caller's queries verbatim when present, otherwise
// the list for cfg.Env. A named environment that is not configured is an
// error; the default environment falls back to Defaults.
func (r StaticResolver) Resolve(queries []string, cfg Config) ([]string, error) {
	if len(queries) > 0 {
		return queries, nil
	}
	return r.lookup(cfg.Env)
}

func (r StaticResolver) lookup(env string) ([]string, error) {
	if env != "" && env != DefaultEnvironment {
		lines, ok := r.Environments[env]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownEnvironment, env)
		}
		return lines, nil
	}
	if lines, ok := r.Environments[DefaultEnvironment]; ok {
		return lines, nil
	}
	if len(r.Defaults) == 0 {
		return nil, fmt.Errorf("%w: no defaults and no %q environment", ErrInvalidConfig, DefaultEnvironment)
	}
	return r.Defaults, nil
}
