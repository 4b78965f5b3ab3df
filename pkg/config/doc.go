// Package config loads configuration structs from environment variables,
// optionally seeded from .env files.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11 behind
// a small cached API: each configuration type is parsed at most once per
// process and served from memory afterwards, so hot paths (like policy
// resolution on every match call) can ask for configuration freely.
//
// # Usage
//
//	type PolicyEnv struct {
//	    Env  string `env:"BROWSERSLIST_ENV"`
//	    Path string `env:"BROWSERSLIST_CONFIG"`
//	}
//
//	var pe PolicyEnv
//	if err := config.Load(&pe); err != nil {
//	    // handle ErrParsingConfig
//	}
//
// Call config.LoadEnv("path/to/.env") before the first Load to seed the
// process environment from files; without it the default .env in the
// working directory is tried once and missing files are ignored.
//
// # Testing
//
// ResetCache clears the per-type cache so tests can mutate the process
// environment and re-load.
package config
