package policy

import "errors"

// Predefined errors for the policy package.
var (
	// ErrConfigNotFound indicates that no policy file exists at the
	// resolved path.
	ErrConfigNotFound = errors.New("browser policy config not found")

	// ErrInvalidConfig indicates the policy file could not be parsed or
	// defines no browser lists at all.
	ErrInvalidConfig = errors.New("invalid browser policy config")

	// ErrUnknownEnvironment indicates the requested environment is not
	// defined by the policy.
	ErrUnknownEnvironment = errors.New("unknown policy environment")
)
