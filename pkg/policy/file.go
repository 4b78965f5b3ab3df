package policy

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up when the config path points at a directory.
const DefaultFileName = "browsers.yml"

// policyFile is the YAML shape of a policy config file.
type policyFile struct {
	Defaults     []string            `yaml:"defaults"`
	Environments map[string][]string `yaml:"environments"`
}

// FileResolver reads the support policy from a YAML file. The zero value
// is ready to use; Resolve loads the file on every call, matching the
// transient, no-caching lifecycle of the rest of the pipeline.
type FileResolver struct{}

// Resolve returns the caller's queries verbatim when present, otherwise
// loads the policy file at cfg.Path (the current directory when empty,
// DefaultFileName inside it when a directory) and returns the list for
// cfg.Env.
func (FileResolver) Resolve(queries []string, cfg Config) ([]string, error) {
	if len(queries) > 0 {
		return queries, nil
	}

	path := cfg.Path
	if path == "" {
		path = "."
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, DefaultFileName)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, errors.Join(ErrConfigNotFound, err)
	}

	var pf policyFile
	if err := yaml.Unmarshal(raw, &pf); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	static := StaticResolver{Defaults: pf.Defaults, Environments: pf.Environments}
	return static.lookup(cfg.Env)
}
