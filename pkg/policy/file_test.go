package policy_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrymomot/browserkit/pkg/policy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileResolver(t *testing.T) {
	t.Parallel()

	var r policy.FileResolver

	t.Run("defaults from file", func(t *testing.T) {
		t.Parallel()
		lines, err := r.Resolve(nil, policy.Config{Path: "testdata/browsers.yml"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Chrome 88", "Firefox 78-80", "iOS 14.0"}, lines)
	})

	t.Run("named environment from file", func(t *testing.T) {
		t.Parallel()
		lines, err := r.Resolve(nil, policy.Config{Path: "testdata/browsers.yml", Env: "legacy"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Explorer 11", "Chrome 49"}, lines)
	})

	t.Run("production section preferred over defaults", func(t *testing.T) {
		t.Parallel()
		lines, err := r.Resolve(nil, policy.Config{Path: "testdata/production.yml"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Chrome 90", "Samsung 14"}, lines)
	})

	t.Run("explicit queries skip the file entirely", func(t *testing.T) {
		t.Parallel()
		lines, err := r.Resolve([]string{"Chrome 111"}, policy.Config{Path: "testdata/does-not-exist.yml"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Chrome 111"}, lines)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := r.Resolve(nil, policy.Config{Path: "testdata/does-not-exist.yml"})
		assert.ErrorIs(t, err, policy.ErrConfigNotFound)
	})

	t.Run("directory path resolves default file name", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writePolicyFile(t, filepath.Join(dir, policy.DefaultFileName), "defaults:\n  - Chrome 77\n")
		lines, err := r.Resolve(nil, policy.Config{Path: dir})
		require.NoError(t, err)
		assert.Equal(t, []string{"Chrome 77"}, lines)
	})

	t.Run("unparseable yaml", func(t *testing.T) {
		t.Parallel()
		_, err := r.Resolve(nil, policy.Config{Path: "testdata/invalid.yml"})
		assert.ErrorIs(t, err, policy.ErrInvalidConfig)
	})

	t.Run("file without lists", func(t *testing.T) {
		t.Parallel()
		_, err := r.Resolve(nil, policy.Config{Path: "testdata/empty.yml"})
		assert.ErrorIs(t, err, policy.ErrInvalidConfig)
	})

	t.Run("unknown environment", func(t *testing.T) {
		t.Parallel()
		_, err := r.Resolve(nil, policy.Config{Path: "testdata/browsers.yml", Env: "staging"})
		assert.ErrorIs(t, err, policy.ErrUnknownEnvironment)
	})
}

func TestFromEnv(t *testing.T) {
	t.Run("explicit config wins", func(t *testing.T) {
		cfg := policy.FromEnv(policy.Config{Env: "legacy", Path: "somewhere"})
		assert.Equal(t, "legacy", cfg.Env)
		assert.Equal(t, "somewhere", cfg.Path)
	})
}

func writePolicyFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
