package version_test

import (
	"testing"

	"github.com/dmitrymomot/browserkit/pkg/version"

	"github.com/stretchr/testify/assert"
)

func TestSatisfies(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		resolved string
		query    string
		opts     version.CompareOptions
		expected bool
	}{
		{
			name:     "exact match without tolerance",
			resolved: "10.2.0",
			query:    "10.2.0",
			expected: true,
		},
		{
			name:     "patch drift rejected without tolerance",
			resolved: "10.2.1",
			query:    "10.2.0",
			expected: false,
		},
		{
			name:     "patch drift tolerated",
			resolved: "10.2.1",
			query:    "10.2.0",
			opts:     version.CompareOptions{IgnorePatch: true},
			expected: true,
		},
		{
			name:     "minor drift not tolerated by ignore patch",
			resolved: "10.3.0",
			query:    "10.2.0",
			opts:     version.CompareOptions{IgnorePatch: true},
			expected: false,
		},
		{
			name:     "minor drift tolerated by ignore minor",
			resolved: "10.3.0",
			query:    "10.2.0",
			opts:     version.CompareOptions{IgnoreMinor: true},
			expected: true,
		},
		{
			name:     "major drift never tolerated",
			resolved: "11.0.0",
			query:    "10.2.0",
			opts:     version.CompareOptions{IgnoreMinor: true},
			expected: false,
		},
		{
			name:     "ignore patch wins when both flags set",
			resolved: "10.3.0",
			query:    "10.2.0",
			opts:     version.CompareOptions{IgnorePatch: true, IgnoreMinor: true},
			expected: false,
		},
		{
			name:     "allow higher versions below query",
			resolved: "9.0.0",
			query:    "10.0.0",
			opts:     version.CompareOptions{AllowHigherVersions: true},
			expected: false,
		},
		{
			name:     "allow higher versions equal",
			resolved: "10.0.0",
			query:    "10.0.0",
			opts:     version.CompareOptions{AllowHigherVersions: true},
			expected: true,
		},
		{
			name:     "allow higher versions above query",
			resolved: "11.0.0",
			query:    "10.0.0",
			opts:     version.CompareOptions{AllowHigherVersions: true},
			expected: true,
		},
		{
			name:     "allow higher versions overrides tolerance flags",
			resolved: "12.0.0",
			query:    "10.0.0",
			opts:     version.CompareOptions{AllowHigherVersions: true, IgnorePatch: true},
			expected: true,
		},
		{
			name:     "loose inputs normalized before comparing",
			resolved: "10",
			query:    "10.0",
			expected: true,
		},
		{
			name:     "unparseable resolved version",
			resolved: "garbage",
			query:    "10.0.0",
			expected: false,
		},
		{
			name:     "empty query version",
			resolved: "10.0.0",
			query:    "",
			expected: false,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, version.Satisfies(tc.resolved, tc.query, tc.opts))
		})
	}
}
