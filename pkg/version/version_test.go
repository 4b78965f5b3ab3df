package version_test

import (
	"testing"

	"github.com/dmitrymomot/browserkit/pkg/version"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "major only", input: "10", expected: "10.0.0"},
		{name: "major and minor", input: "2.5", expected: "2.5.0"},
		{name: "full version", input: "10.2.1", expected: "10.2.1"},
		{name: "long browser version", input: "91.0.4472.124", expected: "91.0.4472"},
		{name: "v prefix", input: "v14.1", expected: "14.1.0"},
		{name: "caret prefix", input: "^10.2", expected: "10.2.0"},
		{name: "leading garbage", input: "version 12.3", expected: "12.3.0"},
		{name: "empty", input: "", expected: ""},
		{name: "no digits", input: "garbage", expected: ""},
		{name: "only separators", input: "..", expected: ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, version.Normalize(tc.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()
	for _, input := range []string{"10", "10.2", "10.2.1", "v91.0.4472"} {
		first := version.Normalize(input)
		assert.NotEmpty(t, first)
		assert.Equal(t, first, version.Normalize(first), "normalizing %q twice must be stable", input)
	}
}
