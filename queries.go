package browserkit

import (
	"strings"

	"github.com/dmitrymomot/browserkit/pkg/browsers"
	"github.com/dmitrymomot/browserkit/pkg/version"
)

// queryEntry is one concrete line of an expanded support policy: a
// canonical family plus a single version, never a range.
type queryEntry struct {
	family  string
	version string
}

// parseQueryList flattens raw "Name Version" policy lines into entries.
// Technology-preview versions ("TP") carry no usable number and are
// dropped; hyphenated ranges are expanded in place; anything else keeps
// its version token verbatim (normalization happens at comparison time).
// Malformed lines are skipped rather than failing the whole list.
func parseQueryList(lines []string) []queryEntry {
	entries := make([]queryEntry, 0, len(lines))
	for _, line := range lines {
		name, ver, found := strings.Cut(line, " ")
		if !found || ver == "TP" {
			continue
		}

		family := browsers.CanonicalFamily(name)

		if strings.Index(ver, "-") > 0 {
			for _, v := range version.ExpandRange(ver) {
				entries = append(entries, queryEntry{family: family, version: v})
			}
			continue
		}

		entries = append(entries, queryEntry{family: family, version: ver})
	}
	return entries
}
