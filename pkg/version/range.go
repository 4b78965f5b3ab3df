package version

import "strings"

// ExpandRange expands a hyphenated version range such as "10.0-10.2" into
// every version from start to end inclusive, stepping by minor version with
// the patch component reset at each step:
//
//	ExpandRange("10.0-10.2") // ["10.0.0", "10.1.0", "10.2.0"]
//
// A token without a hyphen, or with a boundary that does not normalize to a
// version, yields nil. Malformed ranges are dropped silently so a single bad
// policy line cannot fail an entire match.
func ExpandRange(r string) []string {
	start, end, found := strings.Cut(r, "-")
	if !found {
		return nil
	}

	from := Normalize(start)
	to := Normalize(end)
	if from == "" || to == "" {
		return nil
	}

	cur, ok := parse(from)
	if !ok {
		return nil
	}
	last, ok := parse(to)
	if !ok {
		return nil
	}

	var out []string
	for !last.LessThan(cur) {
		out = append(out, cur.String())
		next := cur.IncMinor()
		cur = &next
	}
	return out
}
