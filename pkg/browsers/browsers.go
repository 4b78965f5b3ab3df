package browsers

import (
	"regexp"
	"strings"
)

// Canonical family names produced by the matching pipeline.
const (
	FamilyBlackBerry     = "BlackBerry"
	FamilyChrome         = "Chrome"
	FamilyFirefox        = "Firefox"
	FamilyExplorer       = "Explorer"
	FamilyExplorerMobile = "ExplorerMobile"
	FamilyIOS            = "iOS"
	FamilyAndroid        = "Android"
	FamilySamsung        = "Samsung"
	FamilyOperaMini      = "OperaMini"
	FamilyOperaMobile    = "OperaMobile"
	FamilyQQAndroid      = "QQAndroid"
	FamilyUCAndroid      = "UCAndroid"
)

// aliasOrder fixes the order in which alias codes are tried by
// NormalizeQuery. Order matters: it determines which alias wins when the
// query text contains several candidates at the same position.
var aliasOrder = []string{
	"bb",
	"and_chr",
	"ChromeAndroid",
	"FirefoxAndroid",
	"ff",
	"ie",
	"ie_mob",
	"and_ff",
	"ios_saf",
	"op_mini",
	"op_mob",
	"and_qq",
	"and_uc",
}

// aliases maps short alias codes onto canonical family names. Canonical
// names are valid standalone identifiers, so aliasing is idempotent.
var aliases = map[string]string{
	"bb":             FamilyBlackBerry,
	"and_chr":        FamilyChrome,
	"ChromeAndroid":  FamilyChrome,
	"FirefoxAndroid": FamilyFirefox,
	"ff":             FamilyFirefox,
	"ie":             FamilyExplorer,
	"ie_mob":         FamilyExplorerMobile,
	"and_ff":         FamilyFirefox,
	"ios_saf":        FamilyIOS,
	"op_mini":        FamilyOperaMini,
	"op_mob":         FamilyOperaMobile,
	"and_qq":         FamilyQQAndroid,
	"and_uc":         FamilyUCAndroid,
}

// aliasPattern is a single alternation over all alias codes, compiled once
// at startup. Go regexp prefers the earliest alternative at the leftmost
// match, so aliasOrder decides ties.
var aliasPattern = regexp.MustCompile(strings.Join(aliasOrder, "|"))

// CanonicalFamily maps an alias code to its canonical family name. Tokens
// that are not alias codes (including canonical names themselves) are
// returned unchanged. The lookup is case-sensitive.
func CanonicalFamily(token string) string {
	if canonical, ok := aliases[token]; ok {
		return canonical
	}
	return token
}

// NormalizeQuery rewrites the first alias code occurring anywhere in the
// query text into its canonical family name, leaving the rest untouched.
// Queries without an alias code are returned unchanged.
func NormalizeQuery(query string) string {
	match := aliasPattern.FindString(query)
	if match == "" {
		return query
	}
	return strings.Replace(query, match, aliases[match], 1)
}
