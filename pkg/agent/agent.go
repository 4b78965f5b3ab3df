package agent

import (
	"github.com/dmitrymomot/browserkit/pkg/browsers"
	"github.com/dmitrymomot/browserkit/pkg/version"
)

// Agent is the canonicalized identity of a requesting browser. Family is a
// canonical family name (or the raw parsed browser name when unrecognized),
// Version a canonical three-part version. Either may be empty when the UA
// string did not carry enough information.
type Agent struct {
	Family  string
	Version string
}

// IsZero reports whether resolution produced neither family nor version.
func (a Agent) IsZero() bool { return a.Family == "" && a.Version == "" }

// Resolver turns UA strings into Agents using a pluggable Parser.
// The zero value uses the default mssola-backed parser.
type Resolver struct {
	Parser Parser
}

// chromeEquivalents are browser names resolved to the Chrome family when
// engine detection did not already settle it.
var chromeEquivalents = map[string]struct{}{
	"Chrome":          {},
	"Chromium":        {},
	"Chrome WebView":  {},
	"Chrome Headless": {},
}

// Resolve parses the UA string and applies the identity heuristics.
//
// The rules below are evaluated in order and the first hit wins. Keep the
// order intact: Safari-on-iOS must shadow the generic iOS rule, engine
// detection must shadow the browser-name fallbacks.
func (r Resolver) Resolve(ua string) Agent {
	p := r.Parser
	if p == nil {
		p = defaultParser
	}
	f := p.Parse(ua)

	browserVer := version.Normalize(f.Browser.Version)
	osVer := version.Normalize(f.OS.Version)
	engineVer := version.Normalize(f.Engine.Version)

	switch {
	// Safari on iOS reports its own version correctly.
	case f.Browser.Name == "Safari" && f.OS.Name == "iOS":
		return Agent{Family: browsers.FamilyIOS, Version: browserVer}

	// Any other iOS browser embeds the system engine, whose version is at
	// least the OS version.
	case f.OS.Name == "iOS":
		return Agent{Family: browsers.FamilyIOS, Version: osVer}

	case (f.Browser.Name == "Opera" && f.Device.Type == DeviceMobile) || f.Browser.Name == "Opera Mobi":
		return Agent{Family: browsers.FamilyOperaMobile, Version: browserVer}

	case f.Browser.Name == "Samsung Internet":
		return Agent{Family: browsers.FamilySamsung, Version: browserVer}

	case f.Browser.Name == "IE":
		return Agent{Family: browsers.FamilyExplorer, Version: browserVer}

	case f.Browser.Name == "IEMobile":
		return Agent{Family: browsers.FamilyExplorerMobile, Version: browserVer}

	// Firefox forks report the Gecko engine version most reliably.
	case f.Engine.Name == "Gecko":
		return Agent{Family: browsers.FamilyFirefox, Version: engineVer}

	// Every Blink-based browser is a Chrome equivalent.
	case f.Engine.Name == "Blink":
		return Agent{Family: browsers.FamilyChrome, Version: engineVer}

	case isChromeEquivalent(f.Browser.Name):
		return Agent{Family: browsers.FamilyChrome, Version: browserVer}

	// The legacy Android stock browser tracked OS releases before
	// system-Chrome web views existed.
	case f.Browser.Name == "Android Browser":
		return Agent{Family: browsers.FamilyAndroid, Version: osVer}

	default:
		return Agent{Family: f.Browser.Name, Version: browserVer}
	}
}

func isChromeEquivalent(name string) bool {
	_, ok := chromeEquivalents[name]
	return ok
}

// Resolve resolves a UA string with the default parser.
func Resolve(ua string) Agent {
	return Resolver{}.Resolve(ua)
}
