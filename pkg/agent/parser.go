package agent

import (
	"regexp"
	"strings"

	"github.com/mssola/useragent"
)

// Device types reported by a Parser. Only mobile is significant for the
// resolution rules.
const (
	DeviceMobile  = "mobile"
	DeviceDesktop = "desktop"
)

// Product is a named, versioned component of a UA string. Either field may
// be empty when undetectable.
type Product struct {
	Name    string
	Version string
}

// Device describes the requesting device class.
type Device struct {
	Type string
}

// Fields is the tokenized form of a UA string as supplied by a Parser.
type Fields struct {
	Browser Product
	OS      Product
	Engine  Product
	Device  Device
}

// Parser tokenizes a raw UA string. Implementations must be safe for
// concurrent use; the default parser is.
type Parser interface {
	Parse(ua string) Fields
}

// defaultParser adapts github.com/mssola/useragent to the Fields contract.
var defaultParser Parser = mssolaParser{}

// Tokens mssola folds into a generic browser but the resolution rules need
// to see by their own name. Checked in order, first hit wins.
var browserOverrides = []struct {
	pattern *regexp.Regexp
	name    string
}{
	{regexp.MustCompile(`SamsungBrowser/([0-9.]+)`), "Samsung Internet"},
	{regexp.MustCompile(`IEMobile[/ ]([0-9.]+)`), "IEMobile"},
	{regexp.MustCompile(`HeadlessChrome/([0-9.]+)`), "Chrome Headless"},
	{regexp.MustCompile(`; wv\).*?Chrome/([0-9.]+)`), "Chrome WebView"},
}

var (
	chromeToken = regexp.MustCompile(`Chrome/([0-9.]+)`)
	geckoToken  = regexp.MustCompile(`rv:([0-9.]+)`)
)

type mssolaParser struct{}

// Parse tokenizes the UA string with mssola/useragent and reshapes the
// result: browser names are mapped onto the vocabulary the resolution
// rules match against, the Blink engine is inferred for Chrome-family
// WebKit builds, and the Gecko engine version is taken from the rv token
// (mssola reports the Gecko build date there instead of a version).
func (mssolaParser) Parse(ua string) Fields {
	parsed := &useragent.UserAgent{}
	parsed.Parse(ua)

	browserName, browserVer := parsed.Browser()
	engineName, engineVer := parsed.Engine()
	osInfo := parsed.OSInfo()

	f := Fields{
		Browser: Product{Name: browserName, Version: browserVer},
		OS:      Product{Name: osInfo.Name, Version: osInfo.Version},
		Engine:  Product{Name: engineName, Version: engineVer},
	}
	if parsed.Mobile() {
		f.Device.Type = DeviceMobile
	}

	for _, o := range browserOverrides {
		if m := o.pattern.FindStringSubmatch(ua); m != nil {
			f.Browser = Product{Name: o.name, Version: m[1]}
			break
		}
	}

	switch f.Browser.Name {
	case "Internet Explorer":
		f.Browser.Name = "IE"
	case "Android":
		// mssola names the legacy stock browser after the platform.
		f.Browser.Name = "Android Browser"
	}
	if strings.Contains(ua, "Opera Mobi") {
		f.Browser.Name = "Opera Mobi"
	}

	switch osInfo.Name {
	case "iPhone OS", "iPad OS", "CPU OS":
		f.OS.Name = "iOS"
	}

	switch engineName {
	case "AppleWebKit":
		// WebKit builds carrying a Chrome token run Blink, whose version
		// is the Chrome version, not the frozen 537.36 WebKit one.
		if m := chromeToken.FindStringSubmatch(ua); m != nil {
			f.Engine = Product{Name: "Blink", Version: m[1]}
		}
	case "Gecko":
		if m := geckoToken.FindStringSubmatch(ua); m != nil {
			f.Engine.Version = m[1]
		} else {
			f.Engine.Version = browserVer
		}
	}

	return f
}
