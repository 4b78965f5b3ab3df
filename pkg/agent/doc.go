// Package agent resolves a raw User-Agent string into a canonical
// browser identity: a family name from the vocabulary in pkg/browsers plus
// a normalized three-part version.
//
// Raw UA strings lie about themselves. Safari on iOS reports its own
// version while third-party iOS browsers only reveal the OS version;
// Firefox forks are best identified by their Gecko engine version; every
// Blink-based browser (newer Edge, Opera, Brave, ...) is a Chrome
// equivalent for compatibility purposes; the legacy Android stock browser
// tracked OS releases rather than its own versions. The resolver encodes
// these heuristics as an ordered rule chain evaluated top to bottom with
// first match wins — the order is load-bearing, more specific rules shadow
// general ones.
//
// # Architecture
//
// Tokenizing the UA string is delegated to a Parser, the consumed
// capability boundary of this package. The default parser wraps
// github.com/mssola/useragent and adapts its output to the field contract
// the rule chain expects (browser, OS and engine name/version plus device
// type). The rule chain itself lives in Resolver.Resolve and is a pure
// function of the parsed fields.
//
// # Usage
//
//	a := agent.Resolve("Mozilla/5.0 (iPhone; CPU iPhone OS 14_4 like Mac OS X) ...")
//	// a.Family == "iOS", a.Version == "14.4.0"
//
// Embedders with their own UA tokenizer plug it in via Resolver:
//
//	r := agent.Resolver{Parser: myParser}
//	a := r.Resolve(uaString)
//
// # Error Handling
//
// Resolution never fails: undetectable fields come back as empty strings
// and the caller treats a zero Agent as "unsupported". See Agent.IsZero.
package agent
