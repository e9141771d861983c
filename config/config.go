// Package config holds the parser's construction-time settings: size
// limits, which start-line grammar to run, and whether appended field
// characters get validated.
package config

// Variant selects which start-line grammar the parser runs: a request-line
// (method/target/version) or a status-line (version/code/reason).
type Variant uint8

const (
	Request Variant = iota
	Response
)

// Config holds settings used across the parser and header container. You
// should always start from Default() and override only what you need;
// most of the defaults come straight from RFC 7230's own suggested limits.
type Config struct {
	// HeaderLimit caps the accumulated start-line + fields + terminating
	// CRLF length. Exceeding it reports header_limit.
	HeaderLimit int
	// BodyLimit caps how many bytes may follow the header block. For a
	// chunked body this counts the chunk-size lines, CRLFs and trailer
	// along with the data, not the decoded size; run-to-EOF bodies are
	// capped the same way. 0 means unbounded: the source this
	// library is modeled on is silent on a default here, so we pick
	// unbounded rather than invent a number nothing in the grammar implies.
	BodyLimit int
	// Variant chooses the start-line grammar: Request or Response.
	Variant Variant
	// ValidateFieldCharacters, when true, makes the header container
	// reject non-token names and non-field-content values on append.
	// Trusted serialization paths that already know their input is valid
	// may set this false to skip the per-append scan.
	ValidateFieldCharacters bool
}

// Default returns a Config for parsing requests, with RFC 7230's suggested
// 8 KiB header budget, an unbounded body, and field validation on.
func Default() Config {
	return Config{
		HeaderLimit:             8 * 1024,
		BodyLimit:               0,
		Variant:                Request,
		ValidateFieldCharacters: true,
	}
}
