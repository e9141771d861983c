package status

// Code is an HTTP status code. The parser never formulates responses itself;
// it only attaches the status code a caller would plausibly answer with to
// each sentinel error, following RFC 9110 §15.
type Code uint16

// Only the codes this package's sentinel errors actually reference. Unlike a
// generic status-codes table, there's no reason to carry the full IANA
// registry here: this library never serializes a status line.
const (
	BadRequest           Code = 400
	PayloadTooLarge      Code = 413
	HeaderFieldsTooLarge Code = 431
)
