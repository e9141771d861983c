package status

import "errors"

// ErrHeaderNotFound is returned by the header container's by-id/by-name
// lookups when no field matches. Unlike the HTTPError values below, this
// is a container usage fault, not a wire parse fault, so it carries no
// status code a server would answer with.
var ErrHeaderNotFound = errors.New("headers: no matching field")

// HTTPError pairs a parse fault with the status code a caller implementing a
// server would plausibly answer with. The parser itself never writes a
// response; it only classifies the fault (RFC 9110 §15) so the caller can.
type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) HTTPError {
	return HTTPError{Code: code, Message: message}
}

func (h HTTPError) Error() string {
	return h.Message
}

// Incomplete is not a real status code: it marks errors where the stream
// ended mid-message and the correct caller behavior is to close the
// connection without writing any response at all.
const Incomplete Code = 0

var (
	// ErrBadVersion covers both a malformed HTTP-version token in a
	// start-line and a version other than "HTTP/1.0" or "HTTP/1.1".
	ErrBadVersion = NewError(BadRequest, "unsupported or malformed HTTP version")

	// ErrBadField covers an empty field-name or a field-name containing
	// a character outside of tchar.
	ErrBadField = NewError(BadRequest, "malformed header field name")

	// ErrBadLineEnding covers a bare CR, a bare LF, or a CR not
	// immediately followed by LF, wherever a line ending was expected.
	ErrBadLineEnding = NewError(BadRequest, "malformed line ending")

	// ErrBadValue covers a field-value containing a disallowed byte, or
	// an obs-fold whose continuation is itself empty (fold into a blank
	// line, whether that line ends the field or folds again).
	ErrBadValue = NewError(BadRequest, "malformed header field value")

	// ErrBadContentLength covers an empty or non-decimal Content-Length
	// (a leading sign or interior whitespace included), an overflowing
	// value, or multiple Content-Length fields whose values disagree.
	// Whitespace around the value is stripped as field OWS before the
	// value is checked, so it is not rejected.
	ErrBadContentLength = NewError(BadRequest, "malformed or conflicting Content-Length")

	// ErrBadTransferEncoding covers a "chunked" transfer-coding that
	// isn't the last in the list.
	ErrBadTransferEncoding = NewError(BadRequest, "malformed Transfer-Encoding")

	// ErrBadMessage covers framing that is syntactically fine in
	// isolation but semantically contradictory, e.g. both Content-Length
	// and Transfer-Encoding present at once.
	ErrBadMessage = NewError(BadRequest, "ambiguous message framing")

	// ErrBadChunk covers malformed chunk-size digits, an overflowing
	// chunk-size, or a missing/incorrect inter-chunk CRLF.
	ErrBadChunk = NewError(BadRequest, "malformed chunked transfer body")

	// ErrHeaderLimit is returned when start-line + fields + terminating
	// CRLF would exceed config.Config.HeaderLimit.
	ErrHeaderLimit = NewError(HeaderFieldsTooLarge, "headers section exceeds the configured limit")

	// ErrBodyLimit is returned when a known-length or chunked body would
	// exceed config.Config.BodyLimit.
	ErrBodyLimit = NewError(PayloadTooLarge, "body exceeds the configured limit")

	// ErrIncomplete is returned when commit_eof() arrives before a
	// message with known framing (Content-Length or chunked) has been
	// fully delivered.
	ErrIncomplete = NewError(Incomplete, "stream ended before the message was complete")
)
