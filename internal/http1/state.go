package http1

// State is the parser's coarse message-level state. Once body framing is
// known, chunk and trailer progress is tracked by chunkedParser's own
// sub-state instead of refining State further: the body stays in state
// Body from the first chunk through the trailer section, and only the
// transition to Complete (via ParseChunkTrailer) or Failed is visible here.
type State uint8

const (
	NothingYet State = iota
	StartLine
	Fields
	Body
	Complete
	Failed
)

// Status reports the outcome of a parse call.
type Status uint8

const (
	// NeedMore means the call suspended: commit more bytes and call the
	// same operation again.
	NeedMore Status = iota
	// OK means the call produced data and more may remain; re-invoke to
	// continue (used by the streaming body/chunk accessors).
	OK
	// Done means the operation's scope is now fully complete: headers
	// parsed to end of fields, or the body/message fully consumed.
	Done
)

// ContentLengthKind classifies how the body's length was declared.
type ContentLengthKind uint8

const (
	// LengthAbsent means no Content-Length and no chunked Transfer-Encoding
	// were declared.
	LengthAbsent ContentLengthKind = iota
	// LengthExact means a valid Content-Length was declared.
	LengthExact
	// LengthChunked means the final Transfer-Encoding coding is chunked.
	LengthChunked
)
