// Package httpcore is the public facade over the incremental HTTP/1.1
// parser: it wires internal/http1's resumable state machine to the
// exported config, headers and status packages so a caller never needs to
// reach into an internal package to parse a message.
//
// The parser performs no I/O. A caller owns the connection (or file, or
// test fixture) and drives the parser with Prepare/Commit/CommitEOF,
// exactly as documented on Parser below.
package httpcore

import (
	"github.com/httpcore-go/httpcore/config"
	"github.com/httpcore-go/httpcore/headers"
	"github.com/httpcore-go/httpcore/http/proto"
	"github.com/httpcore-go/httpcore/internal/http1"
)

// Re-exported so callers only need to import this one package for the
// common case; the config and headers packages remain importable directly
// for callers who only need to build a Config or a standalone Headers.
type (
	Config  = config.Config
	Headers = headers.Headers
	Product = proto.Product
)

// Status reports what a parse step did: whether it needs more committed
// bytes, produced a value, or completed the production it was parsing.
type Status = http1.Status

const (
	NeedMore = http1.NeedMore
	OK       = http1.OK
	Done     = http1.Done
)

// DefaultConfig returns the documented defaults: an 8KiB header limit, an
// unbounded body, request-variant grammar, and field validation enabled.
func DefaultConfig() Config {
	return config.Default()
}

// Parser is a resumable HTTP/1.1 message parser. The zero value is not
// usable; construct with NewRequestParser or NewResponseParser.
type Parser struct {
	p *http1.Parser
}

// NewRequestParser constructs a Parser for request-line grammar
// ("METHOD target HTTP/x.y"), regardless of what cfg.Variant is set to.
func NewRequestParser(cfg Config) *Parser {
	cfg.Variant = config.Request
	return &Parser{p: http1.NewParser(cfg)}
}

// NewResponseParser constructs a Parser for status-line grammar
// ("HTTP/x.y code reason"), regardless of what cfg.Variant is set to.
func NewResponseParser(cfg Config) *Parser {
	cfg.Variant = config.Response
	return &Parser{p: http1.NewParser(cfg)}
}

// Reset returns the parser to its initial state for a new message on the
// same connection, retaining the underlying buffer's capacity.
func (p *Parser) Reset() { p.p.Reset() }

// Prepare returns a writable region of at least one byte the caller should
// fill and then hand back via Commit. A second Prepare call without an
// intervening Commit returns the same region.
func (p *Parser) Prepare() (region []byte, ok bool) { return p.p.Prepare() }

// Commit advances the committed cursor by n bytes from the most recent
// Prepare call. Commit(0) is a legal no-op, useful when a read returned
// zero bytes without error.
func (p *Parser) Commit(n int) { p.p.Commit(n) }

// CommitEOF marks the input stream as permanently ended: no more bytes
// will ever be committed. A parser waiting on NeedMore past this point
// fails with status.ErrIncomplete instead of hanging forever.
func (p *Parser) CommitEOF() { p.p.CommitEOF() }

// ParseHeader advances through the start-line and every header field. It
// returns Done once the header block's terminating CRLF has been consumed
// (the parser is then positioned to read the body, if any), NeedMore if
// more bytes must be committed first, and a non-nil error for anything
// from a syntax violation to a header-limit overrun. Once it returns Done,
// further calls also return Done without doing any work.
func (p *Parser) ParseHeader() (Status, error) { return p.p.ParseHeader() }

// ParseBodyPart returns the next slice of body data, borrowed from the
// internal buffer and valid only until the next Prepare/Commit/Advance.
// It dispatches on the framing resolved while parsing headers
// (Content-Length, chunked, or run-to-EOF) and returns Done once the body
// is fully delivered.
func (p *Parser) ParseBodyPart() (data []byte, status Status, err error) {
	return p.p.ParseBodyPart()
}

// ParseBody drives ParseBodyPart to completion, accumulating the body for
// Body to return. Prefer ParseBodyPart directly when the body may be
// large: this copies every part into one growing slice.
func (p *Parser) ParseBody() (Status, error) { return p.p.ParseBody() }

// Body returns the body accumulated by ParseBody. It is nil until
// ParseBody has been called at least once.
func (p *Parser) Body() []byte { return p.p.Body() }

// Method returns the request method token. Only meaningful after
// ParseHeader on a request-variant Parser.
func (p *Parser) Method() string { return p.p.Method() }

// Target returns the request-target, byte-preserved verbatim. Only
// meaningful after ParseHeader on a request-variant Parser.
func (p *Parser) Target() string { return p.p.Target() }

// StatusCode returns the status-code. Only meaningful after ParseHeader on
// a response-variant Parser.
func (p *Parser) StatusCode() int { return p.p.StatusCode() }

// Reason returns the reason-phrase, byte-preserved verbatim. Only
// meaningful after ParseHeader on a response-variant Parser.
func (p *Parser) Reason() string { return p.p.Reason() }

// Minor returns the HTTP minor version (0 or 1).
func (p *Parser) Minor() uint8 { return p.p.Minor() }

// Headers returns the parsed field container. Valid until the next Reset;
// call Headers().Detach() to keep a copy across it.
func (p *Parser) Headers() *Headers { return p.p.Headers() }

// Trailers returns the chunked trailer container, or nil if the body
// isn't chunked or the trailer section hasn't been reached yet.
func (p *Parser) Trailers() *Headers { return p.p.Trailers() }

// HasBody reports whether this message is declared to carry a body at
// all, per the framing rules in RFC 7230 §3.3.
func (p *Parser) HasBody() bool { return p.p.HasBody() }

// Chunked reports whether Transfer-Encoding resolved to chunked framing.
func (p *Parser) Chunked() bool { return p.p.Chunked() }

// ContentLength returns the declared body length and whether one was
// declared (false for chunked or run-to-EOF bodies).
func (p *Parser) ContentLength() (int64, bool) { return p.p.ContentLength() }

// KeepAlive reports the connection persistence disposition: an explicit
// Connection token if present, otherwise the HTTP version default (true
// for HTTP/1.1, false for HTTP/1.0).
func (p *Parser) KeepAlive() bool { return p.p.KeepAlive() }

// UpgradeRequested reports whether both a "Connection: upgrade" token and
// an Upgrade field were present.
func (p *Parser) UpgradeRequested() bool { return p.p.UpgradeRequested() }

// UpgradeProducts returns the parsed "protocol[/version]" tokens from the
// message's Upgrade field, in field-value order. It returns nil if no
// Upgrade field was present, regardless of UpgradeRequested.
func (p *Parser) UpgradeProducts() []proto.Product { return p.p.UpgradeProducts() }
