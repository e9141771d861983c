// Package http1 implements the resumable HTTP/1.1 message parser: the
// start-line/fields state machine, the Content-Length/chunked/EOF body
// framers, and the chunked sub-decoder.
package http1

import (
	"bytes"
	"math"
	"strings"

	"github.com/httpcore-go/httpcore/config"
	"github.com/httpcore-go/httpcore/headers"
	"github.com/httpcore-go/httpcore/http/field"
	"github.com/httpcore-go/httpcore/http/proto"
	"github.com/httpcore-go/httpcore/internal/buffer"
	"github.com/httpcore-go/httpcore/internal/charset"
	"github.com/httpcore-go/httpcore/internal/strcomp"
	"github.com/httpcore-go/httpcore/internal/strutil"
	"github.com/httpcore-go/httpcore/status"
)

type subState uint8

const (
	sMethod subState = iota
	sTarget
	sRequestVersion
	sResponseVersion
	sStatusCode
	sReason
	sFieldName
	sFieldValue
)

// Parser is the resumable HTTP/1.1 message parser. The zero value is not
// usable; construct with NewParser.
type Parser struct {
	cfg    config.Config
	buf    *buffer.Buffer
	fields *headers.Headers

	state    State
	subState subState
	err      error

	methodOff, methodLen int
	targetOff, targetLen int
	statusCode            int
	reasonOff, reasonLen  int
	minor                 uint8

	fieldNameOff, fieldNameLen int
	fieldValueOff, fieldValueLen int
	valueStart             int
	valueHadFold           bool
	valueContentSinceFold  bool

	haveContentLength        bool
	contentLength            int64
	metTransferEncoding      bool
	chunked                  bool
	haveConnection           bool
	keepAliveFromConnection  bool
	connHasUpgradeToken      bool
	haveUpgradeField         bool
	upgradeProducts          []proto.Product

	chunk    chunkedParser
	trailers *headers.Headers

	bodyLimitAt   int
	bodyDelivered int64
	materialized  []byte
}

// NewParser constructs a Parser for one message variant, chosen by
// cfg.Variant. The parser starts in its initial state; call Reset between
// messages on the same connection to reuse the underlying buffer.
func NewParser(cfg config.Config) *Parser {
	p := &Parser{cfg: cfg}
	p.buf = buffer.New(initialBufferSize(cfg), cfg.HeaderLimit)
	p.resetMessage()
	return p
}

func initialBufferSize(cfg config.Config) int {
	const want = 512
	if cfg.HeaderLimit > 0 && cfg.HeaderLimit < want {
		return cfg.HeaderLimit
	}
	return want
}

func (p *Parser) resetMessage() {
	if p.fields != nil {
		p.fields.Clear()
	} else {
		p.fields = headers.New(p.cfg.ValidateFieldCharacters)
	}

	p.state = StartLine
	if p.cfg.Variant == config.Response {
		p.subState = sResponseVersion
	} else {
		p.subState = sMethod
	}
	p.err = nil

	p.methodOff, p.methodLen = 0, 0
	p.targetOff, p.targetLen = 0, 0
	p.statusCode = 0
	p.reasonOff, p.reasonLen = 0, 0
	p.minor = 0

	p.fieldNameOff, p.fieldNameLen = 0, 0
	p.fieldValueOff, p.fieldValueLen = 0, 0
	p.valueStart = -1
	p.valueHadFold = false
	p.valueContentSinceFold = false

	p.haveContentLength = false
	p.contentLength = 0
	p.metTransferEncoding = false
	p.chunked = false
	p.haveConnection = false
	p.keepAliveFromConnection = false
	p.connHasUpgradeToken = false
	p.haveUpgradeField = false
	p.upgradeProducts = nil

	p.chunk = newChunkedParser()
	p.trailers = nil

	p.bodyLimitAt = 0
	p.bodyDelivered = 0
	p.materialized = nil
}

// Reset returns the parser to its initial state for a new message on the
// same connection, retaining the buffer's capacity.
func (p *Parser) Reset() {
	p.buf.Reset()
	p.buf.RaiseLimit(p.cfg.HeaderLimit)
	p.resetMessage()
}

// Prepare returns a writable region of at least one byte.
func (p *Parser) Prepare() (region []byte, ok bool) {
	return p.buf.Prepare()
}

// Commit advances the committed cursor by n bytes from the most recent
// Prepare call. commit(0) is a legal no-op.
func (p *Parser) Commit(n int) {
	p.buf.Commit(n)
}

// CommitEOF marks the input stream as permanently ended.
func (p *Parser) CommitEOF() {
	p.buf.CommitEOF()
}

func (p *Parser) fail(err error) (Status, error) {
	p.state = Failed
	p.err = err
	return 0, err
}

func (p *Parser) headerLimitReached() bool {
	return p.cfg.HeaderLimit > 0 && p.buf.Committed() >= p.cfg.HeaderLimit
}

func (p *Parser) needMoreHeader() (Status, error) {
	if p.headerLimitReached() {
		return p.fail(status.ErrHeaderLimit)
	}
	if p.buf.EOF() {
		return p.fail(status.ErrIncomplete)
	}
	return NeedMore, nil
}

func (p *Parser) bodyLimitReached() bool {
	return p.bodyLimitAt > 0 && p.buf.Committed() >= p.bodyLimitAt
}

// needMoreBody is the body-phase counterpart to needMoreHeader: a stall
// past the body's hard limit fails with ErrBodyLimit instead of leaving
// the caller stuck forever waiting on a Prepare that will never grow
// further, and a stall after CommitEOF fails with ErrIncomplete.
func (p *Parser) needMoreBody() (Status, error) {
	if p.bodyLimitReached() {
		return p.fail(status.ErrBodyLimit)
	}
	if p.buf.EOF() {
		return p.fail(status.ErrIncomplete)
	}
	return NeedMore, nil
}

// ParseHeader fills state to the end of the fields section: the start-line
// and every header field. It is idempotent once headers are already
// complete.
func (p *Parser) ParseHeader() (Status, error) {
	if p.state == Failed {
		return 0, p.err
	}
	if p.state != StartLine && p.state != Fields {
		return Done, nil
	}

scan:
	for {
		data := p.buf.Unparsed()

		switch p.subState {
		case sMethod:
			i := bytes.IndexByte(data, ' ')
			if i == -1 {
				return p.needMoreHeader()
			}
			if i == 0 {
				return p.fail(status.ErrBadVersion)
			}
			for _, c := range data[:i] {
				if !charset.IsTchar(c) {
					return p.fail(status.ErrBadVersion)
				}
			}
			p.methodOff, p.methodLen = p.buf.Parsed(), i
			p.buf.Advance(i + 1)
			p.subState = sTarget
			continue scan

		case sTarget:
			i := bytes.IndexByte(data, ' ')
			if i == -1 {
				return p.needMoreHeader()
			}
			if i == 0 {
				return p.fail(status.ErrBadVersion)
			}
			for _, c := range data[:i] {
				if c == '\r' || c == '\n' {
					return p.fail(status.ErrBadVersion)
				}
			}
			p.targetOff, p.targetLen = p.buf.Parsed(), i
			p.buf.Advance(i + 1)
			p.subState = sRequestVersion
			continue scan

		case sRequestVersion:
			lf := bytes.IndexByte(data, '\n')
			if lf == -1 {
				return p.needMoreHeader()
			}
			if lf == 0 || data[lf-1] != '\r' {
				return p.fail(status.ErrBadVersion)
			}
			pr := proto.FromBytes(data[:lf-1])
			if pr == proto.Unknown {
				return p.fail(status.ErrBadVersion)
			}
			minor, _ := pr.Minor()
			p.minor = minor
			p.buf.Advance(lf + 1)
			p.state = Fields
			p.subState = sFieldName
			continue scan

		case sResponseVersion:
			i := bytes.IndexByte(data, ' ')
			if i == -1 {
				return p.needMoreHeader()
			}
			pr := proto.FromBytes(data[:i])
			if pr == proto.Unknown {
				return p.fail(status.ErrBadVersion)
			}
			minor, _ := pr.Minor()
			p.minor = minor
			p.buf.Advance(i + 1)
			p.subState = sStatusCode
			continue scan

		case sStatusCode:
			for idx := 0; idx < 3; idx++ {
				if idx >= len(data) {
					return p.needMoreHeader()
				}
				if !charset.IsDigit(data[idx]) {
					return p.fail(status.ErrBadVersion)
				}
			}
			if len(data) < 4 {
				return p.needMoreHeader()
			}
			if data[3] != ' ' {
				return p.fail(status.ErrBadVersion)
			}
			p.statusCode = int(data[0]-'0')*100 + int(data[1]-'0')*10 + int(data[2]-'0')
			p.buf.Advance(4)
			p.subState = sReason
			continue scan

		case sReason:
			lf := bytes.IndexByte(data, '\n')
			if lf == -1 {
				return p.needMoreHeader()
			}
			if lf == 0 || data[lf-1] != '\r' {
				return p.fail(status.ErrBadVersion)
			}
			reason := data[:lf-1]
			for i := 0; i < len(reason); i++ {
				if !charset.IsVcharOrObsText(reason[i]) && !charset.IsOWS(reason[i]) {
					return p.fail(status.ErrBadVersion)
				}
			}
			p.reasonOff, p.reasonLen = p.buf.Parsed(), lf-1
			p.buf.Advance(lf + 1)
			p.state = Fields
			p.subState = sFieldName
			continue scan

		case sFieldName:
			if len(data) == 0 {
				return p.needMoreHeader()
			}
			if data[0] == '\r' {
				if len(data) < 2 {
					return p.needMoreHeader()
				}
				if data[1] != '\n' {
					return p.fail(status.ErrBadLineEnding)
				}
				p.buf.Advance(2)
				// Parsed(), not Committed(): the caller may have already
				// committed body bytes ahead of where parsing has reached,
				// and the limit must be anchored to the header length
				// actually consumed, not however much happens to sit in the
				// buffer at this instant.
				p.bodyLimitAt = bodyHardLimit(p.buf.Parsed(), p.cfg.BodyLimit)
				p.buf.RaiseLimit(p.bodyLimitAt)
				p.state = Body
				return Done, nil
			}
			if data[0] == '\n' {
				return p.fail(status.ErrBadLineEnding)
			}

			colon := bytes.IndexByte(data, ':')
			lf := bytes.IndexByte(data, '\n')
			if colon == -1 {
				if lf != -1 {
					return p.fail(status.ErrBadField)
				}
				return p.needMoreHeader()
			}
			if lf != -1 && lf < colon {
				return p.fail(status.ErrBadField)
			}

			name := data[:colon]
			if len(name) == 0 {
				return p.fail(status.ErrBadField)
			}
			for _, c := range name {
				if !charset.IsTchar(c) {
					return p.fail(status.ErrBadField)
				}
			}

			p.fieldNameOff, p.fieldNameLen = p.buf.Parsed(), colon
			p.buf.Advance(colon + 1)
			p.subState = sFieldValue
			continue scan

		case sFieldValue:
			if p.valueStart < 0 {
				i := 0
				for i < len(data) && charset.IsOWS(data[i]) {
					i++
				}
				if i == len(data) {
					return p.needMoreHeader()
				}
				p.buf.Advance(i)
				data = p.buf.Unparsed()
				p.valueStart = p.buf.Parsed()
				p.valueHadFold = false
				p.valueContentSinceFold = true
			}

			i := 0
			for {
				if i >= len(data) {
					return p.needMoreHeader()
				}

				switch data[i] {
				case '\r':
					if i+1 >= len(data) {
						return p.needMoreHeader()
					}
					if data[i+1] != '\n' {
						return p.fail(status.ErrBadLineEnding)
					}
					if i+2 >= len(data) {
						return p.needMoreHeader()
					}

					if data[i+2] == ' ' || data[i+2] == '\t' {
						// Look past the continuation's leading whitespace
						// before rewriting anything, so a fold into a blank
						// line is rejected however the input was split.
						j := i + 3
						for j < len(data) && charset.IsOWS(data[j]) {
							j++
						}
						if j >= len(data) {
							return p.needMoreHeader()
						}
						if data[j] == '\r' {
							return p.fail(status.ErrBadValue)
						}
						data[i], data[i+1], data[i+2] = ' ', ' ', ' '
						p.valueHadFold = true
						p.valueContentSinceFold = false
						i += 3
						continue
					}

					if p.valueHadFold && !p.valueContentSinceFold {
						return p.fail(status.ErrBadValue)
					}

					valueLen := trimTrailingOWSLen(data[:i])
					p.fieldValueOff, p.fieldValueLen = p.valueStart, valueLen
					p.buf.Advance(i + 2)
					p.valueStart = -1

					if err := p.dispatchField(); err != nil {
						return p.fail(err)
					}

					p.subState = sFieldName
					continue scan

				case '\n':
					return p.fail(status.ErrBadLineEnding)

				default:
					if !charset.IsFieldContent(data[i]) {
						return p.fail(status.ErrBadValue)
					}
					if !charset.IsOWS(data[i]) {
						p.valueContentSinceFold = true
					}
					i++
				}
			}
		}
	}
}

func bodyHardLimit(headerBytes, bodyLimit int) int {
	if bodyLimit == 0 {
		return 0
	}
	return headerBytes + bodyLimit
}

func trimTrailingOWSLen(b []byte) int {
	n := len(b)
	for n > 0 && charset.IsOWS(b[n-1]) {
		n--
	}
	return n
}

func (p *Parser) dispatchField() error {
	name := string(p.buf.Slice(p.fieldNameOff, p.fieldNameOff+p.fieldNameLen))
	value := string(p.buf.Slice(p.fieldValueOff, p.fieldValueOff+p.fieldValueLen))
	id := field.LookupID(name)

	switch id {
	case field.Connection, field.ProxyConnection:
		if err := p.dispatchConnection(value); err != nil {
			return err
		}
	case field.ContentLength:
		if err := p.dispatchContentLength(value); err != nil {
			return err
		}
	case field.TransferEncoding:
		if err := p.dispatchTransferEncoding(value); err != nil {
			return err
		}
	case field.Upgrade:
		p.haveUpgradeField = true
		p.upgradeProducts = proto.ParseUpgrade(value)
	}

	return p.fields.AppendName(name, value)
}

func (p *Parser) dispatchConnection(value string) error {
	toks, err := splitTokens(value)
	if err != nil {
		return err
	}

	for _, tok := range toks {
		switch {
		case strcomp.EqualFold(tok, "close"):
			p.haveConnection = true
			p.keepAliveFromConnection = false
		case strcomp.EqualFold(tok, "keep-alive"):
			p.haveConnection = true
			p.keepAliveFromConnection = true
		case strcomp.EqualFold(tok, "upgrade"):
			p.connHasUpgradeToken = true
		}
	}

	return nil
}

func (p *Parser) dispatchContentLength(value string) error {
	if p.metTransferEncoding {
		return status.ErrBadMessage
	}
	if len(value) == 0 {
		return status.ErrBadContentLength
	}

	var n int64
	for i := 0; i < len(value); i++ {
		c := value[i]
		if !charset.IsDigit(c) {
			return status.ErrBadContentLength
		}

		d := int64(c - '0')
		if n > (math.MaxInt64-d)/10 {
			return status.ErrBadContentLength
		}
		n = n*10 + d
	}

	if p.haveContentLength {
		if p.contentLength != n {
			return status.ErrBadContentLength
		}
		return nil
	}

	p.haveContentLength = true
	p.contentLength = n
	return nil
}

func (p *Parser) dispatchTransferEncoding(value string) error {
	if p.haveContentLength {
		return status.ErrBadMessage
	}

	toks, err := splitTokens(value)
	if err != nil {
		return err
	}
	if len(toks) == 0 {
		return status.ErrBadTransferEncoding
	}

	p.metTransferEncoding = true
	for i, tok := range toks {
		isChunked := strcomp.EqualFold(tok, "chunked")
		if isChunked {
			if i != len(toks)-1 {
				return status.ErrBadTransferEncoding
			}
			p.chunked = true
		} else if p.chunked {
			return status.ErrBadTransferEncoding
		}
	}

	return nil
}

func splitTokens(value string) ([]string, error) {
	var toks []string

	for len(value) > 0 {
		var tok string
		if i := strings.IndexByte(value, ','); i != -1 {
			tok, value = value[:i], value[i+1:]
		} else {
			tok, value = value, ""
		}

		tok = strutil.LStripWS(strutil.RStripWS(tok))
		if len(tok) == 0 {
			continue
		}
		if !charset.IsToken(tok) {
			return nil, status.ErrBadValue
		}

		toks = append(toks, tok)
	}

	return toks, nil
}

// Method returns the request method token. Only meaningful for the
// Request variant.
func (p *Parser) Method() string {
	return string(p.buf.Slice(p.methodOff, p.methodOff+p.methodLen))
}

// Target returns the request-target, byte-preserved verbatim. Only
// meaningful for the Request variant.
func (p *Parser) Target() string {
	return string(p.buf.Slice(p.targetOff, p.targetOff+p.targetLen))
}

// StatusCode returns the status-code. Only meaningful for the Response
// variant.
func (p *Parser) StatusCode() int {
	return p.statusCode
}

// Reason returns the reason-phrase, byte-preserved verbatim. Only
// meaningful for the Response variant.
func (p *Parser) Reason() string {
	return string(p.buf.Slice(p.reasonOff, p.reasonOff+p.reasonLen))
}

// Minor returns the HTTP minor version (0 or 1).
func (p *Parser) Minor() uint8 {
	return p.minor
}

// Headers returns the parsed field container. Valid until the next Reset.
func (p *Parser) Headers() *headers.Headers {
	return p.fields
}

// Trailers returns the chunked trailer container, or nil if the body isn't
// chunked or the trailer section hasn't been reached yet.
func (p *Parser) Trailers() *headers.Headers {
	return p.trailers
}

// HasBody reports whether this message is declared to carry a body at
// all, per the framing rules in RFC 7230 §3.3.
func (p *Parser) HasBody() bool {
	if p.chunked || p.haveContentLength {
		return p.contentLength != 0 || p.chunked
	}
	return p.cfg.Variant == config.Response
}

// Chunked reports whether Transfer-Encoding resolved to chunked framing.
func (p *Parser) Chunked() bool {
	return p.chunked
}

// ContentLength returns the declared body length and whether one was
// declared (false for chunked or no-framing bodies).
func (p *Parser) ContentLength() (int64, bool) {
	return p.contentLength, p.haveContentLength
}

// KeepAlive reports the connection persistence disposition: the last
// "close" or "keep-alive" Connection token if present, otherwise the HTTP
// version default.
func (p *Parser) KeepAlive() bool {
	if p.haveConnection {
		return p.keepAliveFromConnection
	}
	return p.minor == 1
}

// UpgradeRequested reports whether both a Connection: upgrade token and an
// Upgrade field were present.
func (p *Parser) UpgradeRequested() bool {
	return p.connHasUpgradeToken && p.haveUpgradeField
}

// UpgradeProducts returns the parsed "protocol[/version]" tokens from the
// message's Upgrade field, in field-value order. It returns nil if no
// Upgrade field was present, regardless of UpgradeRequested.
func (p *Parser) UpgradeProducts() []proto.Product {
	return p.upgradeProducts
}
