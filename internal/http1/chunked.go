package http1

import (
	"bytes"

	"github.com/httpcore-go/httpcore/headers"
	"github.com/httpcore-go/httpcore/internal/bnf"
	"github.com/httpcore-go/httpcore/internal/charset"
	"github.com/httpcore-go/httpcore/internal/hexconv"
	"github.com/httpcore-go/httpcore/internal/strutil"
	"github.com/httpcore-go/httpcore/status"
)

// chunkExtList walks the "; name" or "; name=value" parameters following a
// chunk-size, one bnf.List increment per parameter. Extension values are
// discarded: nothing in this package inspects a chunk-ext's meaning, only
// its well-formedness.
type chunkExtList struct{}

func (chunkExtList) Begin(data []byte) (int, bnf.Status, error) {
	return chunkExtList{}.step(data, 0)
}

func (chunkExtList) Increment(data []byte, pos int) (int, bnf.Status, error) {
	return chunkExtList{}.step(data, pos)
}

func (chunkExtList) step(data []byte, pos int) (int, bnf.Status, error) {
	if pos >= len(data) {
		return pos, bnf.End, nil
	}
	if data[pos] != ';' {
		return pos, bnf.End, nil
	}

	i := pos + 1
	for i < len(data) && charset.IsOWS(data[i]) {
		i++
	}

	nameStart := i
	for i < len(data) && charset.IsTchar(data[i]) {
		i++
	}
	if i == nameStart {
		return 0, bnf.OK, status.ErrBadChunk
	}

	if i < len(data) && data[i] == '=' {
		i++
		valueStart := i
		for i < len(data) && charset.IsTchar(data[i]) {
			i++
		}
		if i == valueStart {
			return 0, bnf.OK, status.ErrBadChunk
		}
	}

	return i, bnf.OK, nil
}

// maxChunkSizeDigits bounds chunk-size to 8 hex digits (32 bits), well past
// any chunk a real sender writes, and keeps the accumulator below overflow
// without a separate bounds check per digit.
const maxChunkSizeDigits = 8

type chunkSubState uint8

const (
	csSize chunkSubState = iota
	csData
	csDataCRLF
	csTrailer
	csTrailerDone
)

// chunkedParser holds the chunk transfer-coding decoder's resumable state,
// separate from the header parser's subState since the two never run at the
// same time but do share the same Parser for buffer access and dispatch.
type chunkedParser struct {
	sub       chunkSubState
	remaining int64
	lastChunk bool
}

func newChunkedParser() chunkedParser {
	return chunkedParser{sub: csSize}
}

// ParseChunkExt advances past one chunk-size line (chunk-size and its
// optional chunk-ext), validating but discarding the extension parameters.
// Returns Done once the line is fully consumed; the caller then reads the
// chunk body with ParseChunkPart, or the trailer section with
// ParseChunkTrailer if this was the terminating zero-size chunk.
func (p *Parser) ParseChunkExt() (Status, error) {
	if p.state == Failed {
		return 0, p.err
	}
	if p.chunk.sub != csSize {
		return Done, nil
	}

	data := p.buf.Unparsed()
	lf := bytes.IndexByte(data, '\n')
	if lf == -1 {
		return p.needMoreBody()
	}
	if lf == 0 || data[lf-1] != '\r' {
		return p.fail(status.ErrBadChunk)
	}

	line := data[:lf-1]

	i := 0
	for i < len(line) && hexconv.Halfbyte[line[i]] != 0xFF {
		i++
	}
	if i == 0 || i > maxChunkSizeDigits {
		return p.fail(status.ErrBadChunk)
	}

	var size uint64
	for j := 0; j < i; j++ {
		size = size<<4 | uint64(hexconv.Halfbyte[line[j]])
	}

	rest := line[i:]
	if len(rest) > 0 {
		next, st, _ := bnf.ConsumeList(chunkExtList{}, rest)
		if st != bnf.End || next != len(rest) {
			return p.fail(status.ErrBadChunk)
		}
	}

	p.buf.Advance(lf + 1)
	p.chunk.remaining = int64(size)

	if size == 0 {
		p.chunk.lastChunk = true
		p.chunk.sub = csTrailer
	} else {
		p.chunk.sub = csData
	}

	return Done, nil
}

// ParseChunkPart returns the next slice of the current chunk's body data.
// It never crosses a chunk boundary: when the current chunk is exhausted it
// consumes the trailing CRLF and returns Done, at which point the caller
// calls ParseChunkExt again for the next chunk (or ParseChunkTrailer, if
// ParseChunkExt's last call started the terminating zero-size chunk).
func (p *Parser) ParseChunkPart() (data []byte, status_ Status, err error) {
	if p.state == Failed {
		return nil, 0, p.err
	}

	switch p.chunk.sub {
	case csData:
		unparsed := p.buf.Unparsed()
		if len(unparsed) == 0 {
			if p.chunk.remaining == 0 {
				p.chunk.sub = csDataCRLF
				return p.ParseChunkPart()
			}
			st, err := p.needMoreBody()
			return nil, st, err
		}

		n := int64(len(unparsed))
		if n > p.chunk.remaining {
			n = p.chunk.remaining
		}

		part := unparsed[:n]
		p.buf.Advance(int(n))
		p.chunk.remaining -= n

		if p.chunk.remaining == 0 {
			p.chunk.sub = csDataCRLF
		}

		return part, OK, nil

	case csDataCRLF:
		crlf := p.buf.Unparsed()
		if len(crlf) < 2 {
			st, err := p.needMoreBody()
			return nil, st, err
		}
		if crlf[0] != '\r' || crlf[1] != '\n' {
			_, err := p.fail(status.ErrBadChunk)
			return nil, 0, err
		}
		p.buf.Advance(2)
		p.chunk.sub = csSize
		return nil, Done, nil

	default:
		return nil, Done, nil
	}
}

// ParseChunkTrailer advances through the trailer field section following
// the terminating zero-size chunk, populating Trailers(). Trailer fields do
// not support obs-fold: it is obsolete syntax already, and RFC 7230 never
// requires trailer producers to use it.
func (p *Parser) ParseChunkTrailer() (Status, error) {
	if p.state == Failed {
		return 0, p.err
	}
	if p.chunk.sub == csTrailerDone {
		return Done, nil
	}
	if p.trailers == nil {
		p.trailers = headers.New(p.cfg.ValidateFieldCharacters)
	}

	for {
		data := p.buf.Unparsed()
		if len(data) == 0 {
			return p.needMoreBody()
		}

		if data[0] == '\r' {
			if len(data) < 2 {
				return p.needMoreBody()
			}
			if data[1] != '\n' {
				return p.fail(status.ErrBadLineEnding)
			}
			p.buf.Advance(2)
			p.chunk.sub = csTrailerDone
			p.state = Complete
			return Done, nil
		}

		lf := bytes.IndexByte(data, '\n')
		if lf == -1 {
			return p.needMoreBody()
		}
		if lf == 0 || data[lf-1] != '\r' {
			return p.fail(status.ErrBadLineEnding)
		}

		colon := bytes.IndexByte(data[:lf-1], ':')
		if colon == -1 {
			return p.fail(status.ErrBadField)
		}

		name := data[:colon]
		value := strutil.LStripWS(strutil.RStripWS(string(data[colon+1 : lf-1])))
		if len(name) == 0 {
			return p.fail(status.ErrBadField)
		}

		if err := p.trailers.AppendName(string(name), value); err != nil {
			return p.fail(err)
		}

		p.buf.Advance(lf + 1)
	}
}
