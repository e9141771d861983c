package http1

import (
	"github.com/httpcore-go/httpcore/config"
	"github.com/httpcore-go/httpcore/status"
)

// bodyKind classifies how the current message's body length is framed, so
// ParseBodyPart can dispatch without recomputing it from the raw field
// state on every call.
type bodyKind uint8

const (
	bodyNone bodyKind = iota
	bodyChunked
	bodyLength
	bodyUntilEOF
)

func (p *Parser) bodyKind() bodyKind {
	switch {
	case p.chunked:
		return bodyChunked
	case p.haveContentLength:
		if p.contentLength == 0 {
			return bodyNone
		}
		return bodyLength
	case p.cfg.Variant == config.Response:
		return bodyUntilEOF
	default:
		return bodyNone
	}
}

// ParseBodyPart returns the next slice of body data. status is OK when data
// was produced and more may follow, Done when the body is fully consumed
// (data may be non-empty on the same call that returns Done).
func (p *Parser) ParseBodyPart() (data []byte, status_ Status, err error) {
	if p.state == Failed {
		return nil, 0, p.err
	}
	if p.state == Complete {
		return nil, Done, nil
	}

	switch p.bodyKind() {
	case bodyNone:
		p.state = Complete
		return nil, Done, nil

	case bodyChunked:
		return p.parseChunkedBodyPart()

	case bodyLength:
		return p.parseLengthBodyPart()

	case bodyUntilEOF:
		return p.parseEOFBodyPart()

	default:
		p.state = Complete
		return nil, Done, nil
	}
}

func (p *Parser) parseChunkedBodyPart() ([]byte, Status, error) {
	if p.chunk.sub == csSize {
		st, err := p.ParseChunkExt()
		if err != nil {
			return nil, 0, err
		}
		if st != Done {
			return nil, NeedMore, nil
		}
	}
	if p.chunk.lastChunk {
		return p.drainTrailer()
	}

	part, st, err := p.ParseChunkPart()
	if err != nil {
		return nil, 0, err
	}
	if st == NeedMore {
		return nil, NeedMore, nil
	}

	// st == Done here means this chunk's data and trailing CRLF are fully
	// consumed and chunk.sub is back to csSize; the caller re-invokes
	// ParseBodyPart to read the next chunk-size line. st == OK means part
	// holds a slice of this chunk's data with more remaining.
	return part, OK, nil
}

func (p *Parser) drainTrailer() ([]byte, Status, error) {
	st, err := p.ParseChunkTrailer()
	if err != nil {
		return nil, 0, err
	}
	if st != Done {
		return nil, NeedMore, nil
	}
	return nil, Done, nil
}

func (p *Parser) parseLengthBodyPart() ([]byte, Status, error) {
	if p.bodyDelivered >= p.contentLength {
		p.state = Complete
		return nil, Done, nil
	}

	unparsed := p.buf.Unparsed()
	if len(unparsed) == 0 {
		if p.buf.EOF() {
			return nil, 0, status.ErrIncomplete
		}
		st, err := p.needMoreBody()
		return nil, st, err
	}

	remaining := p.contentLength - p.bodyDelivered
	n := int64(len(unparsed))
	if n > remaining {
		n = remaining
	}

	part := unparsed[:n]
	p.buf.Advance(int(n))
	p.bodyDelivered += n

	if p.bodyDelivered >= p.contentLength {
		p.state = Complete
		return part, Done, nil
	}

	return part, OK, nil
}

func (p *Parser) parseEOFBodyPart() ([]byte, Status, error) {
	unparsed := p.buf.Unparsed()
	if len(unparsed) > 0 {
		p.buf.Advance(len(unparsed))
		p.bodyDelivered += int64(len(unparsed))
		return unparsed, OK, nil
	}

	if p.buf.EOF() {
		p.state = Complete
		return nil, Done, nil
	}

	st, err := p.needMoreBody()
	return nil, st, err
}

// ParseBody materializes the entire body into one buffer, driving
// ParseBodyPart to completion. Prefer ParseBodyPart for large or streamed
// bodies; this is the convenience path for small messages.
func (p *Parser) ParseBody() (Status, error) {
	for {
		part, st, err := p.ParseBodyPart()
		if err != nil {
			return 0, err
		}
		if len(part) > 0 {
			p.materialized = append(p.materialized, part...)
		}
		if st == Done {
			return Done, nil
		}
		if st == NeedMore {
			return NeedMore, nil
		}
	}
}

// Body returns the body materialized so far by ParseBody.
func (p *Parser) Body() []byte {
	return p.materialized
}
