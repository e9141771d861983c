// Package proto identifies the HTTP-version token of a start-line.
package proto

// Proto is a bitset so a caller can test membership ("is this either HTTP/1.x
// version") as cheaply as testing equality, the same trick the teacher used
// to test Upgrade targets against a protocol family.
type Proto uint8

const (
	Unknown Proto = 0
	HTTP10  Proto = 1 << iota
	HTTP11

	// HTTP1 matches either minor version of HTTP/1.
	HTTP1 = HTTP10 | HTTP11
)

func (p Proto) String() string {
	switch p {
	case HTTP10:
		return "HTTP/1.0"
	case HTTP11:
		return "HTTP/1.1"
	default:
		return ""
	}
}

// Minor returns the minor version number (0 or 1) this spec cares about, and
// false if p isn't a recognized single version.
func (p Proto) Minor() (minor uint8, ok bool) {
	switch p {
	case HTTP10:
		return 0, true
	case HTTP11:
		return 1, true
	default:
		return 0, false
	}
}

// FromBytes resolves the literal HTTP-version token. Per RFC 7230 §2.6, the
// grammar is fixed-format: anything other than exactly "HTTP/1.0" or
// "HTTP/1.1" is Unknown, which the caller must turn into status.ErrBadVersion.
func FromBytes(raw []byte) Proto {
	// the string(raw) comparisons below don't allocate: the compiler
	// recognizes "comparison of a []byte conversion against a string
	// constant" and compares byte-by-byte instead.
	switch string(raw) {
	case "HTTP/1.0":
		return HTTP10
	case "HTTP/1.1":
		return HTTP11
	default:
		return Unknown
	}
}
