// Package buffer implements the resumable input buffer the parser reads
// from: a growable byte slice with two cursors, committed and parsed,
// letting the state machine suspend mid-message and resume once the caller
// delivers more bytes.
package buffer

// growthIncrement is the fixed step capacity grows by once the tail free
// space runs out, mirroring the teacher's Append-triggered grow-by-need but
// applied up front in Prepare instead of lazily inside append.
const growthIncrement = 4096

// Buffer is a single growable byte region with two cursors: committed marks
// how much the caller has supplied, parsed marks how much the state machine
// has consumed. The invariant 0 <= parsed <= committed <= len(memory) holds
// across every public method.
type Buffer struct {
	memory    []byte
	committed int
	parsed    int
	eof       bool

	// hardLimit is the maximum total size memory may grow to. It starts at
	// the header-size limit and is raised once to the body limit when the
	// caller calls RaiseLimit after headers complete.
	hardLimit int
}

// New allocates a Buffer with the given initial capacity, capped by limit.
// A limit of 0 means unbounded.
func New(initialSize, limit int) *Buffer {
	return &Buffer{
		memory:    make([]byte, initialSize),
		hardLimit: limit,
	}
}

// Prepare returns a writable region of at least 1 byte past the committed
// mark, growing the underlying slice if the tail is exhausted. It returns
// ok=false if the buffer is already at its hard limit.
func (b *Buffer) Prepare() (region []byte, ok bool) {
	if len(b.memory)-b.committed == 0 {
		if !b.grow() {
			return nil, false
		}
	}

	return b.memory[b.committed:], true
}

func (b *Buffer) grow() bool {
	newCap := len(b.memory) + growthIncrement
	if b.hardLimit > 0 && newCap > b.hardLimit {
		newCap = b.hardLimit
	}
	if newCap <= len(b.memory) {
		return false
	}

	grown := make([]byte, newCap)
	copy(grown, b.memory[:b.committed])
	b.memory = grown

	return true
}

// Commit advances the committed cursor by n, which must satisfy
// 0 <= n <= len(region) from the most recent Prepare call. commit(0) is a
// legal no-op. Violating the bound is a caller bug and panics.
func (b *Buffer) Commit(n int) {
	if n == 0 {
		return
	}
	if n < 0 || b.committed+n > len(b.memory) {
		panic("buffer: commit out of bounds")
	}

	b.committed += n
}

// CommitEOF marks the input stream as ended: no further bytes will ever be
// committed. Body framing that runs "until EOF" relies on this flag.
func (b *Buffer) CommitEOF() {
	b.eof = true
}

// EOF reports whether CommitEOF has been called.
func (b *Buffer) EOF() bool {
	return b.eof
}

// Unparsed returns the committed-but-not-yet-parsed byte range.
func (b *Buffer) Unparsed() []byte {
	return b.memory[b.parsed:b.committed]
}

// Advance moves the parsed cursor forward by n bytes, which must not exceed
// the unparsed length.
func (b *Buffer) Advance(n int) {
	if n < 0 || b.parsed+n > b.committed {
		panic("buffer: advance out of bounds")
	}

	b.parsed += n
}

// Parsed returns the absolute position of the parsed cursor, usable as a
// stable offset for spans recorded before further growth.
func (b *Buffer) Parsed() int {
	return b.parsed
}

// Committed returns the absolute position of the committed cursor.
func (b *Buffer) Committed() int {
	return b.committed
}

// Bytes returns the full backing slice from offset 0 up to the committed
// mark. Spans recorded by earlier parses remain valid indices into it, since
// grow() only ever reallocates a bigger slice and copies the same prefix.
func (b *Buffer) Bytes() []byte {
	return b.memory[:b.committed]
}

// At returns the byte at an absolute offset previously returned by Parsed
// or recorded in a span.
func (b *Buffer) At(offset int) byte {
	return b.memory[offset]
}

// Slice returns memory[start:end], an absolute-offset view used to resolve
// recorded spans back into bytes.
func (b *Buffer) Slice(start, end int) []byte {
	return b.memory[start:end]
}

// RaiseLimit replaces the hard limit, used when the header phase completes
// and the body phase's (possibly larger, possibly unbounded) limit takes
// over. Lowering the limit below the current size is not supported and is
// a caller bug.
func (b *Buffer) RaiseLimit(limit int) {
	b.hardLimit = limit
}

// Reset returns the buffer to its freshly constructed state, retaining the
// underlying allocation so the next message reuses it without a fresh
// allocation.
func (b *Buffer) Reset() {
	b.committed = 0
	b.parsed = 0
	b.eof = false
}
