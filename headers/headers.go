// Package headers implements the header container: a compact, append-only
// store of (field-id, name, value) triples over one contiguous byte buffer
// that also holds their serialized form, modeled on Boost.http_proto's
// headers class.
//
// Unlike the C++ original, entries do not alias the parser's message
// buffer: the container owns its own buffer and the parser copies bytes
// into it (after obs-fold normalization) as fields are recognized. This
// sidesteps the cross-buffer lifetime coupling a shared allocation would
// need in a garbage-collected language, while keeping the same
// offset+length-not-pointer discipline inside the container's own buffer,
// so growth here only ever invalidates previously returned slices, never
// the entries themselves.
package headers

import (
	"iter"

	"github.com/httpcore-go/httpcore/http/field"
	"github.com/httpcore-go/httpcore/internal/charset"
	"github.com/httpcore-go/httpcore/internal/strcomp"
	"github.com/httpcore-go/httpcore/status"
)

// alignment is the quantum buffer capacity is rounded up to, matching the
// C++ origin's align_up: an entry table interleaved with the byte buffer
// needs aligned placement, and rounding growth to a fixed quantum also cuts
// down on reallocation churn for the steady trickle of small appends a
// field-by-field build produces.
const alignment = 16

func alignUp(n int) int {
	return (n + alignment - 1) &^ (alignment - 1)
}

// Entry is one field's identity and its spans into the container's buffer.
// Offsets are uint32, not int: the C++ origin bounds them to uint16_t on
// the assumption of a capped buffer, and a header container here is bound
// the same way (config.HeaderLimit), so 32 bits is a wide margin over that
// bound without paying for a full machine word per field.
type Entry struct {
	ID      field.FieldId
	NameOff uint32
	NameLen uint32
	ValOff  uint32
	ValLen  uint32
}

// Headers is the header container. The zero value is not usable; construct
// with New.
type Headers struct {
	buf      []byte
	entries  []Entry
	prefixN  int
	fieldsN  int
	validate bool
}

// New constructs an empty Headers. validate controls whether Append and
// AppendName reject non-token names or non-field-content values.
func New(validate bool) *Headers {
	h := &Headers{validate: validate}
	h.ensureTerminator()
	return h
}

func (h *Headers) ensureTerminator() {
	need := h.prefixN + h.fieldsN + 2
	if len(h.buf) < need {
		grown := make([]byte, alignUp(need))
		copy(grown, h.buf)
		h.buf = grown
	}
	h.buf[h.prefixN+h.fieldsN] = '\r'
	h.buf[h.prefixN+h.fieldsN+1] = '\n'
}

// Size returns the number of fields in the container.
func (h *Headers) Size() int {
	return len(h.entries)
}

// Index returns the i-th field. Precondition: i < Size().
func (h *Headers) Index(i int) Entry {
	return h.entries[i]
}

// At bounds-checks i and returns the i-th field.
func (h *Headers) At(i int) (Entry, bool) {
	if i < 0 || i >= len(h.entries) {
		return Entry{}, false
	}

	return h.entries[i], true
}

// Name returns the field name text for an entry, as stored on the wire.
func (h *Headers) Name(e Entry) string {
	return string(h.buf[e.NameOff : e.NameOff+e.NameLen])
}

// Value returns the field value text for an entry.
func (h *Headers) Value(e Entry) string {
	return string(h.buf[e.ValOff : e.ValOff+e.ValLen])
}

func u32(n int) uint32 { return uint32(n) }

// Exists reports whether a field with the given id is present.
func (h *Headers) Exists(id field.FieldId) bool {
	_, ok := h.Find(id)
	return ok
}

// ExistsName reports whether a field with the given name is present,
// case-insensitively.
func (h *Headers) ExistsName(name string) bool {
	_, ok := h.FindName(name)
	return ok
}

// Count returns the number of fields matching id.
func (h *Headers) Count(id field.FieldId) int {
	n := 0
	for _, e := range h.entries {
		if e.ID == id && id != field.Unknown {
			n++
		}
	}
	return n
}

// CountName returns the number of fields matching name, case-insensitively.
func (h *Headers) CountName(name string) int {
	n := 0
	for _, e := range h.entries {
		if strcomp.EqualFold(h.Name(e), name) {
			n++
		}
	}
	return n
}

// Find returns the index of the first field matching id.
func (h *Headers) Find(id field.FieldId) (int, bool) {
	if id == field.Unknown {
		return -1, false
	}
	for i, e := range h.entries {
		if e.ID == id {
			return i, true
		}
	}
	return -1, false
}

// FindName returns the index of the first field matching name,
// case-insensitively.
func (h *Headers) FindName(name string) (int, bool) {
	for i, e := range h.entries {
		if strcomp.EqualFold(h.Name(e), name) {
			return i, true
		}
	}
	return -1, false
}

// ValueByID returns the value of the first field matching id, or
// status.ErrHeaderNotFound if none exists.
func (h *Headers) ValueByID(id field.FieldId) (string, error) {
	i, ok := h.Find(id)
	if !ok {
		return "", status.ErrHeaderNotFound
	}
	return h.Value(h.entries[i]), nil
}

// ValueByName returns the value of the first field matching name, or
// status.ErrHeaderNotFound if none exists.
func (h *Headers) ValueByName(name string) (string, error) {
	i, ok := h.FindName(name)
	if !ok {
		return "", status.ErrHeaderNotFound
	}
	return h.Value(h.entries[i]), nil
}

// ValueOr returns the value of the first field matching id, or def.
func (h *Headers) ValueOr(id field.FieldId, def string) string {
	if v, err := h.ValueByID(id); err == nil {
		return v
	}
	return def
}

// ValueOrName returns the value of the first field matching name, or def.
func (h *Headers) ValueOrName(name, def string) string {
	if v, err := h.ValueByName(name); err == nil {
		return v
	}
	return def
}

// Matching iterates the values of every field matching id, in insertion
// order.
func (h *Headers) Matching(id field.FieldId) iter.Seq[string] {
	return func(yield func(string) bool) {
		if id == field.Unknown {
			return
		}
		for _, e := range h.entries {
			if e.ID == id {
				if !yield(h.Value(e)) {
					return
				}
			}
		}
	}
}

// MatchingName iterates the values of every field matching name,
// case-insensitively, in insertion order.
func (h *Headers) MatchingName(name string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, e := range h.entries {
			if strcomp.EqualFold(h.Name(e), name) {
				if !yield(h.Value(e)) {
					return
				}
			}
		}
	}
}

// All iterates every field in insertion order.
func (h *Headers) All() iter.Seq2[int, Entry] {
	return func(yield func(int, Entry) bool) {
		for i, e := range h.entries {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Str returns the full serialized form: prefix, field lines, terminating
// CRLF.
func (h *Headers) Str() string {
	return string(h.buf[:h.prefixN+h.fieldsN+2])
}

// Prefix returns the current prefix region, writable in place.
func (h *Headers) Prefix() []byte {
	return h.buf[:h.prefixN]
}

// ResizePrefix reserves exactly n bytes of prefix space and returns a
// writable view over it. Any slice previously returned by Prefix is
// invalidated (Name and Value return copies and are unaffected): growing
// or shrinking the prefix shifts every byte after it, and every entry
// span is rewritten to match.
func (h *Headers) ResizePrefix(n int) []byte {
	delta := n - h.prefixN
	if delta != 0 {
		need := n + h.fieldsN + 2
		if need > len(h.buf) {
			grown := make([]byte, alignUp(need))
			copy(grown, h.buf[:h.prefixN])
			copy(grown[n:], h.buf[h.prefixN:h.prefixN+h.fieldsN])
			h.buf = grown
		} else {
			// copy handles the overlap correctly regardless of direction.
			copy(h.buf[n:n+h.fieldsN], h.buf[h.prefixN:h.prefixN+h.fieldsN])
		}

		for i := range h.entries {
			h.entries[i].NameOff = u32(int(h.entries[i].NameOff) + delta)
			h.entries[i].ValOff = u32(int(h.entries[i].ValOff) + delta)
		}

		h.prefixN = n
	}

	h.ensureTerminator()
	return h.buf[:h.prefixN]
}

// Reserve ensures the buffer can hold at least n more bytes without
// reallocating.
func (h *Headers) Reserve(n int) {
	need := h.prefixN + h.fieldsN + 2 + n
	if need <= len(h.buf) {
		return
	}

	grown := make([]byte, alignUp(need))
	copy(grown, h.buf)
	h.buf = grown
}

// ShrinkToFit trims spare capacity from the buffer.
func (h *Headers) ShrinkToFit() {
	need := h.prefixN + h.fieldsN + 2
	if len(h.buf) == need {
		return
	}

	shrunk := make([]byte, need)
	copy(shrunk, h.buf[:need])
	h.buf = shrunk
}

// Clear removes every field but keeps the allocated capacity.
func (h *Headers) Clear() {
	h.entries = h.entries[:0]
	h.fieldsN = 0
	h.ensureTerminator()
}

// Append appends a well-known field by id.
func (h *Headers) Append(id field.FieldId, value string) error {
	return h.append(id, id.String(), value)
}

// AppendName appends a field by its literal name, preserving whatever
// casing the caller supplies. The id used for Find/Matching/Exists is
// resolved via field.LookupID.
func (h *Headers) AppendName(name, value string) error {
	return h.append(field.LookupID(name), name, value)
}

func (h *Headers) append(id field.FieldId, name, value string) error {
	if h.validate {
		if !charset.IsToken(name) {
			return status.ErrBadField
		}
		for i := 0; i < len(value); i++ {
			if !charset.IsFieldContent(value[i]) {
				return status.ErrBadValue
			}
		}
	}

	line := h.prefixN + h.fieldsN
	lineLen := len(name) + 2 + len(value) + 2 // "name: value\r\n"
	need := h.prefixN + h.fieldsN + lineLen + 2

	if need > len(h.buf) {
		grown := make([]byte, alignUp(need))
		copy(grown, h.buf)
		h.buf = grown
	}

	nameOff := line
	copy(h.buf[nameOff:], name)
	h.buf[nameOff+len(name)] = ':'
	h.buf[nameOff+len(name)+1] = ' '
	valOff := nameOff + len(name) + 2
	copy(h.buf[valOff:], value)
	h.buf[valOff+len(value)] = '\r'
	h.buf[valOff+len(value)+1] = '\n'

	h.fieldsN += lineLen
	h.entries = append(h.entries, Entry{
		ID:      id,
		NameOff: u32(nameOff),
		NameLen: u32(len(name)),
		ValOff:  u32(valOff),
		ValLen:  u32(len(value)),
	})

	h.ensureTerminator()
	return nil
}

// Detach returns an independent copy of h, backed by its own allocation.
// The receiver remains valid and reusable afterward.
func (h *Headers) Detach() *Headers {
	buf := make([]byte, len(h.buf))
	copy(buf, h.buf)
	entries := make([]Entry, len(h.entries))
	copy(entries, h.entries)

	return &Headers{
		buf:      buf,
		entries:  entries,
		prefixN:  h.prefixN,
		fieldsN:  h.fieldsN,
		validate: h.validate,
	}
}
