// Package bnf provides the small parsing-combinator vocabulary list
// grammars such as chunk-ext are built from: an Element parses one
// production from a byte slice and reports how far it got and why it
// stopped.
package bnf

import "github.com/httpcore-go/httpcore/status"

// Status reports why an Element.Parse call returned.
type Status uint8

const (
	// OK means a production was recognized and more may follow.
	OK Status = iota
	// End means parsing reached the natural end of the grammar (the
	// element, or the list it belongs to, is exhausted). This is success,
	// not failure.
	End
	// NeedMore means data ran out before the element's production could be
	// completed; the caller should not treat this as a non-match, only as
	// "not decidable yet".
	NeedMore
)

// Element parses one production starting at data[0]. next is the offset
// (relative to data) immediately past what was consumed. err is non-nil
// only for a genuine grammar violation; running out of bytes is reported
// via NeedMore, not err.
type Element interface {
	Parse(data []byte) (next int, status Status, err error)
}

// List parses a comma-separated (or otherwise self-delimited) sequence of
// elements. Increment is called repeatedly; End means the list has no more
// elements at this position, not that the input is exhausted.
type List interface {
	Begin(data []byte) (next int, status Status, err error)
	Increment(data []byte, pos int) (next int, status Status, err error)
}

// Consume runs a single Element over data and returns how far it matched. A
// grammar violation is a non-match, not a propagated error: it returns 0
// with a nil error, same as falling short of data (NeedMore). Only a
// status of End counts as a real match; the caller distinguishes "never
// will match" from "might match with more data" via the status, not err.
func Consume(e Element, data []byte) (next int, status Status, err error) {
	next, status, err = e.Parse(data)
	if err != nil {
		return 0, status, nil
	}
	if status != End {
		return 0, status, nil
	}

	return next, End, nil
}

// ConsumeList runs a List over data until it reports End, returning the
// offset past the last recognized element. A failed begin or increment is
// treated as a non-match for the whole list, per Boost.http_proto's
// algorithm: it discards everything matched so far rather than returning a
// partial list, and the failure itself is not propagated as an error.
func ConsumeList(l List, data []byte) (next int, status Status, err error) {
	it, st, err := l.Begin(data)

	for {
		if st == End {
			return it, End, nil
		}
		if err != nil {
			return 0, st, nil
		}
		if st == NeedMore {
			return 0, NeedMore, nil
		}

		it, st, err = l.Increment(data, it)
	}
}

// IsValid reports whether data matches e exactly, with nothing left over.
func IsValid(e Element, data []byte) bool {
	next, st, err := Consume(e, data)
	return err == nil && st == End && next == len(data)
}

// Validate returns status.ErrBadField if data does not match e exactly.
func Validate(e Element, data []byte) error {
	if !IsValid(e, data) {
		return status.ErrBadField
	}

	return nil
}
