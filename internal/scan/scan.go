// Package scan reads the leading name of an Itanium mangled symbol.
//
// It understands just enough of the grammar to delimit the name: length
// prefixed source names, the N...E nesting wrapper, I...E template blocks,
// L...E literals and B<source-name> ABI tags. Everything after the name is
// returned untouched as the tail.
package scan

import (
	"errors"
	"iter"
	"strconv"

	"github.com/skdltmxn/cxxmangle/internal/stream"
)

// Errors
var (
	ErrNoSegment     = errors.New("scan: expected a length-prefixed segment")
	ErrTruncated     = errors.New("scan: segment runs past end of input")
	ErrUnterminated  = errors.New("scan: unterminated block")
	ErrUnexpectedEnd = errors.New("scan: unexpected end of input")
)

// Segment is one length-prefixed source name.
type Segment struct {
	Offset int    // position of the length prefix
	Length int    // declared length
	Text   string // the Length bytes following the prefix
}

// End returns the offset just past the segment.
func (s Segment) End() int {
	return s.Offset + len(s.Encoded())
}

// Encoded returns the segment as it appears in the mangled text.
func (s Segment) Encoded() string {
	return strconv.Itoa(s.Length) + s.Text
}

// Head is the name at the front of a mangled body (the text after "_Z").
type Head struct {
	Nested   bool
	Segments []Segment
	Extras   string // template block and ABI tags attached to the name
	Tail     string // everything after the name, typically argument types
}

// All yields the head segments in outer-to-inner order.
func (h *Head) All() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for _, s := range h.Segments {
			if !yield(s) {
				return
			}
		}
	}
}

// ReadSegment reads one <length><text> segment from r.
func ReadSegment(r *stream.Reader) (Segment, error) {
	start := r.Offset()
	n, err := r.ReadDecimal()
	if err != nil {
		return Segment{}, ErrNoSegment
	}
	text, err := r.ReadString(n)
	if err != nil {
		_ = r.SetOffset(start)
		return Segment{}, ErrTruncated
	}
	return Segment{Offset: start, Length: n, Text: text}, nil
}

// SplitSegment splits body into its leading segment and the rest.
func SplitSegment(body string) (head, tail string, err error) {
	r := stream.NewReader(body)
	seg, err := ReadSegment(r)
	if err != nil {
		return "", "", err
	}
	return body[:seg.End()], r.RemainingData(), nil
}

// ParseHead delimits the leading name of body.
func ParseHead(body string) (*Head, error) {
	r := stream.NewReader(body)
	h := &Head{}

	if r.Consume('N') {
		h.Nested = true
		for {
			c, err := r.PeekByte()
			if err != nil {
				return nil, ErrUnterminated
			}
			if !stream.IsDigit(c) {
				break
			}
			seg, err := ReadSegment(r)
			if err != nil {
				return nil, err
			}
			h.Segments = append(h.Segments, seg)
		}
		if len(h.Segments) == 0 {
			return nil, ErrNoSegment
		}

		start := r.Offset()
		if err := skipUntilClose(r); err != nil {
			return nil, err
		}
		// skipUntilClose stops after the wrapper's 'E'.
		h.Extras = body[start : r.Offset()-1]
		h.Tail = r.RemainingData()
		return h, nil
	}

	seg, err := ReadSegment(r)
	if err != nil {
		return nil, err
	}
	h.Segments = append(h.Segments, seg)

	start := r.Offset()
	if r.Consume('I') {
		if err := skipUntilClose(r); err != nil {
			return nil, err
		}
	}
	for r.Consume('B') {
		if _, err := ReadSegment(r); err != nil {
			return nil, err
		}
	}
	h.Extras = body[start:r.Offset()]
	h.Tail = r.RemainingData()
	return h, nil
}

// skipUntilClose consumes input up to and including the 'E' closing the
// block that is already open.
func skipUntilClose(r *stream.Reader) error {
	depth := 1
	for depth > 0 {
		c, err := r.PeekByte()
		if err != nil {
			return ErrUnterminated
		}
		switch {
		case stream.IsDigit(c):
			if _, err := ReadSegment(r); err != nil {
				return err
			}
		case c == 'L':
			// Literal: L <type> <value> E, the value may hold digits.
			r.Skip(1)
			for {
				b, err := r.ReadByte()
				if err != nil {
					return ErrUnterminated
				}
				if b == 'E' {
					break
				}
			}
		case c == 'N' || c == 'I':
			r.Skip(1)
			depth++
		case c == 'E':
			r.Skip(1)
			depth--
		case c == 'D':
			// Two-character builtin such as Dh.
			if err := r.Skip(2); err != nil {
				return ErrUnexpectedEnd
			}
		default:
			r.Skip(1)
		}
	}
	return nil
}
