package itanium

import (
	"fmt"
	"strings"

	"github.com/skdltmxn/cxxmangle/internal/scan"
)

// PrependNamespace wraps an existing mangled name in the namespace ns.
//
// A nested name gets ns spliced in right after its 'N'. A single-segment
// name is split after its leading length-prefixed segment and the rest is
// carried over as already-encoded bytes.
func PrependNamespace(mangled, ns string) (string, error) {
	if !strings.HasPrefix(mangled, Prefix) {
		return "", fmt.Errorf("%w: %q is not a mangled name", ErrInvalidInput, mangled)
	}
	body := mangled[len(Prefix):]

	if rest, ok := strings.CutPrefix(body, "N"); ok {
		return Prefix + "N" + MangleIdentifier(ns) + rest, nil
	}

	head, tail, err := scan.SplitSegment(body)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrInvalidInput, mangled, err)
	}
	return Prefix + "N" + MangleIdentifier(ns) + head + "E" + tail, nil
}

// Layout is the structure of the name at the front of a mangled symbol.
type Layout struct {
	Nested   bool
	Segments []Segment
	Extras   string // template block and ABI tags
	Tail     string // argument encodings
}

// Segment is one length-prefixed component of a mangled name.
type Segment struct {
	Offset int    // offset of the length prefix within the mangled name
	Length int    // declared length
	Text   string // escaped text covered by Length
}

// Inspect reports the layout of mangled. It reads the name only; the
// argument encodings are returned verbatim in Tail.
func Inspect(mangled string) (*Layout, error) {
	if !strings.HasPrefix(mangled, Prefix) {
		return nil, fmt.Errorf("%w: %q is not a mangled name", ErrInvalidInput, mangled)
	}

	h, err := scan.ParseHead(mangled[len(Prefix):])
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidInput, mangled, err)
	}

	l := &Layout{Nested: h.Nested, Extras: h.Extras, Tail: h.Tail}
	for s := range h.All() {
		l.Segments = append(l.Segments, Segment{
			Offset: s.Offset + len(Prefix),
			Length: s.Length,
			Text:   s.Text,
		})
	}
	return l, nil
}
