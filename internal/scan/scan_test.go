package scan

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitSegment(t *testing.T) {
	cases := []struct {
		in   string
		head string
		tail string
	}{
		{in: "3fooi", head: "3foo", tail: "i"},
		{in: "3foo", head: "3foo", tail: ""},
		{in: "10abcdefghijPfd", head: "10abcdefghij", tail: "Pfd"},
		{in: "0i", head: "0", tail: "i"},
		{in: "3fooB3tagi", head: "3foo", tail: "B3tagi"},
	}

	for _, tc := range cases {
		head, tail, err := SplitSegment(tc.in)
		if err != nil {
			t.Fatalf("SplitSegment(%q) failed: %v", tc.in, err)
		}
		if head != tc.head || tail != tc.tail {
			t.Fatalf("SplitSegment(%q) = (%q, %q), want (%q, %q)", tc.in, head, tail, tc.head, tc.tail)
		}
	}
}

func TestSplitSegmentErrors(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{in: "", want: ErrNoSegment},
		{in: "foo", want: ErrNoSegment},
		{in: "9foo", want: ErrTruncated},
		{in: "9223372036854775807x", want: ErrTruncated},
		{in: "9223372036854775800xyzabcdefgh", want: ErrTruncated},
	}

	for _, tc := range cases {
		if _, _, err := SplitSegment(tc.in); !errors.Is(err, tc.want) {
			t.Fatalf("SplitSegment(%q) error = %v, want %v", tc.in, err, tc.want)
		}
	}
}

func TestParseHeadNested(t *testing.T) {
	h, err := ParseHead("N2ns5arrayIdLi1E1CEB3tagEPU3AS1fi")
	if err != nil {
		t.Fatalf("ParseHead failed: %v", err)
	}
	if !h.Nested {
		t.Fatal("Nested = false, want true")
	}
	want := []Segment{
		{Offset: 1, Length: 2, Text: "ns"},
		{Offset: 4, Length: 5, Text: "array"},
	}
	if diff := cmp.Diff(want, h.Segments); diff != "" {
		t.Fatalf("segments mismatch (-want +got):\n%s", diff)
	}
	if got, want := h.Extras, "IdLi1E1CEB3tag"; got != want {
		t.Fatalf("Extras = %q, want %q", got, want)
	}
	if got, want := h.Tail, "PU3AS1fi"; got != want {
		t.Fatalf("Tail = %q, want %q", got, want)
	}
}

func TestParseHeadSingle(t *testing.T) {
	h, err := ParseHead("3fooIiEB2v1ij")
	if err != nil {
		t.Fatalf("ParseHead failed: %v", err)
	}
	if h.Nested {
		t.Fatal("Nested = true, want false")
	}
	var names []string
	for s := range h.All() {
		names = append(names, s.Text)
	}
	if diff := cmp.Diff([]string{"foo"}, names); diff != "" {
		t.Fatalf("segments mismatch (-want +got):\n%s", diff)
	}
	if h.Extras != "IiEB2v1" || h.Tail != "ij" {
		t.Fatalf("Extras, Tail = %q, %q", h.Extras, h.Tail)
	}
}

func TestParseHeadEmptySegments(t *testing.T) {
	h, err := ParseHead("N1a01bEi")
	if err != nil {
		t.Fatalf("ParseHead failed: %v", err)
	}
	var names []string
	for s := range h.All() {
		names = append(names, s.Text)
	}
	if diff := cmp.Diff([]string{"a", "", "b"}, names); diff != "" {
		t.Fatalf("segments mismatch (-want +got):\n%s", diff)
	}
}

func TestParseHeadErrors(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{in: "N", want: ErrUnterminated},
		{in: "NE", want: ErrNoSegment},
		{in: "N3foo", want: ErrUnterminated},
		{in: "N3fooIi", want: ErrUnterminated},
		{in: "N3fooLi12", want: ErrUnterminated},
		{in: "3fooIi", want: ErrUnterminated},
		{in: "x", want: ErrNoSegment},
		{in: "9223372036854775807x", want: ErrTruncated},
		{in: "N9223372036854775800xyzE", want: ErrTruncated},
	}

	for _, tc := range cases {
		if _, err := ParseHead(tc.in); !errors.Is(err, tc.want) {
			t.Fatalf("ParseHead(%q) error = %v, want %v", tc.in, err, tc.want)
		}
	}
}
