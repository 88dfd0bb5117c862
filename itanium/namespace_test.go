package itanium

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPrependNamespace(t *testing.T) {
	cases := []struct {
		name    string
		mangled string
		ns      string
		want    string
	}{
		{name: "Single", mangled: "_Z3fooi", ns: "ns", want: "_ZN2ns3fooEi"},
		{name: "SingleNoArgs", mangled: "_Z3foo", ns: "ns", want: "_ZN2ns3fooE"},
		{name: "Nested", mangled: "_ZN1a1bEi", ns: "ns", want: "_ZN2ns1a1bEi"},
		{name: "NestedTagged", mangled: "_ZN3mod6kernelB3tagEPU3AS1f", ns: "outer", want: "_ZN5outer3mod6kernelB3tagEPU3AS1f"},
		{name: "SingleAddrSpaceArgs", mangled: "_Z3fooPU3AS1fi", ns: "ns", want: "_ZN2ns3fooEPU3AS1fi"},
		{name: "LongSegment", mangled: "_Z12abcdefghijklxy", ns: "n", want: "_ZN1n12abcdefghijklExy"},
		{name: "EmptySegment", mangled: "_Z0i", ns: "ns", want: "_ZN2ns0Ei"},
		{name: "SingleTaggedTailKept", mangled: "_Z3fooB2v1x", ns: "ns", want: "_ZN2ns3fooEB2v1x"},
		{name: "EscapedNamespace", mangled: "_Z3fooi", ns: "my-ns", want: "_ZN6my_2dns3fooEi"},
		{name: "DottedNamespace", mangled: "_Z3fooi", ns: "a.b", want: "_ZNN1a1bE3fooEi"},
	}

	for _, tc := range cases {
		got, err := PrependNamespace(tc.mangled, tc.ns)
		if err != nil {
			t.Fatalf("%s: PrependNamespace(%q, %q) failed: %v", tc.name, tc.mangled, tc.ns, err)
		}
		if got != tc.want {
			t.Fatalf("%s: PrependNamespace(%q, %q) = %q, want %q", tc.name, tc.mangled, tc.ns, got, tc.want)
		}
	}
}

func TestPrependNamespaceRoundTrip(t *testing.T) {
	mangled, err := Mangle("foo", []Descriptor{NewScalar(Int32)})
	if err != nil {
		t.Fatalf("Mangle failed: %v", err)
	}
	if mangled != "_Z3fooi" {
		t.Fatalf("Mangle = %q, want %q", mangled, "_Z3fooi")
	}
	got, err := PrependNamespace(mangled, "ns")
	if err != nil {
		t.Fatalf("PrependNamespace failed: %v", err)
	}
	want, err := Mangle("ns.foo", []Descriptor{NewScalar(Int32)})
	if err != nil {
		t.Fatalf("Mangle failed: %v", err)
	}
	if got != want || got != "_ZN2ns3fooEi" {
		t.Fatalf("PrependNamespace = %q, want %q", got, want)
	}
}

func TestPrependNamespaceInvalidInput(t *testing.T) {
	for _, in := range []string{"", "Z3foo", "foo", "_z3foo", "_", "Z_3foo", " _Z3foo", "_Z", "_Zfoo", "_Z9foo",
		"_Z9223372036854775807x", "_Z9223372036854775800xyzabcdefgh",
	} {
		if _, err := PrependNamespace(in, "ns"); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("PrependNamespace(%q) error = %v, want ErrInvalidInput", in, err)
		}
	}
}

func TestInspect(t *testing.T) {
	l, err := Inspect("_ZN3mod6kernelB3tagEPU3AS1f5arrayIdLi1E1CE")
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	want := &Layout{
		Nested: true,
		Segments: []Segment{
			{Offset: 3, Length: 3, Text: "mod"},
			{Offset: 7, Length: 6, Text: "kernel"},
		},
		Extras: "B3tag",
		Tail:   "PU3AS1f5arrayIdLi1E1CE",
	}
	if diff := cmp.Diff(want, l); diff != "" {
		t.Fatalf("layout mismatch (-want +got):\n%s", diff)
	}
}

func TestInspectInvalid(t *testing.T) {
	for _, in := range []string{
		"foo", "_ZN3foo", "_Zx", "_Z3fooIi",
		"_Z9223372036854775807x", "_Z9223372036854775800xyzabcdefgh", "_ZN9223372036854775807xE",
	} {
		if _, err := Inspect(in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("Inspect(%q) error = %v, want ErrInvalidInput", in, err)
		}
	}
}
