package itanium

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies the variant of a Descriptor.
type Kind int

const (
	KindInvalid Kind = iota
	KindPointer
	KindScalar
	KindTemplated
	KindIntegerLiteral
	KindStringIdentifier
	KindOpaque
)

var kindNames = map[Kind]string{
	KindInvalid:          "invalid",
	KindPointer:          "pointer",
	KindScalar:           "scalar",
	KindTemplated:        "templated",
	KindIntegerLiteral:   "integer literal",
	KindStringIdentifier: "identifier",
	KindOpaque:           "opaque",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Descriptor is a type or value to be mangled. The set of implementations
// is closed: Pointer, Scalar, Templated, IntegerLiteral, StringIdentifier
// and Opaque.
type Descriptor interface {
	Kind() Kind
	fmt.Stringer
	descriptor()
}

// Pointer is a pointer type, optionally qualified with an address space.
type Pointer struct {
	Pointee      Descriptor
	AddrSpace    uint
	HasAddrSpace bool
}

// NewPointer returns an unqualified pointer to pointee.
func NewPointer(pointee Descriptor) *Pointer {
	return &Pointer{Pointee: pointee}
}

// NewAddrSpacePointer returns a pointer to pointee in address space as.
func NewAddrSpacePointer(pointee Descriptor, as uint) *Pointer {
	return &Pointer{Pointee: pointee, AddrSpace: as, HasAddrSpace: true}
}

func (d *Pointer) Kind() Kind { return KindPointer }
func (d *Pointer) descriptor() {}

func (d *Pointer) String() string {
	pointee := "<nil>"
	if d.Pointee != nil {
		pointee = d.Pointee.String()
	}
	if d.HasAddrSpace {
		return fmt.Sprintf("*[%d]%s", d.AddrSpace, pointee)
	}
	return "*" + pointee
}

// Scalar is one of the fixed numeric types.
type Scalar struct {
	Type ScalarType
}

// NewScalar returns a Scalar descriptor for t.
func NewScalar(t ScalarType) *Scalar {
	return &Scalar{Type: t}
}

func (d *Scalar) Kind() Kind     { return KindScalar }
func (d *Scalar) String() string { return d.Type.String() }
func (d *Scalar) descriptor()    {}

// Templated is a named type parameterized by an ordered list of types and
// values, such as array<float64, 1, C>.
type Templated struct {
	Name   string
	Params []Descriptor
}

// NewTemplated returns a Templated descriptor.
func NewTemplated(name string, params ...Descriptor) *Templated {
	return &Templated{Name: name, Params: params}
}

func (d *Templated) Kind() Kind { return KindTemplated }
func (d *Templated) descriptor() {}

func (d *Templated) String() string {
	var b strings.Builder
	b.WriteString(d.Name)
	b.WriteByte('<')
	for i, p := range d.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		if p == nil {
			b.WriteString("<nil>")
			continue
		}
		b.WriteString(p.String())
	}
	b.WriteByte('>')
	return b.String()
}

// IntegerLiteral is an integer template argument.
type IntegerLiteral struct {
	Value int64
}

func (d *IntegerLiteral) Kind() Kind     { return KindIntegerLiteral }
func (d *IntegerLiteral) String() string { return strconv.FormatInt(d.Value, 10) }
func (d *IntegerLiteral) descriptor()    {}

// StringIdentifier is a value spelled as a (possibly dotted) identifier,
// such as an array layout name.
type StringIdentifier struct {
	Value string
}

func (d *StringIdentifier) Kind() Kind { return KindStringIdentifier }
func (d *StringIdentifier) descriptor() {}

func (d *StringIdentifier) String() string {
	if isBareIdentifier(d.Value) {
		return d.Value
	}
	return strconv.Quote(d.Value)
}

// Opaque is any other terminal value. It is mangled from its fmt.Sprint
// form, which need not round-trip to the original value.
type Opaque struct {
	Value any
}

func (d *Opaque) Kind() Kind  { return KindOpaque }
func (d *Opaque) descriptor() {}

// String spells finite floats so that they read back as floats ("2.0"
// rather than "2"). Other values use fmt.Sprint.
func (d *Opaque) String() string {
	var f float64
	bits := 64
	switch v := d.Value.(type) {
	case float64:
		f = v
	case float32:
		f, bits = float64(v), 32
	default:
		return fmt.Sprint(d.Value)
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return fmt.Sprint(d.Value)
	}
	s := strconv.FormatFloat(f, 'g', -1, bits)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// isBareIdentifier reports whether s reads back as a StringIdentifier
// without quoting.
func isBareIdentifier(s string) bool {
	if s == "" || !isNameStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isNameByte(s[i]) {
			return false
		}
	}
	_, scalar := ParseScalarType(s)
	return !scalar
}

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameByte(c byte) bool {
	return isNameStart(c) || (c >= '0' && c <= '9') || c == '.'
}
