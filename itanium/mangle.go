package itanium

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// MangleABITag encodes an ABI tag as B<length><tag>.
func MangleABITag(tag string) string {
	return "B" + lenEncoded(Escape(tag))
}

// MangleIdentifier encodes a dotted name, treating '.' as '::'. Names with
// more than one segment are wrapped in N...E; the ABI tags follow the
// segments in the given order.
func MangleIdentifier(ident string, tags ...string) string {
	return mangleIdentifier(ident, "", tags)
}

func mangleIdentifier(ident, templateParams string, tags []string) string {
	var parts strings.Builder
	segments := strings.Split(ident, ".")
	for _, s := range segments {
		parts.WriteString(lenEncoded(Escape(s)))
	}

	extras := templateParams
	for _, tag := range tags {
		extras += MangleABITag(tag)
	}

	if len(segments) > 1 {
		return "N" + parts.String() + extras + "E"
	}
	return parts.String() + extras
}

// MangleTypeC encodes a C type name, falling back to the identifier
// encoding for names without a builtin code.
func MangleTypeC(cname string) string {
	if code, ok := cCodes[cname]; ok {
		return code
	}
	return MangleIdentifier(cname)
}

// MangleType encodes a type or value descriptor.
func MangleType(d Descriptor) (string, error) {
	switch d := d.(type) {
	case *Pointer:
		if d != nil {
			return manglePointer(d)
		}
	case *Scalar:
		if d != nil {
			cname, ok := cNames[d.Type]
			if !ok {
				return "", unsupported(d, "unknown scalar "+d.Type.String())
			}
			return MangleTypeC(cname), nil
		}
	case *Templated:
		if d != nil {
			return MangleTemplated(d.Name, d.Params)
		}
	case *IntegerLiteral:
		if d != nil {
			return "Li" + strconv.FormatInt(d.Value, 10) + "E", nil
		}
	case *StringIdentifier:
		if d != nil {
			return MangleIdentifier(d.Value), nil
		}
	case *Opaque:
		if d != nil {
			return mangleOpaque(d)
		}
	}
	return "", unsupported(d, "not a mangleable descriptor")
}

// MangleValue is MangleType, for call sites encoding template values.
func MangleValue(d Descriptor) (string, error) {
	return MangleType(d)
}

func manglePointer(d *Pointer) (string, error) {
	pointee, err := MangleType(d.Pointee)
	if err != nil {
		return "", err
	}
	if d.HasAddrSpace {
		// Vendor extended qualifier: U <source-name>.
		return "PU" + MangleIdentifier("AS"+strconv.FormatUint(uint64(d.AddrSpace), 10)) + pointee, nil
	}
	return "P" + pointee, nil
}

func mangleOpaque(d *Opaque) (string, error) {
	if !isTerminal(d.Value) {
		return "", unsupported(d, fmt.Sprintf("composite value of type %T", d.Value))
	}
	return lenEncoded(Escape(fmt.Sprint(d.Value))), nil
}

// isTerminal reports whether v is a scalar-like value that may take the
// opaque path.
func isTerminal(v any) bool {
	switch v.(type) {
	case nil, Descriptor:
		return false
	case fmt.Stringer:
		return true
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}

// MangleTemplated encodes name with its template parameters in I...E.
// An empty parameter list encodes exactly like MangleIdentifier(name).
func MangleTemplated(name string, params []Descriptor) (string, error) {
	if len(params) == 0 {
		return mangleIdentifier(name, "", nil), nil
	}
	args, err := MangleArgs(params)
	if err != nil {
		return "", err
	}
	return mangleIdentifier(name, "I"+args+"E", nil), nil
}

// MangleArgs concatenates the encodings of args in order.
func MangleArgs(args []Descriptor) (string, error) {
	var b strings.Builder
	for i, arg := range args {
		s, err := MangleType(arg)
		if err != nil {
			return "", fmt.Errorf("argument %d: %w", i, err)
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

// MangleArgsC concatenates the encodings of C type names in order.
func MangleArgsC(cnames []string) string {
	var b strings.Builder
	for _, name := range cnames {
		b.WriteString(MangleTypeC(name))
	}
	return b.String()
}

// Mangle returns the mangled name of ident taking args, with optional ABI
// tags attached to the name.
func Mangle(ident string, args []Descriptor, tags ...string) (string, error) {
	enc, err := MangleArgs(args)
	if err != nil {
		return "", fmt.Errorf("mangle %s: %w", ident, err)
	}
	return Prefix + MangleIdentifier(ident, tags...) + enc, nil
}

// MangleC returns the mangled name of ident taking arguments given as C
// type names, for matching externally declared C++ functions.
func MangleC(ident string, cnames []string) string {
	return Prefix + MangleIdentifier(ident) + MangleArgsC(cnames)
}
