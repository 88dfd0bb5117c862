package itanium

import (
	"fmt"
	"iter"
	"maps"
	"reflect"
	"slices"
	"strconv"
)

// Prefix starts every mangled name.
const Prefix = "_Z"

// ScalarType is the numeric type id of a Scalar descriptor.
type ScalarType int

const (
	ScalarInvalid ScalarType = iota
	Void
	Bool
	Int8
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64
	Float16
	Float32
	Float64
)

var scalarNames = map[ScalarType]string{
	Void:    "void",
	Bool:    "bool",
	Int8:    "int8",
	Uint8:   "uint8",
	Int16:   "int16",
	Uint16:  "uint16",
	Int32:   "int32",
	Uint32:  "uint32",
	Int64:   "int64",
	Uint64:  "uint64",
	Float16: "float16",
	Float32: "float32",
	Float64: "float64",
}

var scalarsByName = map[string]ScalarType{
	"void":    Void,
	"bool":    Bool,
	"int8":    Int8,
	"uint8":   Uint8,
	"int16":   Int16,
	"uint16":  Uint16,
	"int32":   Int32,
	"uint32":  Uint32,
	"int64":   Int64,
	"uint64":  Uint64,
	"float16": Float16,
	"float32": Float32,
	"float64": Float64,
}

// Numeric type id to C type name.
var cNames = map[ScalarType]string{
	Void:    "void",
	Bool:    "bool",
	Uint8:   "unsigned char",
	Int8:    "signed char",
	Uint16:  "unsigned short",
	Int16:   "short",
	Uint32:  "unsigned int",
	Int32:   "int",
	Uint64:  "unsigned long long",
	Int64:   "long long",
	Float16: "half",
	Float32: "float",
	Float64: "double",
}

// C type name to builtin type code. These must not change: they are part of
// the names of previously compiled kernels.
var cCodes = map[string]string{
	"void":               "v",
	"wchar_t":            "w",
	"bool":               "b",
	"char":               "c",
	"signed char":        "a",
	"unsigned char":      "h",
	"short":              "s",
	"unsigned short":     "t",
	"int":                "i",
	"unsigned int":       "j",
	"long":               "l",
	"unsigned long":      "m",
	"long long":          "x", // __int64
	"unsigned long long": "y", // unsigned __int64
	"__int128":           "n",
	"unsigned __int128":  "o",
	"half":               "Dh",
	"float":              "f",
	"double":             "d",
	"long double":        "e", // __float80
	"__float128":         "g",
	"ellipsis":           "z",
}

func (t ScalarType) String() string {
	if name, ok := scalarNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ScalarType(%d)", int(t))
}

// CName returns the canonical C spelling of t.
func (t ScalarType) CName() (string, bool) {
	name, ok := cNames[t]
	return name, ok
}

// ParseScalarType looks up a scalar type by its Go-style name ("int32").
func ParseScalarType(name string) (ScalarType, bool) {
	t, ok := scalarsByName[name]
	return t, ok
}

// ScalarOf maps a Go kind onto the numeric type ids.
func ScalarOf(k reflect.Kind) (ScalarType, bool) {
	switch k {
	case reflect.Bool:
		return Bool, true
	case reflect.Int8:
		return Int8, true
	case reflect.Uint8:
		return Uint8, true
	case reflect.Int16:
		return Int16, true
	case reflect.Uint16:
		return Uint16, true
	case reflect.Int32:
		return Int32, true
	case reflect.Uint32:
		return Uint32, true
	case reflect.Int64:
		return Int64, true
	case reflect.Uint64:
		return Uint64, true
	case reflect.Int:
		if strconv.IntSize == 32 {
			return Int32, true
		}
		return Int64, true
	case reflect.Uint, reflect.Uintptr:
		if strconv.IntSize == 32 {
			return Uint32, true
		}
		return Uint64, true
	case reflect.Float32:
		return Float32, true
	case reflect.Float64:
		return Float64, true
	}
	return ScalarInvalid, false
}

// CTypeCode returns the builtin code for a C type name.
func CTypeCode(cname string) (string, bool) {
	code, ok := cCodes[cname]
	return code, ok
}

// CTypeCodes yields the C type table sorted by C name.
func CTypeCodes() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, name := range slices.Sorted(maps.Keys(cCodes)) {
			if !yield(name, cCodes[name]) {
				return
			}
		}
	}
}

// ScalarTypes yields every scalar type id in declaration order.
func ScalarTypes() iter.Seq[ScalarType] {
	return func(yield func(ScalarType) bool) {
		for t := Void; t <= Float64; t++ {
			if !yield(t) {
				return
			}
		}
	}
}
