package itanium

import (
	"strconv"

	"github.com/skdltmxn/cxxmangle/internal/stream"
)

// ParseDescriptor parses the text form of a descriptor:
//
//	*T              pointer to T
//	*[N]T           pointer to T in address space N
//	int32           scalar (void bool int8 ... uint64 float16 float32 float64)
//	name<P, ...>    templated type; name<> has no parameters
//	-12             integer literal
//	1.5, 2e3        opaque floating-point value
//	ns.name         identifier
//	"any text"      identifier, Go-quoted
//
// String reads back through ParseDescriptor for every descriptor except
// Opaque values that are not finite floats: an opaque string or integer
// comes back as an identifier or literal.
func ParseDescriptor(text string) (Descriptor, error) {
	p := &parser{r: stream.NewReader(text)}
	d, err := p.parseDescriptor()
	if err != nil {
		return nil, err
	}
	p.r.SkipSpace()
	if !p.r.EOF() {
		return nil, p.errorf("unexpected trailing text")
	}
	return d, nil
}

// ParseDescriptors parses each element of texts.
func ParseDescriptors(texts []string) ([]Descriptor, error) {
	ds := make([]Descriptor, 0, len(texts))
	for _, text := range texts {
		d, err := ParseDescriptor(text)
		if err != nil {
			return nil, err
		}
		ds = append(ds, d)
	}
	return ds, nil
}

// parser holds descriptor parsing state.
type parser struct {
	r *stream.Reader
}

func (p *parser) errorf(msg string) error {
	return &SyntaxError{Input: p.r.Data(), Offset: p.r.Offset(), Message: msg}
}

func (p *parser) parseDescriptor() (Descriptor, error) {
	p.r.SkipSpace()
	c, err := p.r.PeekByte()
	if err != nil {
		return nil, &SyntaxError{Input: p.r.Data(), Offset: p.r.Offset(), Message: "expected descriptor", Err: err}
	}

	switch {
	case c == '*':
		return p.parsePointer()
	case c == '"':
		return p.parseQuoted()
	case c == '-' || c == '+' || stream.IsDigit(c):
		return p.parseNumber()
	case isNameStart(c):
		return p.parseNamed()
	}
	return nil, p.errorf("unexpected character " + strconv.QuoteRune(rune(c)))
}

func (p *parser) parsePointer() (Descriptor, error) {
	p.r.Consume('*')
	p.r.SkipSpace()

	ptr := &Pointer{}
	if p.r.Consume('[') {
		p.r.SkipSpace()
		start := p.r.Offset()
		digits := p.r.ReadWhile(stream.IsDigit)
		as, err := strconv.ParseUint(digits, 10, 0)
		if err != nil {
			_ = p.r.SetOffset(start)
			return nil, &SyntaxError{Input: p.r.Data(), Offset: start, Message: "invalid address space", Err: err}
		}
		p.r.SkipSpace()
		if !p.r.Consume(']') {
			return nil, p.errorf("expected ']'")
		}
		ptr.AddrSpace = uint(as)
		ptr.HasAddrSpace = true
	}

	pointee, err := p.parseDescriptor()
	if err != nil {
		return nil, err
	}
	ptr.Pointee = pointee
	return ptr, nil
}

func (p *parser) parseQuoted() (Descriptor, error) {
	start := p.r.Offset()
	p.r.Consume('"')
	for {
		c, err := p.r.ReadByte()
		if err != nil {
			return nil, &SyntaxError{Input: p.r.Data(), Offset: start, Message: "unterminated string", Err: err}
		}
		if c == '\\' {
			if _, err := p.r.ReadByte(); err != nil {
				return nil, &SyntaxError{Input: p.r.Data(), Offset: start, Message: "unterminated string", Err: err}
			}
			continue
		}
		if c == '"' {
			break
		}
	}

	s, err := strconv.Unquote(p.r.Data()[start:p.r.Offset()])
	if err != nil {
		return nil, &SyntaxError{Input: p.r.Data(), Offset: start, Message: "invalid string", Err: err}
	}
	return &StringIdentifier{Value: s}, nil
}

func (p *parser) parseNumber() (Descriptor, error) {
	start := p.r.Offset()
	if !p.r.Consume('-') {
		p.r.Consume('+')
	}
	p.r.ReadWhile(stream.IsDigit)

	float := false
	if p.r.Consume('.') {
		float = true
		p.r.ReadWhile(stream.IsDigit)
	}
	if p.r.Consume('e') || p.r.Consume('E') {
		float = true
		if !p.r.Consume('-') {
			p.r.Consume('+')
		}
		p.r.ReadWhile(stream.IsDigit)
	}

	text := p.r.Data()[start:p.r.Offset()]
	if float {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, &SyntaxError{Input: p.r.Data(), Offset: start, Message: "invalid number", Err: err}
		}
		return &Opaque{Value: v}, nil
	}

	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, &SyntaxError{Input: p.r.Data(), Offset: start, Message: "invalid integer", Err: err}
	}
	return &IntegerLiteral{Value: v}, nil
}

func (p *parser) parseNamed() (Descriptor, error) {
	name := p.r.ReadWhile(isNameByte)

	p.r.SkipSpace()
	if !p.r.Consume('<') {
		if t, ok := ParseScalarType(name); ok {
			return &Scalar{Type: t}, nil
		}
		return &StringIdentifier{Value: name}, nil
	}

	t := &Templated{Name: name}
	p.r.SkipSpace()
	if p.r.Consume('>') {
		return t, nil
	}
	for {
		param, err := p.parseDescriptor()
		if err != nil {
			return nil, err
		}
		t.Params = append(t.Params, param)

		p.r.SkipSpace()
		if p.r.Consume(',') {
			continue
		}
		if p.r.Consume('>') {
			return t, nil
		}
		return nil, p.errorf("expected ',' or '>'")
	}
}
