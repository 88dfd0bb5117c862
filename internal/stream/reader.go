// Package stream provides a cursor over mangled-name and descriptor text.
package stream

import (
	"errors"
	"strconv"
)

// Errors returned by Reader
var (
	ErrUnexpectedEOF  = errors.New("stream: unexpected end of data")
	ErrInvalidNumber  = errors.New("stream: invalid decimal number")
	ErrNegativeOffset = errors.New("stream: negative offset")
)

// Reader reads ASCII text one byte at a time.
type Reader struct {
	data   string
	offset int
}

// NewReader creates a Reader over s.
func NewReader(s string) *Reader {
	return &Reader{data: s, offset: 0}
}

// Offset returns the current read position.
func (r *Reader) Offset() int {
	return r.offset
}

// SetOffset sets the read position.
func (r *Reader) SetOffset(offset int) error {
	if offset < 0 {
		return ErrNegativeOffset
	}
	r.offset = offset
	return nil
}

// Remaining returns the number of bytes remaining.
func (r *Reader) Remaining() int {
	if r.offset >= len(r.data) {
		return 0
	}
	return len(r.data) - r.offset
}

// EOF reports whether every byte has been consumed.
func (r *Reader) EOF() bool {
	return r.offset >= len(r.data)
}

// Skip advances the read position by n bytes.
func (r *Reader) Skip(n int) error {
	if n < 0 || n > len(r.data)-r.offset {
		return ErrUnexpectedEOF
	}
	r.offset += n
	return nil
}

// SkipSpace advances past ASCII blanks.
func (r *Reader) SkipSpace() {
	for r.offset < len(r.data) {
		switch r.data[r.offset] {
		case ' ', '\t', '\n', '\r':
			r.offset++
		default:
			return
		}
	}
}

// ReadByte reads a single byte.
func (r *Reader) ReadByte() (byte, error) {
	if r.offset >= len(r.data) {
		return 0, ErrUnexpectedEOF
	}
	c := r.data[r.offset]
	r.offset++
	return c, nil
}

// PeekByte returns the next byte without advancing the position.
func (r *Reader) PeekByte() (byte, error) {
	if r.offset >= len(r.data) {
		return 0, ErrUnexpectedEOF
	}
	return r.data[r.offset], nil
}

// Consume advances past c if it is the next byte.
func (r *Reader) Consume(c byte) bool {
	if r.offset < len(r.data) && r.data[r.offset] == c {
		r.offset++
		return true
	}
	return false
}

// ReadString reads exactly n bytes.
func (r *Reader) ReadString(n int) (string, error) {
	if n < 0 || n > len(r.data)-r.offset {
		return "", ErrUnexpectedEOF
	}
	s := r.data[r.offset : r.offset+n]
	r.offset += n
	return s, nil
}

// ReadWhile reads the longest run of bytes accepted by fn.
func (r *Reader) ReadWhile(fn func(byte) bool) string {
	start := r.offset
	for r.offset < len(r.data) && fn(r.data[r.offset]) {
		r.offset++
	}
	return r.data[start:r.offset]
}

// ReadDecimal reads an unsigned decimal number such as a length prefix.
// A leading '0' is read on its own as the number zero, so "01b" yields 0
// and leaves "1b" unread.
func (r *Reader) ReadDecimal() (int, error) {
	start := r.offset
	if r.Consume('0') {
		return 0, nil
	}
	digits := r.ReadWhile(IsDigit)
	if digits == "" {
		return 0, ErrInvalidNumber
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		r.offset = start
		return 0, ErrInvalidNumber
	}
	return n, nil
}

// RemainingData returns the remaining unread text.
func (r *Reader) RemainingData() string {
	if r.offset >= len(r.data) {
		return ""
	}
	return r.data[r.offset:]
}

// Data returns the underlying text.
func (r *Reader) Data() string {
	return r.data
}

// IsDigit reports whether c is an ASCII decimal digit.
func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
