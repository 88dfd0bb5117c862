package itanium

import (
	"strconv"
	"strings"
)

const hexDigits = "0123456789abcdef"

func isSafe(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// Escape rewrites text into the [A-Za-z0-9_] charset. Every other byte of
// the UTF-8 encoding becomes "_hh" in lowercase hex, so a multibyte
// character yields one token per byte.
func Escape(text string) string {
	i := 0
	for i < len(text) && isSafe(text[i]) {
		i++
	}
	if i == len(text) {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + 8)
	b.WriteString(text[:i])
	for ; i < len(text); i++ {
		c := text[i]
		if isSafe(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('_')
		b.WriteByte(hexDigits[c>>4])
		b.WriteByte(hexDigits[c&0xf])
	}
	return b.String()
}

// lenEncoded prefixes s with its length. A leading digit gets an
// underscore first so the prefix stays unambiguous.
func lenEncoded(s string) string {
	if s != "" && s[0] >= '0' && s[0] <= '9' {
		s = "_" + s
	}
	return strconv.Itoa(len(s)) + s
}
