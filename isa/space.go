package isa

import "strings"

// spaceClass is the ECMAScript \s set. RE2's \s lacks VT and the Unicode
// spaces.
const spaceClass = `[\t\n\v\f\r \x{a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}]`

// IsSpace reports whether r belongs to the whitespace set used by the
// grammar.
func IsSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		0xa0, 0x1680, 0x2028, 0x2029, 0x202f, 0x205f, 0x3000, 0xfeff:
		return true
	}

	return r >= 0x2000 && r <= 0x200a
}

// TrimSpace removes leading and trailing grammar whitespace.
func TrimSpace(s string) string {
	return strings.TrimFunc(s, IsSpace)
}
