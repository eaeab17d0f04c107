package token

import (
	"unicode"
	"unicode/utf8"
)

// IsBoundaryRune returns true if r may appear immediately outside an encoded
// word: whitespace or one of the specials ", (, ), <, > and the comma.
func IsBoundaryRune(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}

	switch r {
	case '"', '(', ')', '<', '>', ',':
		return true
	}

	return false
}

// boundaryBefore reports whether the character ending at byte offset ix of line
// is a boundary. The start of the line counts as a boundary.
func boundaryBefore(line string, ix int) bool {
	if ix <= 0 {
		return true
	}

	r, _ := utf8.DecodeLastRuneInString(line[:ix])
	return IsBoundaryRune(r)
}

// boundaryAt reports whether the character starting at byte offset ix of line is
// a boundary. The end of the line counts as a boundary.
func boundaryAt(line string, ix int) bool {
	if ix >= len(line) {
		return true
	}

	r, _ := utf8.DecodeRuneInString(line[ix:])
	return IsBoundaryRune(r)
}
