package token

import (
	"strings"
	"unicode"

	"github.com/zostay/go-mailwords/message/header/encword"
)

const (
	wordOpen  = "=?"
	wordClose = "?="
)

// textOrWhitespace returns s as Whitespace if it is blank (or empty) and as
// Text otherwise.
func textOrWhitespace(s string) Token {
	if strings.TrimRightFunc(s, unicode.IsSpace) == "" {
		return Whitespace(s)
	}
	return Text(s)
}

// findClose returns the offset of the first "?=" at or after from that is
// followed by a boundary, or -1 if there is none.
func findClose(line string, from int) int {
	for {
		ix := strings.Index(line[from:], wordClose)
		if ix < 0 {
			return -1
		}

		end := from + ix
		if boundaryAt(line, end+len(wordClose)) {
			return end
		}

		from = end + len(wordClose)
	}
}

// TokenizeLine tokenizes a single, already unfolded, line of a header body.
//
// An "=?" only opens an encoded word when it follows a boundary character (or
// starts the line) and a "?=" only closes one when a boundary follows it (or it
// ends the line). An opener without a matching terminator is emitted as the
// literal Text "=?" and scanning resumes just after it. An encoded word that
// fails to decode is emitted as Text, delimiters and all.
//
// Text and Whitespace tokens are substrings of line. Whitespace tokens may be
// empty.
func TokenizeLine(line string) []Token {
	toks := make([]Token, 0, 4)
	search := 0
	for {
		ix := strings.Index(line[search:], wordOpen)
		if ix < 0 {
			return append(toks, textOrWhitespace(line[search:]))
		}

		open := search + ix
		begin := open + len(wordOpen)

		// glued to the end of some other word, so it's just text
		if !boundaryBefore(line, open) {
			toks = append(toks, Text(line[search:begin]))
			search = begin
			continue
		}

		toks = append(toks, textOrWhitespace(line[search:open]))

		end := findClose(line, begin)
		if end < 0 {
			toks = append(toks, Text(wordOpen))
			search = begin
			continue
		}

		if dec, ok := encword.Decode(line[begin:end]); ok {
			toks = append(toks, DecodedWord(dec))
		} else {
			toks = append(toks, Text(line[open:end+len(wordClose)]))
		}

		search = end + len(wordClose)
	}
}

// lines splits s on "\n", dropping the "\r" of any "\r\n". A trailing line
// break does not start another line.
func lines(s string) []string {
	if s == "" {
		return nil
	}

	ls := strings.Split(s, "\n")
	if ls[len(ls)-1] == "" {
		ls = ls[:len(ls)-1]
	}

	for i, l := range ls {
		ls[i] = strings.TrimSuffix(l, "\r")
	}

	return ls
}

// Tokenize tokenizes a complete, possibly folded, header body. Leading
// whitespace is stripped from every line and an unresolved LineBreak is placed
// between the tokens of consecutive lines.
//
// The result has not been normalized. Most callers want Normalized instead.
func Tokenize(value string) []Token {
	var toks []Token
	for i, line := range lines(value) {
		if i > 0 {
			toks = append(toks, LineBreak{})
		}
		toks = append(toks, TokenizeLine(strings.TrimLeftFunc(line, unicode.IsSpace))...)
	}
	return toks
}
