// Package token breaks a raw header field body into the pieces needed to
// display it: literal text, whitespace, folds, and decoded RFC 2047 encoded
// words.
//
// Normalized is the usual entry point. It unfolds the body, decodes every
// encoded word it can, and then drops the whitespace that RFC 2047 says is
// insignificant (whitespace and folds between two adjacent encoded words).
// Join turns the result into display text.
//
// Tokenizing never fails. An encoded word that cannot be decoded, whether from
// a bad charset, a broken payload or a missing terminator, is left in the
// output as literal text.
package token

import "strings"

// Token is one piece of a tokenized header field body. It is one of Text,
// Whitespace, LineBreak, or DecodedWord.
type Token interface {
	// String returns the text the token contributes to the header body.
	String() string

	isToken()
}

// Text is literal text containing at least one non-whitespace character. It is
// a substring of the input.
type Text string

// Whitespace is a run of text made entirely of whitespace. It may be empty. It
// is a substring of the input.
type Whitespace string

// LineBreak marks a fold between two physical lines of a header body. When
// first tokenized, it is unresolved. Normalization resolves the break that
// survives, setting Replacement to the whitespace the fold stands for.
type LineBreak struct {
	Replacement string
	Resolved    bool
}

// DecodedWord is the text of a successfully decoded encoded word.
type DecodedWord string

// Fold returns a resolved LineBreak standing for the given whitespace.
func Fold(replacement string) LineBreak {
	return LineBreak{Replacement: replacement, Resolved: true}
}

func (t Text) String() string        { return string(t) }
func (t Whitespace) String() string  { return string(t) }
func (t DecodedWord) String() string { return string(t) }

// String returns the replacement whitespace, or an empty string if the break
// has not been resolved.
func (t LineBreak) String() string {
	if !t.Resolved {
		return ""
	}
	return t.Replacement
}

func (Text) isToken()        {}
func (Whitespace) isToken()  {}
func (LineBreak) isToken()   {}
func (DecodedWord) isToken() {}

// Join concatenates the text of the given tokens.
func Join(toks []Token) string {
	var sb strings.Builder
	for _, tok := range toks {
		sb.WriteString(tok.String())
	}
	return sb.String()
}

// Kind returns the name of the token's type: "text", "whitespace",
// "linebreak", or "decoded".
func Kind(tok Token) string {
	switch tok.(type) {
	case Text:
		return "text"
	case Whitespace:
		return "whitespace"
	case LineBreak:
		return "linebreak"
	case DecodedWord:
		return "decoded"
	default:
		return "unknown"
	}
}
