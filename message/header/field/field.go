// Package field provides a zero-copy view of a single email header field and
// the tools to cut a header block up into such views.
//
// A Field only records where its name and body are within the original
// message buffer. Nothing is decoded until asked for, which keeps iterating
// over and looking up header fields as cheap as slicing: most fields of most
// messages are never decoded at all.
package field

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/zostay/go-mailwords/message/header/encword"
	"github.com/zostay/go-mailwords/message/header/token"
)

// Field is an immutable view of a header field. The slices returned by its
// methods share memory with the buffer it was parsed from and must not be
// modified.
type Field struct {
	raw   []byte // complete field, trailing line break removed
	colon int    // index of the colon, or len(raw) if there is none
	value int    // index of the first byte of the body
}

// New builds a field from a name and an already formatted body. It is mostly
// useful for testing and for building a header by hand.
func New(name, body string) *Field {
	return Parse([]byte(fmt.Sprintf("%s: %s", name, body)))
}

// Key returns the raw bytes of the field name.
func (f *Field) Key() []byte {
	return f.raw[:f.colon]
}

// Value returns the raw bytes of the field body, starting after the colon and
// any blanks that follow it. Folded continuation lines are still present.
func (f *Field) Value() []byte {
	return f.raw[f.value:]
}

// Name returns the field name as a string, without surrounding blanks.
func (f *Field) Name() string {
	return string(bytes.Trim(f.Key(), " \t"))
}

// Bytes returns the complete raw field.
func (f *Field) Bytes() []byte {
	return f.raw
}

// String returns the complete raw field as a string.
func (f *Field) String() string {
	return string(f.raw)
}

// rawText turns the body into a string. Bodies with 8-bit bytes that are not
// UTF-8 are read as ISO-8859-1, which maps every byte to a character.
func (f *Field) rawText() string {
	v := f.Value()
	if utf8.Valid(v) {
		return string(v)
	}

	s, err := charmap.ISO8859_1.NewDecoder().Bytes(v)
	if err != nil {
		return string(v)
	}
	return string(s)
}

// Tokens decodes the body into normalized tokens. It never fails. See
// token.Normalized for the details.
func (f *Field) Tokens() []token.Token {
	return token.Normalized(f.rawText())
}

// TokensUTF8 is like Tokens, but requires any 8-bit bytes in the raw body to be
// UTF-8. An *encword.Error of kind encword.Encoding is returned otherwise.
func (f *Field) TokensUTF8() ([]token.Token, error) {
	v := f.Value()
	if !utf8.Valid(v) {
		return nil, &encword.Error{
			Kind: encword.Encoding,
			Msg:  fmt.Sprintf("body of %q is not valid UTF-8", f.Name()),
		}
	}
	return token.Normalized(string(v)), nil
}

// Text returns the decoded body as display text.
func (f *Field) Text() string {
	return token.Join(f.Tokens())
}
