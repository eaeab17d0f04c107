// Package encword decodes the RFC 2047 encoded words that turn up in email
// header field bodies, the =?charset?encoding?payload?= constructs used to
// smuggle non-ASCII text through an ASCII-only header.
//
// DecodeWord is strict and reports every failure as an *Error. Decode is the
// forgiving variant used by the header tokenizer: it only says whether the word
// could be decoded, so the caller can fall back to the literal text.
package encword

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/zostay/go-mailwords/message/transfer"
)

// DecodeWord decodes the inside of one encoded word: the charset?encoding?payload
// text between the "=?" and "?=" delimiters, which must not be included.
//
// The encoding must be B (base64) or Q (the RFC 2047 flavor of
// quoted-printable), in either case. An RFC 2231 language suffix on the charset
// ("utf-8*en") is ignored.
func DecodeWord(encoded string) (string, error) {
	ixCharset := strings.IndexByte(encoded, '?')
	if ixCharset < 0 {
		return "", newError(Generic, "encoded word is missing the charset delimiter", nil)
	}

	ixCoding := strings.IndexByte(encoded[ixCharset+1:], '?')
	if ixCoding < 0 {
		return "", newError(Generic, "encoded word is missing the encoding delimiter", nil)
	}
	ixCoding += ixCharset + 1

	label := encoded[:ixCharset]
	coding := encoded[ixCharset+1 : ixCoding]
	payload := encoded[ixCoding+1:]

	var (
		raw []byte
		err error
	)
	switch coding {
	case "B", "b":
		raw, err = decodeB(payload)
	case "Q", "q":
		raw, err = decodeQ(payload)
	default:
		return "", newError(Generic, fmt.Sprintf("unsupported encoding %q in encoded word", coding), nil)
	}

	if err != nil {
		return "", err
	}

	if ix := strings.IndexByte(label, '*'); ix >= 0 {
		label = label[:ix]
	}

	return DecodeCharset(label, raw)
}

// Decode is DecodeWord without the error detail. It returns false if the
// encoded word cannot be decoded for any reason.
func Decode(encoded string) (string, bool) {
	s, err := DecodeWord(encoded)
	if err != nil {
		return "", false
	}
	return s, true
}

func decodeB(payload string) ([]byte, error) {
	b, err := transfer.DecodeBase64([]byte(payload))
	if err != nil {
		return nil, newError(Base64, "malformed B payload", err)
	}
	return b, nil
}

// decodeQ turns underscores into spaces and decodes the rest as
// quoted-printable. Trailing whitespace is not quoted-printable data, so it is
// kept out of the decoder and put back as-is afterward.
func decodeQ(payload string) ([]byte, error) {
	spaced := strings.ReplaceAll(payload, "_", " ")
	trimmed := strings.TrimRightFunc(spaced, unicode.IsSpace)

	b, err := transfer.DecodeQuotedPrintable([]byte(trimmed))
	if err != nil {
		return nil, newError(QuotedPrintable, "malformed Q payload", err)
	}

	return append(b, spaced[len(trimmed):]...), nil
}
