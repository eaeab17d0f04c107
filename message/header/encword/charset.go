package encword

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// byteOrderMark is stripped from the front of decoded text.
const byteOrderMark = "\uFEFF"

// CharsetDecoder converts bytes in the named charset into a UTF-8 string. It is
// used by DecodeCharset and, through it, by every encoded word this package
// decodes. It may be replaced during program initialization to add support for
// charsets the default does not know about. It must not be changed while
// decoding is in progress.
var CharsetDecoder = DefaultCharsetDecoder

// LookupCharset resolves a charset label to an encoding. Labels are matched
// without regard to case or surrounding space. The WHATWG label set is tried
// first, which maps the many aliases seen in the wild onto the encoding mail
// clients actually use (so "us-ascii" and "latin1" both decode as
// windows-1252). Anything else is looked up in the IANA MIME registry.
//
// The WHATWG "replacement" encoding is never returned. Labels that map to it
// are reported as unknown.
func LookupCharset(label string) (encoding.Encoding, error) {
	label = strings.TrimSpace(label)

	if e, name := charset.Lookup(label); e != nil {
		if name == "replacement" {
			return nil, newError(Encoding, fmt.Sprintf("charset %q cannot be decoded", label), nil)
		}
		return e, nil
	}

	e, err := ianaindex.MIME.Encoding(label)
	if err != nil {
		return nil, newError(Encoding, fmt.Sprintf("unknown charset %q", label), err)
	}

	if e == nil {
		return nil, newError(Encoding, fmt.Sprintf("no encoding found for charset %q", label), nil)
	}

	return e, nil
}

// DefaultCharsetDecoder is the default value of CharsetDecoder. Invalid byte
// sequences are replaced with U+FFFD rather than causing an error, and a
// leading byte order mark is dropped.
func DefaultCharsetDecoder(label string, b []byte) (string, error) {
	e, err := LookupCharset(label)
	if err != nil {
		return "", err
	}

	db, err := e.NewDecoder().Bytes(b)
	if err != nil {
		return "", newError(Encoding, fmt.Sprintf("cannot convert from charset %q", label), err)
	}

	return strings.TrimPrefix(string(db), byteOrderMark), nil
}

// DecodeCharset converts b from the named charset to UTF-8 using
// CharsetDecoder. Failures are always reported as an *Error of kind Encoding.
func DecodeCharset(label string, b []byte) (string, error) {
	s, err := CharsetDecoder(label, b)
	if err == nil {
		return s, nil
	}

	var decErr *Error
	if errors.As(err, &decErr) {
		return "", err
	}

	return "", newError(Encoding, fmt.Sprintf("cannot convert from charset %q", label), err)
}
