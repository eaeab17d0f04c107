package transfer

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"mime/quotedprintable"
)

// MaxQuotedPrintableLine is the longest line, line break included, that
// NewQuotedPrintableDecoder can decode. A longer line makes the reader fail
// with bufio.ErrBufferFull.
const MaxQuotedPrintableLine = bufio.MaxScanTokenSize

// NewQuotedPrintableDecoder will read bytes from the given io.Reader and return
// them in the returned io.Reader after decoding them from quoted-printable
// format.
//
// The decoder is forgiving: an "=" that does not start a valid escape is kept
// as a literal "=", and 8-bit bytes pass through untouched. Trailing whitespace
// on each line is removed. Lines may be up to MaxQuotedPrintableLine bytes
// long.
func NewQuotedPrintableDecoder(r io.Reader) io.Reader {
	return quotedprintable.NewReader(bufio.NewReaderSize(r, MaxQuotedPrintableLine))
}

// DecodeQuotedPrintable decodes b as quoted-printable. It is even more
// forgiving than NewQuotedPrintableDecoder: there is no limit on line length
// and control characters, which quoted-printable requires to be escaped, are
// passed through as they are. An error is only returned for the few inputs the
// decoder cannot make sense of at all, such as a lone "=".
func DecodeQuotedPrintable(b []byte) ([]byte, error) {
	b = escapeControls(b)

	// the reader keeps a *bufio.Reader of at least the default size as is
	size := len(b) + 1
	if size < 4096 {
		size = 4096
	}

	br := bufio.NewReaderSize(bytes.NewReader(b), size)
	return io.ReadAll(quotedprintable.NewReader(br))
}

// escapeControls rewrites the control characters quoted-printable forbids
// (everything below space but tab, CR, and LF, plus DEL) as "=XX" escapes.
func escapeControls(b []byte) []byte {
	ix := bytes.IndexFunc(b, isControl)
	if ix < 0 {
		return b
	}

	out := make([]byte, 0, len(b)+8)
	out = append(out, b[:ix]...)
	for _, c := range b[ix:] {
		if isControl(rune(c)) {
			out = append(out, fmt.Sprintf("=%02X", c)...)
			continue
		}
		out = append(out, c)
	}
	return out
}

func isControl(r rune) bool {
	switch {
	case r == '\t' || r == '\r' || r == '\n':
		return false
	case r < ' ' || r == 0x7f:
		return true
	default:
		return false
	}
}
