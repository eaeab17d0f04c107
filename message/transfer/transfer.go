package transfer

import (
	"io"
	"strings"
)

// Content-transfer-encoding names.
const (
	None            = ""                 // bytes will be left as-is
	Bit7            = "7bit"             // bytes will be left as-is
	Bit8            = "8bit"             // bytes will be left as-is
	Binary          = "binary"           // bytes will be left as-is
	QuotedPrintable = "quoted-printable" // bytes will be decoded from quoted-printable
	Base64          = "base64"           // bytes will be decoded from base64
)

// Decoders maps each supported Content-transfer-encoding to the function that
// wraps a reader to decode it. Encodings missing from the map are read as-is.
var Decoders = map[string]func(io.Reader) io.Reader{
	QuotedPrintable: NewQuotedPrintableDecoder,
	Base64:          NewBase64Decoder,
}

// NewDecoder returns an io.Reader that decodes r according to the named
// Content-transfer-encoding. The name is matched without regard to case or
// surrounding space. Unknown and identity encodings return r unchanged.
func NewDecoder(cte string, r io.Reader) io.Reader {
	cte = strings.ToLower(strings.TrimSpace(cte))
	if dec, ok := Decoders[cte]; ok {
		return dec(r)
	}
	return r
}
