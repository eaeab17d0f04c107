package transfer

import (
	"encoding/base64"
	"io"
)

// NewBase64Decoder will translate all bytes read from the given io.Reader as
// base64 and return the binary data to the returned io.Reader. Line breaks in
// the input are ignored.
func NewBase64Decoder(r io.Reader) io.Reader {
	return base64.NewDecoder(base64.StdEncoding, r)
}

// DecodeBase64 decodes padded, standard alphabet base64 as used by MIME. Line
// breaks are ignored. Any other character outside the alphabet is an error.
func DecodeBase64(b []byte) ([]byte, error) {
	dec := make([]byte, base64.StdEncoding.DecodedLen(len(b)))
	n, err := base64.StdEncoding.Decode(dec, b)
	if err != nil {
		return nil, err
	}
	return dec[:n], nil
}
