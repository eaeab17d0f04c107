package header

import (
	"errors"

	"github.com/zostay/go-mailwords/message/header/field"
)

// Parse will parse the given slice of bytes into an email header using the
// given line break string. It will assume the entire string given represents
// the header to be parsed.
//
// The returned header refers to m directly: no field name or body is copied
// and nothing is decoded until a getter asks for it. The caller must not modify
// m while the header is in use.
//
// A *field.BadStartError is returned along with the header if the input
// started with junk. The rest of the header is still usable.
func Parse(m []byte, lb Break) (*Header, error) {
	lines, err := field.ParseLines(m, lb.Bytes())

	var badStartErr *field.BadStartError // recoverable
	var finalErr error
	if errors.As(err, &badStartErr) {
		finalErr = badStartErr
	} else if err != nil {
		return nil, err
	}

	fields := make([]*field.Field, len(lines))
	for i, line := range lines {
		fields[i] = field.Parse(line)
	}

	return &Header{lbr: lb, fields: fields}, finalErr
}
