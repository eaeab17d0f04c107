package message

import (
	"bufio"
	"bytes"
	"errors"
	"io"

	"github.com/zostay/go-mailwords/message/header"
)

// Constants related to Parse() options.
const (
	// DefaultChunkSize the default size of chunks to read from the input while
	// splitting the message into header and body. Defaults to 16K, though this
	// could change at any time.
	DefaultChunkSize = 16_384

	// DefaultMaxHeaderLength is the default maximum byte length to scan before
	// giving up on finding the end of the header.
	DefaultMaxHeaderLength = bufio.MaxScanTokenSize
)

// Errors that occur during parsing.
var (
	// ErrLargeHeader is returned by Parse when the header is longer than the
	// configured WithMaxHeaderLength option (or the default,
	// DefaultMaxHeaderLength).
	ErrLargeHeader = errors.New("the header exceeds the maximum parse length")
)

var splits = [][]byte{
	[]byte("\x0d\x0a\x0d\x0a"), // \r\n\r\n
	[]byte("\x0a\x0d\x0a\x0d"), // \n\r\n\r, extremely unlikely, possibly never
	[]byte("\x0a\x0a"),         // \n\n
	[]byte("\x0d\x0d"),         // \r\r
}

type parser struct {
	maxHeaderLen int
	chunkSize    int
	decode       bool
}

func (pr *parser) clone() *parser {
	p := *pr
	return &p
}

var defaultParser = &parser{
	maxHeaderLen: DefaultMaxHeaderLength,
	chunkSize:    DefaultChunkSize,
	decode:       false,
}

// ParseOption refers to options that may be passed to the Parse function to
// modify how the parser works.
type ParseOption func(pr *parser)

// WithMaxHeaderLength is a ParseOption that sets the maximum size the buffer is
// allowed to reach before parsing exits with an ErrLargeHeader error. During
// parsing, the io.Reader will be read from a chunk at a time until the end of
// the header is found. This setting prevents bad input from resulting in an out
// of memory error. Setting this to a value less than or equal to 0 will result
// in there being no maximum length. The default value is
// DefaultMaxHeaderLength.
func WithMaxHeaderLength(n int) ParseOption {
	return func(pr *parser) { pr.maxHeaderLen = n }
}

// WithChunkSize is a ParseOption that controls how many bytes to read at a time
// while parsing an email message. The default chunk size is DefaultChunkSize.
func WithChunkSize(chunkSize int) ParseOption {
	return func(pr *parser) {
		if chunkSize > 0 {
			pr.chunkSize = chunkSize
		}
	}
}

// DecodeTransferEncoding is a ParseOption that makes Message.Reader return the
// body with its Content-transfer-encoding removed. Without it, the body is
// returned exactly as it was read.
func DecodeTransferEncoding() ParseOption {
	return func(pr *parser) { pr.decode = true }
}

// searchForSplit looks for a header/body split. Returns -1, nil if none is
// found. If the header/body split is found, it returns the location of the
// split (including the split newlines) and the line break to use with the
// header as a slice of bytes.
func searchForSplit(buf []byte, atStart bool) (pos int, crlf []byte) {
	if atStart {
		// if the header is empty, the first char might be a line break,
		// indicating an empty header, right? It happens.
		for _, s := range splits {
			if bytes.HasPrefix(buf, s[0:len(s)/2]) {
				return len(s) / 2, s[0 : len(s)/2]
			}
		}
	}

	pos = -1
	for _, s := range splits {
		if testPos := bytes.Index(buf, s); testPos > -1 {
			pos = testPos + len(s)
			crlf = s[0 : len(s)/2]
			return
		}
	}
	return
}

// tooLong reports whether a header of n bytes exceeds the configured maximum.
func (pr *parser) tooLong(n int) bool {
	return pr.maxHeaderLen > 0 && n > pr.maxHeaderLen
}

// splitHeadFromBody reads r until the blank line ending the header is found. It
// returns the header bytes (without the blank line), the line break the
// header uses, and a reader for the body. The body reader replays whatever part
// of the body was already read and then continues with r.
func (pr *parser) splitHeadFromBody(r io.Reader) ([]byte, []byte, io.Reader, error) {
	p := make([]byte, pr.chunkSize)
	buf := &bytes.Buffer{}
	searched := 0
	for {
		n, err := r.Read(p)

		isEOF := false
		if errors.Is(err, io.EOF) {
			isEOF = true
		} else if err != nil {
			return nil, nil, nil, err
		}

		buf.Write(p[:n])

		pos, crlf := searchForSplit(buf.Bytes()[searched:], searched == 0)

		if pos >= 0 {
			pos += searched
			all := buf.Bytes()
			// leave off the blank line that ends the header
			hdr := bytes.TrimSuffix(all[:pos], crlf)
			if pr.tooLong(len(hdr)) {
				return nil, nil, nil, ErrLargeHeader
			}
			return hdr, crlf, &remainder{all[pos:], r}, nil
		}

		// only the header counts against the limit, so check once no split
		// turned up in what has been read
		if pr.tooLong(buf.Len()) {
			return nil, nil, nil, ErrLargeHeader
		}

		if isEOF {
			break
		}

		// The last 3 bytes might be the prefix to the split point
		searched = buf.Len() - 3
		if searched < 0 {
			searched = 0
		}
	}

	// No split found: the message is all header and no body. See if we can
	// find what to use as a break.
	for _, s := range splits {
		crlf := s[0 : len(s)/2]
		if bytes.Contains(buf.Bytes(), crlf) {
			return buf.Bytes(), crlf, nil, nil
		}
	}

	// Or the ultimate fallback is...
	return buf.Bytes(), []byte("\x0d"), nil, nil
}

// Parse consumes the header of the message in the given reader and returns a
// Message holding the parsed header and a reader for the body.
//
// The io.Reader is read in chunks, as defined by the WithChunkSize() option
// (or by the default, DefaultChunkSize). Each chunk is checked for a double
// line break of some kind (e.g., "\r\n\r\n" or "\n\n" are the most common).
// Once found, that line break is used to break up the header into fields. The
// header fields are views into the bytes read so far: they are not decoded
// until asked for.
//
// If accumulated header chunks total larger than the WithMaxHeaderLength()
// option (or the default, DefaultMaxHeaderLength) while searching for the
// double line break, Parse fails with ErrLargeHeader. If this happens, the
// io.Reader may be in a partial read state.
//
// If the header starts with junk, the *field.BadStartError is returned along
// with a usable Message.
//
// The body is not read beyond the chunk in which the header ended. Reading the
// returned Message's body consumes the rest of r.
func Parse(r io.Reader, opts ...ParseOption) (*Message, error) {
	pr := defaultParser.clone()
	for _, opt := range opts {
		opt(pr)
	}

	hdr, crlf, body, err := pr.splitHeadFromBody(r)
	if err != nil {
		return nil, err
	}

	head, err := header.Parse(hdr, header.Break(crlf))
	if head == nil {
		return nil, err
	}

	return &Message{Header: head, body: body, decode: pr.decode}, err
}
