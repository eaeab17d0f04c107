package message

import (
	"bytes"
	"io"

	"github.com/zostay/go-mailwords/message/header"
	"github.com/zostay/go-mailwords/message/transfer"
)

// Message is a parsed header and the unread body that follows it. The body is
// treated as opaque: MIME parts are not split out.
type Message struct {
	Header *header.Header

	body   io.Reader
	decode bool
}

// GetHeader returns the parsed header.
func (m *Message) GetHeader() *header.Header {
	return m.Header
}

// IsEncoded returns true if Reader returns the body with its transfer encoding
// still in place.
func (m *Message) IsEncoded() bool {
	return !m.decode
}

// GetRawReader returns the body exactly as it follows the header. It may only
// be read once.
func (m *Message) GetRawReader() io.Reader {
	if m.body == nil {
		return bytes.NewReader(nil)
	}
	return m.body
}

// GetReader returns the body. If the DecodeTransferEncoding option was given to
// Parse, the Content-transfer-encoding of the message is decoded. Like
// GetRawReader, the body may only be read once.
func (m *Message) GetReader() io.Reader {
	r := m.GetRawReader()
	if !m.decode {
		return r
	}

	// a missing or repeated field still yields something to go on
	cte, _ := m.Header.GetTransferEncoding()
	return transfer.NewDecoder(cte, r)
}
