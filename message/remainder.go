package message

import "io"

// remainder replays the body bytes that were read along with the header and
// then continues reading from the input.
type remainder struct {
	prefix []byte
	r      io.Reader
}

// Read returns bytes from the prefix first. Once the prefix is used up, reads
// pass through to the io.Reader.
func (r *remainder) Read(p []byte) (n int, err error) {
	if len(r.prefix) > 0 {
		n = copy(p, r.prefix)
		r.prefix = r.prefix[n:]
	}

	if n < len(p) {
		var rn int
		rn, err = r.r.Read(p[n:])
		n += rn
	}

	return n, err
}

// Close passes the call through to the io.Reader if it is an io.Closer.
// Otherwise, it does nothing.
func (r *remainder) Close() error {
	if c, isCloser := r.r.(io.Closer); isCloser {
		return c.Close()
	}
	return nil
}
