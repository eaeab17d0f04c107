package field

import (
	"bytes"
)

// BadStartError is returned when the header begins with junk text that does not
// appear to be a header. This text is preserved in the error object.
type BadStartError struct {
	BadStart []byte // the text skipped at the start of header
}

// Error returns the error message.
func (err *BadStartError) Error() string {
	return "header starts with text that does not appear to be a header"
}

// Line represents the unparsed content for a complete header field line.
type Line []byte

// Lines represents the unparsed content for zero or more header field
// lines.
type Lines []Line

// ParseLines splits the given input into lines according to the rules we use to
// determine how to break header fields up inside a header. The input bytes are
// expected to include only the header. It will parse the whole input as if all
// of it belongs to the header. It returns the input as Lines, each of which is
// a slice of m, ready to feed into Parse. Nothing is copied.
//
// This method does not follow RFC 5322 precisely. It will accept input that the
// RFC rejects, as this library attempts to be liberal in what it accepts.
//
// If the first line (or lines) of input start with spaces or contain no colons,
// these lines will be skipped in the Lines returned. However, a BadStartError
// will be returned.
//
// From then on, this will start a new field on any line that does not start
// with a space and contains a colon. After the first such line is encountered,
// any line after that will be considered a continuation if it starts with a
// space or does not contain a colon. (A space here is a space or tab character,
// in keeping with RFC 5322.)
//
// An empty lb is treated as "\n".
func ParseLines(m, lb []byte) (Lines, error) {
	if len(m) == 0 {
		return Lines{}, nil
	}

	if len(lb) == 0 {
		lb = []byte{'\n'}
	}

	h := make(Lines, 0, len(m)/80+1)
	var err *BadStartError
	lastStart := 0
	for pos := 0; pos < len(m); {
		end := bytes.Index(m[pos:], lb)
		if end < 0 {
			end = len(m)
		} else {
			end += pos + len(lb)
		}

		line := m[pos:end]
		if line[0] == '\t' || line[0] == ' ' || !bytes.Contains(line, []byte(":")) {
			// Start with a continuation? Weird, uh...
			if len(h) == 0 {
				if err != nil {
					err.BadStart = append(err.BadStart, line...)
				} else {
					err = &BadStartError{append([]byte{}, line...)}
				}
			} else {
				// continuation lines are contiguous in m, so extend in place
				h[len(h)-1] = m[lastStart:end]
			}
		} else {
			h = append(h, line)
			lastStart = pos
		}

		pos = end
	}

	if err != nil {
		return h, err
	}
	return h, nil
}

// isBlank is true for the space and tab.
func isBlank(c byte) bool { return c == ' ' || c == '\t' }

// Parse will take a single header field line, including any folded continuation
// lines, and build a Field view over it. The Field refers to the bytes of f
// directly. Trailing line breaks of any kind are left out of the view.
func Parse(f Line) *Field {
	raw := bytes.TrimRight(f, "\r\n")

	colon := bytes.IndexByte(raw, ':')
	value := colon + 1
	if colon < 0 {
		colon = len(raw)
		value = len(raw)
	}

	// skip the blanks and any fold right after the colon
	for value < len(raw) && (isBlank(raw[value]) || raw[value] == '\r' || raw[value] == '\n') {
		value++
	}

	return &Field{raw: raw, colon: colon, value: value}
}
