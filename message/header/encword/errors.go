package encword

import "fmt"

// Kind identifies which stage of encoded-word decoding failed.
type Kind int

// The kinds of decoding failure reported by Error.
const (
	Generic         Kind = iota // the encoded word is structurally broken
	QuotedPrintable             // the Q payload could not be decoded
	Base64                      // the B payload could not be decoded
	Encoding                    // the charset is unknown or the bytes could not be converted
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case QuotedPrintable:
		return "quoted-printable"
	case Base64:
		return "base64"
	case Encoding:
		return "encoding"
	default:
		return "generic"
	}
}

// Error is returned by the strict decoding functions of this package. Err holds
// the underlying cause, if there was one.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

// Error returns the error message.
func (err *Error) Error() string {
	if err.Kind == Generic {
		if err.Err != nil {
			return fmt.Sprintf("%s: %v", err.Msg, err.Err)
		}
		return err.Msg
	}

	if err.Err != nil {
		return fmt.Sprintf("%s decode error: %s: %v", err.Kind, err.Msg, err.Err)
	}
	return fmt.Sprintf("%s decode error: %s", err.Kind, err.Msg)
}

// Unwrap returns the underlying cause.
func (err *Error) Unwrap() error {
	return err.Err
}

// Is reports whether target is an *Error of the same Kind, so that
// errors.Is(err, &encword.Error{Kind: encword.Base64}) works as a kind check.
func (err *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Msg == "" && t.Err == nil && t.Kind == err.Kind
}

func newError(k Kind, msg string, cause error) *Error {
	return &Error{Kind: k, Msg: msg, Err: cause}
}
