// Package mailwords decodes the RFC 2047 encoded words found in email header
// fields.
//
// The work is split according to the part of the message being handled. The
// message package separates a message into header and body. The message/header
// package gives an ordered, read-only view of the header fields along with
// getters for the common ones (Subject, From, Date, and so on) that return
// decoded text. Each field is a field.Field, which is only a view into the
// bytes of the original message: nothing is copied or decoded until it is asked
// for.
//
// Decoding itself is done by the message/header/token package, which turns a
// field body into a sequence of tokens: literal text, whitespace, folds, and
// decoded words. The whitespace between adjacent encoded words is dropped and
// folds are replaced by a single space, so joining the tokens gives the text a
// person reading the message expects to see. Decoding never fails. Anything
// that cannot be decoded is kept as literal text. For strict decoding of a
// single encoded word, see the message/header/encword package.
//
// The tools/mailwords command exercises all of this from the command line.
package mailwords
