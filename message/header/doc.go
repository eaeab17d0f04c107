// Package header provides read access to email message headers. A Header is
// an ordered list of field.Field views over the original message bytes, plus
// getters that decode RFC 2047 encoded words on demand.
//
// Parse splits up a header block in a flexible way that is built on top of
// field.ParseLines() and never copies the input. Decoding happens only when a
// getter (or field.Field.Text) is called, so headers nobody asks about cost
// nothing beyond the slicing.
package header
