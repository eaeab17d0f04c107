// Package transfer contains the byte-level payload decodings used by encoded
// words and Content-transfer-encoding: base64 and quoted-printable.
//
// For the sake of this module, "decoded" means the bytes have been transformed
// from the transfer encoding back into the charset-encoded form. Turning those
// bytes into text is the job of the caller.
package transfer
