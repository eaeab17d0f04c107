// Package message splits an email message into its header and body.
//
// Parse reads only as far as the blank line that ends the header. The header
// is returned as a *header.Header whose fields are views into the bytes read,
// decoded only when asked for. The body is left as an io.Reader over the rest
// of the input:
//
//	msg, err := message.Parse(in)
//	if err != nil {
//	  panic(err)
//	}
//
//	subject, _ := msg.GetHeader().GetSubject()
//	fmt.Println(subject)
//
// MIME multipart bodies are not split into parts.
package message
