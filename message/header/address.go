package header

import (
	"strings"

	"github.com/zostay/go-addr/pkg/addr"
)

// splitComments pulls the parenthesized comments out of s. It returns the text
// with the comments removed and the comment text, nested parens included.
func splitComments(s string) (string, string) {
	var clean, comment strings.Builder
	depth := 0
	for _, c := range s {
		switch {
		case c == '(':
			depth++
			if depth > 1 {
				comment.WriteRune(c)
			}
		case c == ')' && depth == 0:
			clean.WriteRune(c)
		case c == ')':
			depth--
			if depth > 0 {
				comment.WriteRune(c)
			}
		case depth > 0:
			comment.WriteRune(c)
		default:
			clean.WriteRune(c)
		}
	}

	return clean.String(), comment.String()
}

// parseEmailAddressList is the fallback for ParseAddressList. The parser in
// github.com/zostay/go-addr is strict, which is what you want when validating
// data entry, but mail from the Internet needs something that returns a result
// no matter what.
//
// Each comma-separated piece becomes a mailbox: comments are set aside, the last
// word is the address, and any words in front of it are the display name. Groups
// are not recognized.
func parseEmailAddressList(v string) addr.AddressList {
	pieces := strings.Split(v, ",")
	as := make(addr.AddressList, 0, len(pieces))
	for _, orig := range pieces {
		orig = strings.TrimSpace(orig)
		mb, com := splitComments(orig)
		words := strings.Fields(mb)
		if len(words) == 0 {
			continue
		}

		dn := strings.Join(words[:len(words)-1], " ")
		email := strings.Trim(words[len(words)-1], "<>")
		com = strings.TrimSpace(com)

		var addrSpec *addr.AddrSpec
		if local, domain, found := strings.Cut(email, "@"); found {
			addrSpec = addr.NewAddrSpecParsed(local, domain, email)
		} else {
			addrSpec = addr.NewAddrSpecParsed(email, "", email)
		}

		mailbox, err := addr.NewMailboxParsed(dn, addrSpec, com, orig)
		if err != nil {
			mailbox, _ = addr.NewMailboxParsed(dn, addrSpec, "", orig)
		}

		as = append(as, mailbox)
	}

	return as
}
