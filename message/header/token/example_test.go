package token_test

import (
	"fmt"

	"github.com/zostay/go-mailwords/message/header/token"
)

func ExampleNormalized() {
	toks := token.Normalized("=?UTF-8?Q?Caf=C3=A9?=\r\n =?UTF-8?B?8J+NsA==?= and cake")
	for _, tok := range toks {
		fmt.Printf("%s %q\n", token.Kind(tok), tok.String())
	}
	fmt.Println(token.Join(toks))

	// Output:
	// whitespace ""
	// decoded "Café"
	// whitespace ""
	// decoded "🍰"
	// text " and cake"
	// Café🍰 and cake
}

func ExampleDecode() {
	fmt.Println(token.Decode("Re: =?ISO-8859-1?Q?Andr=E9?=\r\n is here"))

	// Output:
	// Re: André is here
}
