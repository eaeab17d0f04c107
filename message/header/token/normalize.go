package token

// pending describes what the normalizer is holding back while it waits to see
// the next token.
type pending int

const (
	idle              pending = iota // nothing held
	holdingWhitespace                // a Whitespace that followed a DecodedWord
	holdingFold                      // a resolved LineBreak that followed a DecodedWord
	afterDecodedWord                 // nothing held, but the last token was a DecodedWord
)

// Normalize applies the RFC 2047 whitespace rules to the output of Tokenize.
//
// Whitespace and folds found between two DecodedWord tokens are removed. Folds
// anywhere else are resolved to a single space, or to the whitespace in front
// of the fold plus a space when that whitespace followed a DecodedWord.
// Whitespace next to Text is kept as it is. Whitespace or folds trailing a
// DecodedWord at the very end of the input are dropped.
func Normalize(toks []Token) []Token {
	out := make([]Token, 0, len(toks))

	state := idle
	var held Token
	for _, tok := range toks {
		switch t := tok.(type) {
		case Text:
			if state == holdingWhitespace || state == holdingFold {
				out = append(out, held)
			}
			out = append(out, t)
			state, held = idle, nil

		case Whitespace:
			if state == afterDecodedWord {
				state, held = holdingWhitespace, t
				continue
			}
			out = append(out, t)
			state, held = idle, nil

		case LineBreak:
			switch state {
			case holdingWhitespace:
				state, held = holdingFold, Fold(held.String()+" ")
			case afterDecodedWord:
				state, held = holdingFold, Fold(" ")
			default:
				out = append(out, Fold(" "))
				state, held = idle, nil
			}

		case DecodedWord:
			// anything held is between two encoded words, so it goes away
			out = append(out, t)
			state, held = afterDecodedWord, nil
		}
	}

	return out
}

// Normalized tokenizes and normalizes a raw header body.
func Normalized(value string) []Token {
	return Normalize(Tokenize(value))
}

// Decode returns the display text of a raw header body: the joined,
// normalized tokens.
func Decode(value string) string {
	return Join(Normalized(value))
}
