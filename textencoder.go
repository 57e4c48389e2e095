package press

import "fmt"

// A TextEncoder produces a human-readable representation of a token
// sequence: literal bytes verbatim, matches as <Length,Offset> symbols.
// It is meant for debugging and inspection, not for round-tripping.
type TextEncoder struct{}

func (TextEncoder) Encode(dst []byte, tokens []Token) []byte {
	for _, tok := range tokens {
		switch tok.Kind {
		case KindLiteral:
			dst = append(dst, tok.Lit)
		case KindMatch:
			dst = append(dst, fmt.Sprintf("<%d,%d>", tok.Length, tok.Offset)...)
		}
	}
	return dst
}
