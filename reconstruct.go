package press

import "fmt"

// Reconstruct replays a token sequence against a growing output buffer,
// appending the expansion to dst. Match bytes are copied one at a time:
// when offset < length the copy reads bytes it wrote earlier in the same
// token, which is what makes overlapping run-length style matches work.
//
// A match reaching back past the start of the reconstructed output fails
// with a ReferenceError.
func Reconstruct(dst []byte, tokens []Token) ([]byte, error) {
	base := len(dst)
	for i, tok := range tokens {
		switch tok.Kind {
		case KindLiteral:
			dst = append(dst, tok.Lit)
		case KindMatch:
			if tok.Offset < 1 || tok.Offset > len(dst)-base {
				return nil, &ReferenceError{Token: i, Offset: tok.Offset, OutputLen: len(dst) - base}
			}
			src := len(dst) - tok.Offset
			for n := 0; n < tok.Length; n++ {
				dst = append(dst, dst[src+n])
			}
		default:
			return nil, &FormatError{Offset: -1, Reason: fmt.Sprintf("token %d: unknown kind %d", i, tok.Kind)}
		}
	}
	return dst, nil
}
