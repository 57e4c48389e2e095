// Package press implements a lossless LZ77 byte-stream compressor.
//
// Compression has two logically separate stages:
//   - A tokenizer that looks for repeated sequences of bytes, turning the
//     input into a stream of literal bytes and back-references.
//   - A bit-level codec that packs the token stream into a compact,
//     self-describing container format.
//
// The stages share an intermediate representation, the Token, so each can
// be exercised and tested on its own. Compress and Decompress tie them
// together for the common case.
package press

// A Kind discriminates the two token forms.
type Kind uint8

const (
	// KindLiteral is a single raw byte.
	KindLiteral Kind = iota

	// KindMatch is a back-reference: copy Length bytes starting Offset
	// bytes back in the reconstructed stream.
	KindMatch
)

// A Token is the basic unit of LZ77 compression: either one literal byte,
// or a reference to data earlier in the stream. Expanding a token sequence
// in order reproduces the original input exactly.
type Token struct {
	Kind   Kind
	Lit    byte // the byte value, when Kind is KindLiteral
	Offset int  // backward distance to the match source, when Kind is KindMatch
	Length int  // number of bytes to copy, when Kind is KindMatch
}

// Compress tokenizes src and appends its compressed form to dst,
// returning the result.
func Compress(dst, src []byte, opts Options) ([]byte, error) {
	tokens, err := Tokenize(src, opts)
	if err != nil {
		return nil, err
	}
	return Encode(dst, src, tokens, opts)
}
