package press

import (
	"fmt"

	"github.com/pierrec/xxHash/xxHash32"
)

// Encode appends the compressed form of src to dst, using the token
// sequence produced by Tokenize(src, opts). It fails with a FormatError
// if a token's offset or length does not fit the wire widths derived from
// opts.
func Encode(dst []byte, src []byte, tokens []Token, opts Options) ([]byte, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}
	offBits := opts.offsetBits()
	lenBits := opts.lengthBits()

	dst = appendHeader(dst, Header{
		Version:    formatVersion,
		OffsetBits: offBits,
		LengthBits: lenBits,
		Tokens:     len(tokens),
		RawSize:    len(src),
		Checksum:   xxHash32.Checksum(src, checksumSeed),
	})

	w := bitWriter{b: dst}
	for i, tok := range tokens {
		switch tok.Kind {
		case KindLiteral:
			w.writeBits(0, 1)
			w.writeBits(uint64(tok.Lit), 8)
		case KindMatch:
			if tok.Offset < 1 || uint64(tok.Offset-1) >= 1<<offBits {
				return nil, &FormatError{Offset: -1,
					Reason: fmt.Sprintf("token %d: offset %d does not fit in %d bits", i, tok.Offset, offBits)}
			}
			if tok.Length < MinMatch || uint64(tok.Length-MinMatch) >= 1<<lenBits {
				return nil, &FormatError{Offset: -1,
					Reason: fmt.Sprintf("token %d: length %d does not fit in %d bits", i, tok.Length, lenBits)}
			}
			w.writeBits(1, 1)
			w.writeBits(uint64(tok.Offset-1), offBits)
			w.writeBits(uint64(tok.Length-MinMatch), lenBits)
		default:
			return nil, &FormatError{Offset: -1, Reason: fmt.Sprintf("token %d: unknown kind %d", i, tok.Kind)}
		}
	}
	w.flush()
	return w.b, nil
}
