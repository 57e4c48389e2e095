package press

import (
	"fmt"

	"github.com/pierrec/xxHash/xxHash32"
)

// Decode parses a compressed stream into its header and token sequence.
// It fails with a FormatError on bad magic, an unsupported version, or a
// truncated body.
func Decode(data []byte) (Header, []Token, error) {
	h, n, err := parseHeader(data)
	if err != nil {
		return Header{}, nil, err
	}

	// Every token takes at least one bit, so a count beyond the body's
	// bit count cannot be honest. This also bounds the allocation below.
	if h.Tokens > (len(data)-n)*8 {
		return Header{}, nil, &FormatError{Offset: n, Reason: "token count exceeds stream size"}
	}

	r := bitReader{b: data[n:], base: n}
	tokens := make([]Token, 0, min(h.Tokens, 1<<16))
	for i := 0; i < h.Tokens; i++ {
		kind, err := r.readBits(1)
		if err != nil {
			return Header{}, nil, err
		}
		if kind == 0 {
			v, err := r.readBits(8)
			if err != nil {
				return Header{}, nil, err
			}
			tokens = append(tokens, Token{Kind: KindLiteral, Lit: byte(v)})
			continue
		}
		off, err := r.readBits(h.OffsetBits)
		if err != nil {
			return Header{}, nil, err
		}
		length, err := r.readBits(h.LengthBits)
		if err != nil {
			return Header{}, nil, err
		}
		tokens = append(tokens, Token{
			Kind:   KindMatch,
			Offset: int(off) + 1,
			Length: int(length) + MinMatch,
		})
	}
	return h, tokens, nil
}

// Decompress appends the reconstructed content of a compressed stream to
// dst. The header supplies the field widths, so no Options are needed.
// The result is verified against the header's size and checksum.
func Decompress(dst, data []byte) ([]byte, error) {
	h, tokens, err := Decode(data)
	if err != nil {
		return nil, err
	}
	start := len(dst)
	dst, err = Reconstruct(dst, tokens)
	if err != nil {
		return nil, err
	}
	out := dst[start:]
	if len(out) != h.RawSize {
		return nil, &FormatError{Offset: -1,
			Reason: fmt.Sprintf("reconstructed %d bytes, header declared %d", len(out), h.RawSize)}
	}
	if sum := xxHash32.Checksum(out, checksumSeed); sum != h.Checksum {
		return nil, &FormatError{Offset: -1, Reason: "checksum mismatch"}
	}
	return dst, nil
}
