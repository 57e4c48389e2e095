package press

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// Wire layout: a byte-aligned header followed by the bit-packed token
// body.
//
//	magic      [4]byte  0x89 'L' 'Z' 'P'
//	version    uint8
//	offsetBits uint8    width of the match offset field (stores offset-1)
//	lengthBits uint8    width of the match length field (stores length-MinMatch)
//	tokens     uvarint  number of tokens in the body
//	rawSize    uvarint  size of the uncompressed content
//	checksum   uint32le xxHash32 of the uncompressed content
//
// Each body token starts with one discriminator bit: 0 is a literal
// followed by 8 bits, 1 is a match followed by the offset and length
// fields. The header's token count tells the decoder when to stop, so the
// zero bits padding the final byte are never misread as tokens.
//
// The field widths travel in the header, making every stream
// self-describing: a decoder never depends on its own Options matching
// the encoder's.

// formatVersion is the current container version.
const formatVersion = 1

// checksumSeed is the xxHash32 seed for the payload checksum.
const checksumSeed = 0

var magic = [4]byte{0x89, 'L', 'Z', 'P'}

// A Header describes a compressed stream. Decode returns it alongside the
// token sequence.
type Header struct {
	Version    int
	OffsetBits uint
	LengthBits uint
	Tokens     int
	RawSize    int
	Checksum   uint32
}

func appendHeader(dst []byte, h Header) []byte {
	dst = append(dst, magic[:]...)
	dst = append(dst, byte(h.Version), byte(h.OffsetBits), byte(h.LengthBits))
	dst = binary.AppendUvarint(dst, uint64(h.Tokens))
	dst = binary.AppendUvarint(dst, uint64(h.RawSize))
	dst = binary.LittleEndian.AppendUint32(dst, h.Checksum)
	return dst
}

// parseHeader reads and validates the header, returning it and the number
// of bytes consumed.
func parseHeader(data []byte) (h Header, n int, err error) {
	if len(data) < len(magic)+3 {
		return h, 0, &FormatError{Offset: 0, Reason: "truncated header"}
	}
	if !bytes.Equal(data[:len(magic)], magic[:]) {
		return h, 0, &FormatError{Offset: 0, Reason: "bad magic"}
	}
	h.Version = int(data[4])
	if h.Version != formatVersion {
		return h, 0, &FormatError{Offset: 4, Reason: fmt.Sprintf("unsupported version %d", h.Version)}
	}
	h.OffsetBits = uint(data[5])
	if h.OffsetBits < 1 || h.OffsetBits > maxFieldBits {
		return h, 0, &FormatError{Offset: 5, Reason: fmt.Sprintf("offset width %d out of range", h.OffsetBits)}
	}
	h.LengthBits = uint(data[6])
	if h.LengthBits < 1 || h.LengthBits > maxFieldBits {
		return h, 0, &FormatError{Offset: 6, Reason: fmt.Sprintf("length width %d out of range", h.LengthBits)}
	}
	n = 7

	tokens, size := binary.Uvarint(data[n:])
	if size <= 0 || tokens > math.MaxInt32 {
		return h, 0, &FormatError{Offset: n, Reason: "bad token count"}
	}
	h.Tokens = int(tokens)
	n += size

	rawSize, size := binary.Uvarint(data[n:])
	if size <= 0 || rawSize > math.MaxInt32 {
		return h, 0, &FormatError{Offset: n, Reason: "bad raw size"}
	}
	h.RawSize = int(rawSize)
	n += size

	if len(data) < n+4 {
		return h, 0, &FormatError{Offset: n, Reason: "truncated checksum"}
	}
	h.Checksum = binary.LittleEndian.Uint32(data[n:])
	n += 4

	return h, n, nil
}
