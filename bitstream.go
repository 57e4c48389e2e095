package press

// bitWriter packs values MSB-first into a growing byte slice. The final
// byte is zero-padded by flush when the bit count is not a multiple of 8.
type bitWriter struct {
	b   []byte
	cur byte
	n   uint // bits pending in cur, 0..7
}

// writeBits appends the low width bits of v, most significant first.
func (w *bitWriter) writeBits(v uint64, width uint) {
	for i := int(width) - 1; i >= 0; i-- {
		w.cur = w.cur<<1 | byte(v>>uint(i)&1)
		w.n++
		if w.n == 8 {
			w.b = append(w.b, w.cur)
			w.cur, w.n = 0, 0
		}
	}
}

// flush pads the pending bits with zeros up to a whole byte.
func (w *bitWriter) flush() {
	if w.n > 0 {
		w.b = append(w.b, w.cur<<(8-w.n))
		w.cur, w.n = 0, 0
	}
}

// bitReader consumes an MSB-first bit stream from a byte slice. base is
// the byte offset of the slice within the original stream, so errors can
// report absolute positions.
type bitReader struct {
	b    []byte
	base int
	pos  int // bit position within b
}

// readBits returns the next width bits as an unsigned value, or a
// FormatError if the stream ends first.
func (r *bitReader) readBits(width uint) (uint64, error) {
	if r.pos+int(width) > len(r.b)*8 {
		return 0, &FormatError{Offset: r.base + r.pos>>3, Reason: "truncated bitstream"}
	}
	var v uint64
	for i := uint(0); i < width; i++ {
		bit := r.b[r.pos>>3] >> (7 - uint(r.pos&7)) & 1
		v = v<<1 | uint64(bit)
		r.pos++
	}
	return v, nil
}
