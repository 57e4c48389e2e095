package press

import (
	"errors"
	"testing"
)

func TestBitWriterPacksMSBFirst(t *testing.T) {
	var w bitWriter
	w.writeBits(0b101, 3)
	w.writeBits(0xff, 8)
	w.flush()

	want := []byte{0b1011_1111, 0b1110_0000}
	if len(w.b) != 2 || w.b[0] != want[0] || w.b[1] != want[1] {
		t.Fatalf("got %08b, want %08b", w.b, want)
	}
}

func TestBitRoundTrip(t *testing.T) {
	var w bitWriter
	values := []struct {
		v     uint64
		width uint
	}{
		{1, 1}, {0, 1}, {0xAB, 8}, {0x3FF, 10}, {12345, 15}, {0, 4},
	}
	for _, x := range values {
		w.writeBits(x.v, x.width)
	}
	w.flush()

	r := bitReader{b: w.b}
	for i, x := range values {
		got, err := r.readBits(x.width)
		if err != nil {
			t.Fatal(err)
		}
		if got != x.v {
			t.Fatalf("value %d: got %d, want %d", i, got, x.v)
		}
	}
}

func TestBitReaderTruncation(t *testing.T) {
	r := bitReader{b: []byte{0xFF}, base: 10}
	if _, err := r.readBits(6); err != nil {
		t.Fatal(err)
	}
	_, err := r.readBits(6)
	var ferr *FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("got %v, want FormatError", err)
	}
	if ferr.Offset != 10 {
		t.Fatalf("error offset = %d, want 10", ferr.Offset)
	}
}
