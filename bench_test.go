package press

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/flate"
	"github.com/pierrec/lz4/v4"
)

// benchCorpus builds a deterministic mixed corpus: repetitive text with
// occasional incompressible runs, roughly 256 KiB.
func benchCorpus() []byte {
	rng := rand.New(rand.NewSource(42))
	phrases := []string{
		"the quick brown fox jumps over the lazy dog. ",
		"pack my box with five dozen liquor jugs. ",
		"how vexingly quick daft zebras jump! ",
	}
	var buf bytes.Buffer
	noise := make([]byte, 16)
	for buf.Len() < 1<<18 {
		buf.WriteString(phrases[rng.Intn(len(phrases))])
		if rng.Intn(8) == 0 {
			rng.Read(noise)
			buf.Write(noise)
		}
	}
	return buf.Bytes()
}

func flateSize(tb testing.TB, src []byte) int {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		tb.Fatal(err)
	}
	if _, err := w.Write(src); err != nil {
		tb.Fatal(err)
	}
	if err := w.Close(); err != nil {
		tb.Fatal(err)
	}
	return buf.Len()
}

func lz4Size(tb testing.TB, src []byte) int {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(src); err != nil {
		tb.Fatal(err)
	}
	if err := w.Close(); err != nil {
		tb.Fatal(err)
	}
	return buf.Len()
}

func brotliSize(tb testing.TB, src []byte) int {
	var buf bytes.Buffer
	w := brotli.NewWriterLevel(&buf, 5)
	if _, err := w.Write(src); err != nil {
		tb.Fatal(err)
	}
	if err := w.Close(); err != nil {
		tb.Fatal(err)
	}
	return buf.Len()
}

// TestCompressionRatio round-trips the bench corpus and logs how the
// format stacks up against the usual suspects. The comparisons are
// informational; only our own correctness and a sanity ratio are
// asserted.
func TestCompressionRatio(t *testing.T) {
	src := benchCorpus()

	compressed, err := Compress(nil, src, Options{})
	if err != nil {
		t.Fatal(err)
	}
	out, err := Decompress(nil, compressed)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, src) {
		t.Fatal("round trip mismatch on bench corpus")
	}
	if len(compressed) >= len(src) {
		t.Fatalf("repetitive corpus did not shrink: %d -> %d", len(src), len(compressed))
	}

	t.Logf("input:  %d bytes", len(src))
	t.Logf("press:  %d bytes", len(compressed))
	t.Logf("snappy: %d bytes", len(snappy.Encode(nil, src)))
	t.Logf("flate:  %d bytes", flateSize(t, src))
	t.Logf("lz4:    %d bytes", lz4Size(t, src))
	t.Logf("brotli: %d bytes", brotliSize(t, src))
}

func BenchmarkCompress(b *testing.B) {
	src := benchCorpus()
	b.SetBytes(int64(len(src)))
	b.ResetTimer()

	var out []byte
	for i := 0; i < b.N; i++ {
		var err error
		out, err = Compress(out[:0], src, Options{})
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompressLazy(b *testing.B) {
	src := benchCorpus()
	b.SetBytes(int64(len(src)))
	b.ResetTimer()

	var out []byte
	for i := 0; i < b.N; i++ {
		var err error
		out, err = Compress(out[:0], src, Options{Lazy: true})
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecompress(b *testing.B) {
	src := benchCorpus()
	compressed, err := Compress(nil, src, Options{})
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(src)))
	b.ResetTimer()

	var out []byte
	for i := 0; i < b.N; i++ {
		out, err = Decompress(out[:0], compressed)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkReferenceCodecs(b *testing.B) {
	src := benchCorpus()

	b.Run("snappy", func(b *testing.B) {
		b.SetBytes(int64(len(src)))
		var out []byte
		for i := 0; i < b.N; i++ {
			out = snappy.Encode(out[:0], src)
		}
	})
	b.Run("flate", func(b *testing.B) {
		b.SetBytes(int64(len(src)))
		for i := 0; i < b.N; i++ {
			flateSize(b, src)
		}
	})
	b.Run("lz4", func(b *testing.B) {
		b.SetBytes(int64(len(src)))
		for i := 0; i < b.N; i++ {
			lz4Size(b, src)
		}
	})
	b.Run("brotli", func(b *testing.B) {
		b.SetBytes(int64(len(src)))
		for i := 0; i < b.N; i++ {
			brotliSize(b, src)
		}
	})
}
