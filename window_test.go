package press

import "testing"

func TestWindowIndexCandidates(t *testing.T) {
	src := []byte("abababab")
	ix := NewWindowIndex(src, Options{KeyLength: 2})

	for _, pos := range []int{0, 2, 4} {
		ix.Insert(pos)
	}

	got := ix.Candidates(6)
	want := []int32{0, 2, 4}
	if len(got) != len(want) {
		t.Fatalf("Candidates(6) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Candidates(6) = %v, want %v", got, want)
		}
	}
}

func TestWindowIndexEviction(t *testing.T) {
	src := []byte("abababababab")
	ix := NewWindowIndex(src, Options{KeyLength: 2, WindowSize: 4})

	for _, pos := range []int{0, 2, 4, 6} {
		ix.Insert(pos)
	}

	// Window floor for position 8 is 4; positions 0 and 2 are stale.
	got := ix.Candidates(8)
	if len(got) != 2 || got[0] != 4 || got[1] != 6 {
		t.Fatalf("Candidates(8) = %v, want [4 6]", got)
	}
}

func TestWindowIndexNoKeyAtEnd(t *testing.T) {
	src := []byte("ab")
	ix := NewWindowIndex(src, Options{KeyLength: 2})

	// Position 1 has only one byte left; inserting or querying it is a
	// no-op.
	ix.Insert(1)
	if got := ix.Candidates(1); got != nil {
		t.Fatalf("Candidates(1) = %v, want nil", got)
	}
}

func TestWindowIndexSingleByteKey(t *testing.T) {
	src := []byte("abcba")
	ix := NewWindowIndex(src, Options{KeyLength: 1})

	for pos := 0; pos < 4; pos++ {
		ix.Insert(pos)
	}

	got := ix.Candidates(4) // key 'a'
	if len(got) != 1 || got[0] != 0 {
		t.Fatalf("Candidates(4) = %v, want [0]", got)
	}
}
