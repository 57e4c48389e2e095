package press

import (
	"encoding/binary"
	"math/bits"
	"runtime"
)

// A MatchFinder locates the longest previous occurrence of the bytes at
// the current position, reading candidates from a WindowIndex.
type MatchFinder struct {
	src           []byte
	index         *WindowIndex
	maxLength     int
	maxCandidates int
}

// NewMatchFinder returns a finder over src consulting index.
func NewMatchFinder(src []byte, index *WindowIndex, opts Options) *MatchFinder {
	opts = opts.withDefaults()
	return &MatchFinder{
		src:           src,
		index:         index,
		maxLength:     opts.MaxLength,
		maxCandidates: opts.MaxCandidates,
	}
}

// FindMatch returns the longest match for the bytes at pos within the
// window, capped at MaxLength and the remaining input. ok is false when
// no previous occurrence reaches MinMatch bytes; that is a normal result,
// not an error.
//
// Candidates are probed newest-first, at most MaxCandidates of them, and
// on equal lengths the closest candidate wins. Matches are allowed to run
// past pos into bytes not yet tokenized, so a self-referential match with
// offset < length is found like any other.
func (f *MatchFinder) FindMatch(pos int) (offset, length int, ok bool) {
	candidates := f.index.Candidates(pos)
	limit := pos + f.maxLength
	if limit > len(f.src) {
		limit = len(f.src)
	}

	best := 0
	bestOffset := 0
	for i, probed := len(candidates)-1, 0; i >= 0 && probed < f.maxCandidates; i, probed = i-1, probed+1 {
		cand := int(candidates[i])
		n := extendMatch(f.src[:limit], cand, pos) - pos
		if n > best {
			best = n
			bestOffset = pos - cand
			if pos+best == limit {
				break
			}
		}
	}

	if best < MinMatch {
		return 0, 0, false
	}
	return bestOffset, best, true
}

// extendMatch returns the largest k such that k <= len(src) and that
// src[i:i+k-j] and src[j:k] have the same contents.
//
// It assumes that:
//
//	0 <= i && i < j && j <= len(src)
func extendMatch(src []byte, i, j int) int {
	switch runtime.GOARCH {
	case "amd64":
		// As long as we are 8 or more bytes before the end of src, we can
		// load and compare 8 bytes at a time. If those 8 bytes are equal,
		// repeat.
		for j+8 < len(src) {
			iBytes := binary.LittleEndian.Uint64(src[i:])
			jBytes := binary.LittleEndian.Uint64(src[j:])
			if iBytes != jBytes {
				// If those 8 bytes were not equal, XOR the two 8 byte
				// values, and return the index of the first byte that
				// differs. The BSF instruction finds the least significant
				// 1 bit, the amd64 architecture is little-endian, and the
				// shift by 3 converts a bit index to a byte index.
				return j + bits.TrailingZeros64(iBytes^jBytes)>>3
			}
			i, j = i+8, j+8
		}
	case "386":
		// On a 32-bit CPU, we do it 4 bytes at a time.
		for j+4 < len(src) {
			iBytes := binary.LittleEndian.Uint32(src[i:])
			jBytes := binary.LittleEndian.Uint32(src[j:])
			if iBytes != jBytes {
				return j + bits.TrailingZeros32(iBytes^jBytes)>>3
			}
			i, j = i+4, j+4
		}
	}
	for ; j < len(src) && src[i] == src[j]; i, j = i+1, j+1 {
	}
	return j
}
