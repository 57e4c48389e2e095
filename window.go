package press

// A WindowIndex records, for each key-length byte prefix in the already
// tokenized part of the input, the positions where that prefix occurred
// within the sliding window. Entries are plain integer offsets into the
// input, never pointers, so evicting one is just dropping it from the map.
//
// The index is owned by the tokenizer for the duration of one pass. The
// match finder only reads it.
type WindowIndex struct {
	src       []byte
	window    int
	keyLen    int
	positions map[uint32][]int32
}

// NewWindowIndex returns an empty index over src.
func NewWindowIndex(src []byte, opts Options) *WindowIndex {
	opts = opts.withDefaults()
	return &WindowIndex{
		src:       src,
		window:    opts.WindowSize,
		keyLen:    opts.KeyLength,
		positions: make(map[uint32][]int32),
	}
}

// key returns the index key for pos. ok is false within keyLen bytes of
// the end of the input, where no full key exists.
func (ix *WindowIndex) key(pos int) (key uint32, ok bool) {
	if pos+ix.keyLen > len(ix.src) {
		return 0, false
	}
	key = uint32(ix.src[pos])
	if ix.keyLen == 2 {
		key = key<<8 | uint32(ix.src[pos+1])
	}
	return key, true
}

// Insert records pos in the index. The tokenizer inserts positions in
// increasing order, so each key's list stays sorted.
func (ix *WindowIndex) Insert(pos int) {
	key, ok := ix.key(pos)
	if !ok {
		return
	}
	ix.positions[key] = append(ix.positions[key], int32(pos))
}

// Candidates returns the recorded positions sharing the key at pos,
// oldest first, pruned to [pos-window, pos). Callers walk the slice
// backward to probe newest-first. Eviction is lazy: stale positions are
// dropped here rather than on every Insert.
func (ix *WindowIndex) Candidates(pos int) []int32 {
	key, ok := ix.key(pos)
	if !ok {
		return nil
	}
	list := ix.positions[key]
	floor := pos - ix.window
	i := 0
	for i < len(list) && int(list[i]) < floor {
		i++
	}
	if i > 0 {
		list = list[i:]
		ix.positions[key] = list
	}
	return list
}
