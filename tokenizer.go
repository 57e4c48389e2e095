package press

// Tokenize walks src from start to end, producing the token sequence:
// at each position it takes the longest match the finder can see, or a
// literal byte when no match reaches MinMatch. Every consumed position is
// inserted into the window index so later positions can refer back to it.
func Tokenize(src []byte, opts Options) ([]Token, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}

	index := NewWindowIndex(src, opts)
	finder := NewMatchFinder(src, index, opts)

	var tokens []Token
	pos := 0
	for pos < len(src) {
		offset, length, ok := finder.FindMatch(pos)
		if !ok {
			tokens = append(tokens, Token{Kind: KindLiteral, Lit: src[pos]})
			index.Insert(pos)
			pos++
			continue
		}

		if opts.Lazy {
			// One-step lazy matching: if deferring by one byte yields a
			// strictly longer match, emit the literal and pick the later
			// match up on the next iteration.
			index.Insert(pos)
			if _, nextLen, nextOK := finder.FindMatch(pos + 1); nextOK && nextLen > length {
				tokens = append(tokens, Token{Kind: KindLiteral, Lit: src[pos]})
				pos++
				continue
			}
			tokens = append(tokens, Token{Kind: KindMatch, Offset: offset, Length: length})
			for i := pos + 1; i < pos+length; i++ {
				index.Insert(i)
			}
			pos += length
			continue
		}

		tokens = append(tokens, Token{Kind: KindMatch, Offset: offset, Length: length})
		for i := pos; i < pos+length; i++ {
			index.Insert(i)
		}
		pos += length
	}
	return tokens, nil
}
