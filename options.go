package press

import "math/bits"

const (
	// DefaultWindowSize is the default maximum backward match distance.
	DefaultWindowSize = 32768

	// DefaultMaxLength is the default maximum length of a single match.
	DefaultMaxLength = 258

	// DefaultKeyLength is the default window index key size in bytes.
	DefaultKeyLength = 2

	// DefaultMaxCandidates is the default cap on candidate positions
	// probed per input position.
	DefaultMaxCandidates = 64

	// MinMatch is the shortest back-reference worth emitting. A one-byte
	// match costs more bits than the literal it replaces.
	MinMatch = 2

	// maxFieldBits bounds the wire width of the offset and length fields.
	maxFieldBits = 30
)

// Options configure a compression pass. The zero value selects the
// defaults. Decompression needs no Options; the stream header carries
// everything the decoder has to know.
type Options struct {
	// WindowSize is the maximum distance (in bytes) to look back for a
	// match. The default is 32768.
	WindowSize int

	// MaxLength is the maximum length of a single match. The default
	// is 258.
	MaxLength int

	// KeyLength is the number of bytes in a window index key, 1 or 2.
	// The default is 2; with a 2-byte key every candidate already agrees
	// on the minimum match unit.
	KeyLength int

	// MaxCandidates caps how many candidate positions the match finder
	// probes per input position, bounding worst-case work on highly
	// repetitive input. The default is 64.
	MaxCandidates int

	// Lazy enables one-step lazy matching: when deferring by one byte
	// yields a strictly longer match, a literal is emitted and the later
	// match taken instead. It trades a little speed for ratio and does
	// not change the wire format.
	Lazy bool
}

func (o Options) withDefaults() Options {
	if o.WindowSize == 0 {
		o.WindowSize = DefaultWindowSize
	}
	if o.MaxLength == 0 {
		o.MaxLength = DefaultMaxLength
	}
	if o.KeyLength == 0 {
		o.KeyLength = DefaultKeyLength
	}
	if o.MaxCandidates == 0 {
		o.MaxCandidates = DefaultMaxCandidates
	}
	return o
}

// validate checks the options before any bytes are processed. It expects
// defaults to have been applied already.
func (o Options) validate() error {
	if o.WindowSize < 1 || o.WindowSize > 1<<maxFieldBits {
		return &ConfigError{Field: "WindowSize", Reason: "must be between 1 and 2^30"}
	}
	if o.MaxLength < MinMatch || o.MaxLength > 1<<maxFieldBits {
		return &ConfigError{Field: "MaxLength", Reason: "must be between 2 and 2^30"}
	}
	if o.KeyLength < 1 || o.KeyLength > 2 {
		return &ConfigError{Field: "KeyLength", Reason: "must be 1 or 2"}
	}
	if o.MaxCandidates < 1 {
		return &ConfigError{Field: "MaxCandidates", Reason: "must be at least 1"}
	}
	return nil
}

// offsetBits is the wire width of the match offset field. Offsets run
// 1..WindowSize and are stored biased by -1.
func (o Options) offsetBits() uint {
	return uint(max(bits.Len(uint(o.WindowSize-1)), 1))
}

// lengthBits is the wire width of the match length field. Lengths run
// MinMatch..MaxLength and are stored biased by -MinMatch.
func (o Options) lengthBits() uint {
	return uint(max(bits.Len(uint(o.MaxLength-MinMatch)), 1))
}
