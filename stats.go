package huffpack

import (
	"fmt"
)

// Stats summarizes one compression.  It is informational only and is never
// fed back into encode or decode.
type Stats struct {
	// OriginalSymbols is the input length in symbols.
	OriginalSymbols uint64

	// OriginalBits is the uncompressed size at 8 bits per symbol.
	OriginalBits uint64

	// CompressedBits is the number of valid bits in the payload.
	CompressedBits uint64
}

// SavedBits returns how many bits compression removed.  Negative when the
// coded form is larger than the input, which happens for near-uniform
// frequency distributions.
func (s Stats) SavedBits() int64 {
	return int64(s.OriginalBits) - int64(s.CompressedBits)
}

// Rate returns the percentage of the original bits removed by compression.
func (s Stats) Rate() float64 {
	if s.OriginalBits == 0 {
		return 0
	}
	return float64(s.SavedBits()) / float64(s.OriginalBits) * 100
}

// Factor returns the ratio of original to compressed size.
func (s Stats) Factor() float64 {
	if s.CompressedBits == 0 {
		return 0
	}
	return float64(s.OriginalBits) / float64(s.CompressedBits)
}

// String returns a one-line summary.
func (s Stats) String() string {
	return fmt.Sprintf("(%d symbols, %d bits -> %d bits, %.2f%% saved)",
		s.OriginalSymbols, s.OriginalBits, s.CompressedBits, s.Rate())
}

var _ fmt.Stringer = Stats{}
