package huffpack

import (
	"fmt"
	"strconv"
)

// MaxCodeBits is the longest code this package will assign.  Exceeding it
// requires a Fibonacci-like frequency profile over more than 10^13 input
// symbols, far past what fits in memory.
const MaxCodeBits = 64

// Code represents a sequence of bits assigned to one Symbol.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The most significant of
	// the Size low bits is the first bit, matching the order in which the
	// bits are packed into the payload.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// Append returns the Code extended by one trailing bit.
func (c Code) Append(bit byte) Code {
	return Code{Size: c.Size + 1, Bits: c.Bits<<1 | uint64(bit&1)}
}

// IsPrefixOf reports whether c's bit sequence is a proper prefix of other's.
func (c Code) IsPrefixOf(other Code) bool {
	if c.Size >= other.Size {
		return false
	}
	return other.Bits>>(other.Size-c.Size) == c.Bits
}

// String returns the string representation of this Code.
func (c Code) String() string {
	if c.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(c.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, c.Bits))
}

var _ fmt.Stringer = Code{}
