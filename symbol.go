package huffpack

// Symbol represents a symbol in the input alphabet.  The alphabet is the set
// of byte values, so there are at most 256 distinct symbols per input.
type Symbol byte

// NumSymbols is the size of the full alphabet.
const NumSymbols = 256
