package huffpack

import (
	"errors"
)

var (
	// ErrEmptyFreqTable indicates that an empty frequency table reached
	// BuildTree.  Empty inputs must be short-circuited before the builder;
	// hitting this error is a caller bug.
	ErrEmptyFreqTable = errors.New("huffpack: cannot build a tree from an empty frequency table")

	// ErrCodeTooLong indicates a tree deep enough to need codes longer
	// than MaxCodeBits.
	ErrCodeTooLong = errors.New("huffpack: code length exceeds MaxCodeBits")

	// ErrMalformedTree indicates serialized tree bytes that do not parse
	// back into a valid tree.
	ErrMalformedTree = errors.New("huffpack: malformed serialized tree")

	// ErrMalformedPayload indicates a payload whose bits do not terminate
	// at the tree root, or a payload/tree pairing that cannot decode.
	ErrMalformedPayload = errors.New("huffpack: malformed payload")

	// ErrMalformedArchive indicates archive bytes with a bad magic,
	// version, or section framing.
	ErrMalformedArchive = errors.New("huffpack: malformed archive")

	// ErrUnsupportedSymbol indicates that a decoded output disagrees with
	// the symbol count declared alongside it, i.e. the tree and payload
	// were paired from different compressions.
	ErrUnsupportedSymbol = errors.New("huffpack: payload does not match the supplied tree")
)
