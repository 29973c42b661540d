package huffpack

import (
	"fmt"
)

// Compressed is the full result of one compression: the packed payload, the
// serialized tree needed to decode it, and summary statistics.  For an empty
// input, Payload is the zero value and Tree is nil.
type Compressed struct {
	Payload Payload
	Tree    []byte
	Stats   Stats
}

// Compress encodes data into a Huffman-coded Compressed result.
//
// The pipeline is count frequencies, build the tree, derive the codebook,
// then pack each input symbol's code in input order.  An empty input returns
// an empty result immediately, without building a tree.  Compress holds no
// state across calls.
func Compress(data []byte) (Compressed, error) {
	if len(data) == 0 {
		return Compressed{}, nil
	}

	ft := CountFrequencies(data)
	root, err := BuildTree(ft)
	if err != nil {
		return Compressed{}, err
	}
	cb, err := BuildCodebook(root)
	if err != nil {
		return Compressed{}, err
	}

	packer := newBitPacker()
	for _, b := range data {
		packer.packCode(cb[Symbol(b)])
	}
	payload := packer.finish()

	return Compressed{
		Payload: payload,
		Tree:    MarshalTree(root),
		Stats: Stats{
			OriginalSymbols: uint64(len(data)),
			OriginalBits:    8 * uint64(len(data)),
			CompressedBits:  payload.BitLen(),
		},
	}, nil
}

// Decompress reconstructs the original input from a payload and the
// serialized tree produced alongside it.  An empty payload with a nil tree
// returns an empty slice.
func Decompress(payload Payload, tree []byte) ([]byte, error) {
	root, err := UnmarshalTree(tree)
	if err != nil {
		return nil, err
	}
	return Decode(payload, root)
}

// Decode reconstructs the original input by walking root per payload bit:
// 0 moves left, 1 moves right, and reaching a leaf emits its symbol and
// resets to the root.
//
// A lone leaf root is the single-symbol case: the encoder emitted the fixed
// one-bit code per occurrence, so every valid bit emits the symbol.
//
// Returns ErrMalformedPayload if the final bit does not land exactly on a
// leaf, or if the payload is nonempty but root is nil.
func Decode(payload Payload, root *Node) ([]byte, error) {
	bitLen := payload.BitLen()
	if bitLen == 0 {
		return []byte{}, nil
	}
	if root == nil {
		return nil, fmt.Errorf("%w: %d bits of payload but no tree", ErrMalformedPayload, bitLen)
	}

	if root.Leaf() {
		out := make([]byte, bitLen)
		for i := range out {
			out[i] = byte(root.Sym)
		}
		return out, nil
	}

	out := make([]byte, 0, bitLen/2)
	u := newBitUnpacker(payload)
	cur := root
	for i := uint64(0); i < bitLen; i++ {
		bit, err := u.readBit()
		if err != nil {
			return nil, err
		}
		if bit {
			cur = cur.Right
		} else {
			cur = cur.Left
		}
		if cur.Leaf() {
			out = append(out, byte(cur.Sym))
			cur = root
		}
	}
	if cur != root {
		return nil, fmt.Errorf("%w: payload ends mid-code", ErrMalformedPayload)
	}
	return out, nil
}
