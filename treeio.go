package huffpack

import (
	"bytes"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// MarshalTree serializes a tree so the decode side can reconstruct it
// without the original input.  The encoding is a preorder walk: an internal
// node is the bit 0 followed by its left then right subtree, a leaf is the
// bit 1 followed by the symbol's 8 bits.  The final byte is zero padded; the
// encoding is self-delimiting, so the padding is never parsed.  Frequencies
// are not recorded: the decoder walks edges, never weights.
func MarshalTree(root *Node) []byte {
	if root == nil {
		return nil
	}
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	marshalNode(w, root)
	_ = w.Close()
	return buf.Bytes()
}

func marshalNode(w *bitio.Writer, n *Node) {
	if n.Leaf() {
		_ = w.WriteBool(true)
		_ = w.WriteBits(uint64(n.Sym), 8)
		return
	}
	_ = w.WriteBool(false)
	marshalNode(w, n.Left)
	marshalNode(w, n.Right)
}

// UnmarshalTree reconstructs a tree from MarshalTree output.  Node
// frequencies are not carried on the wire, so they are zero in the result;
// decoding only follows edges.  Returns (nil, nil) for empty input and
// ErrMalformedTree for bytes that do not parse into a strict binary tree of
// at most NumSymbols leaves.
func UnmarshalTree(data []byte) (*Node, error) {
	if len(data) == 0 {
		return nil, nil
	}
	r := bitio.NewReader(bytes.NewReader(data))
	var leaves int
	root, err := unmarshalNode(r, &leaves, 0)
	if err != nil {
		return nil, err
	}
	return root, nil
}

func unmarshalNode(r *bitio.Reader, leaves *int, depth int) (*Node, error) {
	// More than NumSymbols leaves, or a spine deeper than the alphabet,
	// cannot have come from MarshalTree.
	if depth >= NumSymbols {
		return nil, fmt.Errorf("%w: tree deeper than the alphabet", ErrMalformedTree)
	}

	isLeaf, err := r.ReadBool()
	if err != nil {
		return nil, truncatedTree(err)
	}

	if isLeaf {
		sym, err := r.ReadBits(8)
		if err != nil {
			return nil, truncatedTree(err)
		}
		*leaves++
		if *leaves > NumSymbols {
			return nil, fmt.Errorf("%w: more than %d leaves", ErrMalformedTree, NumSymbols)
		}
		return &Node{Sym: Symbol(sym)}, nil
	}

	left, err := unmarshalNode(r, leaves, depth+1)
	if err != nil {
		return nil, err
	}
	right, err := unmarshalNode(r, leaves, depth+1)
	if err != nil {
		return nil, err
	}
	return &Node{Left: left, Right: right}, nil
}

func truncatedTree(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return fmt.Errorf("%w: truncated", ErrMalformedTree)
	}
	return fmt.Errorf("%w: %v", ErrMalformedTree, err)
}
