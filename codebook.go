package huffpack

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// Codebook maps each Symbol of one input to its Code.  Codes form a prefix
// code by construction: every symbol sits at a distinct leaf of a strict
// binary tree, so no code can be a prefix of another.
type Codebook map[Symbol]Code

// BuildCodebook derives the Codebook from a tree root by depth-first
// traversal, appending 0 per left edge and 1 per right edge.  The same
// convention is shared by the payload decoder and the tree serializer.
//
// A lone leaf root gets the fixed single-bit code "0": an empty code could
// not be packed or decoded unambiguously.
//
// Returns ErrCodeTooLong if any code would exceed MaxCodeBits.
func BuildCodebook(root *Node) (Codebook, error) {
	assert.Assertf(root != nil, "BuildCodebook called with nil root")

	cb := make(Codebook, root.CountLeaves())
	if root.Leaf() {
		cb[root.Sym] = MakeCode(1, 0)
		return cb, nil
	}
	if err := walkCodes(root, Code{}, cb); err != nil {
		return nil, err
	}
	return cb, nil
}

func walkCodes(n *Node, prefix Code, cb Codebook) error {
	if n.Leaf() {
		cb[n.Sym] = prefix
		return nil
	}
	if prefix.Size >= MaxCodeBits {
		return fmt.Errorf("%w: tree depth exceeds %d at frequency %d", ErrCodeTooLong, MaxCodeBits, n.Freq)
	}
	if err := walkCodes(n.Left, prefix.Append(0), cb); err != nil {
		return err
	}
	return walkCodes(n.Right, prefix.Append(1), cb)
}

// TotalBits returns the number of bits needed to encode an input with the
// given frequency table through this codebook.
func (cb Codebook) TotalBits(ft FreqTable) uint64 {
	var total uint64
	for sym, code := range cb {
		total += ft.Count(sym) * uint64(code.Size)
	}
	return total
}

// Dump writes a programmer-readable debugging dump of the Codebook to the
// given writer, symbols in ascending order.
func (cb Codebook) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Codebook{\n")
	for _, sym := range cb.sortedSymbols() {
		fmt.Fprintf(&buf, "\tCode(%q) = %s\n", byte(sym), cb[sym])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns the Dump output as a string.
func (cb Codebook) DebugString() string {
	var buf bytes.Buffer
	_, _ = cb.Dump(&buf)
	return buf.String()
}

func (cb Codebook) sortedSymbols() []Symbol {
	out := make([]Symbol, 0, len(cb))
	for sym := range cb {
		out = append(out, sym)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
