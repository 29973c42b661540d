package huffpack

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
)

// Node is one node of a Huffman tree.  A leaf carries a Symbol; an internal
// node carries two children and the sum of their frequencies.  Each internal
// node exclusively owns its children: the tree is strictly binary with no
// sharing, except that a single-symbol input produces a lone leaf root.
type Node struct {
	Sym   Symbol
	Freq  uint64
	Left  *Node
	Right *Node
}

// Leaf reports whether n is a leaf.
func (n *Node) Leaf() bool {
	return n.Left == nil && n.Right == nil
}

// BuildTree constructs the Huffman tree for a non-empty frequency table.
//
// One leaf per distinct symbol is seeded into a min-heap ordered by
// frequency; the two lowest nodes are repeatedly merged under a new internal
// node until one root remains.  Ties are broken by insertion sequence:
// leaves are seeded in ascending symbol order and each merged node takes the
// next sequence number, so equal-frequency inputs build the same tree in
// every process.  The first node popped becomes the left child.
//
// An empty table returns ErrEmptyFreqTable; empty inputs must be handled
// before this stage.
func BuildTree(ft FreqTable) (*Node, error) {
	if ft.Len() == 0 {
		return nil, ErrEmptyFreqTable
	}

	symbols := ft.Symbols()
	if len(symbols) == 1 {
		sym := symbols[0]
		return &Node{Sym: sym, Freq: ft.Count(sym)}, nil
	}

	h := nodeHeap{list: make([]seqNode, 0, len(symbols))}
	for _, sym := range symbols {
		h.list = append(h.list, seqNode{
			node: &Node{Sym: sym, Freq: ft.Count(sym)},
			seq:  h.nextSeq,
		})
		h.nextSeq++
	}
	h.Init()

	for h.Len() > 1 {
		a := heap.Pop(&h).(seqNode)
		b := heap.Pop(&h).(seqNode)
		merged := &Node{
			Freq:  a.node.Freq + b.node.Freq,
			Left:  a.node,
			Right: b.node,
		}
		heap.Push(&h, seqNode{node: merged, seq: h.nextSeq})
		h.nextSeq++
	}

	return heap.Pop(&h).(seqNode).node, nil
}

// Height returns the number of edges on the longest root-to-leaf path.
// A lone leaf has height 0.
func (n *Node) Height() int {
	if n == nil || n.Leaf() {
		return 0
	}
	lh := n.Left.Height()
	rh := n.Right.Height()
	if lh > rh {
		return 1 + lh
	}
	return 1 + rh
}

// CountLeaves returns the number of leaves, which equals the number of
// distinct symbols in the input the tree was built from.
func (n *Node) CountLeaves() int {
	if n == nil {
		return 0
	}
	if n.Leaf() {
		return 1
	}
	return n.Left.CountLeaves() + n.Right.CountLeaves()
}

// CountInternal returns the number of internal nodes.
func (n *Node) CountInternal() int {
	if n == nil || n.Leaf() {
		return 0
	}
	return 1 + n.Left.CountInternal() + n.Right.CountInternal()
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer, one node per line, children indented under their parent.
func (n *Node) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	n.dump(&buf, 1)
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (n *Node) dump(buf *bytes.Buffer, depth int) {
	for i := 0; i < depth; i++ {
		buf.WriteByte('\t')
	}
	if n == nil {
		buf.WriteString("nil\n")
		return
	}
	if n.Leaf() {
		fmt.Fprintf(buf, "Leaf{%q, %d}\n", byte(n.Sym), n.Freq)
		return
	}
	fmt.Fprintf(buf, "Internal{%d}\n", n.Freq)
	n.Left.dump(buf, depth+1)
	n.Right.dump(buf, depth+1)
}

// DebugString returns the Dump output as a string.
func (n *Node) DebugString() string {
	var buf bytes.Buffer
	_, _ = n.Dump(&buf)
	return buf.String()
}

// type seqNode + type nodeHeap {{{

type seqNode struct {
	node *Node
	seq  uint32
}

type nodeHeap struct {
	list    []seqNode
	nextSeq uint32
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.Freq != b.node.Freq {
		return a.node.Freq < b.node.Freq
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(seqNode))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = seqNode{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
