// Package huffpack implements lossless Huffman compression of byte streams:
// frequency counting, greedy construction of an optimal prefix-code tree,
// bit-packed encoding, and exact tree-walking decode.
//
// The tree built for one input is specific to that input's frequency
// distribution and must never be reused to encode a different input.  All
// functions are pure over their arguments, so independent inputs are safe to
// compress concurrently.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package huffpack
