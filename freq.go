package huffpack

import (
	"sort"
)

// FreqTable maps each distinct Symbol of one input to its occurrence count.
// It is built once per input by CountFrequencies and not modified afterward.
type FreqTable struct {
	counts map[Symbol]uint64
	total  uint64
}

// CountFrequencies tallies symbol occurrences in data.  An empty input
// yields a table with Len() == 0.
func CountFrequencies(data []byte) FreqTable {
	counts := make(map[Symbol]uint64, 16)
	for _, b := range data {
		counts[Symbol(b)]++
	}
	return FreqTable{counts: counts, total: uint64(len(data))}
}

// Count returns the occurrence count for sym, zero if absent.
func (ft FreqTable) Count(sym Symbol) uint64 {
	return ft.counts[sym]
}

// Len returns the number of distinct symbols.
func (ft FreqTable) Len() int {
	return len(ft.counts)
}

// Total returns the input length, i.e. the sum of all counts.
func (ft FreqTable) Total() uint64 {
	return ft.total
}

// Symbols returns the distinct symbols in ascending order.  The order is what
// makes tree construction reproducible, so every consumer iterates through
// this rather than ranging over the map.
func (ft FreqTable) Symbols() []Symbol {
	out := make([]Symbol, 0, len(ft.counts))
	for sym := range ft.counts {
		out = append(out, sym)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
