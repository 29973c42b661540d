package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/chronos-tachyon/huffpack"
)

// renderCodeTable prints the per-symbol frequency and code assignment for
// data, symbols in ascending order.
func renderCodeTable(data []byte) {
	ft := huffpack.CountFrequencies(data)
	if ft.Len() == 0 {
		fmt.Println("empty input: no code table")
		return
	}
	root, err := huffpack.BuildTree(ft)
	if err != nil {
		return
	}
	cb, err := huffpack.BuildCodebook(root)
	if err != nil {
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Symbol", "Frequency", "Code", "Bits"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, sym := range ft.Symbols() {
		code := cb[sym]
		table.Append([]string{
			strconv.QuoteRune(rune(sym)),
			strconv.FormatUint(ft.Count(sym), 10),
			code.String(),
			strconv.Itoa(int(code.Size)),
		})
	}
	table.Render()

	fmt.Printf("tree: height %d, %d leaves, %d internal nodes\n",
		root.Height(), root.CountLeaves(), root.CountInternal())
}

// renderStats prints the compression summary the way the codec measured it.
func renderStats(s huffpack.Stats) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Metric", "Value"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.Append([]string{"Original symbols", strconv.FormatUint(s.OriginalSymbols, 10)})
	table.Append([]string{"Original bits", strconv.FormatUint(s.OriginalBits, 10)})
	table.Append([]string{"Compressed bits", strconv.FormatUint(s.CompressedBits, 10)})
	table.Append([]string{"Saved bits", strconv.FormatInt(s.SavedBits(), 10)})
	table.Append([]string{"Compression rate", fmt.Sprintf("%.2f%%", s.Rate())})
	table.Append([]string{"Compression factor", fmt.Sprintf("%.2fx", s.Factor())})
	table.Render()
}
