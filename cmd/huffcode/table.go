package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/arloliu/huffman/code"
	"github.com/arloliu/huffman/freq"
	"github.com/arloliu/huffman/section"
	"github.com/arloliu/huffman/tree"
)

// dumpTable prints the code table derived from ft along with the size the
// payload would take.
func dumpTable(w io.Writer, ft *freq.Table) error {
	tr := tree.Build(ft)
	table := code.Derive(tr)
	tr.Release()

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "symbols: %d distinct, %d total\n", ft.Distinct(), ft.Total)
	fmt.Fprintf(tw, "payload: %d bits, entropy bound %.0f bits\n",
		table.EncodedBits(ft), ft.Entropy()*float64(ft.Total))
	fmt.Fprintln(tw, "SYMBOL\tCOUNT\tBITS\tCODE")
	for _, sym := range table.Symbols() {
		c := table.At(sym)
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", symbolName(sym), ft.Counts[sym], c.Len, c)
	}

	return tw.Flush()
}

// dumpEncodedTable prints the code table stored at the start of r.
func dumpEncodedTable(w io.Writer, r io.Reader) error {
	tr, h, err := section.ReadCodeTable(r)
	if err != nil {
		return err
	}
	table := code.Derive(tr)
	tr.Release()

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "entries: %d, decoded size: %d\n", h.EntryCount, h.DecodedCount)
	fmt.Fprintln(tw, "SYMBOL\tBITS\tCODE")
	for _, sym := range table.Symbols() {
		c := table.At(sym)
		fmt.Fprintf(tw, "%s\t%d\t%s\n", symbolName(sym), c.Len, c)
	}

	return tw.Flush()
}

func symbolName(sym byte) string {
	if sym >= 0x20 && sym < 0x7f {
		return fmt.Sprintf("%q", rune(sym))
	}

	return fmt.Sprintf("0x%02x", sym)
}
