package mdformat

import "github.com/muesli/reflow/ansi"

// visibleWidth returns the printable cell width of s. Width decisions for
// wrapping, header underlines, and rule sizing all measure through here so
// multi-byte runes count by their display width, not their byte length.
func visibleWidth(s string) int {
	return ansi.PrintableRuneWidth(s)
}
