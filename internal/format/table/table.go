package table

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

const columnGap = "  "

// Format returns the rows padded according to the widest entry in each column.
// Cells may carry ANSI styling; widths are measured in terminal cells.
func Format(rows [][]string, alignments []Alignment) []string {
	return FormatWidth(rows, alignments, 0)
}

// FormatWidth is Format with every line truncated to maxWidth cells. A
// maxWidth of zero or less disables truncation.
func FormatWidth(rows [][]string, alignments []Alignment, maxWidth int) []string {
	if len(rows) == 0 {
		return nil
	}
	var widths []int
	for _, row := range rows {
		for c, cell := range row {
			if c >= len(widths) {
				widths = append(widths, 0)
			}
			if w := ansi.StringWidth(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString(columnGap)
			}
			pad := strings.Repeat(" ", widths[c]-ansi.StringWidth(cell))
			last := c == len(row)-1
			switch {
			case c < len(alignments) && alignments[c] == AlignRight:
				b.WriteString(pad)
				b.WriteString(cell)
			case last:
				b.WriteString(cell)
			default:
				b.WriteString(cell)
				b.WriteString(pad)
			}
		}
		line := b.String()
		if maxWidth > 0 {
			line = ansi.Truncate(line, maxWidth, "…")
		}
		out[i] = line
	}
	return out
}
