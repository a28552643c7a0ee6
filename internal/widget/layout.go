package widget

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Layout arranges widgets in proportional columns. Each column stacks its
// widgets top to bottom in insertion order.
type Layout struct {
	columns   []int
	cells     [][]Node
	FillFrame bool
}

// NewLayout creates a layout whose columns are sized by the supplied
// percentages. An empty column list yields a single full-width column.
func NewLayout(columns []int, fillFrame bool) *Layout {
	if len(columns) == 0 {
		columns = []int{100}
	}
	cols := make([]int, len(columns))
	copy(cols, columns)
	return &Layout{
		columns:   cols,
		cells:     make([][]Node, len(cols)),
		FillFrame: fillFrame,
	}
}

// Columns returns a copy of the column percentages.
func (l *Layout) Columns() []int {
	cols := make([]int, len(l.columns))
	copy(cols, l.columns)
	return cols
}

// AddWidget appends node to the given column.
func (l *Layout) AddWidget(node Node, column int) error {
	if IsNil(node) {
		return ErrNilNode
	}
	if column < 0 || column >= len(l.cells) {
		return fmt.Errorf("%w: column %d, layout has %d", ErrColumnRange, column, len(l.cells))
	}
	l.cells[column] = append(l.cells[column], node)
	return nil
}

// Column returns the widgets held by a column, or nil when it does not exist.
func (l *Layout) Column(column int) []Node {
	if column < 0 || column >= len(l.cells) {
		return nil
	}
	nodes := make([]Node, len(l.cells[column]))
	copy(nodes, l.cells[column])
	return nodes
}

// Children returns every widget, column by column.
func (l *Layout) Children() []Node {
	var nodes []Node
	for _, cell := range l.cells {
		nodes = append(nodes, cell...)
	}
	return nodes
}

// View renders the columns side by side.
func (l *Layout) View(width int) string {
	widths := l.columnWidths(width)
	blocks := make([]string, 0, len(l.cells))
	for i, cell := range l.cells {
		parts := make([]string, 0, len(cell))
		for _, child := range cell {
			parts = append(parts, child.View(widths[i]))
		}
		block := lipgloss.JoinVertical(lipgloss.Left, parts...)
		if widths[i] > 0 {
			block = lipgloss.NewStyle().Width(widths[i]).Render(block)
		}
		blocks = append(blocks, block)
	}
	if len(blocks) == 1 {
		return blocks[0]
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

func (l *Layout) columnWidths(width int) []int {
	widths := make([]int, len(l.columns))
	if width <= 0 {
		return widths
	}
	total := 0
	for _, pct := range l.columns {
		if pct > 0 {
			total += pct
		}
	}
	used := 0
	for i, pct := range l.columns {
		if total == 0 {
			widths[i] = width / len(l.columns)
		} else {
			widths[i] = width * max(pct, 0) / total
		}
		used += widths[i]
	}
	widths[len(widths)-1] += width - used
	return widths
}
