package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// Align controls horizontal text placement.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// ParseAlign maps "left", "center"/"centre" and "right" to an Align; anything
// else is left aligned.
func ParseAlign(value string) Align {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "center", "centre", "middle":
		return AlignCenter
	case "right":
		return AlignRight
	default:
		return AlignLeft
	}
}

func (a Align) position() lipgloss.Position {
	switch a {
	case AlignCenter:
		return lipgloss.Center
	case AlignRight:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

// Label is static, possibly multi-line text.
type Label struct {
	Text   string
	Height int
	Align  Align
}

// NewLabel creates a label. A height of zero sizes the label to its text.
func NewLabel(text string, height int, align Align) *Label {
	return &Label{Text: text, Height: height, Align: align}
}

// View implements Node. Lines wider than width are truncated with an ellipsis.
func (l *Label) View(width int) string {
	lines := strings.Split(l.Text, "\n")
	if width > 0 {
		for i, line := range lines {
			if lipgloss.Width(line) > width {
				lines[i] = truncate.StringWithTail(line, uint(width), "…")
			}
		}
	}
	style := styles.Label.Copy().Align(l.Align.position())
	if width > 0 {
		style = style.Width(width)
	}
	if l.Height > 0 {
		style = style.Height(l.Height)
	}
	return style.Render(strings.Join(lines, "\n"))
}

// Divider is a horizontal rule spanning the available width.
type Divider struct{}

const dividerFallbackWidth = 16

// NewDivider returns a divider.
func NewDivider() *Divider {
	return &Divider{}
}

// View implements Node.
func (d *Divider) View(width int) string {
	if width <= 0 {
		width = dividerFallbackWidth
	}
	return styles.Divider.Render(strings.Repeat("─", width))
}
