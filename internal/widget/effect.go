package widget

import (
	"strings"

	"github.com/atomicstack/popup-overlay/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

// EffectLayer hosts effects: animated or decorative nodes drawn in the order
// they were added.
type EffectLayer struct {
	Title   string
	effects []Node
}

// NewEffectLayer returns an empty effect host.
func NewEffectLayer(title string) *EffectLayer {
	return &EffectLayer{Title: title}
}

// AddEffect appends node to the layer.
func (e *EffectLayer) AddEffect(node Node) error {
	if IsNil(node) {
		return ErrNilNode
	}
	e.effects = append(e.effects, node)
	return nil
}

// Children returns the hosted effects.
func (e *EffectLayer) Children() []Node {
	nodes := make([]Node, len(e.effects))
	copy(nodes, e.effects)
	return nodes
}

// View renders every effect, one block per line group.
func (e *EffectLayer) View(width int) string {
	parts := make([]string, 0, len(e.effects)+1)
	if title := strings.TrimSpace(e.Title); title != "" {
		parts = append(parts, styles.EffectTitle.Render(title))
	}
	for _, effect := range e.effects {
		parts = append(parts, effect.View(width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

var styles = theme.Default()

// Banner is a static, emphasised line of text.
type Banner struct {
	Text  string
	Align Align
}

// NewBanner returns a centred banner.
func NewBanner(text string) *Banner {
	return &Banner{Text: text, Align: AlignCenter}
}

// View implements Node.
func (b *Banner) View(width int) string {
	style := styles.Banner.Copy()
	if width > 0 {
		style = style.Width(width).Align(b.Align.position())
	}
	return style.Render(b.Text)
}
