package widget

import tea "github.com/charmbracelet/bubbletea"

// Button fires OnClick when activated.
type Button struct {
	Text    string
	OnClick Action
	Box     bool
	focused bool
}

// NewButton creates a boxed button.
func NewButton(text string, onClick Action) *Button {
	return &Button{Text: text, OnClick: onClick, Box: true}
}

// Focus implements Focusable.
func (b *Button) Focus() tea.Cmd {
	b.focused = true
	return nil
}

// Blur implements Focusable.
func (b *Button) Blur() {
	b.focused = false
}

// Focused implements Focusable.
func (b *Button) Focused() bool {
	return b.focused
}

// Activate implements Activator.
func (b *Button) Activate() tea.Cmd {
	if b.OnClick == nil {
		return nil
	}
	return b.OnClick()
}

// View implements Node.
func (b *Button) View(int) string {
	text := b.Text
	if b.Box {
		text = "< " + text + " >"
	}
	if b.focused {
		return styles.ButtonFocused.Render(text)
	}
	return styles.Button.Render(text)
}
