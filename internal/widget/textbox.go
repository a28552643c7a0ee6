package widget

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TextBox is a labelled single-line input.
type TextBox struct {
	Label string
	input textinput.Model
}

// NewTextBox creates an unfocused text box.
func NewTextBox(label, placeholder string) *TextBox {
	input := textinput.New()
	input.Placeholder = placeholder
	input.Prompt = "> "
	return &TextBox{Label: label, input: input}
}

// Value returns the current text.
func (t *TextBox) Value() string {
	return t.input.Value()
}

// SetValue replaces the current text.
func (t *TextBox) SetValue(value string) {
	t.input.SetValue(value)
}

// Focus implements Focusable.
func (t *TextBox) Focus() tea.Cmd {
	return t.input.Focus()
}

// Blur implements Focusable.
func (t *TextBox) Blur() {
	t.input.Blur()
}

// Focused implements Focusable.
func (t *TextBox) Focused() bool {
	return t.input.Focused()
}

// Update implements Updater. Key presses are only consumed while focused.
func (t *TextBox) Update(msg tea.Msg) tea.Cmd {
	if _, isKey := msg.(tea.KeyMsg); isKey && !t.input.Focused() {
		return nil
	}
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return cmd
}

// View implements Node.
func (t *TextBox) View(width int) string {
	label := ""
	if t.Label != "" {
		label = styles.InputLabel.Render(t.Label) + " "
	}
	if width > 0 {
		t.input.Width = max(width-lipgloss.Width(label)-lipgloss.Width(t.input.Prompt)-1, 1)
	}
	return label + t.input.View()
}
