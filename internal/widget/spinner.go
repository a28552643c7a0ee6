package widget

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Spinner is an animated effect with a trailing caption.
type Spinner struct {
	Text  string
	model spinner.Model
}

// NewSpinner creates a dot spinner.
func NewSpinner(text string) *Spinner {
	model := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(*styles.Spinner))
	return &Spinner{Text: text, model: model}
}

// Init implements Initer by starting the animation.
func (s *Spinner) Init() tea.Cmd {
	return s.model.Tick
}

// Update implements Updater.
func (s *Spinner) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.model, cmd = s.model.Update(msg)
	return cmd
}

// View implements Node.
func (s *Spinner) View(int) string {
	if s.Text == "" {
		return s.model.View()
	}
	return s.model.View() + " " + s.Text
}
