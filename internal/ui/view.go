package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	infoTTL      = 5 * time.Second
	backdropChar = "░"
)

// View renders the pop-up centred over a backdrop, followed by the status
// line and footer.
func (m *Model) View() string {
	if closed, _ := m.popup.Closed(); closed {
		return ""
	}

	var bottom []string
	if status := m.statusLine(); status != "" {
		bottom = append(bottom, status)
	}
	if m.showFooter {
		bottom = append(bottom, m.footer())
	}

	height := m.height - len(bottom)
	if m.height > 0 && height < 1 {
		height = 1
	}
	body := m.popup.View(m.width, height)
	if m.width > 0 && height > 0 {
		body = lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, body,
			lipgloss.WithWhitespaceChars(backdropChar),
			lipgloss.WithWhitespaceForeground(styles.Backdrop.GetForeground()),
		)
	}
	if len(bottom) == 0 {
		return body
	}
	return lipgloss.JoinVertical(lipgloss.Left, append([]string{body}, bottom...)...)
}

func (m *Model) statusLine() string {
	switch {
	case m.errMsg != "":
		return m.fit(styles.Error.Render(m.errMsg))
	case m.currentInfo() != "":
		return m.fit(styles.Info.Render(m.infoMsg))
	}
	return ""
}

func (m *Model) footer() string {
	parts := make([]string, 0, 5)
	if n := len(m.popup.Diagnostics()); n > 0 {
		parts = append(parts, styles.Error.Render(fmt.Sprintf("%d diagnostics", n)))
	}
	for _, binding := range m.keys.hints() {
		help := binding.Help()
		parts = append(parts, styles.Footer.Render(help.Key)+" "+styles.Hint.Render(help.Desc))
	}
	return m.fit(strings.Join(parts, styles.Hint.Render(" · ")))
}

func (m *Model) fit(line string) string {
	if m.width <= 0 {
		return line
	}
	return ansi.Truncate(line, m.width, "…")
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	return nil
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(infoTTL)
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
