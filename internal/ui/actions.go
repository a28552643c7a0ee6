package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/popup-overlay/internal/ui/command"
	"github.com/atomicstack/popup-overlay/internal/widget"
)

// Action names understood by ResolveAction.
const (
	ActionClose  = "close"
	ActionCancel = "cancel"
	ActionNotify = "notify"
	ActionQuit   = "quit"
)

// CloseMsg asks the model to close the pop-up.
type CloseMsg struct {
	Cancelled bool
}

// NoticeMsg shows a transient message in the status line.
type NoticeMsg struct {
	Text string
}

// ResolveAction maps content action names to button callbacks. Unknown names
// resolve to nil, leaving the button inert.
func ResolveAction(name, message string) widget.Action {
	switch name {
	case ActionClose:
		return emit(CloseMsg{})
	case ActionCancel:
		return emit(CloseMsg{Cancelled: true})
	case ActionNotify:
		return emit(NoticeMsg{Text: message})
	case ActionQuit:
		return func() tea.Cmd { return tea.Quit }
	default:
		return nil
	}
}

func emit(msg tea.Msg) widget.Action {
	return func() tea.Cmd {
		return func() tea.Msg { return msg }
	}
}

func (m *Model) activate() tea.Cmd {
	focused := m.popup.Focused()
	activator, ok := focused.(widget.Activator)
	if !ok {
		return nil
	}
	label := fmt.Sprintf("%T", focused)
	if b, ok := focused.(*widget.Button); ok {
		label = b.Text
	}
	return m.bus.Execute(command.Request{
		ID:      m.popup.ID(),
		Label:   label,
		Handler: activator.Activate,
	})
}
