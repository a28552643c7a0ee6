package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/popup-overlay/internal/backend"
	"github.com/atomicstack/popup-overlay/internal/logging"
)

func waitForContentEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return contentDoneMsg{}
		}
		return contentEventMsg{event: evt}
	}
}

type contentEventMsg struct {
	event backend.Event
}

type contentDoneMsg struct{}

func (m *Model) handleContentEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(contentEventMsg)
	if !ok {
		return nil
	}
	var cmd tea.Cmd
	if err := eventMsg.event.Err; err != nil {
		logging.Error(err)
		m.errMsg = err.Error()
	} else {
		cmd = m.rebuild()
	}
	if m.watcher != nil {
		return tea.Batch(cmd, waitForContentEvent(m.watcher))
	}
	return cmd
}

func (m *Model) handleContentDoneMsg(tea.Msg) tea.Cmd {
	m.watcher = nil
	return nil
}
