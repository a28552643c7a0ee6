package command

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type doneMsg struct{ value string }

func TestExecuteRunsHandlerAndCommand(t *testing.T) {
	calls := 0
	cmd := New().Execute(Request{ID: "p", Label: "Go", Handler: func() tea.Cmd {
		calls++
		return func() tea.Msg { return doneMsg{value: "ok"} }
	}})
	if calls != 1 {
		t.Fatalf("expected handler to run once before the command, got %d", calls)
	}
	if cmd == nil {
		t.Fatalf("expected command")
	}
	msg, ok := cmd().(doneMsg)
	if !ok || msg.value != "ok" {
		t.Fatalf("expected doneMsg, got %#v", msg)
	}
}

func TestExecuteWithoutHandlerOrCommand(t *testing.T) {
	bus := New()
	if cmd := bus.Execute(Request{ID: "p", Label: "inert"}); cmd != nil {
		t.Fatalf("expected nil command for missing handler")
	}
	if cmd := bus.Execute(Request{ID: "p", Label: "noop", Handler: func() tea.Cmd { return nil }}); cmd != nil {
		t.Fatalf("expected nil command for no-op handler")
	}
}
