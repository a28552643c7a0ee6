package command

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/popup-overlay/internal/logging/events"
)

// Request encapsulates one widget activation.
type Request struct {
	ID      string
	Label   string
	Handler func() tea.Cmd
}

// Bus coordinates the execution of widget actions.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps an action into a Bubble Tea command while emitting trace logs.
// The handler runs on the calling goroutine so it may touch widget state; the
// command it returns runs asynchronously.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	if req.Handler == nil {
		events.Command.Skip(req.ID, req.Label)
		return nil
	}
	cmd := req.Handler()
	if cmd == nil {
		events.Command.NoOp(req.ID, req.Label)
		return nil
	}
	return func() tea.Msg {
		msg := cmd()
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}
