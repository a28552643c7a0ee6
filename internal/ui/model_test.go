package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/atomicstack/popup-overlay/internal/backend"
	"github.com/atomicstack/popup-overlay/internal/content"
	"github.com/atomicstack/popup-overlay/internal/placement"
	"github.com/atomicstack/popup-overlay/internal/popup"
	"github.com/atomicstack/popup-overlay/internal/widget"
	tea "github.com/charmbracelet/bubbletea"
)

func buttonLine(text, action, message string, resolve content.ActionResolver) placement.Descriptor {
	act := resolve(action, message)
	return placement.Descriptor{func() widget.Node { return widget.NewButton(text, act) }}
}

func testBuilder(extra ...any) Builder {
	return func(resolve content.ActionResolver) (*popup.Popup, error) {
		p := popup.New(popup.WithTitle("Test"))
		lines := []any{
			placement.Descriptor{func() widget.Node { return widget.NewLabel("hello", 1, widget.AlignLeft) }},
			buttonLine("Notify", ActionNotify, "saved", resolve),
			buttonLine("Close", ActionClose, "", resolve),
		}
		p.Place(append(lines, extra...))
		return p, nil
	}
}

func newTestHarness(t *testing.T, opts Options) *Harness {
	t.Helper()
	if opts.Build == nil {
		opts.Build = testBuilder()
	}
	model, err := NewModel(opts)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	h := NewHarness(model)
	h.run(model.Init())
	h.Send(tea.WindowSizeMsg{Width: 60, Height: 16})
	return h
}

func focusedText(h *Harness) string {
	if b, ok := h.Model().Popup().Focused().(*widget.Button); ok {
		return b.Text
	}
	return ""
}

func TestNewModelRequiresBuilder(t *testing.T) {
	if _, err := NewModel(Options{}); !errors.Is(err, ErrNoBuilder) {
		t.Fatalf("expected ErrNoBuilder, got %v", err)
	}
}

func TestTabCyclesFocus(t *testing.T) {
	h := newTestHarness(t, Options{})
	if got := focusedText(h); got != "Notify" {
		t.Fatalf("expected Notify focused first, got %q", got)
	}
	h.Press("tab")
	if got := focusedText(h); got != "Close" {
		t.Fatalf("expected Close after tab, got %q", got)
	}
	h.Press("shift+tab", "shift+tab")
	if got := focusedText(h); got != "Close" {
		t.Fatalf("expected focus to wrap back to Close, got %q", got)
	}
}

func TestEnterRunsNotifyAction(t *testing.T) {
	h := newTestHarness(t, Options{})
	h.Press("enter")
	if h.Quit() {
		t.Fatalf("notify should not quit")
	}
	if view := h.View(); !strings.Contains(view, "saved") {
		t.Fatalf("expected notice in view, got:\n%s", view)
	}
}

func TestCloseButtonQuitsWithoutCancel(t *testing.T) {
	var closedWith []bool
	build := func(resolve content.ActionResolver) (*popup.Popup, error) {
		p := popup.New(popup.WithOnClose(func(c bool) { closedWith = append(closedWith, c) }))
		p.Place([]any{buttonLine("Close", ActionClose, "", resolve)})
		return p, nil
	}
	h := newTestHarness(t, Options{Build: build})
	h.Press("enter")
	if !h.Quit() {
		t.Fatalf("expected quit after close")
	}
	if res := h.Model().Result(); !res.Closed || res.Cancelled {
		t.Fatalf("expected closed without cancel, got %+v", res)
	}
	if len(closedWith) != 1 || closedWith[0] {
		t.Fatalf("expected one non-cancelled close callback, got %v", closedWith)
	}
	if h.View() != "" {
		t.Fatalf("expected empty view after close")
	}
}

func TestEscAndCtrlCCancel(t *testing.T) {
	for _, k := range []string{"esc", "ctrl+c"} {
		h := newTestHarness(t, Options{})
		h.Press(k)
		if !h.Quit() {
			t.Fatalf("%s: expected quit", k)
		}
		if res := h.Model().Result(); !res.Cancelled {
			t.Fatalf("%s: expected cancelled result, got %+v", k, res)
		}
	}
}

func TestViewCentresPopupOverBackdrop(t *testing.T) {
	h := newTestHarness(t, Options{Width: 80, Height: 12})
	view := h.View()
	if !strings.Contains(view, "hello") || !strings.Contains(view, backdropChar) {
		t.Fatalf("expected pop-up over backdrop, got:\n%s", view)
	}
	if lines := strings.Split(view, "\n"); len(lines) != 12 {
		t.Fatalf("expected 12 lines, got %d", len(lines))
	}
}

func TestFooterShowsDiagnostics(t *testing.T) {
	h := newTestHarness(t, Options{
		Build:      testBuilder(placement.Descriptor{"bogus"}),
		ShowFooter: true,
		Width:      120,
	})
	view := h.View()
	if !strings.Contains(view, "1 diagnostics") || !strings.Contains(view, "activate") {
		t.Fatalf("expected diagnostics count and key hints in footer, got:\n%s", view)
	}
}

func TestContentEventRebuildsPopup(t *testing.T) {
	builds := 0
	var failNext bool
	build := func(resolve content.ActionResolver) (*popup.Popup, error) {
		builds++
		if failNext {
			return nil, errors.New("broken content")
		}
		return testBuilder()(resolve)
	}
	h := newTestHarness(t, Options{Build: build})
	first := h.Model().Popup().ID()

	h.Send(contentEventMsg{event: backend.Event{Path: "popup.toml"}})
	if builds != 2 || h.Model().Popup().ID() == first {
		t.Fatalf("expected rebuilt pop-up, builds=%d", builds)
	}
	if !strings.Contains(h.View(), "content reloaded") {
		t.Fatalf("expected reload notice")
	}

	second := h.Model().Popup().ID()
	failNext = true
	h.Send(contentEventMsg{event: backend.Event{Path: "popup.toml"}})
	if h.Model().Popup().ID() != second {
		t.Fatalf("expected failed rebuild to keep current pop-up")
	}
	if !strings.Contains(h.View(), "broken content") {
		t.Fatalf("expected rebuild error in status line")
	}
}

func TestContentEventErrorIsShown(t *testing.T) {
	h := newTestHarness(t, Options{})
	h.Send(contentEventMsg{event: backend.Event{Err: errors.New("watch failed")}})
	if !strings.Contains(h.View(), "watch failed") {
		t.Fatalf("expected watcher error in view")
	}
	h.Send(contentDoneMsg{})
	if h.Model().watcher != nil {
		t.Fatalf("expected watcher cleared")
	}
}

func TestResolveActionUnknown(t *testing.T) {
	if ResolveAction("explode", "") != nil {
		t.Fatalf("expected unknown action to resolve to nil")
	}
	cmd := ResolveAction(ActionCancel, "")()
	if msg, ok := cmd().(CloseMsg); !ok || !msg.Cancelled {
		t.Fatalf("expected cancelled CloseMsg, got %#v", msg)
	}
}
