package popup

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/popup-overlay/internal/placement"
	"github.com/atomicstack/popup-overlay/internal/widget"
)

func label(text string) widget.Factory {
	return func() widget.Node { return widget.NewLabel(text, 1, widget.AlignLeft) }
}

func button(text string) widget.Factory {
	return func() widget.Node { return widget.NewButton(text, nil) }
}

func TestNewSeedsRootLayout(t *testing.T) {
	p := New(WithTitle("Demo"))
	entry, ok := p.Registry().Lookup(RootName)
	if !ok {
		t.Fatalf("expected %q to be registered", RootName)
	}
	if entry.Node != widget.Node(p.Root()) {
		t.Fatalf("expected root entry to hold the root layout")
	}
	latest, isLayout := p.Registry().Latest()
	if latest != widget.Node(p.Root()) || !isLayout {
		t.Fatalf("expected root to be the latest layout, got %T %v", latest, isLayout)
	}
	if p.ID() == "" || p.ID() == New().ID() {
		t.Fatalf("expected unique pop-up ids")
	}
}

func TestPlaceAccumulatesDiagnostics(t *testing.T) {
	p := New()
	first := p.Place([]any{
		placement.Descriptor{label("ok"), true, 0, 0, "ok"},
		placement.Descriptor{42},
	})
	second := p.Place([]any{
		placement.Descriptor{label("again"), true, 0, 0, "ok"},
	})
	if len(first) != 1 || first[0].Code != placement.ErrArg1NotObject {
		t.Fatalf("expected one ErrArg1NotObject, got %#v", first)
	}
	if len(second) != 1 || second[0].Code != placement.ErrNameTaken {
		t.Fatalf("expected one ErrNameTaken, got %#v", second)
	}
	if len(p.Diagnostics()) != 2 {
		t.Fatalf("expected accumulated diagnostics, got %d", len(p.Diagnostics()))
	}
}

func TestRegistriesAreIsolated(t *testing.T) {
	a, b := New(), New()
	a.Place([]any{placement.Descriptor{label("a"), true, 0, 0, "shared"}})
	if diags := b.Place([]any{placement.Descriptor{label("b"), true, 0, 0, "shared"}}); len(diags) != 0 {
		t.Fatalf("expected names to be scoped per pop-up, got %#v", diags)
	}
}

func TestFocusRingWraps(t *testing.T) {
	p := New()
	p.Place([]any{
		placement.Descriptor{button("one")},
		placement.Descriptor{label("text")},
		placement.Descriptor{button("two")},
	})
	p.Init()
	first, ok := p.Focused().(*widget.Button)
	if !ok || first.Text != "one" || !first.Focused() {
		t.Fatalf("expected first button focused, got %#v", p.Focused())
	}
	p.FocusNext()
	if second := p.Focused().(*widget.Button); second.Text != "two" || first.Focused() {
		t.Fatalf("expected focus on second button only")
	}
	p.FocusNext()
	if p.Focused().(*widget.Button).Text != "one" {
		t.Fatalf("expected focus to wrap forward")
	}
	p.FocusPrev()
	if p.Focused().(*widget.Button).Text != "two" {
		t.Fatalf("expected focus to wrap backward")
	}
}

func TestFocusSurvivesLaterBatches(t *testing.T) {
	p := New()
	p.Place([]any{placement.Descriptor{button("one")}, placement.Descriptor{button("two")}})
	p.FocusNext()
	p.Place([]any{placement.Descriptor{button("three")}})
	if got := p.Focused().(*widget.Button).Text; got != "two" {
		t.Fatalf("expected focus to stay on two, got %q", got)
	}
}

func TestCloseFiresOnce(t *testing.T) {
	var calls []bool
	p := New(WithOnClose(func(cancelled bool) { calls = append(calls, cancelled) }))
	p.Close(true)
	p.Close(false)
	if len(calls) != 1 || !calls[0] {
		t.Fatalf("expected a single cancelled close, got %v", calls)
	}
	closed, cancelled := p.Closed()
	if !closed || !cancelled {
		t.Fatalf("expected closed and cancelled, got %v %v", closed, cancelled)
	}
	if cmd := p.Update(nil); cmd != nil {
		t.Fatalf("expected closed pop-up to ignore messages")
	}
}

func TestViewFramesContent(t *testing.T) {
	p := New(WithTitle("Greeting"), WithSize(30, 0))
	p.Place([]any{placement.Descriptor{label("hello there")}})
	view := p.View(80, 24)
	if !strings.Contains(view, "Greeting") || !strings.Contains(view, "hello there") {
		t.Fatalf("expected title and label in view, got:\n%s", view)
	}
	for _, line := range strings.Split(view, "\n") {
		if w := ansi.StringWidth(line); w > 30 {
			t.Fatalf("expected lines no wider than 30, got %d: %q", w, line)
		}
	}
}

func TestViewClampsToTerminal(t *testing.T) {
	p := New(WithSize(100, 0))
	p.Place([]any{placement.Descriptor{label("x")}})
	for _, line := range strings.Split(p.View(20, 10), "\n") {
		if w := ansi.StringWidth(line); w > 20 {
			t.Fatalf("expected view clamped to 20 columns, got %d", w)
		}
	}
}

type refusingMounter struct{}

func (refusingMounter) AttachAsWidget(widget.Node, widget.Node, int) error {
	return widget.ErrNotLayout
}

func (refusingMounter) AttachAsEffect(widget.Node, widget.Node) error {
	return widget.ErrNotEffectHost
}

func TestWithMounterReplacesToolkit(t *testing.T) {
	p := New(WithMounter(refusingMounter{}))
	diags := p.Place([]any{placement.Descriptor{label("x"), true, 0, 0, "x"}})
	if len(diags) != 1 || diags[0].Code != placement.ErrItem {
		t.Fatalf("expected ErrItem from the custom mounter, got %#v", diags)
	}
	if p.Registry().Taken("x") {
		t.Fatalf("expected failed mount to leave the name free")
	}
	if len(p.Root().Children()) != 0 {
		t.Fatalf("expected nothing mounted")
	}
}
