// Package popup assembles a framed pop-up from placement lines. Each pop-up
// owns its own registry, so names never leak between instances.
package popup

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/atomicstack/popup-overlay/internal/logging/events"
	"github.com/atomicstack/popup-overlay/internal/placement"
	"github.com/atomicstack/popup-overlay/internal/theme"
	"github.com/atomicstack/popup-overlay/internal/widget"
)

// RootName is the registry name of every pop-up's root layout.
const RootName = "popup-root"

// DefaultWidth is used when no width option is given.
const DefaultWidth = 60

// Option customises a pop-up at construction.
type Option func(*Popup)

// WithTitle sets the frame title.
func WithTitle(title string) Option {
	return func(p *Popup) { p.title = title }
}

// WithSize sets the preferred outer size. Zero means automatic.
func WithSize(width, height int) Option {
	return func(p *Popup) {
		p.width = width
		p.height = height
	}
}

// WithOnClose registers the close callback.
func WithOnClose(fn func(cancelled bool)) Option {
	return func(p *Popup) { p.onClose = fn }
}

// WithMounter replaces the toolkit used to attach nodes.
func WithMounter(m placement.Mounter) Option {
	return func(p *Popup) {
		if m != nil {
			p.mounter = m
		}
	}
}

// Popup is one pop-up instance.
type Popup struct {
	id       string
	title    string
	width    int
	height   int
	onClose  func(cancelled bool)
	mounter  placement.Mounter
	root     *widget.Layout
	registry *placement.Registry
	resolver *placement.Resolver

	diagnostics []placement.Diagnostic
	ring        []widget.Focusable
	focus       int

	closed    bool
	cancelled bool
}

// New builds an empty pop-up with its root layout registered and active.
func New(opts ...Option) *Popup {
	p := &Popup{
		id:      uuid.NewString(),
		mounter: widget.Toolkit{},
	}
	for _, opt := range opts {
		opt(p)
	}
	p.root = widget.NewLayout([]int{100}, true)
	p.registry = placement.NewRegistry()
	p.registry.Register(RootName, placement.KindWidgetContainer, p.root)
	p.registry.UpdateLatest(p.root, true)
	p.resolver = placement.NewResolver(p.id, p.registry, p.mounter)
	return p
}

// ID identifies the pop-up in trace output.
func (p *Popup) ID() string { return p.id }

// Title returns the frame title.
func (p *Popup) Title() string { return p.title }

// Root returns the root layout registered as RootName.
func (p *Popup) Root() *widget.Layout { return p.root }

// Registry returns the pop-up's own name registry.
func (p *Popup) Registry() *placement.Registry { return p.registry }

// Diagnostics returns every diagnostic produced so far.
func (p *Popup) Diagnostics() []placement.Diagnostic { return p.diagnostics }

// Place runs a batch of lines against the pop-up and returns the
// diagnostics for this batch. Diagnostics accumulate across batches.
func (p *Popup) Place(lines []any) []placement.Diagnostic {
	diags := p.resolver.PlaceAll(lines)
	p.diagnostics = append(p.diagnostics, diags...)
	p.rebuildRing()
	return diags
}

// rebuildRing collects focusable nodes in mount order and keeps the current
// focus when the node is still present.
func (p *Popup) rebuildRing() {
	var current widget.Focusable
	if p.focus < len(p.ring) {
		current = p.ring[p.focus]
	}
	p.ring = p.ring[:0]
	widget.Walk(p.root, func(n widget.Node) bool {
		if f, ok := n.(widget.Focusable); ok {
			p.ring = append(p.ring, f)
		}
		return true
	})
	p.focus = 0
	for i, f := range p.ring {
		if f == current {
			p.focus = i
			break
		}
	}
}

// Focused returns the node holding focus, or nil.
func (p *Popup) Focused() widget.Focusable {
	if len(p.ring) == 0 {
		return nil
	}
	return p.ring[p.focus]
}

// Init starts animations and focuses the first focusable node.
func (p *Popup) Init() tea.Cmd {
	var cmds []tea.Cmd
	widget.Walk(p.root, func(n widget.Node) bool {
		if i, ok := n.(widget.Initer); ok {
			cmds = append(cmds, i.Init())
		}
		return true
	})
	if f := p.Focused(); f != nil {
		cmds = append(cmds, f.Focus())
	}
	return tea.Batch(cmds...)
}

// Update forwards msg to every node that handles messages.
func (p *Popup) Update(msg tea.Msg) tea.Cmd {
	if p.closed {
		return nil
	}
	var cmds []tea.Cmd
	widget.Walk(p.root, func(n widget.Node) bool {
		if u, ok := n.(widget.Updater); ok {
			cmds = append(cmds, u.Update(msg))
		}
		return true
	})
	return tea.Batch(cmds...)
}

func (p *Popup) FocusNext() tea.Cmd { return p.moveFocus(1) }
func (p *Popup) FocusPrev() tea.Cmd { return p.moveFocus(-1) }

func (p *Popup) moveFocus(delta int) tea.Cmd {
	n := len(p.ring)
	if n == 0 {
		return nil
	}
	p.ring[p.focus].Blur()
	p.focus = ((p.focus+delta)%n + n) % n
	next := p.ring[p.focus]
	events.UI.Focus(p.id, p.focus, fmt.Sprintf("%T", next))
	return next.Focus()
}

// Close marks the pop-up closed and fires the close callback once.
func (p *Popup) Close(cancelled bool) {
	if p.closed {
		return
	}
	p.closed = true
	p.cancelled = cancelled
	events.UI.Close(p.id, cancelled)
	if p.onClose != nil {
		p.onClose(cancelled)
	}
}

// Closed reports whether the pop-up is closed and whether it was cancelled.
func (p *Popup) Closed() (closed, cancelled bool) {
	return p.closed, p.cancelled
}

// View renders the framed pop-up within the available width and height.
func (p *Popup) View(width, height int) string {
	styles := theme.Default()
	frame := *styles.Frame

	outer := p.width
	if outer <= 0 {
		outer = DefaultWidth
	}
	if width > 0 && outer > width {
		outer = width
	}
	inner := outer - frame.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}

	body := p.root.View(inner)
	if p.title != "" {
		title := lipgloss.PlaceHorizontal(inner, lipgloss.Center, styles.Title.Render(p.title))
		body = lipgloss.JoinVertical(lipgloss.Left, title, body)
	}

	frame = frame.Width(inner + frame.GetHorizontalPadding())
	maxHeight := p.height
	if height > 0 && (maxHeight <= 0 || maxHeight > height) {
		maxHeight = height
	}
	if maxHeight > 0 {
		frame = frame.MaxHeight(maxHeight)
	}
	return frame.Render(body)
}
