// Package widget is the small terminal toolkit the pop-up is assembled from.
// Every element implements Node; optional behaviour (animation, focus,
// activation, child containment) is expressed as separate interfaces so the
// pop-up can discover it without knowing concrete types.
package widget

import (
	"errors"
	"reflect"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	// ErrNilNode is returned when a nil node is attached to a container.
	ErrNilNode = errors.New("widget: nil node")
	// ErrColumnRange is returned when a widget targets a missing layout column.
	ErrColumnRange = errors.New("widget: column out of range")
	// ErrNotLayout is returned when a widget is attached to a non-layout container.
	ErrNotLayout = errors.New("widget: container does not accept widgets")
	// ErrNotEffectHost is returned when an effect is attached to a non-effect container.
	ErrNotEffectHost = errors.New("widget: container does not accept effects")
)

// Node is anything that can be drawn inside the pop-up.
type Node interface {
	View(width int) string
}

// Factory produces a node on demand.
type Factory func() Node

// Action runs when an activatable widget fires.
type Action func() tea.Cmd

// Initer is implemented by nodes that need a command when they go live.
type Initer interface {
	Init() tea.Cmd
}

// Updater is implemented by nodes that react to Bubble Tea messages.
type Updater interface {
	Update(msg tea.Msg) tea.Cmd
}

// Focusable is implemented by nodes that take part in the focus ring.
type Focusable interface {
	Node
	Focus() tea.Cmd
	Blur()
	Focused() bool
}

// Activator is implemented by nodes that fire an action on enter.
type Activator interface {
	Activate() tea.Cmd
}

// Container is implemented by nodes that hold other nodes.
type Container interface {
	Node
	Children() []Node
}

// WidgetHost accepts widgets at a slot.
type WidgetHost interface {
	Container
	AddWidget(node Node, column int) error
}

// EffectHost accepts effects.
type EffectHost interface {
	Container
	AddEffect(node Node) error
}

// Walk visits node and its descendants depth first. Returning false from fn
// stops descent below the current node.
func Walk(node Node, fn func(Node) bool) {
	if IsNil(node) {
		return
	}
	if !fn(node) {
		return
	}
	container, ok := node.(Container)
	if !ok {
		return
	}
	for _, child := range container.Children() {
		Walk(child, fn)
	}
}

// IsNil reports whether node is nil or wraps a nil pointer.
func IsNil(node Node) bool {
	if node == nil {
		return true
	}
	rv := reflect.ValueOf(node)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
