package widget

import "fmt"

// Toolkit provides the mount primitives used by declarative placement.
type Toolkit struct{}

// AttachAsWidget mounts item into a widget host at the given column.
func (Toolkit) AttachAsWidget(container, item Node, position int) error {
	host, ok := container.(WidgetHost)
	if !ok {
		return fmt.Errorf("%w: %T", ErrNotLayout, container)
	}
	return host.AddWidget(item, position)
}

// AttachAsEffect mounts item into an effect host.
func (Toolkit) AttachAsEffect(container, item Node) error {
	host, ok := container.(EffectHost)
	if !ok {
		return fmt.Errorf("%w: %T", ErrNotEffectHost, container)
	}
	return host.AddEffect(item)
}
