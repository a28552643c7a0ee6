package placement

import (
	"errors"
	"fmt"

	"github.com/atomicstack/popup-overlay/internal/widget"
)

var errNilFactoryResult = errors.New("factory returned no node")

// Mounter attaches nodes to containers. The toolkit's Toolkit type is the
// production implementation.
type Mounter interface {
	AttachAsWidget(container, item widget.Node, position int) error
	AttachAsEffect(container, item widget.Node) error
}

// Resolver places records into the containers tracked by its registry.
type Resolver struct {
	scope    string
	registry *Registry
	mounter  Mounter
}

// NewResolver binds a registry to a mounter. scope identifies the owning
// pop-up in trace output.
func NewResolver(scope string, registry *Registry, mounter Mounter) *Resolver {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Resolver{scope: scope, registry: registry, mounter: mounter}
}

// Registry exposes the registry the resolver mutates.
func (r *Resolver) Registry() *Registry {
	return r.registry
}

// Place mounts rec and updates the registry.
func (r *Resolver) Place(rec Record) Code {
	_, code, _ := r.place(rec)
	return code
}

// place returns the mounted node along with the toolkit error behind an
// ErrItem result, when there is one.
func (r *Resolver) place(rec Record) (widget.Node, Code, error) {
	latest, latestIsLayout := r.registry.Latest()
	target, isLayout, code := r.registry.ResolveParent(rec.Parent, latest, latestIsLayout)
	if !code.OK() {
		return nil, code, nil
	}
	if widget.IsNil(target) {
		return nil, ErrParentNotFound, nil
	}
	if !rec.Kind.Valid() {
		return nil, ErrKindUnknown, nil
	}
	if rec.Factory == nil {
		return nil, ErrArg1NotObject, nil
	}

	node := rec.Factory()
	if widget.IsNil(node) {
		return nil, ErrItem, errNilFactoryResult
	}
	if err := checkContainer(rec.Kind, node); err != nil {
		return nil, ErrItem, err
	}

	// dispatch follows the parent's role; rec.IsWidget and rec.Kind do not
	// choose the primitive
	var err error
	if isLayout {
		err = r.mounter.AttachAsWidget(target, node, rec.Position)
	} else {
		err = r.mounter.AttachAsEffect(target, node)
	}
	if err != nil {
		return nil, ErrItem, err
	}

	// a name collision is only detected here, after the node is already
	// mounted; the cursors stay where they were
	if code := r.registry.Register(rec.Name, rec.Kind, node); !code.OK() {
		return node, code, nil
	}
	if rec.Kind.IsContainer() {
		r.registry.UpdateLatest(node, rec.Kind == KindWidgetContainer)
	}
	return node, Success, nil
}

func checkContainer(kind Kind, node widget.Node) error {
	switch kind {
	case KindWidgetContainer:
		if _, ok := node.(widget.WidgetHost); !ok {
			return fmt.Errorf("%w: %T", widget.ErrNotLayout, node)
		}
	case KindEffectContainer:
		if _, ok := node.(widget.EffectHost); !ok {
			return fmt.Errorf("%w: %T", widget.ErrNotEffectHost, node)
		}
	}
	return nil
}
