package placement

import (
	"sort"

	"github.com/atomicstack/popup-overlay/internal/widget"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Role describes what a registered node can host.
type Role int

const (
	RoleNone Role = iota
	RoleLayout
	RoleEffect
)

// RoleFor maps a kind to the role its nodes play once registered.
func RoleFor(kind Kind) Role {
	switch kind {
	case KindWidgetContainer:
		return RoleLayout
	case KindEffectContainer:
		return RoleEffect
	default:
		return RoleNone
	}
}

// Entry is one named node.
type Entry struct {
	Kind Kind
	Node widget.Node
	Role Role
}

// Registry maps names to placed nodes and tracks the latest-active container.
// A registry belongs to a single pop-up and is not safe for concurrent use.
type Registry struct {
	entries        map[string]Entry
	order          []string
	latest         widget.Node
	latestIsLayout bool
}

// NewRegistry returns an empty registry with no latest-active container.
func NewRegistry() *Registry {
	return &Registry{
		entries:        make(map[string]Entry),
		latestIsLayout: true,
	}
}

// Register records node under name. Empty names are anonymous and never
// stored; a name that is already present is rejected, never overwritten.
func (r *Registry) Register(name string, kind Kind, node widget.Node) Code {
	if name == "" {
		return Success
	}
	if _, ok := r.entries[name]; ok {
		return ErrNameTaken
	}
	r.entries[name] = Entry{Kind: kind, Node: node, Role: RoleFor(kind)}
	r.order = append(r.order, name)
	return Success
}

// Taken reports whether a non-empty name is already registered.
func (r *Registry) Taken(name string) bool {
	if name == "" {
		return false
	}
	_, ok := r.entries[name]
	return ok
}

// Lookup returns the entry registered under name.
func (r *Registry) Lookup(name string) (Entry, bool) {
	entry, ok := r.entries[name]
	return entry, ok
}

// ResolveParent picks the container a line nests into. An empty parent
// returns the fallback pair untouched.
func (r *Registry) ResolveParent(parent string, fallback widget.Node, fallbackIsLayout bool) (widget.Node, bool, Code) {
	if parent == "" {
		return fallback, fallbackIsLayout, Success
	}
	entry, ok := r.entries[parent]
	if !ok {
		return nil, false, ErrParentNotFound
	}
	switch entry.Role {
	case RoleLayout:
		return entry.Node, true, Success
	case RoleEffect:
		return entry.Node, false, Success
	default:
		return nil, false, ErrParentNotLayout
	}
}

// UpdateLatest overwrites the latest-active container cursors.
func (r *Registry) UpdateLatest(node widget.Node, isLayout bool) {
	r.latest = node
	r.latestIsLayout = isLayout
}

// Latest returns the latest-active container and whether it is a layout.
func (r *Registry) Latest() (widget.Node, bool) {
	return r.latest, r.latestIsLayout
}

// Len returns the number of named nodes.
func (r *Registry) Len() int {
	return len(r.order)
}

// Names lists registered names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// NamesByKind lists the names registered with kind, in registration order.
func (r *Registry) NamesByKind(kind Kind) []string {
	var names []string
	for _, name := range r.order {
		if r.entries[name].Kind == kind {
			names = append(names, name)
		}
	}
	return names
}

// Suggest returns up to limit container names that fuzzily resemble name,
// closest first.
func (r *Registry) Suggest(name string, limit int) []string {
	if name == "" || limit <= 0 {
		return nil
	}
	candidates := make([]string, 0, len(r.order))
	for _, candidate := range r.order {
		if r.entries[candidate].Role != RoleNone {
			candidates = append(candidates, candidate)
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(name, candidates)
	if len(ranks) == 0 {
		// the query may be the longer string, e.g. a typo with an extra rune
		for _, candidate := range candidates {
			ranks = append(ranks, fuzzy.RankFindNormalizedFold(candidate, []string{name})...)
		}
		for i := range ranks {
			ranks[i].Target = ranks[i].Source
		}
	}
	sort.Stable(ranks)
	out := make([]string, 0, min(limit, len(ranks)))
	for _, rank := range ranks {
		if len(out) == limit {
			break
		}
		out = append(out, rank.Target)
	}
	return out
}
