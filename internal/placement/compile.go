package placement

import (
	"fmt"
	"math"
	"reflect"

	"github.com/atomicstack/popup-overlay/internal/widget"
)

// Kind tells the placer whether a node is a plain item or a container that
// later lines may nest into.
type Kind int

const (
	KindRegular Kind = iota
	KindWidgetContainer
	KindEffectContainer
)

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k >= KindRegular && k <= KindEffectContainer
}

// IsContainer reports whether k creates a container.
func (k Kind) IsContainer() bool {
	return k == KindWidgetContainer || k == KindEffectContainer
}

func (k Kind) String() string {
	switch k {
	case KindRegular:
		return "regular"
	case KindWidgetContainer:
		return "widget-container"
	case KindEffectContainer:
		return "effect-container"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Descriptor is the raw positional form of one placement line.
type Descriptor []any

const maxDescriptorFields = 6

// Record is a validated descriptor with every field populated.
type Record struct {
	Factory  widget.Factory
	IsWidget bool
	Position int
	Kind     Kind
	Name     string
	Parent   string
}

// NewRecord returns a record for factory with the documented defaults.
func NewRecord(factory widget.Factory) Record {
	return Record{
		Factory:  factory,
		IsWidget: true,
		Position: 0,
		Kind:     KindRegular,
	}
}

// Compile validates raw against the positional schema. Checks run left to
// right and the first failure is returned.
func Compile(raw any) (Record, Code) {
	var fields []any
	switch v := raw.(type) {
	case Descriptor:
		fields = v
	case []any:
		fields = v
	default:
		var ok bool
		if fields, ok = asSequence(raw); !ok {
			return Record{}, ErrItem
		}
	}
	if len(fields) == 0 || len(fields) > maxDescriptorFields {
		return Record{}, ErrItem
	}

	factory, ok := asFactory(fields[0])
	if !ok {
		return Record{}, ErrArg1NotObject
	}
	rec := NewRecord(factory)

	if len(fields) >= 2 {
		isWidget, ok := fields[1].(bool)
		if !ok {
			return Record{}, ErrArg2NotBoolean
		}
		rec.IsWidget = isWidget
	}
	if len(fields) >= 3 {
		position, ok := asInt(fields[2])
		if !ok {
			return Record{}, ErrArg3NotNumber
		}
		if position < 0 {
			return Record{}, ErrArg4NotNumber
		}
		rec.Position = position
	}
	if len(fields) >= 4 {
		kind, ok := asInt(fields[3])
		if !ok {
			return Record{}, ErrArg4NotNumber
		}
		rec.Kind = Kind(kind)
	}
	if len(fields) >= 5 {
		name, ok := fields[4].(string)
		if !ok {
			return Record{}, ErrArg5NotString
		}
		rec.Name = name
	}
	if len(fields) >= 6 {
		parent, ok := fields[5].(string)
		if !ok {
			return Record{}, ErrArg6NotString
		}
		rec.Parent = parent
	}
	return rec, Success
}

// asSequence accepts any other slice or array, e.g. []widget.Factory.
func asSequence(raw any) ([]any, bool) {
	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	fields := make([]any, rv.Len())
	for i := range fields {
		fields[i] = rv.Index(i).Interface()
	}
	return fields, true
}

func asFactory(value any) (widget.Factory, bool) {
	switch v := value.(type) {
	case nil:
		return nil, false
	case widget.Factory:
		return v, v != nil
	case func() widget.Node:
		if v == nil {
			return nil, false
		}
		return widget.Factory(v), true
	case widget.Node:
		if widget.IsNil(v) {
			return nil, false
		}
		return func() widget.Node { return v }, true
	default:
		return nil, false
	}
}

func asInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		if v > math.MaxInt || v < math.MinInt {
			return 0, false
		}
		return int(v), true
	case uint:
		if uint64(v) > math.MaxInt {
			return 0, false
		}
		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	case uint64:
		if v > math.MaxInt {
			return 0, false
		}
		return int(v), true
	default:
		return 0, false
	}
}
