// Package content decodes declarative pop-up definitions from TOML.
package content

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/atomicstack/popup-overlay/internal/logging/events"
	"github.com/atomicstack/popup-overlay/internal/placement"
	"github.com/atomicstack/popup-overlay/internal/widget"
)

//go:embed demo.toml
var demoData []byte

// Widget types understood by WidgetSpec.Factory.
const (
	TypeLabel   = "label"
	TypeButton  = "button"
	TypeTextBox = "textbox"
	TypeDivider = "divider"
	TypeLayout  = "layout"
	TypeEffects = "effects"
	TypeBanner  = "banner"
	TypeSpinner = "spinner"
)

// ActionResolver maps a button's action name to a callback. It may return nil
// for names it does not know.
type ActionResolver func(name, message string) widget.Action

// Document is one decoded content file.
type Document struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Lines  []Line `toml:"line"`

	// Undecoded lists keys present in the source but unknown to the schema.
	Undecoded []string `toml:"-"`
}

// Line is a single placement line.
type Line struct {
	Comment bool        `toml:"comment"`
	Widget  *WidgetSpec `toml:"widget"`
	Args    []any       `toml:"args"`
}

// WidgetSpec describes the node a line's factory builds.
type WidgetSpec struct {
	Type        string `toml:"type"`
	Text        string `toml:"text"`
	Height      int    `toml:"height"`
	Align       string `toml:"align"`
	Columns     []int  `toml:"columns"`
	FillFrame   bool   `toml:"fill_frame"`
	Placeholder string `toml:"placeholder"`
	Action      string `toml:"action"`
	Message     string `toml:"message"`
	Title       string `toml:"title"`
}

// Load reads and decodes the file at path.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read content %s: %w", path, err)
	}
	doc, err := decode(data, path)
	if err != nil {
		return Document{}, err
	}
	events.Content.Load(path, len(doc.Lines))
	return doc, nil
}

// Parse decodes an in-memory document.
func Parse(data []byte) (Document, error) {
	return decode(data, "<memory>")
}

// Demo returns the built-in document shown when no content file is given.
func Demo() (Document, error) {
	return decode(demoData, "<demo>")
}

func decode(data []byte, source string) (Document, error) {
	var doc Document
	meta, err := toml.Decode(string(data), &doc)
	if err != nil {
		return Document{}, fmt.Errorf("decode content %s: %w", source, err)
	}
	for _, key := range meta.Undecoded() {
		doc.Undecoded = append(doc.Undecoded, key.String())
	}
	if len(doc.Undecoded) > 0 {
		events.Content.Undecoded(source, doc.Undecoded)
	}
	return doc, nil
}

// Descriptors converts every line into a raw placement line. Only lines
// marked as comments become nil. A missing widget table, an empty type, or a
// type that is not recognised leaves a non-factory first field so the
// compiler rejects the line.
func (d Document) Descriptors(resolve ActionResolver) []any {
	lines := make([]any, 0, len(d.Lines))
	for _, line := range d.Lines {
		if line.Comment {
			lines = append(lines, nil)
			continue
		}
		var first any
		if line.Widget != nil {
			first = line.Widget.Type
			if factory, ok := line.Widget.Factory(resolve); ok {
				first = factory
			}
		}
		desc := make(placement.Descriptor, 0, 1+len(line.Args))
		desc = append(desc, first)
		desc = append(desc, line.Args...)
		lines = append(lines, desc)
	}
	return lines
}

// Factory returns a constructor for the described node.
func (s WidgetSpec) Factory(resolve ActionResolver) (widget.Factory, bool) {
	switch s.Type {
	case TypeLabel:
		height := s.Height
		if height <= 0 {
			height = 1
		}
		align := widget.ParseAlign(s.Align)
		return func() widget.Node { return widget.NewLabel(s.Text, height, align) }, true
	case TypeButton:
		var action widget.Action
		if resolve != nil && s.Action != "" {
			action = resolve(s.Action, s.Message)
		}
		return func() widget.Node { return widget.NewButton(s.Text, action) }, true
	case TypeTextBox:
		return func() widget.Node { return widget.NewTextBox(s.Text, s.Placeholder) }, true
	case TypeDivider:
		return func() widget.Node { return widget.NewDivider() }, true
	case TypeLayout:
		columns := append([]int(nil), s.Columns...)
		return func() widget.Node { return widget.NewLayout(columns, s.FillFrame) }, true
	case TypeEffects:
		return func() widget.Node { return widget.NewEffectLayer(s.Title) }, true
	case TypeBanner:
		return func() widget.Node {
			banner := widget.NewBanner(s.Text)
			if s.Align != "" {
				banner.Align = widget.ParseAlign(s.Align)
			}
			return banner
		}, true
	case TypeSpinner:
		return func() widget.Node { return widget.NewSpinner(s.Text) }, true
	default:
		return nil, false
	}
}
