package placement

import (
	"fmt"
	"strings"

	"github.com/atomicstack/popup-overlay/internal/logging/events"
)

const suggestionLimit = 3

// Diagnostic reports one line that could not be placed.
type Diagnostic struct {
	Line    int
	Code    Code
	Message string
	Raw     any
	Hint    string
	Err     error
}

func (d Diagnostic) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "line %d: '%s' for %v", d.Line, d.Message, d.Raw)
	if d.Err != nil {
		fmt.Fprintf(&b, " (%v)", d.Err)
	}
	if d.Hint != "" {
		fmt.Fprintf(&b, "; %s", d.Hint)
	}
	return b.String()
}

// PlaceAll compiles and places every line in order. Failing lines produce a
// diagnostic and are skipped; the batch never stops early. A nil line is a
// comment and is skipped silently.
func (r *Resolver) PlaceAll(lines []any) []Diagnostic {
	var diagnostics []Diagnostic
	for i, line := range lines {
		if line == nil {
			events.Placement.Comment(r.scope, i)
			continue
		}
		rec, code := Compile(line)
		if !code.OK() {
			diagnostics = append(diagnostics, r.diagnose(i, code, line, rec, nil))
			continue
		}
		events.Placement.Line(r.scope, i, rec.Name, rec.Parent, rec.Kind.String(), rec.Position)
		if _, code, err := r.place(rec); !code.OK() {
			diagnostics = append(diagnostics, r.diagnose(i, code, line, rec, err))
		}
	}
	events.Placement.Batch(r.scope, len(lines), len(diagnostics))
	return diagnostics
}

func (r *Resolver) diagnose(line int, code Code, raw any, rec Record, err error) Diagnostic {
	d := Diagnostic{
		Line:    line,
		Code:    code,
		Message: Describe(code),
		Raw:     raw,
		Err:     err,
	}
	if code == ErrParentNotFound && rec.Parent != "" {
		if names := r.registry.Suggest(rec.Parent, suggestionLimit); len(names) > 0 {
			d.Hint = "did you mean " + strings.Join(quoteAll(names), ", ") + "?"
		}
	}
	events.Placement.Diagnostic(r.scope, line, int(code), d.Message, fmt.Sprintf("%v", raw))
	return d
}

func quoteAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = fmt.Sprintf("%q", v)
	}
	return out
}
