package events

import "github.com/atomicstack/popup-overlay/internal/logging"

type PlacementTracer struct{}

var Placement = PlacementTracer{}

func (PlacementTracer) Line(scope string, line int, name, parent, kind string, position int) {
	logging.Trace("placement.line", map[string]interface{}{
		"popup":    scope,
		"line":     line,
		"name":     name,
		"parent":   parent,
		"kind":     kind,
		"position": position,
	})
}

func (PlacementTracer) Comment(scope string, line int) {
	logging.Trace("placement.comment", map[string]interface{}{"popup": scope, "line": line})
}

func (PlacementTracer) Diagnostic(scope string, line, code int, message, raw string) {
	logging.Trace("placement.diagnostic", map[string]interface{}{
		"popup":   scope,
		"line":    line,
		"code":    code,
		"message": message,
		"raw":     raw,
	})
}

func (PlacementTracer) Batch(scope string, lines, failed int) {
	logging.Trace("placement.batch", map[string]interface{}{"popup": scope, "lines": lines, "failed": failed})
}
