package events

import "github.com/atomicstack/popup-overlay/internal/logging"

type UITracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Command = CommandTracer{}
)

func (UITracer) Focus(popupID string, index int, node string) {
	logging.Trace("ui.focus", map[string]interface{}{"popup": popupID, "index": index, "node": node})
}

func (UITracer) Close(popupID string, cancelled bool) {
	logging.Trace("ui.close", map[string]interface{}{"popup": popupID, "cancelled": cancelled})
}

func (UITracer) Reload(popupID string, diagnostics int) {
	logging.Trace("ui.reload", map[string]interface{}{"popup": popupID, "diagnostics": diagnostics})
}

func (UITracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("ui.error", map[string]interface{}{"error": err.Error()})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) NoOp(id, label string) {
	logging.Trace("command.noop", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
