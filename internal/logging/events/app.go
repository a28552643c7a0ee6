package events

import "github.com/atomicstack/popup-overlay/internal/logging"

type AppTracer struct{}

type ContentTracer struct{}

var (
	App     = AppTracer{}
	Content = ContentTracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Check(path string, diagnostics int) {
	logging.Trace("app.check", map[string]interface{}{"path": path, "diagnostics": diagnostics})
}

func (ContentTracer) Load(path string, lines int) {
	logging.Trace("content.load", map[string]interface{}{"path": path, "lines": lines})
}

func (ContentTracer) Undecoded(path string, keys []string) {
	logging.Trace("content.undecoded", map[string]interface{}{"path": path, "keys": keys})
}

func (ContentTracer) Change(path, op string) {
	logging.Trace("content.change", map[string]interface{}{"path": path, "op": op})
}

func (ContentTracer) WatchError(path string, err error) {
	if err == nil {
		return
	}
	logging.Trace("content.watch-error", map[string]interface{}{"path": path, "error": err.Error()})
}
