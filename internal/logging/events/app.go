package events

import "github.com/atomicstack/indexlist/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Dataset(source string, items int) {
	logging.Trace("app.dataset", map[string]interface{}{"source": source, "items": items})
}
