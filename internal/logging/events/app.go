package events

import "github.com/notcha/notcha/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Running(backend string) {
	logging.Trace("app.running", map[string]interface{}{"backend": backend})
}

func (AppTracer) Stop(windows int, err error) {
	payload := map[string]interface{}{"windows": windows}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("app.stop", payload)
}

func (AppTracer) AllClosed(windows int) {
	logging.Trace("app.all-closed", map[string]interface{}{"windows": windows})
}
