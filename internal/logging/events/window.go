package events

import "github.com/notcha/notcha/internal/logging"

type WindowTracer struct{}

// CloseReason tells program-initiated closes from user closes.
type CloseReason string

const (
	ReasonProgram CloseReason = "program"
	ReasonUser    CloseReason = "user"
)

var Window = WindowTracer{}

func (WindowTracer) Open(title string, handle uint64, width, height int) {
	logging.Trace("window.open", map[string]interface{}{
		"title":  title,
		"handle": handle,
		"width":  width,
		"height": height,
	})
}

func (WindowTracer) Close(title string, reason CloseReason) {
	logging.Trace("window.close", map[string]interface{}{"title": title, "reason": string(reason)})
}

func (WindowTracer) NewFrame(title string, width, height int) {
	logging.Trace("window.new-frame", map[string]interface{}{"title": title, "width": width, "height": height})
}
