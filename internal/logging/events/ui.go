package events

import "github.com/notcha/notcha/internal/logging"

type MenuTracer struct{}

type ScrollTracer struct{}

type InputTracer struct{}

var (
	Menu   = MenuTracer{}
	Scroll = ScrollTracer{}
	Input  = InputTracer{}
)

func (MenuTracer) Open(index int, label string) {
	logging.Trace("menu.open", map[string]interface{}{"index": index, "label": label})
}

func (MenuTracer) Close(index int) {
	logging.Trace("menu.close", map[string]interface{}{"index": index})
}

func (MenuTracer) Hover(menu, item int) {
	logging.Trace("menu.hover", map[string]interface{}{"menu": menu, "item": item})
}

func (MenuTracer) Action(menu, item int, label string) {
	logging.Trace("menu.action", map[string]interface{}{"menu": menu, "item": item, "label": label})
}

func (ScrollTracer) Offset(offset, max float64) {
	logging.Trace("scroll.offset", map[string]interface{}{"offset": offset, "max": max})
}

func (ScrollTracer) Drag(active bool) {
	logging.Trace("scroll.drag", map[string]interface{}{"active": active})
}

func (InputTracer) Key(key string, pressed bool, focused uint64) {
	logging.Trace("input.key", map[string]interface{}{"key": key, "pressed": pressed, "focused": focused})
}

func (InputTracer) MouseBatch(drained, delivered int) {
	logging.Trace("input.mouse", map[string]interface{}{"drained": drained, "delivered": delivered})
}
