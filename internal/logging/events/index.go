package events

import "github.com/atomicstack/indexlist/internal/logging"

// IndexTracer records index bar activity.
type IndexTracer struct{}

type hideReason string

const (
	HideTimeout  hideReason = "timeout"
	HideDisable  hideReason = "disable"
	HideExplicit hideReason = "explicit"
	HideAdapter  hideReason = "adapter"
)

var Index = IndexTracer{}

func (IndexTracer) Adapter(sections int, attached bool) {
	logging.Trace("index.adapter", map[string]interface{}{"sections": sections, "attached": attached})
}

func (IndexTracer) Show(reason string) {
	logging.Trace("index.show", map[string]interface{}{"reason": reason})
}

func (IndexTracer) Hide(reason hideReason) {
	logging.Trace("index.hide", map[string]interface{}{"reason": string(reason)})
}

func (IndexTracer) DragStart(x, y int) {
	logging.Trace("index.drag.start", map[string]interface{}{"x": x, "y": y})
}

func (IndexTracer) DragEnd(section int) {
	logging.Trace("index.drag.end", map[string]interface{}{"section": section})
}

func (IndexTracer) Jump(section int, label string, position int) {
	logging.Trace("index.jump", map[string]interface{}{"section": section, "label": label, "position": position})
}

func (IndexTracer) Fling(button string) {
	logging.Trace("index.fling", map[string]interface{}{"button": button})
}

func (IndexTracer) Enabled(enabled bool) {
	logging.Trace("index.enabled", map[string]interface{}{"enabled": enabled})
}

func (IndexTracer) Resize(width, height, sections int) {
	logging.Trace("index.resize", map[string]interface{}{"width": width, "height": height, "sections": sections})
}
