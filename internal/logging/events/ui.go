package events

import "github.com/atomicstack/indexlist/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type SourceTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
	Source = SourceTracer{}
)

func (UITracer) Cursor(cursor, offset int) {
	logging.Trace("list.cursor", map[string]interface{}{"cursor": cursor, "offset": offset})
}

func (UITracer) Scroll(position int) {
	logging.Trace("list.scroll", map[string]interface{}{"position": position})
}

func (UITracer) Select(label string, position int) {
	logging.Trace("list.select", map[string]interface{}{"label": label, "position": position})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (FilterTracer) Cursor(pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"cursor": pos})
}

func (FilterTracer) Append(filter string) {
	logging.Trace("filter.append", map[string]interface{}{"filter": filter})
}

func (FilterTracer) Backspace(filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"filter": filter})
}

func (SourceTracer) Reload(path string, items int) {
	logging.Trace("source.reload", map[string]interface{}{"path": path, "items": items})
}

func (SourceTracer) Error(path string, err error) {
	if err == nil {
		return
	}
	logging.Trace("source.error", map[string]interface{}{"path": path, "error": err.Error()})
}
