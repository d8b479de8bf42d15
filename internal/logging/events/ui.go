package events

import "github.com/atomicstack/pincode-lookup/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Filter  = FilterTracer{}
	Command = CommandTracer{}
)

func (UITracer) Cursor(pincode string, cursor int) {
	logging.Trace("ui.cursor", map[string]interface{}{"pincode": pincode, "cursor": cursor})
}

func (UITracer) Reset(pincode string) {
	logging.Trace("ui.reset", map[string]interface{}{"pincode": pincode})
}

func (UITracer) Submit(pincode string, ignored bool) {
	logging.Trace("ui.submit", map[string]interface{}{"pincode": pincode, "ignored": ignored})
}

func (FilterTracer) Cleared(pincode string) {
	logging.Trace("filter.clear", map[string]interface{}{"pincode": pincode})
}

func (FilterTracer) WordBackspace(pincode, filter string, matches int) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"pincode": pincode, "filter": filter, "matches": matches})
}

func (FilterTracer) Cursor(pincode string, pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"pincode": pincode, "cursor": pos})
}

func (FilterTracer) CursorWord(pincode string, pos int) {
	logging.Trace("filter.cursor-word", map[string]interface{}{"pincode": pincode, "cursor": pos})
}

func (FilterTracer) Append(pincode, filter string, matches int) {
	logging.Trace("filter.append", map[string]interface{}{"pincode": pincode, "filter": filter, "matches": matches})
}

func (FilterTracer) Backspace(pincode, filter string, matches int) {
	logging.Trace("filter.backspace", map[string]interface{}{"pincode": pincode, "filter": filter, "matches": matches})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
