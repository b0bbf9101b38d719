package state

import "strings"

// Query is the filter text being typed plus the caret within it. Positions
// count runes.
type Query struct {
	text  []rune
	caret int
}

// String returns the query text.
func (q *Query) String() string {
	return string(q.text)
}

// Active reports whether the query filters anything.
func (q *Query) Active() bool {
	return strings.TrimSpace(string(q.text)) != ""
}

// Caret returns the caret position.
func (q *Query) Caret() int {
	return q.caret
}

// Insert adds s at the caret and moves the caret past it.
func (q *Query) Insert(s string) bool {
	add := []rune(s)
	if len(add) == 0 {
		return false
	}
	text := make([]rune, 0, len(q.text)+len(add))
	text = append(text, q.text[:q.caret]...)
	text = append(text, add...)
	text = append(text, q.text[q.caret:]...)
	q.text = text
	q.caret += len(add)
	return true
}

// Backspace removes the rune before the caret.
func (q *Query) Backspace() bool {
	if q.caret == 0 {
		return false
	}
	q.text = append(q.text[:q.caret-1], q.text[q.caret:]...)
	q.caret--
	return true
}

// Reset replaces the text and puts the caret at its end.
func (q *Query) Reset(s string) {
	q.text = []rune(s)
	q.caret = len(q.text)
}

// MoveCaret shifts the caret by delta runes, clamped to the text.
func (q *Query) MoveCaret(delta int) bool {
	return q.setCaret(q.caret + delta)
}

// CaretHome moves the caret before the first rune.
func (q *Query) CaretHome() bool {
	return q.setCaret(0)
}

// CaretEnd moves the caret after the last rune.
func (q *Query) CaretEnd() bool {
	return q.setCaret(len(q.text))
}

func (q *Query) setCaret(pos int) bool {
	pos = max(0, min(pos, len(q.text)))
	if pos == q.caret {
		return false
	}
	q.caret = pos
	return true
}
