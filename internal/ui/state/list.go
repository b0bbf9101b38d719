package state

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// List is the scrollable, filterable list state. Items holds the rows that
// pass the filter, in the order of Full.
type List struct {
	Title          string
	Items          []Item
	Full           []Item
	Cursor         int
	ViewportOffset int

	query Query
	// anchor is the item under the cursor when filtering began; clearing the
	// filter returns to it.
	anchor string
}

// NewList constructs a List over the provided items.
func NewList(title string, items []Item) *List {
	l := &List{Title: title}
	l.UpdateItems(items)
	return l
}

// IndexOf returns the index for a given item identifier.
func (l *List) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Current returns the item under the cursor.
func (l *List) Current() (Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return Item{}, false
	}
	return l.Items[l.Cursor], true
}

func (l *List) currentID() string {
	item, _ := l.Current()
	return item.ID
}

// UpdateItems replaces the items, keeping the cursor on the same item when it
// survives the update. The viewport is left for EnsureCursorVisible to fix.
func (l *List) UpdateItems(items []Item) {
	keep := l.currentID()
	l.Full = CloneItems(items)
	l.Items = FilterItems(l.Full, l.query.String())
	if idx := l.IndexOf(keep); idx >= 0 {
		l.Cursor = idx
	}
	l.clampCursor()
	if l.ViewportOffset >= len(l.Items) {
		l.ViewportOffset = 0
	}
}

// Filter returns the filter text.
func (l *List) Filter() string {
	return l.query.String()
}

// FilterCaret returns the caret position within the filter text.
func (l *List) FilterCaret() int {
	return l.query.Caret()
}

// InsertFilter types s at the filter caret.
func (l *List) InsertFilter(s string) bool {
	return l.editFilter(func(q *Query) bool { return q.Insert(s) })
}

// BackspaceFilter deletes the rune before the filter caret.
func (l *List) BackspaceFilter() bool {
	return l.editFilter(func(q *Query) bool { return q.Backspace() })
}

// SetFilter replaces the filter text.
func (l *List) SetFilter(s string) bool {
	if s == l.query.String() {
		return false
	}
	return l.editFilter(func(q *Query) bool {
		q.Reset(s)
		return true
	})
}

// MoveFilterCaret shifts the filter caret by delta runes.
func (l *List) MoveFilterCaret(delta int) bool {
	return l.query.MoveCaret(delta)
}

// FilterCaretHome moves the filter caret to the start of the text.
func (l *List) FilterCaretHome() bool {
	return l.query.CaretHome()
}

// FilterCaretEnd moves the filter caret to the end of the text.
func (l *List) FilterCaretEnd() bool {
	return l.query.CaretEnd()
}

// editFilter applies edit and refilters. Starting a filter remembers the
// current item and puts the cursor on the first match; clearing it returns
// the cursor to the remembered item.
func (l *List) editFilter(edit func(*Query) bool) bool {
	wasActive := l.query.Active()
	current := l.currentID()
	if !edit(&l.query) {
		return false
	}
	active := l.query.Active()
	if active && !wasActive {
		l.anchor = current
	}
	l.Items = FilterItems(l.Full, l.query.String())
	switch {
	case active:
		l.Cursor = 0
		l.ViewportOffset = 0
	case wasActive:
		l.Cursor = max(0, l.IndexOf(l.anchor))
		l.anchor = ""
	}
	l.clampCursor()
	return true
}

// FilterItems returns the items whose labels fuzzily match query, keeping
// their order. A blank query matches everything.
func FilterItems(items []Item, query string) []Item {
	needle := strings.TrimSpace(query)
	if needle == "" {
		return CloneItems(items)
	}
	matched := make([]Item, 0, len(items))
	for _, item := range items {
		if fuzzy.MatchNormalizedFold(needle, item.Label) {
			matched = append(matched, item)
		}
	}
	return matched
}
