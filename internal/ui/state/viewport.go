package state

// clampOffset returns the viewport offset closest to offset that keeps cursor
// on screen and never scrolls past the last full page.
func clampOffset(offset, cursor, total, rows int) int {
	if total == 0 || rows <= 0 {
		return 0
	}
	if cursor < offset {
		offset = cursor
	}
	if cursor >= offset+rows {
		offset = cursor - rows + 1
	}
	return max(0, min(offset, total-rows))
}

func (l *List) clampCursor() {
	l.Cursor = max(0, min(l.Cursor, len(l.Items)-1))
}

// MoveCursorBy moves the cursor by delta rows, clamped to the list.
func (l *List) MoveCursorBy(delta int) bool {
	old := l.Cursor
	l.Cursor += delta
	l.clampCursor()
	return l.Cursor != old
}

// MovePage moves the cursor by pages of rows; negative pages move up.
func (l *List) MovePage(pages, rows int) bool {
	if rows < 1 {
		rows = 1
	}
	return l.MoveCursorBy(pages * rows)
}

// MoveCursorHome moves the cursor to the first item.
func (l *List) MoveCursorHome() bool {
	return l.MoveCursorBy(-len(l.Items))
}

// MoveCursorEnd moves the cursor to the last item.
func (l *List) MoveCursorEnd() bool {
	return l.MoveCursorBy(len(l.Items))
}

// EnsureCursorVisible scrolls the least amount that brings the cursor into a
// viewport of rows rows.
func (l *List) EnsureCursorVisible(rows int) {
	l.clampCursor()
	l.ViewportOffset = clampOffset(l.ViewportOffset, l.Cursor, len(l.Items), rows)
}

// ScrollToPosition puts position at the top of the viewport, or as close to
// the top as the end of the list allows, and moves the cursor there. It
// reports whether anything moved.
func (l *List) ScrollToPosition(position, rows int) bool {
	oldCursor, oldOffset := l.Cursor, l.ViewportOffset
	l.Cursor = position
	l.clampCursor()
	l.ViewportOffset = clampOffset(l.Cursor, l.Cursor, len(l.Items), rows)
	return l.Cursor != oldCursor || l.ViewportOffset != oldOffset
}
