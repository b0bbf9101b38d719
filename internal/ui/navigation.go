package ui

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/atomicstack/indexlist/internal/logging/events"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, m.keys.Quit) {
		return tea.Quit
	}
	if m.handleTextInput(keyMsg) {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Back):
		return m.handleEscapeKey()
	case key.Matches(keyMsg, m.keys.Select):
		return m.handleEnterKey()
	case key.Matches(keyMsg, m.keys.ToggleIndex):
		return m.toggleIndexBar()
	case key.Matches(keyMsg, m.keys.ShowIndex):
		return m.bar.Show()
	case key.Matches(keyMsg, m.keys.Up):
		m.moveCursorBy(-1)
	case key.Matches(keyMsg, m.keys.Down):
		m.moveCursorBy(1)
	case key.Matches(keyMsg, m.keys.PageUp):
		m.moveCursorPageUp()
	case key.Matches(keyMsg, m.keys.PageDown):
		m.moveCursorPageDown()
	case key.Matches(keyMsg, m.keys.Home):
		m.moveCursorHome()
	case key.Matches(keyMsg, m.keys.End):
		m.moveCursorEnd()
	}
	return nil
}

func (m *Model) handleEscapeKey() tea.Cmd {
	if !m.list.SetFilter("") {
		return tea.Quit
	}
	events.Filter.Cleared()
	m.filterChanged()
	return nil
}

func (m *Model) handleEnterKey() tea.Cmd {
	item, ok := m.list.Current()
	if !ok {
		return nil
	}
	events.UI.Select(item.Label, m.list.Cursor)
	m.setInfo(fmt.Sprintf("Selected %s", item.Label))
	return nil
}

func (m *Model) toggleIndexBar() tea.Cmd {
	enabled := !m.bar.Enabled()
	m.bar.SetEnabled(enabled)
	if !enabled {
		m.setInfo("Fast scroll off")
		return nil
	}
	m.setInfo("Fast scroll on")
	return m.bar.Show()
}

func (m *Model) moveCursorBy(delta int) {
	if m.list.MoveCursorBy(delta) {
		m.syncViewport()
		events.UI.Cursor(m.list.Cursor, m.list.ViewportOffset)
	}
}

func (m *Model) moveCursorPageUp() {
	if m.list.MovePage(-1, m.maxVisibleItems()) {
		m.syncViewport()
		events.UI.Cursor(m.list.Cursor, m.list.ViewportOffset)
	}
}

func (m *Model) moveCursorPageDown() {
	if m.list.MovePage(1, m.maxVisibleItems()) {
		m.syncViewport()
		events.UI.Cursor(m.list.Cursor, m.list.ViewportOffset)
	}
}

func (m *Model) moveCursorHome() {
	if m.list.MoveCursorHome() {
		m.syncViewport()
		events.UI.Cursor(m.list.Cursor, m.list.ViewportOffset)
	}
}

func (m *Model) moveCursorEnd() {
	if m.list.MoveCursorEnd() {
		m.syncViewport()
		events.UI.Cursor(m.list.Cursor, m.list.ViewportOffset)
	}
}

func (m *Model) syncViewport() {
	m.list.EnsureCursorVisible(m.maxVisibleItems())
}

// handleMouseMsg offers the event to the index bar before the list sees it.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	local := shiftMouse(ev, -listTop)
	claimed, cmd := m.bar.HandleMouse(local)
	if claimed {
		return cmd
	}
	mouse := local.Mouse()
	switch local.(type) {
	case tea.MouseWheelMsg:
		switch mouse.Button {
		case tea.MouseWheelUp:
			m.moveCursorBy(-wheelStep)
		case tea.MouseWheelDown:
			m.moveCursorBy(wheelStep)
		}
	case tea.MouseClickMsg:
		if mouse.Button == tea.MouseLeft {
			m.selectRow(mouse.Y)
		}
	}
	return cmd
}

// shiftMouse moves a screen-space mouse event by dy rows.
func shiftMouse(msg tea.MouseMsg, dy int) tea.MouseMsg {
	switch ev := msg.(type) {
	case tea.MouseClickMsg:
		ev.Y += dy
		return ev
	case tea.MouseMotionMsg:
		ev.Y += dy
		return ev
	case tea.MouseReleaseMsg:
		ev.Y += dy
		return ev
	case tea.MouseWheelMsg:
		ev.Y += dy
		return ev
	}
	return msg
}

func (m *Model) selectRow(row int) {
	if row < 0 {
		return
	}
	if maxVisible := m.maxVisibleItems(); maxVisible > 0 && row >= maxVisible {
		return
	}
	idx := m.list.ViewportOffset + row
	if idx >= len(m.list.Items) {
		return
	}
	if idx != m.list.Cursor {
		m.list.Cursor = idx
		m.syncViewport()
		events.UI.Cursor(m.list.Cursor, m.list.ViewportOffset)
	}
}
