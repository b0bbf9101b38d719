package ui

import (
	"unicode"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/atomicstack/indexlist/internal/logging/events"
)

const filterPlaceholder = "(type to filter)"

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

// filterChanged keeps the viewport and the section index in step with the
// filtered items.
func (m *Model) filterChanged() {
	m.forceClearInfo()
	m.errMsg = ""
	m.syncViewport()
	m.rebuildIndex()
}

// handleTextInput edits the filter. It reports false for keys that are not
// filter edits so navigation bindings can handle them.
func (m *Model) handleTextInput(msg tea.KeyPressMsg) bool {
	switch msg.String() {
	case "ctrl+u":
		if !m.list.SetFilter("") {
			return false
		}
		events.Filter.Cleared()
		m.filterChanged()
		return true
	case "ctrl+a":
		return m.moveFilterCaret(m.list.FilterCaretHome())
	case "ctrl+e":
		return m.moveFilterCaret(m.list.FilterCaretEnd())
	case "left":
		return m.moveFilterCaret(m.list.MoveFilterCaret(-1))
	case "right":
		return m.moveFilterCaret(m.list.MoveFilterCaret(1))
	case "backspace", "ctrl+h":
		if !m.list.BackspaceFilter() {
			return false
		}
		events.Filter.Backspace(m.list.Filter())
		m.filterChanged()
		return true
	case "space":
		return m.appendToFilter(" ")
	}
	if msg.Mod&(tea.ModCtrl|tea.ModAlt) != 0 || msg.Text == "" {
		return false
	}
	for _, r := range msg.Text {
		if unicode.IsControl(r) {
			return false
		}
	}
	return m.appendToFilter(msg.Text)
}

func (m *Model) moveFilterCaret(moved bool) bool {
	if moved {
		events.Filter.Cursor(m.list.FilterCaret())
	}
	return moved
}

func (m *Model) appendToFilter(text string) bool {
	if !m.list.InsertFilter(text) {
		return false
	}
	events.Filter.Append(m.list.Filter())
	m.filterChanged()
	return true
}

// filterPrompt renders the filter line with the caret drawn by the bubbles
// cursor. An empty filter shows a dimmed placeholder under the caret.
func (m *Model) filterPrompt() string {
	prompt := render(styles.FilterPrompt, "» ")
	runes := []rune(m.list.Filter())
	if len(runes) == 0 {
		placeholder := []rune(filterPlaceholder)
		caret := m.renderFilterCursor(string(placeholder[0]), styles.FilterPlaceholder)
		return prompt + caret + render(styles.FilterPlaceholder, string(placeholder[1:]))
	}
	pos := m.list.FilterCaret()
	head := render(styles.Filter, string(runes[:pos]))
	caret, tail := " ", ""
	if pos < len(runes) {
		caret = string(runes[pos])
		tail = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + head + m.renderFilterCursor(caret, styles.Filter) + tail
}

func (m *Model) renderFilterCursor(char string, text *lipgloss.Style) string {
	m.filterCursor.TextStyle = lipgloss.NewStyle()
	if text != nil {
		m.filterCursor.TextStyle = *text
	}
	m.filterCursor.SetChar(char)
	return m.filterCursor.View()
}
