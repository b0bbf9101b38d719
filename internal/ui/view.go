package ui

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/truncate"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model. The program runs in the alternate screen with
// cell-motion mouse reporting so drags along the bar arrive as motion events.
func (m *Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

func (m *Model) render() string {
	m.syncLayout()

	header := applyWidth([]styledLine{m.headerLine()}, m.width)

	// The bar is composed over the list rows only, so its geometry lines up
	// with the rows the mouse coordinates were translated into.
	listBlock := m.bar.Render(renderLines(applyWidth(m.listLines(), m.width)))

	lines := make([]styledLine, 0, 6)
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: m.keys.footerHelp(), style: styles.Footer})
	}
	var statusLine styledLine
	if m.errMsg != "" {
		statusLine = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	lines = append(lines, statusLine, styledLine{text: m.filterPrompt(), raw: true})
	lines = applyWidth(lines, m.width)

	return renderLines(header) + "\n" + listBlock + "\n" + renderLines(lines)
}

func (m *Model) headerLine() styledLine {
	title := strings.TrimSpace(m.list.Title)
	if title == "" {
		title = "items"
	}
	parts := []string{render(styles.Header, title)}
	count := fmt.Sprintf("%d items", len(m.list.Items))
	if m.list.Filter() != "" {
		count = fmt.Sprintf("%d/%d items", len(m.list.Items), len(m.list.Full))
	}
	parts = append(parts, render(styles.HeaderCount, count))
	if label, ok := m.currentSection(); ok {
		parts = append(parts, render(styles.HeaderSection, label))
	}
	return styledLine{text: strings.Join(parts, "  "), raw: true}
}

// listLines returns exactly maxVisibleItems rows when the height is known so
// the index bar always covers the same rows.
func (m *Model) listLines() []styledLine {
	maxItems := m.maxVisibleItems()
	lines := make([]styledLine, 0, max(maxItems, 1))
	if len(m.list.Items) == 0 {
		msg := "(no entries)"
		if m.list.Filter() != "" {
			msg = fmt.Sprintf("No matches for %q", m.list.Filter())
		}
		lines = append(lines, styledLine{text: msg, style: styles.Empty})
	} else {
		start := 0
		display := m.list.Items
		if maxItems > 0 && len(display) > maxItems {
			start = m.list.ViewportOffset
			if start < 0 {
				start = 0
			}
			if start+maxItems > len(display) {
				start = len(display) - maxItems
				m.list.ViewportOffset = start
			}
			display = display[start : start+maxItems]
		}
		for i, item := range display {
			lines = append(lines, m.buildItemLine(item.Label, start+i == m.list.Cursor))
		}
	}
	for maxItems > 0 && len(lines) < maxItems {
		lines = append(lines, styledLine{})
	}
	if maxItems > 0 && len(lines) > maxItems {
		lines = lines[:maxItems]
	}
	return lines
}

// buildItemLine pads selected rows so the highlight spans the container.
func (m *Model) buildItemLine(label string, selected bool) styledLine {
	indicator := "▌"
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if selected {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	text := indicator + " " + label
	if m.width > 0 {
		if pad := m.width - len([]rune(text)); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          text,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncLayout()
	return nil
}

// maxVisibleItems returns the number of list rows, or -1 before the height
// is known.
func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := listTop + 2 // header, then status line and filter prompt
	if info := m.currentInfo(); info != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func render(style *lipgloss.Style, text string) string {
	if style == nil {
		return text
	}
	return style.Render(text)
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		line.text = text
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
