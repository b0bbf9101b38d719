package overlay

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Render draws the bar over base, the already rendered list area. It returns
// base unchanged while the bar is hidden, detached, or degenerate.
func (c *Controller) Render(base string) string {
	if c.vis.State() == Hidden || c.indexer == nil || c.geometry.Degenerate() {
		return base
	}
	g := c.geometry
	lines := strings.Split(base, "\n")
	for len(lines) < g.Bar.Y+g.Bar.Height {
		lines = append(lines, "")
	}

	dragging := c.vis.State() == Dragging && c.touch != nil && c.highlighted >= 0
	touchRow := -1
	if dragging {
		touchRow = c.touch.y - g.Bar.Y
		if touchRow < 0 || touchRow >= g.Bar.Height {
			touchRow = RowForSection(c.highlighted, g)
		}
	}

	cellStyle := lipgloss.NewStyle().
		Width(g.Bar.Width).
		Align(lipgloss.Center).
		Background(lipgloss.Color(c.colors.Background)).
		Foreground(lipgloss.Color(c.colors.Text))
	selectedStyle := cellStyle.Foreground(lipgloss.Color(c.colors.SelectedText)).Bold(true)

	segments := make([]string, g.Bar.Height)
	for row, s := range rowSections(g) {
		style := cellStyle
		label := c.sectionLabel(s)
		if dragging && row == touchRow {
			style = selectedStyle
			label = c.sectionLabel(c.highlighted)
		}
		segments[row] = style.Render(fitCell(label, g.Bar.Width))
	}

	start := make([]int, g.Bar.Height)
	for row := range start {
		start[row] = g.Bar.X
	}
	if dragging {
		c.placeBadge(segments, start, touchRow)
	}

	for row, segment := range segments {
		lines[g.Bar.Y+row] = splice(lines[g.Bar.Y+row], start[row], segment, c.width)
	}
	return strings.Join(lines, "\n")
}

// placeBadge prefixes the bar rows around the touch with a boxed preview of
// the highlighted section label.
func (c *Controller) placeBadge(segments []string, start []int, touchRow int) {
	label := c.sectionLabel(c.highlighted)
	if label == "" || len(segments) < 3 {
		return
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.colors.Background)).
		Foreground(lipgloss.Color(c.colors.SelectedText)).
		Bold(true).
		Padding(0, 1).
		Render(label)
	boxLines := strings.Split(box, "\n")
	boxWidth := lipgloss.Width(box)
	x := c.geometry.Bar.X - boxWidth - 1
	if x < 0 {
		return
	}
	top := touchRow - len(boxLines)/2
	if top < 0 {
		top = 0
	}
	if top+len(boxLines) > len(segments) {
		top = len(segments) - len(boxLines)
	}
	if top < 0 {
		return
	}
	for i, line := range boxLines {
		row := top + i
		segments[row] = line + " " + segments[row]
		start[row] = x
	}
}

// rowSections assigns a section to each bar row, or -1 for blank rows. When
// there are more sections than rows, the first, the last, and evenly spaced
// sections in between are shown.
func rowSections(g Geometry) []int {
	rows := make([]int, g.Bar.Height)
	for i := range rows {
		rows[i] = -1
	}
	if g.Sections <= g.Bar.Height {
		for s := 0; s < g.Sections; s++ {
			rows[RowForSection(s, g)] = s
		}
		return rows
	}
	copy(rows, SampleLabels(g.Sections, g.Bar.Height))
	return rows
}

// SampleLabels picks at most slots section indexes out of count, always
// including the first and last and spacing the rest evenly.
func SampleLabels(count, slots int) []int {
	if count <= 0 || slots <= 0 {
		return nil
	}
	if slots >= count {
		out := make([]int, count)
		for i := range out {
			out[i] = i
		}
		return out
	}
	out := make([]int, slots)
	for i := range out {
		out[i] = sampleAt(i, count, slots)
	}
	return out
}

func fitCell(label string, width int) string {
	if ansi.StringWidth(label) > width {
		return ansi.Truncate(label, width, "")
	}
	return label
}

// splice keeps the first x columns of line, pads to x, appends segment, and
// pads the remainder to width.
func splice(line string, x int, segment string, width int) string {
	head := ansi.Truncate(line, x, "")
	if pad := x - ansi.StringWidth(head); pad > 0 {
		head += strings.Repeat(" ", pad)
	}
	out := head + segment
	if pad := width - ansi.StringWidth(out); pad > 0 {
		out += strings.Repeat(" ", pad)
	}
	return out
}
