package overlay

// Rect is a cell rectangle in list-area coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether the cell at x, y lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Geometry places the index bar inside the list area.
type Geometry struct {
	Bar        Rect
	Margin     int
	Sections   int
	CellHeight float64
}

// Recompute lays the bar out against the trailing edge of a width x height
// container, inset by margin on the right, top, and bottom. The result is a
// pure function of its inputs.
func Recompute(width, height, barWidth, margin, sections int) Geometry {
	if margin < 0 {
		margin = 0
	}
	if sections < 0 {
		sections = 0
	}
	g := Geometry{Margin: margin, Sections: sections}
	if width <= 0 || height <= 0 || barWidth <= 0 {
		return g
	}
	x := width - margin - barWidth
	barHeight := height - 2*margin
	if x < 0 || barHeight <= 0 {
		return g
	}
	g.Bar = Rect{X: x, Y: margin, Width: barWidth, Height: barHeight}
	if sections > 0 {
		g.CellHeight = float64(barHeight) / float64(sections)
	}
	return g
}

// Degenerate reports whether no touch can be mapped to a section.
func (g Geometry) Degenerate() bool {
	return g.Sections <= 0 || g.CellHeight <= 0
}
