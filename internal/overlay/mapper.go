package overlay

// MapY converts a list-area row into a section. It reports false when the row
// lies outside the bar or the geometry is degenerate.
//
// While every section has at least one row, cells split the bar evenly and a
// boundary row belongs to the lower cell. Once sections outnumber rows, each
// row maps to the section whose label is drawn on it, so the first and last
// rows always reach the first and last sections.
func MapY(y int, g Geometry) (int, bool) {
	if g.Degenerate() {
		return -1, false
	}
	row := y - g.Bar.Y
	if row < 0 || row >= g.Bar.Height {
		return -1, false
	}
	if g.Sections > g.Bar.Height {
		return sampleAt(row, g.Sections, g.Bar.Height), true
	}
	// Integer floor of row/cellHeight, free of float rounding at edges.
	return clampSection(row*g.Sections/g.Bar.Height, g.Sections), true
}

// RowForSection returns the first bar row that maps to section. When rows are
// sampled it returns the first row whose section is not before section.
func RowForSection(section int, g Geometry) int {
	if g.Degenerate() {
		return -1
	}
	section = clampSection(section, g.Sections)
	if g.Sections > g.Bar.Height {
		for row := 0; row < g.Bar.Height; row++ {
			if sampleAt(row, g.Sections, g.Bar.Height) >= section {
				return row
			}
		}
		return g.Bar.Height - 1
	}
	row := (section*g.Bar.Height + g.Sections - 1) / g.Sections
	if row >= g.Bar.Height {
		row = g.Bar.Height - 1
	}
	return row
}

// sampleAt is the section shown on slot i when count sections share slots
// rows, rounding i*(count-1)/(slots-1) to the nearest section.
func sampleAt(i, count, slots int) int {
	if slots <= 1 {
		return 0
	}
	steps := slots - 1
	return (2*i*(count-1) + steps) / (2 * steps)
}

func clampSection(section, sections int) int {
	if section < 0 {
		return 0
	}
	if section >= sections {
		return sections - 1
	}
	return section
}
