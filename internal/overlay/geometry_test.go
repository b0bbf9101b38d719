package overlay

import "testing"

func TestRecomputeAnchorsBarToTrailingEdge(t *testing.T) {
	g := Recompute(80, 24, 3, 1, 27)
	want := Rect{X: 76, Y: 1, Width: 3, Height: 22}
	if g.Bar != want {
		t.Fatalf("bar = %+v, want %+v", g.Bar, want)
	}
	if g.CellHeight != 22.0/27.0 {
		t.Fatalf("cell height = %v, want %v", g.CellHeight, 22.0/27.0)
	}
	if g.Degenerate() {
		t.Fatalf("expected usable geometry")
	}
}

func TestRecomputeIsIdempotent(t *testing.T) {
	a := Recompute(120, 40, 2, 2, 10)
	b := Recompute(120, 40, 2, 2, 10)
	if a != b {
		t.Fatalf("geometry differs for identical inputs: %+v vs %+v", a, b)
	}
}

func TestRecomputeDegenerateSizes(t *testing.T) {
	cases := []struct {
		name                             string
		width, height, bar, margin, secs int
	}{
		{"zero width", 0, 24, 3, 1, 27},
		{"negative height", 80, -1, 3, 1, 27},
		{"no sections", 80, 24, 3, 1, 0},
		{"bar wider than container", 2, 24, 3, 0, 27},
		{"margins swallow height", 80, 2, 3, 1, 27},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := Recompute(tc.width, tc.height, tc.bar, tc.margin, tc.secs)
			if !g.Degenerate() {
				t.Fatalf("expected degenerate geometry, got %+v", g)
			}
			if g.CellHeight != 0 {
				t.Fatalf("expected zero cell height, got %v", g.CellHeight)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 5, Y: 1, Width: 2, Height: 3}
	if !r.Contains(5, 1) || !r.Contains(6, 3) {
		t.Fatalf("expected corners inside")
	}
	if r.Contains(7, 1) || r.Contains(5, 4) || r.Contains(4, 2) || r.Contains(5, 0) {
		t.Fatalf("expected outside points rejected")
	}
}
