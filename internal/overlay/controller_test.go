package overlay

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/atomicstack/indexlist/internal/section"
)

type recordingList struct {
	scrolls []int
}

func (l *recordingList) ScrollToPosition(position int) {
	l.scrolls = append(l.scrolls, position)
}

func alphabetLabels() []string {
	labels := []string{"42nd Street"}
	for r := 'A'; r <= 'Z'; r++ {
		labels = append(labels, string(r)+"-one", string(r)+"-two")
	}
	return labels
}

func newIndex(t *testing.T, labels []string) *section.Index {
	t.Helper()
	idx, err := section.Build(labels, section.DefaultAlphabet, section.Options{KeepEmpty: true})
	if err != nil {
		t.Fatalf("build index: %v", err)
	}
	return idx
}

// newTestController returns a controller over a 40x29 list area with a
// one-column bar and no margin, so bar rows line up with the 27 sections.
func newTestController(t *testing.T) (*Controller, *recordingList) {
	t.Helper()
	list := &recordingList{}
	opts := DefaultOptions()
	opts.BarWidth = 1
	opts.BarMargin = 0
	opts.AutoHide = 10 * time.Millisecond
	c := New(list, opts)
	c.SetAdapter(newIndex(t, alphabetLabels()))
	c.SetSize(40, 27)
	return c, list
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMotionMsg{X: x, Y: y, Button: tea.MouseLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseReleaseMsg{X: x, Y: y, Button: tea.MouseLeft}
}

func wheel(y int) tea.MouseMsg {
	return tea.MouseWheelMsg{X: 5, Y: y, Button: tea.MouseWheelDown}
}

func TestPressInsideBarClaimsAndScrolls(t *testing.T) {
	c, list := newTestController(t)
	claimed, _ := c.HandleMouse(press(39, 2))
	if !claimed {
		t.Fatalf("expected press on bar to be claimed")
	}
	if c.State() != Dragging {
		t.Fatalf("expected Dragging, got %s", c.State())
	}
	if len(list.scrolls) != 1 || list.scrolls[0] != 3 {
		t.Fatalf("expected scroll to position 3 (section B), got %v", list.scrolls)
	}
	if c.Highlighted() != 2 {
		t.Fatalf("expected highlighted section 2, got %d", c.Highlighted())
	}

	claimed, _ = c.HandleMouse(motion(10, 2))
	if !claimed {
		t.Fatalf("expected motion during drag to be claimed even off the bar")
	}
	if len(list.scrolls) != 1 {
		t.Fatalf("same section must not rescroll, got %v", list.scrolls)
	}

	c.HandleMouse(motion(39, 26))
	if got := list.scrolls[len(list.scrolls)-1]; got != 51 {
		t.Fatalf("expected scroll to Z at 51, got %d", got)
	}

	claimed, cmd := c.HandleMouse(release(39, 26))
	if !claimed {
		t.Fatalf("expected release to be claimed")
	}
	if cmd == nil {
		t.Fatalf("expected auto-hide task after release")
	}
	if c.State() != Visible {
		t.Fatalf("expected Visible after release, got %s", c.State())
	}
	if c.Highlighted() != -1 {
		t.Fatalf("expected highlight cleared after release")
	}
}

func TestPressOutsideBarIsForwarded(t *testing.T) {
	c, list := newTestController(t)
	claimed, _ := c.HandleMouse(press(10, 5))
	if claimed {
		t.Fatalf("press on list rows must be forwarded")
	}
	if c.State() != Hidden {
		t.Fatalf("expected Hidden, got %s", c.State())
	}
	if claimed, _ := c.HandleMouse(motion(39, 5)); claimed {
		t.Fatalf("motion without a claimed press must be forwarded")
	}
	if len(list.scrolls) != 0 {
		t.Fatalf("expected no scrolls, got %v", list.scrolls)
	}
}

func TestMotionOutsideBarExtentIssuesNoScroll(t *testing.T) {
	c, list := newTestController(t)
	c.HandleMouse(press(39, 0))
	before := len(list.scrolls)
	c.HandleMouse(motion(39, 40))
	c.HandleMouse(motion(39, -3))
	if len(list.scrolls) != before {
		t.Fatalf("expected no scrolls outside bar extent, got %v", list.scrolls[before:])
	}
}

func TestDisabledControllerNeverClaims(t *testing.T) {
	c, _ := newTestController(t)
	c.SetEnabled(false)
	if claimed, _ := c.HandleMouse(press(39, 3)); claimed {
		t.Fatalf("disabled controller must not claim")
	}
	if cmd := c.Show(); cmd != nil || c.State() != Hidden {
		t.Fatalf("Show must be a no-op while disabled")
	}
}

func TestDisableMidDragDropsToHidden(t *testing.T) {
	c, list := newTestController(t)
	c.HandleMouse(press(39, 1))
	if c.State() != Dragging {
		t.Fatalf("expected Dragging, got %s", c.State())
	}
	c.SetEnabled(false)
	if c.State() != Hidden {
		t.Fatalf("expected Hidden after disable, got %s", c.State())
	}
	before := len(list.scrolls)
	for y := 2; y < 10; y++ {
		if claimed, _ := c.HandleMouse(motion(39, y)); claimed {
			t.Fatalf("motion after disable must not be claimed")
		}
	}
	if len(list.scrolls) != before {
		t.Fatalf("expected no further scrolls, got %v", list.scrolls[before:])
	}
}

func TestFlingRevealsThenAutoHides(t *testing.T) {
	c, _ := newTestController(t)
	var cmd tea.Cmd
	for i := 0; i < DefaultFlingBurst+1; i++ {
		claimed, next := c.HandleMouse(wheel(4))
		if claimed {
			t.Fatalf("wheel events belong to the list")
		}
		if next != nil {
			cmd = next
		}
	}
	if c.State() != Visible {
		t.Fatalf("expected fling to reveal the bar, got %s", c.State())
	}
	if cmd == nil {
		t.Fatalf("expected auto-hide task")
	}
	c.Update(cmd())
	if c.State() != Hidden {
		t.Fatalf("expected Hidden after auto-hide delay, got %s", c.State())
	}
}

func TestFlingIgnoredWhenDisabled(t *testing.T) {
	c, _ := newTestController(t)
	c.SetEnabled(false)
	for i := 0; i < DefaultFlingBurst*2; i++ {
		c.HandleMouse(wheel(4))
	}
	if c.State() != Hidden {
		t.Fatalf("expected Hidden, got %s", c.State())
	}
}

func TestHideFromAnyState(t *testing.T) {
	c, _ := newTestController(t)
	c.Hide()
	if c.State() != Hidden {
		t.Fatalf("expected Hidden")
	}
	c.Show()
	c.Hide()
	if c.State() != Hidden {
		t.Fatalf("expected Hidden after show/hide")
	}
	c.HandleMouse(press(39, 4))
	c.Hide()
	if c.State() != Hidden {
		t.Fatalf("expected Hidden after hide during drag")
	}
	if claimed, _ := c.HandleMouse(motion(39, 6)); claimed {
		t.Fatalf("hide must release the gesture")
	}
}

func TestStaleHideAfterReshowIsIgnored(t *testing.T) {
	c, _ := newTestController(t)
	first := c.Show()
	second := c.Show()
	c.Update(first())
	if c.State() != Visible {
		t.Fatalf("superseded task must not hide, got %s", c.State())
	}
	c.Update(second())
	if c.State() != Hidden {
		t.Fatalf("expected Hidden, got %s", c.State())
	}
}

type plainAdapter struct{}

func TestMissingAdapterIsInert(t *testing.T) {
	list := &recordingList{}
	c := New(list, DefaultOptions())
	c.SetSize(40, 27)
	c.SetAdapter(plainAdapter{})
	if c.Attached() {
		t.Fatalf("adapter without index capability must not attach")
	}
	if claimed, _ := c.HandleMouse(press(38, 5)); claimed {
		t.Fatalf("expected no claim without an index")
	}
	c.Show()
	if got := c.Render("row"); got != "row" {
		t.Fatalf("expected render no-op without an index, got %q", got)
	}
	if len(list.scrolls) != 0 {
		t.Fatalf("expected no scrolls")
	}
}

func TestAdapterReplacedUsesNewIndex(t *testing.T) {
	c, list := newTestController(t)
	// New adapter: only three sections with distinct first positions.
	idx, err := section.Build([]string{"Apple", "Banana", "Cherry", "Citrus"}, "ABC", section.Options{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	c.SetAdapter(idx)
	if got := len(c.Sections()); got != 3 {
		t.Fatalf("expected 3 sections, got %d", got)
	}
	c.HandleMouse(press(39, 26))
	if got := list.scrolls[len(list.scrolls)-1]; got != 2 {
		t.Fatalf("expected scroll from new index to 2, got %d", got)
	}
}

func TestAdapterReplacedMidDragRemaps(t *testing.T) {
	c, list := newTestController(t)
	c.HandleMouse(press(39, 26))
	idx, err := section.Build([]string{"Apple", "Banana"}, "AB", section.Options{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	c.SetAdapter(idx)
	if c.State() != Dragging {
		t.Fatalf("expected drag to survive adapter swap, got %s", c.State())
	}
	if got := list.scrolls[len(list.scrolls)-1]; got != 1 {
		t.Fatalf("expected remap against new index to 1, got %d", got)
	}

	c.SetAdapter(nil)
	if c.State() != Hidden {
		t.Fatalf("expected Hidden once the index goes away, got %s", c.State())
	}
}

func TestSettersRecomputeGeometry(t *testing.T) {
	c, _ := newTestController(t)
	c.SetBarWidth(4)
	c.SetBarMargin(2)
	if c.BarWidth() != 4 || c.BarMargin() != 2 {
		t.Fatalf("unexpected bar config %d/%d", c.BarWidth(), c.BarMargin())
	}
	want := Rect{X: 34, Y: 2, Width: 4, Height: 23}
	if got := c.Geometry().Bar; got != want {
		t.Fatalf("bar = %+v, want %+v", got, want)
	}
	c.SetBarWidth(0)
	c.SetBarMargin(-3)
	if c.BarWidth() != 1 || c.BarMargin() != 0 {
		t.Fatalf("expected clamped config, got %d/%d", c.BarWidth(), c.BarMargin())
	}
	c.SetTextColor("1")
	c.SetBackgroundColor("2")
	c.SetSelectedTextColor("3")
	if got := c.Colors(); got != (Colors{Text: "1", Background: "2", SelectedText: "3"}) {
		t.Fatalf("unexpected colors %+v", got)
	}
}

func TestShortBarReachesEveryDrawnLabel(t *testing.T) {
	c, list := newTestController(t)
	c.SetSize(80, 22)
	c.Show()
	g := c.Geometry()
	if g.Bar.Height != 22 || g.Sections <= g.Bar.Height {
		t.Fatalf("expected more sections than rows, got %+v", g)
	}

	c.HandleMouse(press(79, g.Bar.Y+g.Bar.Height-1))
	last := len(c.Sections()) - 1
	if c.Highlighted() != last {
		t.Fatalf("last row highlighted %d, want %d", c.Highlighted(), last)
	}
	if got := list.scrolls[len(list.scrolls)-1]; got != 51 {
		t.Fatalf("expected scroll to Z at 51, got %d", got)
	}
	c.HandleMouse(release(79, g.Bar.Y+g.Bar.Height-1))

	drawn := rowSections(g)
	for row := 0; row < g.Bar.Height; row++ {
		c.HandleMouse(press(79, g.Bar.Y+row))
		if c.Highlighted() != drawn[row] {
			t.Fatalf("row %d highlighted %d, drawn label is section %d", row, c.Highlighted(), drawn[row])
		}
		c.HandleMouse(release(79, g.Bar.Y+row))
	}
	if drawn[0] != 0 || drawn[len(drawn)-1] != last {
		t.Fatalf("expected first and last sections at the bar ends, got %v", drawn)
	}
}
