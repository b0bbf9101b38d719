// Package overlay implements the index bar drawn over a sectioned list: it
// maps presses and drags on the bar to sections, scrolls the host list, and
// manages the bar's transient visibility.
//
// The host list forwards every mouse event to Controller.HandleMouse before
// acting on it, calls Controller.Render after drawing its own rows, and
// routes HideMsg values back through Controller.Update. All calls happen on
// the Bubble Tea update loop, so the controller holds no locks.
package overlay

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/atomicstack/indexlist/internal/logging/events"
	"github.com/atomicstack/indexlist/internal/section"
)

const (
	DefaultBarWidth  = 3
	DefaultBarMargin = 1
)

// List is the scroll capability the controller needs from its host.
type List interface {
	ScrollToPosition(position int)
}

// Colors holds the bar palette as terminal colour specs: ANSI indexes such as
// "33" or hex values such as "#ff8800".
type Colors struct {
	Text         string
	Background   string
	SelectedText string
}

// DefaultColors is the palette used when none is configured.
func DefaultColors() Colors {
	return Colors{Text: "250", Background: "236", SelectedText: "33"}
}

// Options configures a Controller.
type Options struct {
	Enabled    bool
	BarWidth   int
	BarMargin  int
	Colors     Colors
	AutoHide   time.Duration
	FlingRate  float64
	FlingBurst int
	Clock      func() time.Time
}

// DefaultOptions returns an enabled controller configuration.
func DefaultOptions() Options {
	return Options{
		Enabled:    true,
		BarWidth:   DefaultBarWidth,
		BarMargin:  DefaultBarMargin,
		Colors:     DefaultColors(),
		AutoHide:   DefaultAutoHide,
		FlingRate:  DefaultFlingRate,
		FlingBurst: DefaultFlingBurst,
	}
}

type touchState struct {
	y int
}

// Controller owns the index bar's geometry, visibility, and drag state.
type Controller struct {
	list     List
	indexer  section.Indexer
	sections []string

	enabled   bool
	barWidth  int
	barMargin int
	colors    Colors

	width    int
	height   int
	geometry Geometry

	vis   *Visibility
	fling *FlingDetector

	claimed     bool
	touch       *touchState
	highlighted int
}

// New creates a controller bound to list. The list is not owned.
func New(list List, opts Options) *Controller {
	if opts.BarWidth <= 0 {
		opts.BarWidth = DefaultBarWidth
	}
	if opts.BarMargin < 0 {
		opts.BarMargin = 0
	}
	defaults := DefaultColors()
	if opts.Colors.Text == "" {
		opts.Colors.Text = defaults.Text
	}
	if opts.Colors.Background == "" {
		opts.Colors.Background = defaults.Background
	}
	if opts.Colors.SelectedText == "" {
		opts.Colors.SelectedText = defaults.SelectedText
	}
	return &Controller{
		list:        list,
		enabled:     opts.Enabled,
		barWidth:    opts.BarWidth,
		barMargin:   opts.BarMargin,
		colors:      opts.Colors,
		vis:         NewVisibility(opts.AutoHide, opts.Clock),
		fling:       NewFlingDetector(opts.FlingRate, opts.FlingBurst, opts.Clock),
		highlighted: -1,
	}
}

// SetAdapter re-derives the section index from the list's adapter. Adapters
// that do not implement section.Indexer leave the controller detached, which
// turns touch handling and drawing into no-ops.
func (c *Controller) SetAdapter(adapter any) {
	indexer, ok := adapter.(section.Indexer)
	if !ok || indexer == nil {
		c.indexer = nil
		c.sections = nil
	} else {
		c.indexer = indexer
		c.sections = indexer.Sections()
	}
	c.recompute()
	events.Index.Adapter(len(c.sections), c.indexer != nil)
	if c.claimed {
		if c.indexer == nil || len(c.sections) == 0 {
			c.release()
			c.vis.Hide()
			events.Index.Hide(events.HideAdapter)
			return
		}
		c.highlighted = -1
		c.dragTo(c.touch.y)
	}
}

// Attached reports whether a section index is available.
func (c *Controller) Attached() bool {
	return c.indexer != nil
}

// Sections returns the labels of the attached index.
func (c *Controller) Sections() []string {
	return c.sections
}

// SetEnabled toggles fast-scroll. Disabling drops the bar to Hidden at once
// and discards any drag in progress.
func (c *Controller) SetEnabled(enabled bool) {
	if c.enabled == enabled {
		return
	}
	c.enabled = enabled
	events.Index.Enabled(enabled)
	if !enabled {
		c.release()
		c.vis.Hide()
		events.Index.Hide(events.HideDisable)
	}
}

// Enabled reports whether fast-scroll is on.
func (c *Controller) Enabled() bool {
	return c.enabled
}

// SetBarWidth sets the bar width in cells.
func (c *Controller) SetBarWidth(width int) {
	if width < 1 {
		width = 1
	}
	c.barWidth = width
	c.recompute()
}

// BarWidth returns the bar width in cells.
func (c *Controller) BarWidth() int {
	return c.barWidth
}

// SetBarMargin sets the inset around the bar in cells.
func (c *Controller) SetBarMargin(margin int) {
	if margin < 0 {
		margin = 0
	}
	c.barMargin = margin
	c.recompute()
}

// BarMargin returns the inset around the bar in cells.
func (c *Controller) BarMargin() int {
	return c.barMargin
}

// SetTextColor sets the colour of unselected section labels.
func (c *Controller) SetTextColor(color string) {
	c.colors.Text = color
}

// SetBackgroundColor sets the colour of the bar rows.
func (c *Controller) SetBackgroundColor(color string) {
	c.colors.Background = color
}

// SetSelectedTextColor sets the colour of the label under an active drag.
func (c *Controller) SetSelectedTextColor(color string) {
	c.colors.SelectedText = color
}

// Colors returns the current palette.
func (c *Controller) Colors() Colors {
	return c.colors
}

// SetSize records the list area size and recomputes the geometry.
func (c *Controller) SetSize(width, height int) {
	if width == c.width && height == c.height {
		return
	}
	c.width = width
	c.height = height
	c.recompute()
	events.Index.Resize(width, height, len(c.sections))
}

// Geometry returns the current bar placement.
func (c *Controller) Geometry() Geometry {
	return c.geometry
}

// State returns the visibility state.
func (c *Controller) State() State {
	return c.vis.State()
}

// Highlighted returns the section under the drag, or -1.
func (c *Controller) Highlighted() int {
	return c.highlighted
}

// Show reveals the bar and (re)starts the auto-hide task. It does nothing
// while fast-scroll is disabled.
func (c *Controller) Show() tea.Cmd {
	if !c.enabled {
		return nil
	}
	cmd := c.vis.Show()
	if cmd != nil {
		events.Index.Show("explicit")
	}
	return cmd
}

// Hide drops the bar to Hidden from any state.
func (c *Controller) Hide() {
	c.release()
	c.vis.Hide()
	events.Index.Hide(events.HideExplicit)
}

// Update applies controller messages. Other messages are ignored.
func (c *Controller) Update(msg tea.Msg) tea.Cmd {
	if hide, ok := msg.(HideMsg); ok {
		if c.vis.HandleHide(hide) {
			events.Index.Hide(events.HideTimeout)
		}
	}
	return nil
}

// HandleMouse arbitrates one mouse event. It reports true when the event
// belongs to the bar and must not reach the list.
func (c *Controller) HandleMouse(msg tea.MouseMsg) (bool, tea.Cmd) {
	mouse := msg.Mouse()
	if c.claimed {
		switch msg.(type) {
		case tea.MouseReleaseMsg:
			return true, c.endDrag()
		case tea.MouseMotionMsg:
			c.dragTo(mouse.Y)
		case tea.MouseClickMsg:
			if mouse.Button == tea.MouseLeft {
				c.dragTo(mouse.Y)
			}
		}
		return true, nil
	}
	switch msg.(type) {
	case tea.MouseClickMsg:
		if mouse.Button != tea.MouseLeft || !c.canClaim(mouse.X, mouse.Y) {
			return false, nil
		}
		c.claimed = true
		c.touch = &touchState{y: mouse.Y}
		c.highlighted = -1
		c.vis.BeginDrag()
		events.Index.DragStart(mouse.X, mouse.Y)
		c.dragTo(mouse.Y)
		return true, nil
	case tea.MouseWheelMsg:
		if c.enabled && c.fling.Observe() {
			events.Index.Fling(wheelName(mouse.Button))
			return false, c.vis.Show()
		}
	}
	return false, nil
}

func wheelName(button tea.MouseButton) string {
	switch button {
	case tea.MouseWheelUp:
		return "up"
	case tea.MouseWheelDown:
		return "down"
	case tea.MouseWheelLeft:
		return "left"
	case tea.MouseWheelRight:
		return "right"
	}
	return "wheel"
}

func (c *Controller) canClaim(x, y int) bool {
	if !c.enabled || c.indexer == nil || len(c.sections) == 0 {
		return false
	}
	if c.geometry.Degenerate() {
		return false
	}
	return c.geometry.Bar.Contains(x, y)
}

func (c *Controller) dragTo(y int) {
	if c.touch == nil || c.indexer == nil {
		return
	}
	c.touch.y = y
	section, ok := MapY(y, c.geometry)
	if !ok || section == c.highlighted {
		return
	}
	c.highlighted = section
	position := c.indexer.PositionForSection(section)
	events.Index.Jump(section, c.sectionLabel(section), position)
	if c.list != nil {
		c.list.ScrollToPosition(position)
	}
}

func (c *Controller) endDrag() tea.Cmd {
	events.Index.DragEnd(c.highlighted)
	c.release()
	return c.vis.EndDrag()
}

func (c *Controller) release() {
	c.claimed = false
	c.touch = nil
	c.highlighted = -1
}

func (c *Controller) recompute() {
	c.geometry = Recompute(c.width, c.height, c.barWidth, c.barMargin, len(c.sections))
}

func (c *Controller) sectionLabel(section int) string {
	if section < 0 || section >= len(c.sections) {
		return ""
	}
	return c.sections[section]
}
