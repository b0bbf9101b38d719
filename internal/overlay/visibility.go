package overlay

import (
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
)

// State is the index bar's visibility.
type State int

const (
	Hidden State = iota
	Visible
	Dragging
)

func (s State) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Visible:
		return "visible"
	case Dragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// DefaultAutoHide is how long the bar stays up after the last interaction.
const DefaultAutoHide = 2 * time.Second

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// HideMsg is delivered when an auto-hide task fires.
type HideMsg struct {
	id  int
	gen uint64
}

// Visibility owns the show/auto-hide lifecycle. A pending hide task is
// identified by its generation; moving to any state other than Visible bumps
// the generation so the task lands as a stale no-op.
type Visibility struct {
	id       int
	state    State
	delay    time.Duration
	gen      uint64
	deadline time.Time
	now      func() time.Time
}

// NewVisibility returns a Hidden state machine with the given auto-hide delay.
func NewVisibility(delay time.Duration, now func() time.Time) *Visibility {
	if delay <= 0 {
		delay = DefaultAutoHide
	}
	if now == nil {
		now = time.Now
	}
	return &Visibility{id: nextID(), delay: delay, now: now}
}

// State returns the current state.
func (v *Visibility) State() State {
	return v.state
}

// Delay returns the auto-hide delay.
func (v *Visibility) Delay() time.Duration {
	return v.delay
}

// Deadline returns when the pending hide task fires, or the zero time.
func (v *Visibility) Deadline() time.Time {
	return v.deadline
}

// Show moves Hidden or Visible to Visible and restarts the hide task. It is a
// no-op while dragging.
func (v *Visibility) Show() tea.Cmd {
	if v.state == Dragging {
		return nil
	}
	v.state = Visible
	return v.schedule()
}

// Hide drops to Hidden from any state and cancels the pending task.
func (v *Visibility) Hide() {
	v.state = Hidden
	v.cancel()
}

// BeginDrag enters Dragging and cancels the pending task.
func (v *Visibility) BeginDrag() {
	v.state = Dragging
	v.cancel()
}

// EndDrag returns to Visible with a fresh hide task.
func (v *Visibility) EndDrag() tea.Cmd {
	if v.state != Dragging {
		return nil
	}
	v.state = Visible
	return v.schedule()
}

// HandleHide applies a fired hide task. It reports whether the state changed.
func (v *Visibility) HandleHide(msg HideMsg) bool {
	if msg.id != v.id || msg.gen != v.gen || v.state != Visible {
		return false
	}
	v.state = Hidden
	v.deadline = time.Time{}
	return true
}

func (v *Visibility) schedule() tea.Cmd {
	v.gen++
	id, gen := v.id, v.gen
	v.deadline = v.now().Add(v.delay)
	return tea.Tick(v.delay, func(time.Time) tea.Msg {
		return HideMsg{id: id, gen: gen}
	})
}

func (v *Visibility) cancel() {
	v.gen++
	v.deadline = time.Time{}
}
