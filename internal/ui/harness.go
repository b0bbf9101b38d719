package ui

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// DefaultCommandTimeout bounds how long the harness waits on a single
// command. Commands that take longer, such as cursor blink ticks, are dropped.
const DefaultCommandTimeout = 100 * time.Millisecond

// Harness drives the UI model programmatically for integration tests.
type Harness struct {
	model   *Model
	timeout time.Duration
	quit    bool
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model, timeout: DefaultCommandTimeout}
}

// SetCommandTimeout changes how long each command may run before the harness
// gives up on it.
func (h *Harness) SetCommandTimeout(d time.Duration) {
	h.timeout = d
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.processCmd(cmd)
}

// processCmd runs commands breadth first, expanding batches and feeding each
// resulting message back into the model.
func (h *Harness) processCmd(cmd tea.Cmd) {
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		msg, ok := h.run(next)
		if !ok || msg == nil {
			continue
		}
		switch msg := msg.(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
			continue
		case tea.QuitMsg:
			h.quit = true
			continue
		}
		mdl, follow := h.model.Update(msg)
		if updated, ok := mdl.(*Model); ok {
			h.model = updated
		}
		queue = append(queue, follow)
	}
}

func (h *Harness) run(cmd tea.Cmd) (tea.Msg, bool) {
	if h.timeout <= 0 {
		return cmd(), true
	}
	done := make(chan tea.Msg, 1)
	go func() {
		done <- cmd()
	}()
	timer := time.NewTimer(h.timeout)
	defer timer.Stop()
	select {
	case msg := <-done:
		return msg, true
	case <-timer.C:
		return nil, false
	}
}

// Quit reports whether a command asked the program to exit.
func (h *Harness) Quit() bool {
	return h.quit
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.render()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
