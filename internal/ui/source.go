package ui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/atomicstack/indexlist/internal/logging"
	"github.com/atomicstack/indexlist/internal/logging/events"
	"github.com/atomicstack/indexlist/internal/source"
	uistate "github.com/atomicstack/indexlist/internal/ui/state"
)

func waitForSourceEvent(w *source.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return sourceDoneMsg{}
		}
		return sourceEventMsg{event: evt}
	}
}

type sourceEventMsg struct {
	event source.Event
}

type sourceDoneMsg struct{}

func (m *Model) handleSourceEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(sourceEventMsg)
	if !ok {
		return nil
	}
	m.applySourceEvent(eventMsg.event)
	if m.watcher != nil {
		return waitForSourceEvent(m.watcher)
	}
	return nil
}

func (m *Model) handleSourceDoneMsg(msg tea.Msg) tea.Cmd {
	m.watcher = nil
	return nil
}

// applySourceEvent swaps in reloaded items. A failed reload keeps the items
// already on screen.
func (m *Model) applySourceEvent(evt source.Event) {
	if evt.Err != nil {
		logging.Error(evt.Err)
		events.Source.Error(evt.Path, evt.Err)
		m.errMsg = evt.Err.Error()
		return
	}
	events.Source.Reload(evt.Path, len(evt.Labels))
	m.list.UpdateItems(uistate.ItemsFromLabels(evt.Labels))
	m.errMsg = ""
	m.filterChanged()
	m.setInfo(fmt.Sprintf("Reloaded %d items", len(evt.Labels)))
}
