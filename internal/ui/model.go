package ui

import (
	"reflect"
	"time"

	"charm.land/bubbles/v2/cursor"
	tea "charm.land/bubbletea/v2"

	"github.com/atomicstack/indexlist/internal/logging"
	"github.com/atomicstack/indexlist/internal/logging/events"
	"github.com/atomicstack/indexlist/internal/overlay"
	"github.com/atomicstack/indexlist/internal/section"
	"github.com/atomicstack/indexlist/internal/source"
	"github.com/atomicstack/indexlist/internal/theme"
	uistate "github.com/atomicstack/indexlist/internal/ui/state"
)

type list = uistate.List

// listTop is the screen row of the first list row; the header sits above it.
const listTop = 1

// wheelStep is how many rows an unclaimed wheel event moves the cursor.
const wheelStep = 3

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Title      string
	Labels     []string
	Alphabet   string
	KeepEmpty  bool
	Width      int
	Height     int
	ShowFooter bool
	IndexBar   overlay.Options
	Watcher    *source.Watcher
}

// Model implements the Bubble Tea model for the indexed list.
type Model struct {
	list      *list
	index     *section.Index
	alphabet  string
	keepEmpty bool
	bar       *overlay.Controller
	keys      keyMap

	errMsg     string
	indexErr   string
	infoMsg    string
	infoExpire time.Time

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	areaWidth   int
	areaHeight  int
	showFooter  bool

	watcher      *source.Watcher
	filterCursor cursor.Model

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the list, its section index and the index bar controller.
func NewModel(opts Options) *Model {
	alphabet := opts.Alphabet
	if alphabet == "" {
		alphabet = section.DefaultAlphabet
	}
	m := &Model{
		list:       uistate.NewList(opts.Title, uistate.ItemsFromLabels(opts.Labels)),
		alphabet:   alphabet,
		keepEmpty:  opts.KeepEmpty,
		keys:       defaultKeyMap(),
		showFooter: opts.ShowFooter,
		watcher:    opts.Watcher,
		areaWidth:  -1,
		areaHeight: -1,
	}
	m.bar = overlay.New(m, opts.IndexBar)
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = *styles.Cursor
	}
	if styles.Filter != nil {
		c.TextStyle = *styles.Filter
	}
	c.SetChar(" ")
	c.SetMode(cursor.CursorStatic)
	c.Focus()
	m.filterCursor = c
	m.rebuildIndex()
	m.syncLayout()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return waitForSourceEvent(m.watcher)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

// ScrollToPosition moves the list so position is the top visible row. The
// index bar calls it while the user drags along the bar.
func (m *Model) ScrollToPosition(position int) {
	if m.list.ScrollToPosition(position, m.maxVisibleItems()) {
		events.UI.Scroll(position)
	}
}

// IndexBar exposes the index bar controller.
func (m *Model) IndexBar() *overlay.Controller {
	return m.bar
}

// List exposes the list state.
func (m *Model) List() *uistate.List {
	return m.list
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyPressMsg{}):     m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):   m.handleWindowSizeMsg,
		reflect.TypeOf(tea.MouseClickMsg{}):   m.handleMouseMsg,
		reflect.TypeOf(tea.MouseMotionMsg{}):  m.handleMouseMsg,
		reflect.TypeOf(tea.MouseReleaseMsg{}): m.handleMouseMsg,
		reflect.TypeOf(tea.MouseWheelMsg{}):   m.handleMouseMsg,
		reflect.TypeOf(overlay.HideMsg{}):     m.handleHideMsg,
		reflect.TypeOf(sourceEventMsg{}):      m.handleSourceEventMsg,
		reflect.TypeOf(sourceDoneMsg{}):       m.handleSourceDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	m.syncLayout()
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleHideMsg(msg tea.Msg) tea.Cmd {
	return m.bar.Update(msg)
}

// rebuildIndex derives a section index from the visible items and hands it to
// the index bar. Labels that break section order detach the bar.
func (m *Model) rebuildIndex() {
	idx, err := section.Build(uistate.Labels(m.list.Items), m.alphabet, section.Options{KeepEmpty: m.keepEmpty})
	if err != nil {
		logging.Error(err)
		m.index = nil
		m.indexErr = err.Error()
		m.errMsg = m.indexErr
		m.bar.SetAdapter(nil)
		return
	}
	if m.indexErr != "" && m.errMsg == m.indexErr {
		m.errMsg = ""
	}
	m.indexErr = ""
	m.index = idx
	m.bar.SetAdapter(idx)
}

// syncLayout keeps the index bar sized to the list area and the cursor inside
// the viewport.
func (m *Model) syncLayout() {
	height := m.maxVisibleItems()
	if height < 0 {
		height = 0
	}
	if m.width != m.areaWidth || height != m.areaHeight {
		m.areaWidth, m.areaHeight = m.width, height
		m.bar.SetSize(m.width, height)
	}
	m.syncViewport()
}

func (m *Model) currentSection() (string, bool) {
	if m.index == nil || len(m.list.Items) == 0 {
		return "", false
	}
	sections := m.index.Sections()
	s := m.index.SectionForPosition(m.list.ViewportOffset)
	if s < 0 || s >= len(sections) {
		return "", false
	}
	return sections[s], true
}
