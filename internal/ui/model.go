package ui

import (
	"errors"
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/popup-overlay/internal/backend"
	"github.com/atomicstack/popup-overlay/internal/content"
	"github.com/atomicstack/popup-overlay/internal/logging"
	"github.com/atomicstack/popup-overlay/internal/logging/events"
	"github.com/atomicstack/popup-overlay/internal/popup"
	"github.com/atomicstack/popup-overlay/internal/theme"
	"github.com/atomicstack/popup-overlay/internal/ui/command"
)

var styles = theme.Default()

// ErrNoBuilder is returned by NewModel when no Builder is configured.
var ErrNoBuilder = errors.New("ui: no pop-up builder")

// Builder constructs a fresh pop-up whose buttons resolve through resolve.
type Builder func(resolve content.ActionResolver) (*popup.Popup, error)

// Options configures a Model.
type Options struct {
	Build      Builder
	Width      int
	Height     int
	ShowFooter bool
	Watcher    *backend.Watcher
}

// Result describes how the pop-up was dismissed.
type Result struct {
	Closed    bool
	Cancelled bool
}

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model hosting one pop-up at a time.
type Model struct {
	popup   *popup.Popup
	build   Builder
	watcher *backend.Watcher
	bus     *command.Bus
	keys    keyMap

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the initial pop-up and wires the handler registry.
func NewModel(opts Options) (*Model, error) {
	if opts.Build == nil {
		return nil, ErrNoBuilder
	}
	p, err := opts.Build(ResolveAction)
	if err != nil {
		return nil, err
	}
	m := &Model{
		popup:      p,
		build:      opts.Build,
		watcher:    opts.Watcher,
		bus:        command.New(),
		keys:       defaultKeyMap(),
		showFooter: opts.ShowFooter,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m, nil
}

// Popup exposes the pop-up currently on screen.
func (m *Model) Popup() *popup.Popup {
	return m.popup
}

// Result reports how the current pop-up was closed.
func (m *Model) Result() Result {
	closed, cancelled := m.popup.Closed()
	return Result{Closed: closed, Cancelled: cancelled}
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.popup.Init()}
	if m.watcher != nil {
		cmds = append(cmds, waitForContentEvent(m.watcher))
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, m.popup.Update(msg)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(CloseMsg{}):          m.handleCloseMsg,
		reflect.TypeOf(NoticeMsg{}):         m.handleNoticeMsg,
		reflect.TypeOf(contentEventMsg{}):   m.handleContentEventMsg,
		reflect.TypeOf(contentDoneMsg{}):    m.handleContentDoneMsg,
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

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit), key.Matches(keyMsg, m.keys.Cancel):
		return m.close(true)
	case key.Matches(keyMsg, m.keys.Next):
		return m.popup.FocusNext()
	case key.Matches(keyMsg, m.keys.Prev):
		return m.popup.FocusPrev()
	case key.Matches(keyMsg, m.keys.Activate):
		return m.activate()
	}
	return m.popup.Update(keyMsg)
}

func (m *Model) handleCloseMsg(msg tea.Msg) tea.Cmd {
	closeMsg, ok := msg.(CloseMsg)
	if !ok {
		return nil
	}
	return m.close(closeMsg.Cancelled)
}

func (m *Model) handleNoticeMsg(msg tea.Msg) tea.Cmd {
	notice, ok := msg.(NoticeMsg)
	if !ok {
		return nil
	}
	m.setInfo(notice.Text)
	return nil
}

func (m *Model) close(cancelled bool) tea.Cmd {
	m.popup.Close(cancelled)
	if m.watcher != nil {
		m.watcher.Stop()
	}
	return tea.Quit
}

// rebuild swaps in a fresh pop-up. On failure the current one stays.
func (m *Model) rebuild() tea.Cmd {
	p, err := m.build(ResolveAction)
	if err != nil {
		logging.Error(err)
		events.UI.Error(err)
		m.errMsg = err.Error()
		return nil
	}
	m.popup = p
	m.errMsg = ""
	events.UI.Reload(p.ID(), len(p.Diagnostics()))
	m.setInfo("content reloaded")
	return p.Init()
}
