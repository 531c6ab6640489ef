package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tablefork/dishboard/internal/api"
	"github.com/tablefork/dishboard/internal/config"
	"github.com/tablefork/dishboard/internal/debounce"
	"github.com/tablefork/dishboard/internal/logging"
	"github.com/tablefork/dishboard/internal/store"
	"github.com/tablefork/dishboard/internal/tui/keymap"
	"github.com/tablefork/dishboard/internal/tui/menupage"
	"github.com/tablefork/dishboard/internal/tui/msg"
	"github.com/tablefork/dishboard/internal/tui/orderspage"
)

// Tabs
const (
	tabMenu = iota
	tabOrders
	tabCount
)

// Model is the root TUI model. It owns the tab bar and delegates
// everything page-specific to the two sub-models.
type Model struct {
	menu   menupage.Model
	orders orderspage.Model

	keys      *keymap.Keymap
	activeTab int
	showHelp  bool
	quitting  bool

	width  int
	height int
	ready  bool
}

// NewModel wires the two pages over one shared client and store.
func NewModel(client *api.Client, st *store.Store, log *logging.Logger, cfg *config.Config) Model {
	return Model{
		menu:   menupage.New(client, st, log, cfg.TUI.DebounceInterval(), cfg.TUI.PlaceholderImage),
		orders: orderspage.New(client, st, log),
		keys:   keymap.Default(),
	}
}

// Init starts both pages' initial fetches.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.menu.Init(), m.orders.Init())
}

// Update routes messages: page-specific results go to the page that
// issued them, keys go through the global bindings first.
func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {

	case tea.WindowSizeMsg:
		m.width = message.Width
		m.height = message.Height
		m.ready = true
		m.menu.SetSize(message.Width, message.Height)
		m.orders.SetSize(message.Width, message.Height)
		return m, nil

	case tea.KeyMsg:
		return m.onKey(message)

	// Menu page results.
	case msg.MenuFetchedMsg, msg.ItemSavedMsg, msg.ItemDeletedMsg,
		msg.AvailabilityToggledMsg, msg.OrderPlacedMsg, debounce.Msg:
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(message)
		return m, cmd

	// Orders page results.
	case msg.OrdersFetchedMsg, msg.StatusUpdatedMsg, msg.OrderDeletedMsg:
		var cmd tea.Cmd
		m.orders, cmd = m.orders.Update(message)
		return m, cmd
	}

	// Spinner ticks and anything else fan out to both pages.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(message)
	cmds = append(cmds, cmd)
	m.orders, cmd = m.orders.Update(message)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) onKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While a text surface owns input, only ctrl+c stays global.
	if m.pageInputActive() {
		if key.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		return m.routeKey(key)
	}

	if cmd, ok := m.keys.Lookup(keymap.ModeBrowse, key); ok {
		switch cmd {
		case keymap.CmdQuit:
			m.quitting = true
			return m, tea.Quit
		case keymap.CmdNextTab:
			m.activeTab = (m.activeTab + 1) % tabCount
			return m, nil
		case keymap.CmdPrevTab:
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			return m, nil
		case keymap.CmdToggleHelp:
			m.showHelp = !m.showHelp
			return m, nil
		}
	}

	return m.routeKey(key)
}

func (m Model) routeKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.activeTab == tabMenu {
		m.menu, cmd = m.menu.Update(key)
	} else {
		m.orders, cmd = m.orders.Update(key)
	}
	return m, cmd
}

func (m Model) pageInputActive() bool {
	if m.activeTab == tabMenu {
		return m.menu.InputActive()
	}
	return m.orders.InputActive()
}
