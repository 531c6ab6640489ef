// Package orderspage implements the order tracking tab: status
// filtering, lifecycle updates, deletion, and a single expandable
// detail row.
package orderspage

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tablefork/dishboard/internal/api"
	"github.com/tablefork/dishboard/internal/apperr"
	"github.com/tablefork/dishboard/internal/logging"
	"github.com/tablefork/dishboard/internal/store"
	"github.com/tablefork/dishboard/internal/tui/keymap"
	"github.com/tablefork/dishboard/internal/tui/msg"
)

type loadState int

const (
	stateIdle loadState = iota
	stateLoading
	stateReady
)

type uiMode int

const (
	modeBrowse uiMode = iota
	modeConfirmDelete
)

type statusKind int

const (
	statusNone statusKind = iota
	statusInfo
	statusSuccess
	statusError
)

// Model is the orders page sub-model. It reads the shared store to
// resolve line-item names and writes the order list side of it.
type Model struct {
	client *api.Client
	store  *store.Store
	log    *logging.Logger
	keys   *keymap.Keymap

	state loadState
	mode  uiMode

	orders   []api.Order
	cursor   int
	expanded string // order id, empty when nothing is expanded

	statusFilter api.Status
	gen          int

	confirmID string

	status     string
	statusKind statusKind

	spin          spinner.Model
	width, height int
}

// New creates the orders page over the shared store.
func New(client *api.Client, st *store.Store, log *logging.Logger) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		client: client,
		store:  st,
		log:    log.WithPage("orders"),
		keys:   keymap.Default(),
		state:  stateLoading,
		spin:   sp,
	}
}

// Init issues the initial order fetch. It rides on generation zero:
// Init runs on a copy, so it must not mutate the token.
func (m Model) Init() tea.Cmd {
	return tea.Batch(msg.FetchOrders(m.client, api.OrderFilter{Status: m.statusFilter}, m.gen), m.spin.Tick)
}

func (m *Model) fetch() tea.Cmd {
	m.gen++
	m.state = stateLoading
	return tea.Batch(msg.FetchOrders(m.client, api.OrderFilter{Status: m.statusFilter}, m.gen), m.spin.Tick)
}

// Orders exposes the currently displayed list.
func (m Model) Orders() []api.Order { return m.orders }

// SetSize propagates the terminal dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// InputActive reports whether a prompt owns keypresses.
func (m Model) InputActive() bool { return false }

// Update handles messages routed to the orders page.
func (m Model) Update(message tea.Msg) (Model, tea.Cmd) {
	switch message := message.(type) {

	case spinner.TickMsg:
		if m.state != stateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(message)
		return m, cmd

	case msg.OrdersFetchedMsg:
		return m.onOrdersFetched(message)

	case msg.StatusUpdatedMsg:
		if message.Err != nil {
			// No optimistic flip happened, so nothing to undo.
			m.setStatus(apperr.UserMessage(message.Err), statusError)
			return m, nil
		}
		m.setStatus("Order moved to "+string(message.Status), statusSuccess)
		return m, m.fetch()

	case msg.OrderDeletedMsg:
		if message.Err != nil {
			m.setStatus(apperr.UserMessage(message.Err), statusError)
		}
		// The row was already removed locally on confirm.
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeConfirmDelete {
			return m.onConfirmKey(message)
		}
		return m.onBrowseKey(message)
	}

	return m, nil
}

func (m Model) onOrdersFetched(message msg.OrdersFetchedMsg) (Model, tea.Cmd) {
	if message.Gen != m.gen {
		m.log.Debug("dropping superseded fetch response", "got_gen", message.Gen, "want_gen", m.gen)
		return m, nil
	}

	m.state = stateReady
	if message.Err != nil {
		m.log.Error("orders fetch failed", "error", message.Err)
		return m, nil
	}

	m.orders = message.Orders
	if m.cursor >= len(m.orders) {
		m.cursor = max(0, len(m.orders)-1)
	}
	m.store.SetOrders(toStoreOrders(message.Orders))
	return m, nil
}

func (m Model) onBrowseKey(key tea.KeyMsg) (Model, tea.Cmd) {
	cmd, ok := m.keys.Lookup(keymap.ModeBrowse, key)
	if !ok {
		return m, nil
	}

	switch cmd {
	case keymap.CmdCursorDown:
		if m.cursor < len(m.orders)-1 {
			m.cursor++
		}
	case keymap.CmdCursorUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case keymap.CmdSelect:
		return m.toggleExpansion()
	case keymap.CmdCycleStatus:
		m.statusFilter = nextStatusFilter(m.statusFilter)
		return m, m.fetch()
	case keymap.CmdAdvanceStatus:
		if order, ok := m.selected(); ok {
			if next, ok := nextLifecycleStatus(order.Status); ok {
				return m, msg.UpdateStatus(m.client, order.ID, next)
			}
		}
	case keymap.CmdSetStatus:
		if order, ok := m.selected(); ok {
			if status, ok := statusForDigit(key.String()); ok && status != order.Status {
				return m, msg.UpdateStatus(m.client, order.ID, status)
			}
		}
	case keymap.CmdDelete:
		if order, ok := m.selected(); ok {
			m.confirmID = order.ID
			m.mode = modeConfirmDelete
		}
	case keymap.CmdRefresh:
		return m, m.fetch()
	}

	return m, nil
}

func (m Model) onConfirmKey(key tea.KeyMsg) (Model, tea.Cmd) {
	cmd, ok := m.keys.Lookup(keymap.ModeConfirm, key)
	if !ok {
		return m, nil
	}

	switch cmd {
	case keymap.CmdYes:
		id := m.confirmID
		m.confirmID = ""
		m.mode = modeBrowse
		m.removeOrder(id)
		return m, msg.DeleteOrder(m.client, id)
	case keymap.CmdNo:
		m.confirmID = ""
		m.mode = modeBrowse
	}

	return m, nil
}

// toggleExpansion opens the selected order's detail, collapsing any
// other. Re-selecting the open one collapses it.
func (m Model) toggleExpansion() (Model, tea.Cmd) {
	order, ok := m.selected()
	if !ok {
		return m, nil
	}

	if m.expanded == order.ID {
		m.expanded = ""
	} else {
		m.expanded = order.ID
	}
	return m, nil
}

func (m *Model) removeOrder(id string) {
	kept := m.orders[:0]
	for _, order := range m.orders {
		if order.ID != id {
			kept = append(kept, order)
		}
	}
	m.orders = kept
	if m.expanded == id {
		m.expanded = ""
	}
	if m.cursor >= len(m.orders) {
		m.cursor = max(0, len(m.orders)-1)
	}
}

func (m Model) selected() (api.Order, bool) {
	if m.cursor < 0 || m.cursor >= len(m.orders) {
		return api.Order{}, false
	}
	return m.orders[m.cursor], true
}

func (m *Model) setStatus(text string, kind statusKind) {
	m.status = text
	m.statusKind = kind
}

// displayName resolves a line's item name: embedded name first, then
// the shared catalog, then the raw id, then the placeholder.
func (m Model) displayName(line api.OrderLine) string {
	if name := line.MenuItem.Name(); name != "" {
		return name
	}
	if name := m.store.ItemName(line.MenuItem.ID); name != "" {
		return name
	}
	if line.MenuItem.ID != "" {
		return line.MenuItem.ID
	}
	return "Unknown Item"
}

func nextStatusFilter(current api.Status) api.Status {
	statuses := api.Statuses()
	if current == "" {
		return statuses[0]
	}
	for i, s := range statuses {
		if s == current {
			if i == len(statuses)-1 {
				return ""
			}
			return statuses[i+1]
		}
	}
	return ""
}

// nextLifecycleStatus returns the natural forward step. Terminal states
// have none.
func nextLifecycleStatus(current api.Status) (api.Status, bool) {
	switch current {
	case api.StatusPending:
		return api.StatusPreparing, true
	case api.StatusPreparing:
		return api.StatusReady, true
	case api.StatusReady:
		return api.StatusDelivered, true
	default:
		return "", false
	}
}

func statusForDigit(key string) (api.Status, bool) {
	statuses := api.Statuses()
	switch key {
	case "1", "2", "3", "4", "5":
		return statuses[int(key[0]-'1')], true
	}
	return "", false
}

func toStoreOrders(orders []api.Order) []store.OrderSummary {
	out := make([]store.OrderSummary, len(orders))
	for i, order := range orders {
		out[i] = store.OrderSummary{
			ID:           order.ID,
			OrderNumber:  order.OrderNumber,
			CustomerName: order.CustomerName,
			TableNumber:  order.TableNumber,
			TotalAmount:  order.TotalAmount,
			Status:       string(order.Status),
		}
	}
	return out
}
