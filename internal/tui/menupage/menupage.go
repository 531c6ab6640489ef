// Package menupage implements the menu management tab: catalog listing
// with filters and debounced search, the item create/edit form, the
// quick-order modal, and the delete confirmation prompt.
package menupage

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tablefork/dishboard/internal/api"
	"github.com/tablefork/dishboard/internal/apperr"
	"github.com/tablefork/dishboard/internal/debounce"
	"github.com/tablefork/dishboard/internal/logging"
	"github.com/tablefork/dishboard/internal/store"
	"github.com/tablefork/dishboard/internal/tui/keymap"
	"github.com/tablefork/dishboard/internal/tui/msg"
)

// loadState tracks where the page is in its fetch lifecycle.
type loadState int

const (
	stateIdle loadState = iota
	stateLoading
	stateReady
)

// uiMode selects which input surface owns keypresses.
type uiMode int

const (
	modeBrowse uiMode = iota
	modeSearch
	modePrice
	modeForm
	modeQuickOrder
	modeConfirmDelete
)

// statusKind colors the status line.
type statusKind int

const (
	statusNone statusKind = iota
	statusInfo
	statusSuccess
	statusError
)

// Model is the menu page sub-model.
type Model struct {
	client *api.Client
	store  *store.Store
	log    *logging.Logger
	keys   *keymap.Keymap

	state loadState
	mode  uiMode

	items  []api.MenuItem
	cursor int

	// Filter state. Text search is debounced; everything else fetches
	// immediately. gen is bumped on every issued fetch and echoed back
	// in MenuFetchedMsg so superseded responses are dropped.
	search    textinput.Model
	debouncer *debounce.Debouncer
	category  api.Category
	avail     *bool
	price     textinput.Model
	minPrice  *float64
	maxPrice  *float64
	gen       int

	form        form
	quick       quickOrder
	confirmID   string
	placeholder string // shown when an item has no image URL

	status     string
	statusKind statusKind

	spin          spinner.Model
	width, height int
}

// New creates the menu page. The store is shared with the orders page;
// this page is its catalog writer.
func New(client *api.Client, st *store.Store, log *logging.Logger, debounceDelay time.Duration, placeholder string) Model {
	search := textinput.New()
	search.Placeholder = "Search menu..."
	search.CharLimit = 120

	price := textinput.New()
	price.Placeholder = "min-max"
	price.CharLimit = 20

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		client:      client,
		store:       st,
		log:         log.WithPage("menu"),
		keys:        keymap.Default(),
		state:       stateLoading,
		search:      search,
		price:       price,
		debouncer:   debounce.New(debounceDelay),
		form:        newForm(),
		placeholder: placeholder,
		spin:        sp,
	}
}

// Init issues the initial catalog fetch. It rides on generation zero:
// Init runs on a copy, so it must not mutate the token.
func (m Model) Init() tea.Cmd {
	return tea.Batch(msg.FetchMenu(m.client, m.filter(), m.gen), m.spin.Tick)
}

// fetch bumps the generation token and issues a list command for the
// current filter state.
func (m *Model) fetch() tea.Cmd {
	m.gen++
	m.state = stateLoading
	return tea.Batch(msg.FetchMenu(m.client, m.filter(), m.gen), m.spin.Tick)
}

func (m *Model) filter() api.MenuFilter {
	return api.MenuFilter{
		Text:        m.search.Value(),
		Category:    m.category,
		IsAvailable: m.avail,
		MinPrice:    m.minPrice,
		MaxPrice:    m.maxPrice,
	}
}

// Items exposes the currently displayed list.
func (m Model) Items() []api.MenuItem { return m.items }

// SetSize propagates the terminal dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages routed to the menu page.
func (m Model) Update(message tea.Msg) (Model, tea.Cmd) {
	switch message := message.(type) {

	case spinner.TickMsg:
		if m.state != stateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(message)
		return m, cmd

	case debounce.Msg:
		// Only the newest pending trigger fetches; earlier timers in
		// the same burst arrive with a stale tag and are dropped.
		if !m.debouncer.Match(message) {
			return m, nil
		}
		return m, m.fetch()

	case msg.MenuFetchedMsg:
		return m.onMenuFetched(message)

	case msg.ItemSavedMsg:
		return m.onItemSaved(message)

	case msg.ItemDeletedMsg:
		if message.Err != nil {
			m.setStatus(apperr.UserMessage(message.Err), statusError)
		}
		// The row was already removed locally on confirm.
		return m, nil

	case msg.AvailabilityToggledMsg:
		if message.Err != nil {
			// Reconcile with the server instead of rolling back by hand.
			m.log.Warn("availability toggle failed, refetching", "item_id", message.ID, "error", message.Err)
			return m, m.fetch()
		}
		return m, nil

	case msg.OrderPlacedMsg:
		return m.onOrderPlaced(message)

	case tea.KeyMsg:
		return m.onKey(message)
	}

	return m, nil
}

func (m Model) onMenuFetched(message msg.MenuFetchedMsg) (Model, tea.Cmd) {
	if message.Gen != m.gen {
		m.log.Debug("dropping superseded fetch response", "got_gen", message.Gen, "want_gen", m.gen)
		return m, nil
	}

	m.state = stateReady
	if message.Err != nil {
		// Keep the last good list on screen; a read failure is logged,
		// never a blank wipe.
		m.log.Error("menu fetch failed", "error", message.Err)
		return m, nil
	}

	m.items = message.Items
	if m.cursor >= len(m.items) {
		m.cursor = max(0, len(m.items)-1)
	}
	m.store.SetCatalog(toStoreItems(message.Items))
	return m, nil
}

func (m Model) onItemSaved(message msg.ItemSavedMsg) (Model, tea.Cmd) {
	if message.Err != nil {
		// The form stays open and populated so the input is not lost.
		m.setStatus(apperr.UserMessage(message.Err), statusError)
		return m, nil
	}

	if message.Created {
		m.setStatus("Item created", statusSuccess)
	} else {
		m.setStatus("Item updated", statusSuccess)
	}
	m.form.reset()
	m.mode = modeBrowse
	return m, m.fetch()
}

func (m Model) onOrderPlaced(message msg.OrderPlacedMsg) (Model, tea.Cmd) {
	if message.Err != nil {
		// Modal stays open; the operator can retry or back out.
		m.setStatus(apperr.UserMessage(message.Err), statusError)
		return m, nil
	}

	if message.Order != nil && message.Order.OrderNumber != "" {
		m.setStatus("Order "+message.Order.OrderNumber+" placed", statusSuccess)
	} else {
		m.setStatus("Order placed", statusSuccess)
	}
	m.mode = modeBrowse
	return m, nil
}

func (m Model) onKey(key tea.KeyMsg) (Model, tea.Cmd) {
	switch m.mode {
	case modeSearch:
		return m.onSearchKey(key)
	case modePrice:
		return m.onPriceKey(key)
	case modeForm:
		return m.onFormKey(key)
	case modeQuickOrder:
		return m.onQuickOrderKey(key)
	case modeConfirmDelete:
		return m.onConfirmKey(key)
	default:
		return m.onBrowseKey(key)
	}
}

func (m Model) onBrowseKey(key tea.KeyMsg) (Model, tea.Cmd) {
	cmd, ok := m.keys.Lookup(keymap.ModeBrowse, key)
	if !ok {
		return m, nil
	}

	switch cmd {
	case keymap.CmdCursorDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case keymap.CmdCursorUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case keymap.CmdSearch:
		m.mode = modeSearch
		m.search.Focus()
	case keymap.CmdNewItem:
		m.form.reset()
		m.form.focusField(0)
		m.mode = modeForm
	case keymap.CmdEditItem:
		if item, ok := m.selected(); ok {
			m.form.reset()
			m.form.load(item)
			m.form.focusField(0)
			m.mode = modeForm
		}
	case keymap.CmdDelete:
		if item, ok := m.selected(); ok {
			m.confirmID = item.ID
			m.mode = modeConfirmDelete
		}
	case keymap.CmdToggle:
		return m.toggleSelected()
	case keymap.CmdQuickOrder:
		if item, ok := m.selected(); ok {
			if !item.IsAvailable {
				m.setStatus(item.Name+" is unavailable and cannot be ordered", statusInfo)
				return m, nil
			}
			m.quick = newQuickOrder(item)
			m.mode = modeQuickOrder
		}
	case keymap.CmdCycleCat:
		m.category = nextCategory(m.category)
		return m, m.fetch()
	case keymap.CmdCycleAvail:
		m.avail = nextAvailability(m.avail)
		return m, m.fetch()
	case keymap.CmdPriceRange:
		m.mode = modePrice
		m.price.Focus()
	case keymap.CmdRefresh:
		return m, m.fetch()
	}

	return m, nil
}

func (m Model) onSearchKey(key tea.KeyMsg) (Model, tea.Cmd) {
	if cmd, ok := m.keys.Lookup(keymap.ModeText, key); ok {
		switch cmd {
		case keymap.CmdAccept:
			m.mode = modeBrowse
			m.search.Blur()
			// An explicit accept fetches now; invalidate any timer the
			// last keystroke armed so it cannot fetch a second time.
			m.debouncer.Cancel()
			return m, m.fetch()
		case keymap.CmdCancel:
			m.mode = modeBrowse
			m.search.Blur()
			m.debouncer.Cancel()
			if m.search.Value() != "" {
				m.search.SetValue("")
				return m, m.fetch()
			}
			return m, nil
		}
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(key)
	if m.search.Value() != before {
		return m, tea.Batch(cmd, m.debouncer.Trigger())
	}
	return m, cmd
}

func (m Model) onPriceKey(key tea.KeyMsg) (Model, tea.Cmd) {
	if cmd, ok := m.keys.Lookup(keymap.ModeText, key); ok {
		switch cmd {
		case keymap.CmdAccept:
			lo, hi, err := parsePriceRange(m.price.Value())
			if err != nil {
				m.setStatus(err.Error(), statusError)
				return m, nil
			}
			m.mode = modeBrowse
			m.price.Blur()
			m.minPrice, m.maxPrice = lo, hi
			return m, m.fetch()
		case keymap.CmdCancel:
			m.mode = modeBrowse
			m.price.Blur()
			if m.minPrice != nil || m.maxPrice != nil || m.price.Value() != "" {
				m.price.SetValue("")
				m.minPrice, m.maxPrice = nil, nil
				return m, m.fetch()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.price, cmd = m.price.Update(key)
	return m, cmd
}

func (m Model) onFormKey(key tea.KeyMsg) (Model, tea.Cmd) {
	if cmd, ok := m.keys.Lookup(keymap.ModeText, key); ok {
		switch cmd {
		case keymap.CmdAccept:
			payload, err := m.form.payload()
			if err != nil {
				m.setStatus(err.Error(), statusError)
				return m, nil
			}
			return m, msg.SaveItem(m.client, m.form.editingID, payload)
		case keymap.CmdCancel:
			m.form.reset()
			m.mode = modeBrowse
			return m, nil
		case keymap.CmdNext:
			m.form.focusField(m.form.focus + 1)
			return m, nil
		case keymap.CmdPrev:
			m.form.focusField(m.form.focus - 1)
			return m, nil
		}
	}

	// ctrl+t / ctrl+a are form-local chords, not worth a keymap mode.
	switch key.String() {
	case "ctrl+t":
		m.form.cycleCategory()
		return m, nil
	case "ctrl+a":
		m.form.available = !m.form.available
		return m, nil
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(key)
	return m, cmd
}

func (m Model) onQuickOrderKey(key tea.KeyMsg) (Model, tea.Cmd) {
	if cmd, ok := m.keys.Lookup(keymap.ModeText, key); ok {
		switch cmd {
		case keymap.CmdAccept:
			req, err := m.quick.request()
			if err != nil {
				m.setStatus(err.Error(), statusError)
				return m, nil
			}
			return m, msg.PlaceOrder(m.client, req)
		case keymap.CmdCancel:
			m.mode = modeBrowse
			return m, nil
		case keymap.CmdNext:
			m.quick.focusField(m.quick.focus + 1)
			return m, nil
		case keymap.CmdPrev:
			m.quick.focusField(m.quick.focus - 1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.quick.inputs[m.quick.focus], cmd = m.quick.inputs[m.quick.focus].Update(key)
	return m, cmd
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
		// Remove locally right away; the server call's outcome only
		// affects the status line.
		m.removeItem(id)
		return m, msg.DeleteItem(m.client, id)
	case keymap.CmdNo:
		m.confirmID = ""
		m.mode = modeBrowse
	}

	return m, nil
}

// toggleSelected flips availability locally first, then asks the
// server. A failed PATCH triggers a corrective re-fetch.
func (m Model) toggleSelected() (Model, tea.Cmd) {
	item, ok := m.selected()
	if !ok {
		return m, nil
	}

	for i := range m.items {
		if m.items[i].ID == item.ID {
			m.items[i].IsAvailable = !m.items[i].IsAvailable
		}
	}
	return m, msg.ToggleAvailability(m.client, item.ID)
}

func (m *Model) removeItem(id string) {
	kept := m.items[:0]
	for _, item := range m.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	m.items = kept
	if m.cursor >= len(m.items) {
		m.cursor = max(0, len(m.items)-1)
	}
}

func (m Model) selected() (api.MenuItem, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return api.MenuItem{}, false
	}
	return m.items[m.cursor], true
}

func (m *Model) setStatus(text string, kind statusKind) {
	m.status = text
	m.statusKind = kind
}

// InputActive reports whether a text input currently owns keypresses,
// so the root model knows not to treat keys as global shortcuts.
func (m Model) InputActive() bool {
	return m.mode == modeSearch || m.mode == modePrice || m.mode == modeForm || m.mode == modeQuickOrder
}

func nextCategory(current api.Category) api.Category {
	cats := api.Categories()
	if current == "" {
		return cats[0]
	}
	for i, c := range cats {
		if c == current {
			if i == len(cats)-1 {
				return ""
			}
			return cats[i+1]
		}
	}
	return ""
}

// parsePriceRange reads "min-max" with either side optional. A bare
// number is a minimum. Empty input clears both bounds.
func parsePriceRange(raw string) (*float64, *float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil, nil
	}

	lo, hi, _ := strings.Cut(raw, "-")
	var minP, maxP *float64

	if lo = strings.TrimSpace(lo); lo != "" {
		v, err := strconv.ParseFloat(lo, 64)
		if err != nil || v < 0 {
			return nil, nil, apperr.NewValidationError("minPrice", "must be a number >= 0")
		}
		minP = &v
	}
	if hi = strings.TrimSpace(hi); hi != "" {
		v, err := strconv.ParseFloat(hi, 64)
		if err != nil || v < 0 {
			return nil, nil, apperr.NewValidationError("maxPrice", "must be a number >= 0")
		}
		maxP = &v
	}
	if minP != nil && maxP != nil && *minP > *maxP {
		return nil, nil, apperr.NewValidationError("maxPrice", "must not be below minPrice")
	}
	return minP, maxP, nil
}

// nextAvailability cycles all -> available -> unavailable -> all.
func nextAvailability(current *bool) *bool {
	switch {
	case current == nil:
		v := true
		return &v
	case *current:
		v := false
		return &v
	default:
		return nil
	}
}

func toStoreItems(items []api.MenuItem) []store.Item {
	out := make([]store.Item, len(items))
	for i, item := range items {
		out[i] = store.Item{
			ID:              item.ID,
			Name:            item.Name,
			Description:     item.Description,
			Category:        string(item.Category),
			Price:           item.Price,
			Ingredients:     item.Ingredients,
			IsAvailable:     item.IsAvailable,
			PreparationTime: item.PreparationTime,
			ImageURL:        item.ImageURL,
		}
	}
	return out
}
