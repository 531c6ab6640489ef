// Package msg defines the typed messages exchanged between the page
// models and the Bubble Tea runtime, plus the command factories that
// perform network I/O. All HTTP calls happen inside commands on their
// own goroutines; Update never blocks.
package msg

import "github.com/tablefork/dishboard/internal/api"

// MenuFetchedMsg delivers a catalog fetch result. Gen echoes the
// generation token the fetch was issued with so stale responses can be
// discarded.
type MenuFetchedMsg struct {
	Gen   int
	Items []api.MenuItem
	Err   error
}

// ItemSavedMsg delivers the result of a create or update.
type ItemSavedMsg struct {
	Item    *api.MenuItem
	Created bool
	Err     error
}

// ItemDeletedMsg delivers the result of a menu item delete.
type ItemDeletedMsg struct {
	ID  string
	Err error
}

// AvailabilityToggledMsg delivers the result of an availability flip.
type AvailabilityToggledMsg struct {
	ID  string
	Err error
}

// OrderPlacedMsg delivers the result of a quick order.
type OrderPlacedMsg struct {
	Order *api.Order
	Err   error
}

// OrdersFetchedMsg delivers an order list fetch result, tagged with its
// generation token.
type OrdersFetchedMsg struct {
	Gen    int
	Orders []api.Order
	Err    error
}

// StatusUpdatedMsg delivers the result of an order status change.
type StatusUpdatedMsg struct {
	ID     string
	Status api.Status
	Err    error
}

// OrderDeletedMsg delivers the result of an order delete.
type OrderDeletedMsg struct {
	ID  string
	Err error
}
