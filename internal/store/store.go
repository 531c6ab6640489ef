// Package store holds the last-fetched menu catalog and order list for the
// lifetime of the application session. It is an explicitly passed object
// with a narrow read/write contract, not a package global: the two page
// controllers are its only writers, everything else reads.
package store

import "sync"

// Item is a catalog entry as the store needs it: enough to render a list
// row and to resolve an order line's display name.
type Item struct {
	ID              string
	Name            string
	Description     string
	Category        string
	Price           float64
	Ingredients     []string
	IsAvailable     bool
	PreparationTime int
	ImageURL        string
}

// OrderSummary is a cached order row.
type OrderSummary struct {
	ID           string
	OrderNumber  string
	CustomerName string
	TableNumber  int
	TotalAmount  float64
	Status       string
}

// Store caches the last successful fetches. Reads and writes are guarded
// because Bubble Tea commands run on their own goroutines.
type Store struct {
	mu      sync.RWMutex
	catalog []Item
	byID    map[string]int // index into catalog
	orders  []OrderSummary
}

// New creates an empty Store.
func New() *Store {
	return &Store{byID: make(map[string]int)}
}

// SetCatalog replaces the cached catalog wholesale. Fetch responses always
// replace, never merge: the server copy is authoritative.
func (s *Store) SetCatalog(items []Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.catalog = make([]Item, len(items))
	copy(s.catalog, items)

	s.byID = make(map[string]int, len(items))
	for i, item := range s.catalog {
		s.byID[item.ID] = i
	}
}

// Catalog returns a copy of the cached catalog in fetch order.
func (s *Store) Catalog() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Item, len(s.catalog))
	copy(out, s.catalog)
	return out
}

// Item looks up a catalog entry by id.
func (s *Store) Item(id string) (Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[id]
	if !ok {
		return Item{}, false
	}
	return s.catalog[idx], true
}

// ItemName resolves a menu item id to its display name, or "" when the
// id is unknown. Callers own the final fallback wording.
func (s *Store) ItemName(id string) string {
	item, ok := s.Item(id)
	if !ok {
		return ""
	}
	return item.Name
}

// SetOrders replaces the cached order list wholesale.
func (s *Store) SetOrders(orders []OrderSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = make([]OrderSummary, len(orders))
	copy(s.orders, orders)
}

// Orders returns a copy of the cached order list in fetch order.
func (s *Store) Orders() []OrderSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]OrderSummary, len(s.orders))
	copy(out, s.orders)
	return out
}

// CatalogSize returns the number of cached catalog entries.
func (s *Store) CatalogSize() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.catalog)
}
