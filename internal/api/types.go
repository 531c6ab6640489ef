// Package api implements the client for the remote restaurant API.
// It is pure request formatting and response decoding: all business
// authority (persistence, validation, identifier assignment, pricing)
// belongs to the server. Response-shape tolerance is resolved here, once,
// so downstream code never re-checks wire shapes.
package api

import (
	"encoding/json"
	"fmt"
)

// Category classifies a menu item. The set is fixed by the server.
type Category string

const (
	CategoryAppetizer  Category = "Appetizer"
	CategoryMainCourse Category = "Main Course"
	CategoryDessert    Category = "Dessert"
	CategoryBeverage   Category = "Beverage"
)

// Categories returns the fixed category set in display order.
func Categories() []Category {
	return []Category{CategoryAppetizer, CategoryMainCourse, CategoryDessert, CategoryBeverage}
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Status is an order's lifecycle state. The client never blocks a
// transition; the server decides which transitions are legal.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusPreparing Status = "Preparing"
	StatusReady     Status = "Ready"
	StatusDelivered Status = "Delivered"
	StatusCancelled Status = "Cancelled"
)

// Statuses returns the order lifecycle states in display order.
func Statuses() []Status {
	return []Status{StatusPending, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled}
}

// Valid reports whether s is one of the known lifecycle states.
func (s Status) Valid() bool {
	for _, known := range Statuses() {
		if s == known {
			return true
		}
	}
	return false
}

// MenuItem is a catalog entry. The ID is server-assigned and immutable.
type MenuItem struct {
	ID              string   `json:"_id"`
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	Category        Category `json:"category"`
	Price           float64  `json:"price"`
	Ingredients     []string `json:"ingredients,omitempty"`
	IsAvailable     bool     `json:"isAvailable"`
	PreparationTime int      `json:"preparationTime"`
	ImageURL        string   `json:"imageUrl,omitempty"`
}

// MenuItemPayload is the body for create and update calls. It carries no
// identifier: the server assigns ids on create and takes the id from the
// URL on update.
type MenuItemPayload struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Category        Category `json:"category"`
	Price           float64  `json:"price"`
	Ingredients     []string `json:"ingredients"`
	IsAvailable     bool     `json:"isAvailable"`
	PreparationTime int      `json:"preparationTime"`
	ImageURL        string   `json:"imageUrl,omitempty"`
}

// ItemRef is an order line's reference to a menu item. Depending on server
// population behavior it arrives either as a bare id string or as an
// embedded MenuItem object; both shapes decode into the same value.
type ItemRef struct {
	// ID is the referenced menu item id. Always set when either shape decodes.
	ID string
	// Item is the embedded menu item, non-nil only when the server
	// populated the reference inline.
	Item *MenuItem
}

// UnmarshalJSON accepts either a bare id string or an embedded object.
func (r *ItemRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		r.ID = id
		r.Item = nil
		return nil
	}

	var item MenuItem
	if err := json.Unmarshal(data, &item); err != nil {
		return fmt.Errorf("item reference is neither an id nor an object: %w", err)
	}
	r.ID = item.ID
	r.Item = &item
	return nil
}

// MarshalJSON always emits the bare id; order payloads never embed items.
func (r ItemRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ID)
}

// Name returns the embedded item name, or "" when the reference is bare.
func (r ItemRef) Name() string {
	if r.Item != nil {
		return r.Item.Name
	}
	return ""
}

// OrderLine is one line of an order. Price is a snapshot taken when the
// order was placed; later catalog price changes never touch it.
type OrderLine struct {
	MenuItem ItemRef `json:"menuItem"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Total returns the line total.
func (l OrderLine) Total() float64 {
	return l.Price * float64(l.Quantity)
}

// Order mirrors the aggregate returned by the orders endpoints.
type Order struct {
	ID           string      `json:"_id"`
	OrderNumber  string      `json:"orderNumber"`
	CustomerName string      `json:"customerName"`
	TableNumber  int         `json:"tableNumber"`
	Items        []OrderLine `json:"items"`
	TotalAmount  float64     `json:"totalAmount"`
	Status       Status      `json:"status"`
}

// CreateOrderRequest is the body for placing an order. TotalAmount is
// echoed for display parity; the server recomputes the authoritative total.
type CreateOrderRequest struct {
	Items        []OrderLine `json:"items"`
	TotalAmount  float64     `json:"totalAmount"`
	CustomerName string      `json:"customerName"`
	TableNumber  int         `json:"tableNumber"`
}

// MenuFilter selects catalog entries. Zero values mean "no constraint".
type MenuFilter struct {
	// Text routes the request to the full-text search endpoint when non-empty.
	Text string
	// Category restricts to one category when non-empty.
	Category Category
	// IsAvailable restricts by availability when non-nil.
	IsAvailable *bool
	// MinPrice and MaxPrice bound the price range when non-nil.
	MinPrice *float64
	MaxPrice *float64
}

// OrderFilter selects orders. The zero value selects everything.
type OrderFilter struct {
	// Status restricts to one lifecycle state when non-empty.
	Status Status
}
