package menupage

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/tablefork/dishboard/internal/api"
	"github.com/tablefork/dishboard/internal/apperr"
)

// Quick order field indexes, in focus order.
const (
	qoCustomer = iota
	qoTable
	qoQuantity
	qoFieldCount
)

// quickOrder is the one-item ordering modal. It is scoped to a single
// catalog item for its whole lifetime.
type quickOrder struct {
	item   api.MenuItem
	inputs []textinput.Model
	focus  int
}

func newQuickOrder(item api.MenuItem) quickOrder {
	inputs := make([]textinput.Model, qoFieldCount)

	inputs[qoCustomer] = textinput.New()
	inputs[qoCustomer].Placeholder = "Customer name"
	inputs[qoCustomer].CharLimit = 80
	inputs[qoCustomer].Focus()

	inputs[qoTable] = textinput.New()
	inputs[qoTable].Placeholder = "Table"
	inputs[qoTable].CharLimit = 4

	inputs[qoQuantity] = textinput.New()
	inputs[qoQuantity].Placeholder = "1"
	inputs[qoQuantity].SetValue("1")
	inputs[qoQuantity].CharLimit = 4

	return quickOrder{item: item, inputs: inputs}
}

func (q *quickOrder) focusField(i int) {
	q.focus = (i + qoFieldCount) % qoFieldCount
	for j := range q.inputs {
		if j == q.focus {
			q.inputs[j].Focus()
		} else {
			q.inputs[j].Blur()
		}
	}
}

// quantity reads the quantity field, defaulting to 1 while the field is
// empty so the running total always has something to show.
func (q *quickOrder) quantity() int {
	n, err := strconv.Atoi(strings.TrimSpace(q.inputs[qoQuantity].Value()))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// total is the displayed price, quantity times the catalog price at the
// moment the modal was opened.
func (q *quickOrder) total() float64 {
	return q.item.Price * float64(q.quantity())
}

// request validates the modal and builds the single-line order payload.
func (q *quickOrder) request() (api.CreateOrderRequest, error) {
	customer := strings.TrimSpace(q.inputs[qoCustomer].Value())
	if customer == "" {
		return api.CreateOrderRequest{}, apperr.NewValidationError("customerName", "is required")
	}

	table, err := strconv.Atoi(strings.TrimSpace(q.inputs[qoTable].Value()))
	if err != nil || table < 1 {
		return api.CreateOrderRequest{}, apperr.NewValidationError("tableNumber", "must be a positive number")
	}

	qty, err := strconv.Atoi(strings.TrimSpace(q.inputs[qoQuantity].Value()))
	if err != nil || qty < 1 {
		return api.CreateOrderRequest{}, apperr.NewValidationError("quantity", "must be at least 1")
	}

	return api.CreateOrderRequest{
		Items: []api.OrderLine{
			{MenuItem: api.ItemRef{ID: q.item.ID}, Quantity: qty, Price: q.item.Price},
		},
		TotalAmount:  q.item.Price * float64(qty),
		CustomerName: customer,
		TableNumber:  table,
	}, nil
}
