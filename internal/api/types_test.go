package api

import (
	"encoding/json"
	"testing"
)

func TestItemRefDecodesBothShapes(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantID     string
		wantName   string
		wantInline bool
	}{
		{
			name:   "bare id string",
			input:  `"a1"`,
			wantID: "a1",
		},
		{
			name:       "embedded object",
			input:      `{"_id":"a1","name":"Soup","price":5}`,
			wantID:     "a1",
			wantName:   "Soup",
			wantInline: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ref ItemRef
			if err := json.Unmarshal([]byte(tt.input), &ref); err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tt.input, err)
			}
			if ref.ID != tt.wantID {
				t.Errorf("ID = %q, want %q", ref.ID, tt.wantID)
			}
			if got := ref.Item != nil; got != tt.wantInline {
				t.Errorf("embedded item present = %v, want %v", got, tt.wantInline)
			}
			if ref.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", ref.Name(), tt.wantName)
			}
		})
	}
}

func TestItemRefRejectsOtherShapes(t *testing.T) {
	var ref ItemRef
	if err := json.Unmarshal([]byte(`42`), &ref); err == nil {
		t.Error("a number is neither an id nor an object and should fail")
	}
}

func TestItemRefMarshalsAsBareID(t *testing.T) {
	line := OrderLine{
		MenuItem: ItemRef{ID: "a1", Item: &MenuItem{ID: "a1", Name: "Soup", Price: 5}},
		Quantity: 2,
		Price:    5,
	}

	data, err := json.Marshal(line)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `{"menuItem":"a1","quantity":2,"price":5}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

// The line price is a snapshot taken at order time. Decoding an order and
// then changing the embedded item's catalog price must not affect the line.
func TestOrderLinePriceIsSnapshot(t *testing.T) {
	raw := `{"menuItem":{"_id":"a1","name":"Soup","price":5},"quantity":2,"price":5}`

	var line OrderLine
	if err := json.Unmarshal([]byte(raw), &line); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	// Catalog price doubles after the order was placed.
	line.MenuItem.Item.Price = 10

	if line.Price != 5 {
		t.Errorf("line price = %v, want the snapshot 5", line.Price)
	}
	if line.Total() != 10 {
		t.Errorf("Total() = %v, want quantity x snapshot = 10", line.Total())
	}
}

func TestOrderDecodesMixedLineShapes(t *testing.T) {
	raw := `{
		"_id": "o1",
		"orderNumber": "ORD-001",
		"customerName": "Ravi",
		"tableNumber": 2,
		"items": [
			{"menuItem": {"_id":"a1","name":"Soup","price":5}, "quantity": 1, "price": 5},
			{"menuItem": "b2", "quantity": 3, "price": 2.5}
		],
		"totalAmount": 12.5,
		"status": "Preparing"
	}`

	var order Order
	if err := json.Unmarshal([]byte(raw), &order); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if len(order.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(order.Items))
	}
	if order.Items[0].MenuItem.Name() != "Soup" {
		t.Errorf("embedded line name = %q, want Soup", order.Items[0].MenuItem.Name())
	}
	if order.Items[1].MenuItem.ID != "b2" || order.Items[1].MenuItem.Item != nil {
		t.Errorf("bare line = %+v, want id-only reference b2", order.Items[1].MenuItem)
	}
	if order.Status != StatusPreparing {
		t.Errorf("status = %q, want Preparing", order.Status)
	}
}

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories() {
		if !c.Valid() {
			t.Errorf("Categories() entry %q should be valid", c)
		}
	}
	if Category("Sides").Valid() {
		t.Error("an unknown category should not be valid")
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range Statuses() {
		if !s.Valid() {
			t.Errorf("Statuses() entry %q should be valid", s)
		}
	}
	if Status("Eaten").Valid() {
		t.Error("an unknown status should not be valid")
	}
}
