package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestListOrdersStatusFilter(t *testing.T) {
	tests := []struct {
		name       string
		filter     OrderFilter
		wantStatus string
	}{
		{name: "no filter sends no status", filter: OrderFilter{}, wantStatus: ""},
		{name: "ready filter", filter: OrderFilter{Status: StatusReady}, wantStatus: "Ready"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath, gotStatus string

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				gotStatus = r.URL.Query().Get("status")
				_, _ = w.Write([]byte(`[]`))
			}))
			defer srv.Close()

			if _, err := New(srv.URL).ListOrders(context.Background(), tt.filter); err != nil {
				t.Fatalf("ListOrders() error = %v", err)
			}
			if gotPath != "/orders" {
				t.Errorf("path = %q, want /orders", gotPath)
			}
			if gotStatus != tt.wantStatus {
				t.Errorf("status query = %q, want %q", gotStatus, tt.wantStatus)
			}
		})
	}
}

func TestListOrdersShapeTolerance(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{
			name: "bare list",
			body: `[{"_id":"o1","orderNumber":"ORD-001","status":"Pending"}]`,
			want: 1,
		},
		{
			name: "orders envelope",
			body: `{"orders":[{"_id":"o1"},{"_id":"o2"}]}`,
			want: 2,
		},
		{
			name: "unknown shape normalizes to empty",
			body: `{"total":2}`,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			orders, err := New(srv.URL).ListOrders(context.Background(), OrderFilter{})
			if err != nil {
				t.Fatalf("ListOrders() error = %v", err)
			}
			if len(orders) != tt.want {
				t.Errorf("got %d orders, want %d", len(orders), tt.want)
			}
		})
	}
}

func TestCreateOrderPayload(t *testing.T) {
	var raw []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/orders" {
			t.Errorf("request = %s %s, want POST /orders", r.Method, r.URL.Path)
		}
		var err error
		raw, err = io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("reading body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"_id":"o9","orderNumber":"ORD-009","status":"Pending"}`))
	}))
	defer srv.Close()

	req := CreateOrderRequest{
		Items: []OrderLine{
			{MenuItem: ItemRef{ID: "a1"}, Quantity: 2, Price: 5},
		},
		TotalAmount:  10,
		CustomerName: "Asha",
		TableNumber:  4,
	}

	order, err := New(srv.URL).CreateOrder(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateOrder() error = %v", err)
	}
	if order == nil || order.ID != "o9" {
		t.Fatalf("CreateOrder() = %+v, want order o9", order)
	}

	var got struct {
		Items []struct {
			MenuItem string  `json:"menuItem"`
			Quantity int     `json:"quantity"`
			Price    float64 `json:"price"`
		} `json:"items"`
		TotalAmount  float64 `json:"totalAmount"`
		CustomerName string  `json:"customerName"`
		TableNumber  int     `json:"tableNumber"`
	}
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("payload did not decode with a bare menuItem id: %v", err)
	}
	if len(got.Items) != 1 {
		t.Fatalf("payload items = %d, want 1", len(got.Items))
	}
	line := got.Items[0]
	if line.MenuItem != "a1" || line.Quantity != 2 || line.Price != 5 {
		t.Errorf("line = %+v, want {menuItem:a1 quantity:2 price:5}", line)
	}
	if got.TotalAmount != 10 {
		t.Errorf("totalAmount = %v, want 10", got.TotalAmount)
	}
	if got.CustomerName != "Asha" || got.TableNumber != 4 {
		t.Errorf("customer fields = %q/%d, want Asha/4", got.CustomerName, got.TableNumber)
	}
}

func TestUpdateOrderStatusBody(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	if err := New(srv.URL).UpdateOrderStatus(context.Background(), "o1", StatusReady); err != nil {
		t.Fatalf("UpdateOrderStatus() error = %v", err)
	}
	if gotMethod != http.MethodPatch || gotPath != "/orders/o1/status" {
		t.Errorf("request = %s %s, want PATCH /orders/o1/status", gotMethod, gotPath)
	}
	if gotBody["status"] != "Ready" {
		t.Errorf(`body status = %q, want "Ready"`, gotBody["status"])
	}
}

func TestDeleteOrder(t *testing.T) {
	var gotMethod, gotPath string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	if err := New(srv.URL).DeleteOrder(context.Background(), "o1"); err != nil {
		t.Fatalf("DeleteOrder() error = %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/orders/o1" {
		t.Errorf("request = %s %s, want DELETE /orders/o1", gotMethod, gotPath)
	}
}
