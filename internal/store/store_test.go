package store

import (
	"fmt"
	"sync"
	"testing"
)

func sampleCatalog() []Item {
	return []Item{
		{ID: "a1", Name: "Tomato Soup", Category: "Appetizer", Price: 5, IsAvailable: true},
		{ID: "m1", Name: "Paneer Tikka", Category: "Main Course", Price: 12, IsAvailable: true},
		{ID: "d1", Name: "Gulab Jamun", Category: "Dessert", Price: 4, IsAvailable: false},
	}
}

func TestSetCatalogReplacesWholesale(t *testing.T) {
	s := New()
	s.SetCatalog(sampleCatalog())

	if got := s.CatalogSize(); got != 3 {
		t.Fatalf("CatalogSize() = %d, want 3", got)
	}

	// A later fetch with fewer items must not leave stale entries behind.
	s.SetCatalog([]Item{{ID: "m1", Name: "Paneer Tikka"}})

	if got := s.CatalogSize(); got != 1 {
		t.Errorf("CatalogSize() after replace = %d, want 1", got)
	}
	if _, ok := s.Item("a1"); ok {
		t.Error("replaced catalog still resolves an old id")
	}
	if _, ok := s.Item("m1"); !ok {
		t.Error("surviving id should still resolve")
	}
}

func TestItemNameResolution(t *testing.T) {
	s := New()
	s.SetCatalog(sampleCatalog())

	tests := []struct {
		name string
		id   string
		want string
	}{
		{name: "known id", id: "a1", want: "Tomato Soup"},
		{name: "another known id", id: "d1", want: "Gulab Jamun"},
		{name: "unknown id", id: "zz", want: ""},
		{name: "empty id", id: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.ItemName(tt.id); got != tt.want {
				t.Errorf("ItemName(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestCatalogReturnsCopy(t *testing.T) {
	s := New()
	s.SetCatalog(sampleCatalog())

	got := s.Catalog()
	got[0].Name = "Tampered"

	if s.ItemName("a1") != "Tomato Soup" {
		t.Error("mutating a Catalog() result changed the cached entry")
	}
}

func TestSetCatalogCopiesInput(t *testing.T) {
	items := sampleCatalog()
	s := New()
	s.SetCatalog(items)

	items[0].Name = "Tampered"

	if s.ItemName("a1") != "Tomato Soup" {
		t.Error("mutating the caller's slice changed the cached entry")
	}
}

func TestCatalogPreservesFetchOrder(t *testing.T) {
	s := New()
	s.SetCatalog(sampleCatalog())

	got := s.Catalog()
	wantIDs := []string{"a1", "m1", "d1"}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Errorf("Catalog()[%d].ID = %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestOrdersRoundTrip(t *testing.T) {
	s := New()

	if got := s.Orders(); len(got) != 0 {
		t.Fatalf("fresh store Orders() = %d entries, want 0", len(got))
	}

	s.SetOrders([]OrderSummary{
		{ID: "o1", OrderNumber: "ORD-001", Status: "Pending"},
		{ID: "o2", OrderNumber: "ORD-002", Status: "Ready"},
	})

	got := s.Orders()
	if len(got) != 2 {
		t.Fatalf("Orders() = %d entries, want 2", len(got))
	}
	if got[0].ID != "o1" || got[1].ID != "o2" {
		t.Errorf("Orders() order = %s,%s, want o1,o2", got[0].ID, got[1].ID)
	}

	s.SetOrders(nil)
	if got := s.Orders(); len(got) != 0 {
		t.Errorf("Orders() after clearing = %d entries, want 0", len(got))
	}
}

func TestConcurrentReadersAndWriters(t *testing.T) {
	s := New()
	s.SetCatalog(sampleCatalog())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			s.SetCatalog([]Item{{ID: fmt.Sprintf("g%d", n), Name: "Generated"}})
		}(i)
		go func() {
			defer wg.Done()
			for _, item := range s.Catalog() {
				_ = s.ItemName(item.ID)
			}
		}()
	}
	wg.Wait()

	if s.CatalogSize() != 1 {
		t.Errorf("CatalogSize() = %d, want 1 after the last replace", s.CatalogSize())
	}
}
