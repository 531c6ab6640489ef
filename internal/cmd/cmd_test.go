package cmd

import (
	"testing"

	"github.com/tablefork/dishboard/internal/api"
)

func TestRootCommandWiring(t *testing.T) {
	if rootCmd.Use != "dishboard" {
		t.Errorf("rootCmd.Use = %q, want dishboard", rootCmd.Use)
	}

	expected := []string{"start", "menu", "orders"}
	have := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		have[c.Name()] = true
	}
	for _, name := range expected {
		if !have[name] {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestMenuFilterFromFlags(t *testing.T) {
	tests := []struct {
		name        string
		available   bool
		unavailable bool
		wantFilter  bool
		wantValue   bool
	}{
		{name: "neither flag means all", wantFilter: false},
		{name: "available only", available: true, wantFilter: true, wantValue: true},
		{name: "unavailable only", unavailable: true, wantFilter: true, wantValue: false},
		{name: "both flags cancel out", available: true, unavailable: true, wantFilter: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := api.MenuFilter{}
			if tt.available != tt.unavailable {
				v := tt.available
				filter.IsAvailable = &v
			}

			if got := filter.IsAvailable != nil; got != tt.wantFilter {
				t.Fatalf("filter set = %v, want %v", got, tt.wantFilter)
			}
			if tt.wantFilter && *filter.IsAvailable != tt.wantValue {
				t.Errorf("filter value = %v, want %v", *filter.IsAvailable, tt.wantValue)
			}
		})
	}
}
