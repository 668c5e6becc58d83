package app

import (
	"context"
	"errors"
	"testing"

	"github.com/vladislavdragonenkov/shop/internal/domain"
	"github.com/vladislavdragonenkov/shop/internal/storage/memory"
)

func TestSeedDemoData(t *testing.T) {
	store := memory.NewStore()

	if err := seedDemoData(context.Background(), store); err != nil {
		t.Fatalf("seedDemoData: %v", err)
	}

	for _, want := range demoProducts {
		got, ok := store.ProductSnapshot(want.ID)
		if !ok {
			t.Fatalf("product %s was not seeded", want.ID)
		}
		if got.Stock != want.Stock || !got.Price.Equal(want.Price) {
			t.Errorf("product %s: got stock=%d price=%s, want stock=%d price=%s",
				want.ID, got.Stock, got.Price, want.Stock, want.Price)
		}
	}
	for _, want := range demoUsers {
		got, ok := store.UserSnapshot(want.ID)
		if !ok {
			t.Fatalf("user %s was not seeded", want.ID)
		}
		if got.CashBalance != want.CashBalance {
			t.Errorf("user %s: got balance %d, want %d", want.ID, got.CashBalance, want.CashBalance)
		}
	}
}

func TestSeedDemoData_Twice(t *testing.T) {
	store := memory.NewStore()
	if err := seedDemoData(context.Background(), store); err != nil {
		t.Fatalf("first seed: %v", err)
	}

	err := seedDemoData(context.Background(), store)
	if !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument on duplicate seed, got %v", err)
	}
}

func TestSeedDemoData_ValidCatalogue(t *testing.T) {
	seen := make(map[string]bool, len(demoProducts))
	for _, p := range demoProducts {
		if err := p.Validate(); err != nil {
			t.Errorf("demo product %s is invalid: %v", p.ID, err)
		}
		if seen[p.ID] {
			t.Errorf("duplicate demo product %s", p.ID)
		}
		seen[p.ID] = true
	}
}
