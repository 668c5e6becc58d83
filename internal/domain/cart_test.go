package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/shop/internal/domain"
)

func TestCart_AddQuantityMergesLines(t *testing.T) {
	now := time.Now().UTC()
	cart := domain.NewCart("user-1", now)

	cart.AddQuantity("p-1", 2, decimal.NewFromInt(100), now)
	cart.AddQuantity("p-2", 1, decimal.NewFromInt(30), now)
	cart.AddQuantity("p-1", 3, decimal.NewFromInt(120), now)

	items := cart.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(items))
	}
	if items[0].ProductID != "p-1" || items[0].Quantity != 5 {
		t.Fatalf("unexpected merged line %+v", items[0])
	}
	if !items[0].Price.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("merge must keep the line price, got %s", items[0].Price)
	}
	if !cart.TotalPrice().Equal(decimal.NewFromInt(530)) {
		t.Fatalf("unexpected total %s", cart.TotalPrice())
	}
	if cart.TotalQuantity() != 6 {
		t.Fatalf("unexpected total quantity %d", cart.TotalQuantity())
	}
}

func TestCart_ProspectiveTotal(t *testing.T) {
	now := time.Now().UTC()
	cart := domain.NewCart("user-1", now)
	cart.AddQuantity("p-1", 1, decimal.NewFromInt(100), now)

	cases := []struct {
		name      string
		productID string
		qty       int
		price     decimal.Decimal
		want      decimal.Decimal
	}{
		{name: "existing line uses line price", productID: "p-1", qty: 2, price: decimal.NewFromInt(500), want: decimal.NewFromInt(300)},
		{name: "new line uses given price", productID: "p-2", qty: 3, price: decimal.NewFromInt(10), want: decimal.NewFromInt(130)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := cart.ProspectiveTotal(tc.productID, tc.qty, tc.price)
			if !got.Equal(tc.want) {
				t.Fatalf("prospective total = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestCart_SetQuantityRemoveClear(t *testing.T) {
	now := time.Now().UTC()
	cart := domain.NewCart("user-1", now)
	cart.AddQuantity("p-1", 2, decimal.NewFromInt(10), now)
	cart.AddQuantity("p-2", 2, decimal.NewFromInt(20), now)

	cart.SetQuantity("p-1", 5, decimal.NewFromInt(99), now)
	if line, _ := cart.Line("p-1"); line.Quantity != 5 || !line.Price.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("unexpected line after set %+v", line)
	}
	if !cart.TotalPrice().Equal(decimal.NewFromInt(90)) {
		t.Fatalf("unexpected total %s", cart.TotalPrice())
	}

	cart.SetQuantity("p-2", 0, decimal.Zero, now)
	if _, ok := cart.Line("p-2"); ok {
		t.Fatal("zero quantity must remove the line")
	}

	if cart.Remove("missing", now) {
		t.Fatal("removing a missing line must report false")
	}

	cart.Clear(now)
	if !cart.IsEmpty() || !cart.TotalPrice().IsZero() {
		t.Fatalf("expected empty cart, got %d lines total %s", len(cart.Items()), cart.TotalPrice())
	}
}

func TestRestoreCart_RecomputesTotal(t *testing.T) {
	now := time.Now().UTC()
	items := []domain.CartItem{
		{ProductID: "p-1", Quantity: 2, Price: decimal.RequireFromString("1.25"), AddedAt: now},
		{ProductID: "p-2", Quantity: 1, Price: decimal.NewFromInt(3), AddedAt: now},
	}
	cart := domain.RestoreCart("c-1", "user-1", items, 4, now, now)

	if !cart.TotalPrice().Equal(decimal.RequireFromString("5.5")) {
		t.Fatalf("unexpected total %s", cart.TotalPrice())
	}
	if cart.IsNew() {
		t.Fatal("restored cart with version must not be new")
	}

	items[0].Quantity = 100
	if line, _ := cart.Line("p-1"); line.Quantity != 2 {
		t.Fatal("cart must not share the caller's slice")
	}
}

func TestCheckAffordable(t *testing.T) {
	if err := domain.CheckAffordable(decimal.NewFromInt(30000), 30000); err != nil {
		t.Fatalf("equal amount must be affordable, got %v", err)
	}

	err := domain.CheckAffordable(decimal.NewFromInt(30001), 30000)
	var balanceErr *domain.InsufficientBalanceError
	if !errors.As(err, &balanceErr) {
		t.Fatalf("expected *InsufficientBalanceError, got %v", err)
	}
	if !balanceErr.Shortfall.Equal(decimal.NewFromInt(1)) {
		t.Fatalf("unexpected shortfall %s", balanceErr.Shortfall)
	}
}

func TestBalanceUnits(t *testing.T) {
	if got := domain.BalanceUnits(decimal.RequireFromString("10.01")); got != 11 {
		t.Fatalf("expected rounding up to 11, got %d", got)
	}
	if got := domain.BalanceUnits(decimal.NewFromInt(10)); got != 10 {
		t.Fatalf("expected 10, got %d", got)
	}
}
