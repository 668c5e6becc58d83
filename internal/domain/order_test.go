package domain_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/shop/internal/domain"
)

// helper для создания базового заказа с двумя позициями.
func makeOrder(t *testing.T) domain.Order {
	t.Helper()
	order, err := domain.PlaceOrder(domain.PlaceOrderParams{
		UserID: "user-1",
		Lines: []domain.OrderLine{
			{ProductID: "p-1", Quantity: 2, UnitPrice: decimal.NewFromInt(100)},
			{ProductID: "p-2", Quantity: 1, UnitPrice: decimal.RequireFromString("49.50")},
		},
		ShippingAmount: decimal.NewFromInt(10),
		DiscountAmount: decimal.NewFromInt(5),
		Now:            time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	return order
}

func TestPlaceOrder_TotalsAndHistory(t *testing.T) {
	order := makeOrder(t)

	if order.Status != domain.OrderStatusPending {
		t.Fatalf("expected PENDING, got %s", order.Status)
	}
	if !order.SubtotalAmount.Equal(decimal.RequireFromString("249.50")) {
		t.Fatalf("unexpected subtotal %s", order.SubtotalAmount)
	}
	if !order.TotalAmount.Equal(decimal.RequireFromString("254.50")) {
		t.Fatalf("unexpected total %s", order.TotalAmount)
	}
	if order.PaymentMethod != domain.PaymentMethodCashBalance {
		t.Fatalf("expected default payment method, got %s", order.PaymentMethod)
	}
	if !strings.HasPrefix(order.OrderNumber, "ORD-") {
		t.Fatalf("unexpected order number %q", order.OrderNumber)
	}
	if len(order.History) != 1 {
		t.Fatalf("expected creation history entry, got %d", len(order.History))
	}
	created := order.History[0]
	if created.From != nil || created.To != domain.OrderStatusPending || created.Actor != domain.ActorSystem {
		t.Fatalf("unexpected creation entry %+v", created)
	}
	if errs := order.ValidateInvariants(); len(errs) != 0 {
		t.Fatalf("expected no validation errors, got %v", errs)
	}
}

func TestPlaceOrder_Rejects(t *testing.T) {
	base := domain.PlaceOrderParams{
		UserID: "user-1",
		Lines:  []domain.OrderLine{{ProductID: "p-1", Quantity: 1, UnitPrice: decimal.NewFromInt(10)}},
		Now:    time.Now().UTC(),
	}
	cases := []struct {
		name string
		mut  func(p *domain.PlaceOrderParams)
		want error
	}{
		{name: "no lines", mut: func(p *domain.PlaceOrderParams) { p.Lines = nil }, want: domain.ErrEmptyCart},
		{name: "no user", mut: func(p *domain.PlaceOrderParams) { p.UserID = " " }, want: domain.ErrInvalidArgument},
		{name: "negative shipping", mut: func(p *domain.PlaceOrderParams) { p.ShippingAmount = decimal.NewFromInt(-1) }, want: domain.ErrInvalidArgument},
		{name: "negative discount", mut: func(p *domain.PlaceOrderParams) { p.DiscountAmount = decimal.NewFromInt(-1) }, want: domain.ErrInvalidArgument},
		{name: "discount exceeds total", mut: func(p *domain.PlaceOrderParams) { p.DiscountAmount = decimal.NewFromInt(11) }, want: domain.ErrInvalidArgument},
		{name: "unknown payment", mut: func(p *domain.PlaceOrderParams) { p.PaymentMethod = "GOLD" }, want: domain.ErrInvalidArgument},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			params := base
			tc.mut(&params)
			if _, err := domain.PlaceOrder(params); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestOrderValidateInvariants_Errors(t *testing.T) {
	cases := []struct {
		name string
		mut  func(o *domain.Order)
	}{
		{name: "no user", mut: func(o *domain.Order) { o.UserID = "" }},
		{name: "no items", mut: func(o *domain.Order) { o.Items = nil }},
		{name: "qty invalid", mut: func(o *domain.Order) { o.Items[0].Quantity = 0 }},
		{name: "price invalid", mut: func(o *domain.Order) { o.Items[0].UnitPrice = decimal.NewFromInt(-5) }},
		{name: "total mismatch", mut: func(o *domain.Order) { o.TotalAmount = decimal.NewFromInt(1) }},
		{name: "unknown status", mut: func(o *domain.Order) { o.Status = "LOST" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			order := makeOrder(t)
			order.Items = append([]domain.OrderItem(nil), order.Items...)
			tc.mut(&order)

			if len(order.ValidateInvariants()) == 0 {
				t.Fatalf("expected validation errors for case %s", tc.name)
			}
		})
	}
}

func TestOrderChangeStatus(t *testing.T) {
	cases := []struct {
		name    string
		path    []domain.OrderStatus
		to      domain.OrderStatus
		wantErr bool
	}{
		{name: "pending to paid", to: domain.OrderStatusPaid},
		{name: "paid to shipping", path: []domain.OrderStatus{domain.OrderStatusPaid}, to: domain.OrderStatusShipping},
		{name: "shipping to completed", path: []domain.OrderStatus{domain.OrderStatusPaid, domain.OrderStatusShipping}, to: domain.OrderStatusCompleted},
		{name: "pending to cancelled", to: domain.OrderStatusCancelled},
		{name: "completed to deleted", path: []domain.OrderStatus{domain.OrderStatusPaid, domain.OrderStatusShipping, domain.OrderStatusCompleted}, to: domain.OrderStatusDeleted},
		{name: "pending to shipping", to: domain.OrderStatusShipping, wantErr: true},
		{name: "paid to pending", path: []domain.OrderStatus{domain.OrderStatusPaid}, to: domain.OrderStatusPending, wantErr: true},
		{name: "completed to cancelled", path: []domain.OrderStatus{domain.OrderStatusPaid, domain.OrderStatusShipping, domain.OrderStatusCompleted}, to: domain.OrderStatusCancelled, wantErr: true},
		{name: "cancelled to paid", path: []domain.OrderStatus{domain.OrderStatusCancelled}, to: domain.OrderStatusPaid, wantErr: true},
		{name: "cancelled to deleted", path: []domain.OrderStatus{domain.OrderStatusCancelled}, to: domain.OrderStatusDeleted, wantErr: true},
		{name: "deleted to cancelled", path: []domain.OrderStatus{domain.OrderStatusDeleted}, to: domain.OrderStatusCancelled, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			order := makeOrder(t)
			now := time.Now().UTC()
			for _, step := range tc.path {
				if _, _, err := order.ChangeStatus(step, "admin", "", now); err != nil {
					t.Fatalf("setup transition to %s: %v", step, err)
				}
			}
			before := len(order.History)
			prev := order.Status

			entry, changed, err := order.ChangeStatus(tc.to, "admin", "", now)
			if tc.wantErr {
				if !errors.Is(err, domain.ErrInvalidStateTransition) {
					t.Fatalf("expected ErrInvalidStateTransition, got %v", err)
				}
				if order.Status != prev || len(order.History) != before {
					t.Fatal("rejected transition must not change the order")
				}
				return
			}
			if err != nil || !changed {
				t.Fatalf("expected transition, got changed=%v err=%v", changed, err)
			}
			if order.Status != tc.to || len(order.History) != before+1 {
				t.Fatalf("unexpected state %s with %d history entries", order.Status, len(order.History))
			}
			if entry.FromStatus() != prev || entry.To != tc.to || entry.Actor != "admin" {
				t.Fatalf("unexpected history entry %+v", entry)
			}
			if entry.Message != domain.StatusChangeMessage(prev, tc.to) {
				t.Fatalf("unexpected message %q", entry.Message)
			}
		})
	}
}

func TestOrderChangeStatus_SameStatusIsNoop(t *testing.T) {
	for _, status := range []domain.OrderStatus{domain.OrderStatusPending, domain.OrderStatusCancelled} {
		order := makeOrder(t)
		now := time.Now().UTC()
		if status != order.Status {
			if _, _, err := order.ChangeStatus(status, "", "", now); err != nil {
				t.Fatalf("setup: %v", err)
			}
		}
		before := len(order.History)

		_, changed, err := order.ChangeStatus(status, "admin", "", now)
		if err != nil || changed {
			t.Fatalf("%s: expected no-op, got changed=%v err=%v", status, changed, err)
		}
		if len(order.History) != before {
			t.Fatalf("%s: no-op must not append history", status)
		}
	}
}

func TestLegalPredecessors(t *testing.T) {
	if got := domain.LegalPredecessors(domain.OrderStatusPending); len(got) != 0 {
		t.Fatalf("PENDING must be initial only, got %v", got)
	}
	for _, to := range domain.AllOrderStatuses() {
		for _, from := range domain.LegalPredecessors(to) {
			if from.Absorbing() {
				t.Errorf("%s must not be a predecessor of %s", from, to)
			}
			if !domain.CanTransition(from, to) {
				t.Errorf("CanTransition(%s, %s) = false", from, to)
			}
		}
	}
}

func TestRestoresStock(t *testing.T) {
	cases := []struct {
		from, to domain.OrderStatus
		want     bool
	}{
		{domain.OrderStatusPending, domain.OrderStatusCancelled, true},
		{domain.OrderStatusPaid, domain.OrderStatusCancelled, true},
		{domain.OrderStatusShipping, domain.OrderStatusCancelled, false},
		{domain.OrderStatusPending, domain.OrderStatusDeleted, false},
		{domain.OrderStatusPaid, domain.OrderStatusShipping, false},
	}
	for _, tc := range cases {
		if got := domain.RestoresStock(tc.from, tc.to); got != tc.want {
			t.Errorf("RestoresStock(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestOrderStatusDisplayName(t *testing.T) {
	if got := domain.OrderStatusPending.DisplayName(); got != "Awaiting payment" {
		t.Fatalf("unexpected display name %q", got)
	}
	if got := domain.OrderStatus("LOST").DisplayName(); got != "LOST" {
		t.Fatalf("unknown status must fall back to its code, got %q", got)
	}
}
