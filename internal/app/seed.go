package app

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/shop/internal/domain"
)

// demoProducts и demoUsers: небольшой каталог для локального запуска и нагрузочного теста.
var demoProducts = []domain.Product{
	{ID: "sku-coffee", Name: "Coffee beans 1kg", Price: decimal.RequireFromString("24.90"), Stock: 100},
	{ID: "sku-grinder", Name: "Hand grinder", Price: decimal.RequireFromString("59.00"), Stock: 20},
	{ID: "sku-kettle", Name: "Gooseneck kettle", Price: decimal.RequireFromString("45.50"), Stock: 15},
	{ID: "sku-filter", Name: "Paper filters x100", Price: decimal.RequireFromString("6.20"), Stock: 500},
	{ID: "sku-scale", Name: "Coffee scale", Price: decimal.RequireFromString("32.00"), Stock: 3},
}

var demoUsers = []domain.User{
	{ID: "user-1", Name: "Demo User 1", CashBalance: 1000},
	{ID: "user-2", Name: "Demo User 2", CashBalance: 250},
	{ID: "user-3", Name: "Demo User 3", CashBalance: 0},
	{ID: "loadtest", Name: "Load Test", CashBalance: 1_000_000},
}

// seedDemoData создаёт демо-каталог и пользователей одной транзакцией.
func seedDemoData(ctx context.Context, store domain.Store) error {
	now := time.Now().UTC()
	return store.WithinTx(ctx, func(ctx context.Context, tx domain.Tx) error {
		for _, p := range demoProducts {
			p.CreatedAt, p.UpdatedAt = now, now
			if err := tx.Products().Create(ctx, p); err != nil {
				return fmt.Errorf("seed product %s: %w", p.ID, err)
			}
		}
		for _, u := range demoUsers {
			u.CreatedAt, u.UpdatedAt = now, now
			if err := tx.Users().Create(ctx, u); err != nil {
				return fmt.Errorf("seed user %s: %w", u.ID, err)
			}
		}
		return nil
	})
}
