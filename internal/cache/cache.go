// Package cache реализует кеш корзин. Источник истины всегда хранилище: промах заполняется
// чтением из него, зафиксированная мутация записывает новую версию корзины сквозь кеш.
// Запись более старой версии поверх новой отбрасывается.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/shop/internal/domain"
)

// CartCache хранит снимки корзин по пользователю.
type CartCache interface {
	// Get возвращает корзину и признак попадания. Промах не считается ошибкой.
	Get(ctx context.Context, userID string) (domain.Cart, bool, error)
	// Set сохраняет снимок, если в кеше нет корзины с большей версией.
	Set(ctx context.Context, cart domain.Cart) error
	Invalidate(ctx context.Context, userID string) error
}

const keyPrefix = "shop:cart:"

func cartKey(userID string) string {
	return keyPrefix + userID
}

type cartSnapshot struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	Version   int64          `json:"version"`
	Items     []itemSnapshot `json:"items"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type itemSnapshot struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	AddedAt   time.Time       `json:"added_at"`
}

func encodeCart(cart domain.Cart) ([]byte, error) {
	items := cart.Items()
	snapshot := cartSnapshot{
		ID:        cart.ID,
		UserID:    cart.UserID,
		Version:   cart.Version,
		Items:     make([]itemSnapshot, 0, len(items)),
		CreatedAt: cart.CreatedAt,
		UpdatedAt: cart.UpdatedAt,
	}
	for _, item := range items {
		snapshot.Items = append(snapshot.Items, itemSnapshot{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			AddedAt:   item.AddedAt,
		})
	}
	return json.Marshal(snapshot)
}

// decodeCart восстанавливает корзину через domain.RestoreCart, сумма пересчитывается заново.
func decodeCart(raw []byte) (domain.Cart, error) {
	var snapshot cartSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return domain.Cart{}, fmt.Errorf("decode cached cart: %w", err)
	}
	items := make([]domain.CartItem, 0, len(snapshot.Items))
	for _, item := range snapshot.Items {
		items = append(items, domain.CartItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			AddedAt:   item.AddedAt,
		})
	}
	return domain.RestoreCart(snapshot.ID, snapshot.UserID, items, snapshot.Version, snapshot.CreatedAt, snapshot.UpdatedAt), nil
}

// Noop: кеш выключен: всегда промах.
type Noop struct{}

func (Noop) Get(context.Context, string) (domain.Cart, bool, error) { return domain.Cart{}, false, nil }
func (Noop) Set(context.Context, domain.Cart) error                 { return nil }
func (Noop) Invalidate(context.Context, string) error               { return nil }

var _ CartCache = Noop{}
