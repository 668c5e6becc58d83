package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Product: товар каталога и его складской остаток.
type Product struct {
	ID    string
	Name  string
	Price decimal.Decimal
	// Stock никогда не становится отрицательным: списание идёт только условной записью
	// или под эксклюзивной блокировкой строки.
	Stock     int
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate проверяет поля товара перед созданием.
func (p Product) Validate() error {
	switch {
	case strings.TrimSpace(p.ID) == "":
		return errorf("product id is required")
	case p.Price.IsNegative():
		return errorf("product %s: price must be non-negative", p.ID)
	case p.Stock < 0:
		return errorf("product %s: stock must be non-negative", p.ID)
	}
	return nil
}

// CanFulfil сообщает, хватает ли остатка на qty единиц.
func (p Product) CanFulfil(qty int) bool {
	return p.Stock >= qty
}

// ValidateQuantity проверяет, что количество строго положительное.
func ValidateQuantity(qty int) error {
	if qty <= 0 {
		return errorf("quantity must be greater than zero, got %d", qty)
	}
	return nil
}
