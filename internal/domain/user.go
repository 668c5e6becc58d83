package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// User: покупатель и его денежный баланс в целых единицах валюты.
type User struct {
	ID          string
	Name        string
	CashBalance int64
	Version     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CheckAffordable возвращает *InsufficientBalanceError, если required больше баланса.
// Равенство допустимо.
func CheckAffordable(required decimal.Decimal, balance int64) error {
	if required.GreaterThan(decimal.NewFromInt(balance)) {
		return NewInsufficientBalanceError(required, balance)
	}
	return nil
}

// BalanceUnits переводит сумму заказа в целые единицы баланса (с округлением вверх).
func BalanceUnits(amount decimal.Decimal) int64 {
	return amount.Ceil().IntPart()
}
