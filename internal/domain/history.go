package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrderHistory: неизменяемая запись о переходе статуса. From == nil у записи о создании.
type OrderHistory struct {
	ID        string
	OrderID   string
	From      *OrderStatus
	To        OrderStatus
	Message   string
	Actor     string
	CreatedAt time.Time
}

func newHistory(orderID string, from *OrderStatus, to OrderStatus, message, actor string, now time.Time) OrderHistory {
	return OrderHistory{
		ID:        uuid.NewString(),
		OrderID:   orderID,
		From:      from,
		To:        to,
		Message:   message,
		Actor:     actor,
		CreatedAt: now,
	}
}

// FromStatus возвращает исходный статус или пустую строку для записи о создании.
func (h OrderHistory) FromStatus() OrderStatus {
	if h.From == nil {
		return ""
	}
	return *h.From
}
