package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Типы событий, которые сервисы кладут в outbox.
const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
	EventOrderCancelled     = "order.cancelled"
	EventStockLow           = "stock.low"
	EventStockRestored      = "stock.restored"

	AggregateOrder   = "order"
	AggregateProduct = "product"
)

// OrderEventPayload: тело событий заказа.
type OrderEventPayload struct {
	OrderID     string      `json:"order_id"`
	OrderNumber string      `json:"order_number"`
	UserID      string      `json:"user_id"`
	From        OrderStatus `json:"from,omitempty"`
	Status      OrderStatus `json:"status"`
	TotalAmount string      `json:"total_amount"`
	Actor       string      `json:"actor,omitempty"`
	Reason      string      `json:"reason,omitempty"`
	OccurredAt  time.Time   `json:"occurred_at"`
}

// StockEventPayload: тело событий склада.
type StockEventPayload struct {
	ProductID  string    `json:"product_id"`
	Quantity   int       `json:"quantity"`
	Remaining  int       `json:"remaining"`
	OrderID    string    `json:"order_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewOutboxMessage сериализует payload в сообщение outbox.
func NewOutboxMessage(aggregateType, aggregateID, eventType string, payload any) (OutboxMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return OutboxMessage{}, fmt.Errorf("marshal %s payload: %w", eventType, err)
	}
	return OutboxMessage{
		ID:            uuid.NewString(),
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		EventType:     eventType,
		Payload:       body,
	}, nil
}

// OrderEvent собирает событие заказа по его текущему состоянию.
func OrderEvent(eventType string, order Order, from OrderStatus, actor, reason string, now time.Time) (OutboxMessage, error) {
	return NewOutboxMessage(AggregateOrder, order.ID, eventType, OrderEventPayload{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		UserID:      order.UserID,
		From:        from,
		Status:      order.Status,
		TotalAmount: order.TotalAmount.StringFixed(2),
		Actor:       actor,
		Reason:      reason,
		OccurredAt:  now,
	})
}
