package domain

// OrderStatus описывает жизненный цикл заказа.
type OrderStatus string

const (
	// OrderStatusPending: заказ оформлен, ожидает оплаты.
	OrderStatusPending OrderStatus = "PENDING"
	// OrderStatusPaid: оплата получена.
	OrderStatusPaid OrderStatus = "PAID"
	// OrderStatusShipping: заказ передан в доставку.
	OrderStatusShipping OrderStatus = "SHIPPING"
	// OrderStatusCompleted: заказ доставлен.
	OrderStatusCompleted OrderStatus = "COMPLETED"
	// OrderStatusCancelled: заказ отменён; поглощающее состояние.
	OrderStatusCancelled OrderStatus = "CANCELLED"
	// OrderStatusDeleted: заказ логически удалён; поглощающее состояние.
	OrderStatusDeleted OrderStatus = "DELETED"
)

var orderStatusDisplay = map[OrderStatus]string{
	OrderStatusPending:   "Awaiting payment",
	OrderStatusPaid:      "Paid",
	OrderStatusShipping:  "Shipping",
	OrderStatusCompleted: "Delivered",
	OrderStatusCancelled: "Cancelled",
	OrderStatusDeleted:   "Deleted",
}

// Допустимые предшественники для каждого статуса. PENDING только начальный.
var legalPredecessors = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   nil,
	OrderStatusPaid:      {OrderStatusPending},
	OrderStatusShipping:  {OrderStatusPaid},
	OrderStatusCompleted: {OrderStatusShipping},
	OrderStatusCancelled: {OrderStatusPending, OrderStatusPaid, OrderStatusShipping},
	OrderStatusDeleted:   {OrderStatusPending, OrderStatusPaid, OrderStatusShipping, OrderStatusCompleted},
}

// AllOrderStatuses перечисляет статусы в порядке жизненного цикла.
func AllOrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusPending,
		OrderStatusPaid,
		OrderStatusShipping,
		OrderStatusCompleted,
		OrderStatusCancelled,
		OrderStatusDeleted,
	}
}

// Valid проверяет, что статус относится к закрытому набору.
func (s OrderStatus) Valid() bool {
	_, ok := orderStatusDisplay[s]
	return ok
}

// DisplayName возвращает человекочитаемое название статуса.
func (s OrderStatus) DisplayName() string {
	if name, ok := orderStatusDisplay[s]; ok {
		return name
	}
	return string(s)
}

// Absorbing: из статуса нет переходов, кроме no-op.
func (s OrderStatus) Absorbing() bool {
	return s == OrderStatusCancelled || s == OrderStatusDeleted
}

// Final: заказ завершён (доставлен, отменён или удалён) и не может быть отменён.
func (s OrderStatus) Final() bool {
	return s == OrderStatusCompleted || s.Absorbing()
}

// LegalPredecessors возвращает статусы, из которых разрешён переход в to.
func LegalPredecessors(to OrderStatus) []OrderStatus {
	return append([]OrderStatus(nil), legalPredecessors[to]...)
}

// CanTransition проверяет переход from -> to. Переход в тот же статус не считается переходом.
func CanTransition(from, to OrderStatus) bool {
	for _, s := range legalPredecessors[to] {
		if s == from {
			return true
		}
	}
	return false
}

// RestoresStock: отмена из PENDING или PAID возвращает товар на склад.
func RestoresStock(from, to OrderStatus) bool {
	return to == OrderStatusCancelled && (from == OrderStatusPending || from == OrderStatusPaid)
}
