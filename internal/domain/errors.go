package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidArgument: некорректные входные данные (количество <= 0, пустой идентификатор и т.п.).
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound: базовая ошибка отсутствующей сущности; конкретные варианты ниже.
	ErrNotFound = errors.New("not found")
	// ErrInsufficientStock: на складе меньше единиц, чем запрошено.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrInsufficientBalance: сумма корзины/заказа превышает денежный баланс пользователя.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrConcurrencyConflict возвращается, когда лимит повторов при конфликте версий исчерпан.
	ErrConcurrencyConflict = errors.New("concurrency conflict: retries exhausted")
	// ErrInvalidStateTransition: переход статуса заказа не разрешён.
	ErrInvalidStateTransition = errors.New("invalid order status transition")
	// ErrOrderAlreadyTerminal: заказ уже завершён или удалён, отменить его нельзя.
	ErrOrderAlreadyTerminal = errors.New("order is already in a terminal state")
	// ErrEmptyCart: оформление заказа из пустой корзины.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrCartVersionConflict сигнализирует о конфликте версий корзины при сохранении.
	ErrCartVersionConflict = errors.New("cart version conflict")
	// ErrOrderVersionConflict сигнализирует о конфликте версий заказа при сохранении.
	ErrOrderVersionConflict = errors.New("order version conflict")
	// ErrTxConflict: транзакция отменена хранилищем (serialization failure, deadlock) и может быть повторена.
	ErrTxConflict = errors.New("transaction conflict")
	// ErrStockUnavailable: удалённый склад недоступен (таймаут, обрыв соединения); вызов считается неуспешным.
	ErrStockUnavailable = errors.New("stock service unavailable")
	// ErrOrderNotOwned: заказ принадлежит другому пользователю.
	ErrOrderNotOwned = errors.New("order belongs to another user")
	// ErrOutboxPublish: ошибка при публикации сообщения из outbox.
	ErrOutboxPublish = errors.New("outbox publish failed")

	ErrIdempotencyKeyRequired         = errors.New("idempotency key is required")
	ErrIdempotencyRequestHashRequired = errors.New("idempotency request hash is required")
	ErrIdempotencyKeyNotFound         = errors.New("idempotency key not found")
	ErrIdempotencyKeyAlreadyExists    = errors.New("idempotency key already exists")
	ErrIdempotencyHashMismatch        = errors.New("idempotency key reused with a different request")
)

var (
	ErrProductNotFound  = &NotFoundError{Entity: "product"}
	ErrCartNotFound     = &NotFoundError{Entity: "cart"}
	ErrCartItemNotFound = &NotFoundError{Entity: "cart item"}
	ErrOrderNotFound    = &NotFoundError{Entity: "order"}
	ErrUserNotFound     = &NotFoundError{Entity: "user"}
)

// NotFoundError уточняет, какая именно сущность не найдена.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string { return e.Entity + " not found" }

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// InsufficientStockError описывает нехватку товара.
type InsufficientStockError struct {
	ProductID string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: requested %d, available %d", e.ProductID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// InsufficientBalanceError содержит недостающую сумму (Shortfall = Required - Available).
type InsufficientBalanceError struct {
	Required  decimal.Decimal
	Available int64
	Shortfall decimal.Decimal
}

// NewInsufficientBalanceError считает недостачу относительно баланса.
func NewInsufficientBalanceError(required decimal.Decimal, available int64) *InsufficientBalanceError {
	return &InsufficientBalanceError{
		Required:  required,
		Available: available,
		Shortfall: required.Sub(decimal.NewFromInt(available)),
	}
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: required %s, available %d, shortfall %s",
		e.Required.StringFixed(2), e.Available, e.Shortfall.StringFixed(2))
}

func (e *InsufficientBalanceError) Unwrap() error { return ErrInsufficientBalance }

// InvalidTransitionError описывает запрещённый переход статуса.
type InvalidTransitionError struct {
	From OrderStatus
	To   OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid order status transition %s -> %s", e.From, e.To)
}

// Is позволяет сопоставлять ошибку и с ErrInvalidStateTransition, и с ErrOrderAlreadyTerminal
// (для переходов из COMPLETED/DELETED в CANCELLED).
func (e *InvalidTransitionError) Is(target error) bool {
	switch target {
	case ErrInvalidStateTransition:
		return true
	case ErrOrderAlreadyTerminal:
		return e.To == OrderStatusCancelled && e.From.Final()
	default:
		return false
	}
}

// IsVersionConflict проверяет, является ли ошибка конфликтом версий или конфликтом транзакции.
// Такие ошибки означают, что операцию целиком можно повторить.
func IsVersionConflict(err error) bool {
	return errors.Is(err, ErrCartVersionConflict) ||
		errors.Is(err, ErrOrderVersionConflict) ||
		errors.Is(err, ErrTxConflict)
}

// IsIdempotencyConflict проверяет, что ключ идемпотентности уже занят.
func IsIdempotencyConflict(err error) bool {
	return errors.Is(err, ErrIdempotencyKeyAlreadyExists) || errors.Is(err, ErrIdempotencyHashMismatch)
}
