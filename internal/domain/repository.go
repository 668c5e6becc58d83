package domain

import "context"

// ProductRepository: доступ к товарам и складской книге внутри транзакции.
type ProductRepository interface {
	StockLedger
	ProductCatalog

	// Create добавляет товар в каталог.
	Create(ctx context.Context, product Product) error
	// GetForUpdate читает товар под эксклюзивной блокировкой строки до конца транзакции.
	GetForUpdate(ctx context.Context, id string) (Product, error)
	// DecreaseLocked списывает qty у товара, ранее прочитанного через GetForUpdate,
	// и возвращает состояние после списания.
	DecreaseLocked(ctx context.Context, product Product, qty int) (Product, error)
}

// CartRepository хранит корзины; одна корзина на пользователя.
type CartRepository interface {
	// GetByUser возвращает корзину пользователя или ErrCartNotFound.
	GetByUser(ctx context.Context, userID string) (Cart, error)
	// Save создаёт корзину (Version == 0) или обновляет её при совпадении версии.
	// Несовпадение версии даёт ErrCartVersionConflict.
	Save(ctx context.Context, cart Cart) error
}

// OrderFilter ограничивает выборку заказов пользователя.
type OrderFilter struct {
	Limit          int
	IncludeDeleted bool
}

// OrderRepository описывает требования к хранилищу заказов.
type OrderRepository interface {
	// Create сохраняет заказ вместе с позициями и историей.
	Create(ctx context.Context, order Order) error
	// Get возвращает заказ с позициями и историей или ErrOrderNotFound.
	Get(ctx context.Context, id string) (Order, error)
	// GetByNumber ищет заказ по номеру.
	GetByNumber(ctx context.Context, orderNumber string) (Order, error)
	// ListByUser возвращает заказы пользователя, новые первыми.
	ListByUser(ctx context.Context, userID string, filter OrderFilter) ([]Order, error)
	// Save применяет изменения статуса и оплаты с учётом optimistic locking.
	Save(ctx context.Context, order Order) error
	// AppendHistory дописывает запись истории.
	AppendHistory(ctx context.Context, entry OrderHistory) error
}

// UserRepository хранит пользователей и их денежный баланс.
type UserRepository interface {
	Create(ctx context.Context, user User) error
	Get(ctx context.Context, id string) (User, error)
	// AdjustBalance меняет баланс на delta условной записью: баланс не уходит ниже нуля,
	// иначе *InsufficientBalanceError.
	AdjustBalance(ctx context.Context, id string, delta int64) (User, error)
}
