package domain

import (
	"context"
	"time"
)

// Store открывает транзакции поверх хранилища.
type Store interface {
	// WithinTx выполняет fn в одной транзакции: ошибка fn или конфликт при фиксации
	// откатывают все изменения.
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx: набор репозиториев, работающих в рамках одной транзакции.
type Tx interface {
	Products() ProductRepository
	Carts() CartRepository
	Orders() OrderRepository
	Users() UserRepository
	Outbox() OutboxWriter
}

// StockLedger: складская книга: остаток по товару.
type StockLedger interface {
	// DecreaseStock условно списывает qty; при нехватке ничего не меняет и возвращает *InsufficientStockError.
	DecreaseStock(ctx context.Context, productID string, qty int) error
	// IncreaseStock безусловно возвращает qty на склад.
	IncreaseStock(ctx context.Context, productID string, qty int) error
}

// ProductCatalog отдаёт снимок товара: цену и остаток.
type ProductCatalog interface {
	GetProduct(ctx context.Context, id string) (Product, error)
}

// OutboxWriter ставит событие в transactional outbox.
type OutboxWriter interface {
	Enqueue(ctx context.Context, msg OutboxMessage) (OutboxMessage, error)
}

// OutboxRepository позволяет сохранять события для последующей публикации.
type OutboxRepository interface {
	OutboxWriter
	PullPending(ctx context.Context, limit int) ([]OutboxMessage, error)
	Stats(ctx context.Context) (OutboxStats, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string) error
}

// OutboxPublisher публикует события из transactional outbox.
type OutboxPublisher interface {
	// Publish передаёт событие наружу; должен быть идемпотентным.
	Publish(ctx context.Context, event OutboxMessage) error
}

// IdempotencyRepository хранит состояние обработки запросов по idempotency-key.
type IdempotencyRepository interface {
	CreateProcessing(ctx context.Context, key, requestHash string, ttlAt time.Time) (IdempotencyRecord, error)
	Get(ctx context.Context, key string) (IdempotencyRecord, error)
	MarkDone(ctx context.Context, key string, responseBody []byte, responseCode int) error
	MarkFailed(ctx context.Context, key string, responseBody []byte, responseCode int) error
	// MarkRetryable освобождает ключ для повтора того же запроса.
	MarkRetryable(ctx context.Context, key string, responseCode int) error
	// ReleaseStale переводит в retryable записи, зависшие в processing с updatedBefore и раньше.
	ReleaseStale(ctx context.Context, updatedBefore time.Time, limit int) (int, error)
	DeleteExpired(ctx context.Context, before time.Time, limit int) (int, error)
}

// OutboxMessage хранит данные для публикуемого события.
type OutboxMessage struct {
	ID            string
	AggregateType string
	AggregateID   string
	EventType     string
	Payload       []byte
	CreatedAt     time.Time
}

// OutboxStats описывает текущее состояние backlog transactional outbox.
type OutboxStats struct {
	PendingCount    int
	OldestPendingAt time.Time
}
