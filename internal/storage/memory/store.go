package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vladislavdragonenkov/shop/internal/domain"
)

const defaultLockWait = 2 * time.Second

// Store: in-memory хранилище с транзакциями для локальной разработки и тестов.
//
// Транзакция буферизует записи и применяет их при фиксации под общей блокировкой.
// Версии корзин и заказов сверяются при фиксации (optimistic locking), а строки товаров
// и пользователей, которые транзакция меняет, блокируются до её завершения, как это
// делает UPDATE в PostgreSQL.
type Store struct {
	mu       sync.RWMutex
	products map[string]domain.Product
	carts    map[string]domain.Cart
	orders   map[string]domain.Order
	numbers  map[string]string
	users    map[string]domain.User

	outbox *OutboxRepository

	locksMu  sync.Mutex
	rowLocks map[string]*sync.Mutex
	lockWait time.Duration
}

// Option настраивает Store.
type Option func(*Store)

// WithLockWait задаёт, сколько транзакция ждёт блокировку строки до конфликта.
func WithLockWait(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.lockWait = d
		}
	}
}

// NewStore создаёт пустое хранилище.
func NewStore(opts ...Option) *Store {
	s := &Store{
		products: make(map[string]domain.Product),
		carts:    make(map[string]domain.Cart),
		orders:   make(map[string]domain.Order),
		numbers:  make(map[string]string),
		users:    make(map[string]domain.User),
		outbox:   NewOutboxRepository(),
		rowLocks: make(map[string]*sync.Mutex),
		lockWait: defaultLockWait,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Outbox возвращает outbox-репозиторий, в который попадают события зафиксированных транзакций.
func (s *Store) Outbox() *OutboxRepository {
	return s.outbox
}

// Ping нужен для health-check и всегда успешен.
func (s *Store) Ping(context.Context) error {
	return nil
}

// WithinTx выполняет fn в транзакции.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, tx domain.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tx := newTx(s)
	defer tx.releaseLocks()

	if err := fn(ctx, tx); err != nil {
		return err
	}
	return s.commit(tx)
}

func (s *Store) commit(tx *memTx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.validate(tx); err != nil {
		return err
	}

	now := time.Now().UTC()
	for id, p := range tx.newProducts {
		s.products[id] = p
	}
	for id, delta := range tx.stockDeltas {
		p := s.products[id]
		p.Stock += delta
		p.Version++
		p.UpdatedAt = now
		s.products[id] = p
	}
	for id, u := range tx.newUsers {
		s.users[id] = u
	}
	for id, delta := range tx.balanceDeltas {
		u := s.users[id]
		u.CashBalance += delta
		u.Version++
		u.UpdatedAt = now
		s.users[id] = u
	}
	for userID, w := range tx.carts {
		cart := w.cart
		cart.Version = w.expected + 1
		s.carts[userID] = cart
	}
	for id, w := range tx.orders {
		order := cloneOrder(w.order)
		if w.create {
			s.numbers[order.OrderNumber] = id
		} else {
			order.History = cloneOrder(s.orders[id]).History
			order.Version = w.expected + 1
		}
		s.orders[id] = order
	}
	for _, entry := range tx.history {
		order := s.orders[entry.OrderID]
		order.History = append(cloneOrder(order).History, entry)
		s.orders[entry.OrderID] = order
	}
	for _, msg := range tx.outbox {
		s.outbox.enqueue(msg)
	}
	return nil
}

func (s *Store) validate(tx *memTx) error {
	for id := range tx.newProducts {
		if _, exists := s.products[id]; exists {
			return fmt.Errorf("product %s already exists: %w", id, domain.ErrInvalidArgument)
		}
	}
	for id, delta := range tx.stockDeltas {
		p, ok := s.products[id]
		if !ok {
			if _, staged := tx.newProducts[id]; !staged {
				return domain.ErrProductNotFound
			}
			p = tx.newProducts[id]
		}
		if p.Stock+delta < 0 {
			return fmt.Errorf("stock of product %s would become negative: %w", id, domain.ErrTxConflict)
		}
	}
	for id := range tx.newUsers {
		if _, exists := s.users[id]; exists {
			return fmt.Errorf("user %s already exists: %w", id, domain.ErrInvalidArgument)
		}
	}
	for id, delta := range tx.balanceDeltas {
		if s.users[id].CashBalance+delta < 0 {
			return fmt.Errorf("balance of user %s would become negative: %w", id, domain.ErrTxConflict)
		}
	}
	for userID, w := range tx.carts {
		current, ok := s.carts[userID]
		switch {
		case !ok && w.expected != 0:
			return domain.ErrCartVersionConflict
		case ok && current.Version != w.expected:
			return domain.ErrCartVersionConflict
		}
	}
	for id, w := range tx.orders {
		current, ok := s.orders[id]
		if w.create {
			if ok {
				return domain.ErrOrderVersionConflict
			}
			if _, taken := s.numbers[w.order.OrderNumber]; taken {
				return domain.ErrOrderVersionConflict
			}
			continue
		}
		if !ok {
			return domain.ErrOrderNotFound
		}
		if current.Version != w.expected {
			return domain.ErrOrderVersionConflict
		}
	}
	for _, entry := range tx.history {
		if _, ok := s.orders[entry.OrderID]; ok {
			continue
		}
		if w, staged := tx.orders[entry.OrderID]; !staged || !w.create {
			return domain.ErrOrderNotFound
		}
	}
	return nil
}

// lockRow захватывает блокировку строки, ожидая не дольше lockWait.
func (s *Store) lockRow(ctx context.Context, key string) (*sync.Mutex, error) {
	s.locksMu.Lock()
	lock, ok := s.rowLocks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.rowLocks[key] = lock
	}
	s.locksMu.Unlock()

	deadline := time.Now().Add(s.lockWait)
	for {
		if lock.TryLock() {
			return lock, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("lock %s: wait timeout: %w", key, domain.ErrTxConflict)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Millisecond):
		}
	}
}

// Snapshot-методы ниже читают зафиксированное состояние вне транзакций (тесты, сидирование).

// ProductSnapshot возвращает зафиксированное состояние товара.
func (s *Store) ProductSnapshot(id string) (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	return p, ok
}

// UserSnapshot возвращает зафиксированное состояние пользователя.
func (s *Store) UserSnapshot(id string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	return u, ok
}

// OrderIDs возвращает идентификаторы всех заказов в стабильном порядке.
func (s *Store) OrderIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.orders))
	for id := range s.orders {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func cloneOrder(src domain.Order) domain.Order {
	dst := src
	dst.Items = append([]domain.OrderItem(nil), src.Items...)
	dst.History = append([]domain.OrderHistory(nil), src.History...)
	return dst
}

var _ domain.Store = (*Store)(nil)
