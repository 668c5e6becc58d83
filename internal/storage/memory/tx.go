package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/shop/internal/domain"
)

type cartWrite struct {
	cart     domain.Cart
	expected int64
}

type orderWrite struct {
	order    domain.Order
	expected int64
	create   bool
}

// memTx буферизует изменения до фиксации.
type memTx struct {
	store *Store

	newProducts   map[string]domain.Product
	stockDeltas   map[string]int
	newUsers      map[string]domain.User
	balanceDeltas map[string]int64
	carts         map[string]cartWrite
	orders        map[string]orderWrite
	history       []domain.OrderHistory
	outbox        []domain.OutboxMessage

	locked map[string]*sync.Mutex
}

func newTx(s *Store) *memTx {
	return &memTx{
		store:         s,
		newProducts:   make(map[string]domain.Product),
		stockDeltas:   make(map[string]int),
		newUsers:      make(map[string]domain.User),
		balanceDeltas: make(map[string]int64),
		carts:         make(map[string]cartWrite),
		orders:        make(map[string]orderWrite),
		locked:        make(map[string]*sync.Mutex),
	}
}

func (t *memTx) Products() domain.ProductRepository { return productTx{t} }
func (t *memTx) Carts() domain.CartRepository       { return cartTx{t} }
func (t *memTx) Orders() domain.OrderRepository     { return orderTx{t} }
func (t *memTx) Users() domain.UserRepository       { return userTx{t} }
func (t *memTx) Outbox() domain.OutboxWriter        { return outboxTx{t} }

func (t *memTx) lock(ctx context.Context, key string) error {
	if _, held := t.locked[key]; held {
		return nil
	}
	lock, err := t.store.lockRow(ctx, key)
	if err != nil {
		return err
	}
	t.locked[key] = lock
	return nil
}

func (t *memTx) releaseLocks() {
	for key, lock := range t.locked {
		lock.Unlock()
		delete(t.locked, key)
	}
}

// --- products ---

type productTx struct{ t *memTx }

func (r productTx) view(id string) (domain.Product, bool) {
	p, ok := r.t.newProducts[id]
	if !ok {
		r.t.store.mu.RLock()
		p, ok = r.t.store.products[id]
		r.t.store.mu.RUnlock()
	}
	if !ok {
		return domain.Product{}, false
	}
	p.Stock += r.t.stockDeltas[id]
	return p, true
}

func (r productTx) Create(_ context.Context, product domain.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}
	if _, exists := r.view(product.ID); exists {
		return fmt.Errorf("product %s already exists: %w", product.ID, domain.ErrInvalidArgument)
	}
	now := time.Now().UTC()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now
	r.t.newProducts[product.ID] = product
	return nil
}

func (r productTx) GetProduct(_ context.Context, id string) (domain.Product, error) {
	p, ok := r.view(id)
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return p, nil
}

func (r productTx) GetForUpdate(ctx context.Context, id string) (domain.Product, error) {
	if _, ok := r.view(id); !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	if err := r.t.lock(ctx, "product:"+id); err != nil {
		return domain.Product{}, err
	}
	// Перечитываем уже под блокировкой.
	return r.GetProduct(ctx, id)
}

func (r productTx) DecreaseLocked(_ context.Context, product domain.Product, qty int) (domain.Product, error) {
	if err := domain.ValidateQuantity(qty); err != nil {
		return domain.Product{}, err
	}
	if _, held := r.t.locked["product:"+product.ID]; !held {
		return domain.Product{}, fmt.Errorf("product %s is not locked by this transaction", product.ID)
	}
	current, ok := r.view(product.ID)
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	if current.Stock < qty {
		return domain.Product{}, &domain.InsufficientStockError{ProductID: product.ID, Requested: qty, Available: current.Stock}
	}
	r.t.stockDeltas[product.ID] -= qty
	current.Stock -= qty
	return current, nil
}

func (r productTx) DecreaseStock(ctx context.Context, productID string, qty int) error {
	if err := domain.ValidateQuantity(qty); err != nil {
		return err
	}
	if _, ok := r.view(productID); !ok {
		return domain.ErrProductNotFound
	}
	if err := r.t.lock(ctx, "product:"+productID); err != nil {
		return err
	}
	current, _ := r.view(productID)
	if current.Stock < qty {
		return &domain.InsufficientStockError{ProductID: productID, Requested: qty, Available: current.Stock}
	}
	r.t.stockDeltas[productID] -= qty
	return nil
}

func (r productTx) IncreaseStock(ctx context.Context, productID string, qty int) error {
	if err := domain.ValidateQuantity(qty); err != nil {
		return err
	}
	if _, ok := r.view(productID); !ok {
		return domain.ErrProductNotFound
	}
	if err := r.t.lock(ctx, "product:"+productID); err != nil {
		return err
	}
	r.t.stockDeltas[productID] += qty
	return nil
}

// --- carts ---

type cartTx struct{ t *memTx }

func (r cartTx) GetByUser(_ context.Context, userID string) (domain.Cart, error) {
	if w, ok := r.t.carts[userID]; ok {
		cart := w.cart
		cart.Version = w.expected
		return cart, nil
	}
	r.t.store.mu.RLock()
	cart, ok := r.t.store.carts[userID]
	r.t.store.mu.RUnlock()
	if !ok {
		return domain.Cart{}, domain.ErrCartNotFound
	}
	return cart, nil
}

func (r cartTx) Save(_ context.Context, cart domain.Cart) error {
	if strings.TrimSpace(cart.UserID) == "" {
		return fmt.Errorf("cart user id is required: %w", domain.ErrInvalidArgument)
	}
	if w, ok := r.t.carts[cart.UserID]; ok && w.expected != cart.Version {
		return domain.ErrCartVersionConflict
	}
	r.t.carts[cart.UserID] = cartWrite{cart: domain.RestoreCart(cart.ID, cart.UserID, cart.Items(), cart.Version, cart.CreatedAt, cart.UpdatedAt), expected: cart.Version}
	return nil
}

// --- orders ---

type orderTx struct{ t *memTx }

func (r orderTx) Create(_ context.Context, order domain.Order) error {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if _, staged := r.t.orders[order.ID]; staged {
		return domain.ErrOrderVersionConflict
	}
	r.t.orders[order.ID] = orderWrite{order: cloneOrder(order), expected: order.Version, create: true}
	return nil
}

func (r orderTx) Get(_ context.Context, id string) (domain.Order, error) {
	order, ok := r.view(id)
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return order, nil
}

func (r orderTx) GetByNumber(ctx context.Context, orderNumber string) (domain.Order, error) {
	for id, w := range r.t.orders {
		if w.order.OrderNumber == orderNumber {
			return r.Get(ctx, id)
		}
	}
	r.t.store.mu.RLock()
	id, ok := r.t.store.numbers[orderNumber]
	r.t.store.mu.RUnlock()
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return r.Get(ctx, id)
}

func (r orderTx) ListByUser(_ context.Context, userID string, filter domain.OrderFilter) ([]domain.Order, error) {
	r.t.store.mu.RLock()
	ids := make([]string, 0)
	for id, order := range r.t.store.orders {
		if order.UserID == userID {
			ids = append(ids, id)
		}
	}
	r.t.store.mu.RUnlock()
	for id, w := range r.t.orders {
		if w.create && w.order.UserID == userID {
			ids = append(ids, id)
		}
	}

	result := make([]domain.Order, 0, len(ids))
	for _, id := range ids {
		order, ok := r.view(id)
		if !ok || (!filter.IncludeDeleted && order.Status == domain.OrderStatusDeleted) {
			continue
		}
		result = append(result, order)
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})

	if filter.Limit > 0 && len(result) > filter.Limit {
		result = result[:filter.Limit]
	}
	return result, nil
}

func (r orderTx) Save(_ context.Context, order domain.Order) error {
	if w, staged := r.t.orders[order.ID]; staged {
		if w.expected != order.Version {
			return domain.ErrOrderVersionConflict
		}
		w.order = cloneOrder(order)
		r.t.orders[order.ID] = w
		return nil
	}
	r.t.store.mu.RLock()
	current, ok := r.t.store.orders[order.ID]
	r.t.store.mu.RUnlock()
	if !ok {
		return domain.ErrOrderNotFound
	}
	if current.Version != order.Version {
		return domain.ErrOrderVersionConflict
	}
	r.t.orders[order.ID] = orderWrite{order: cloneOrder(order), expected: order.Version}
	return nil
}

func (r orderTx) AppendHistory(_ context.Context, entry domain.OrderHistory) error {
	if _, ok := r.view(entry.OrderID); !ok {
		return domain.ErrOrderNotFound
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	r.t.history = append(r.t.history, entry)
	return nil
}

// view собирает заказ: зафиксированное состояние, поверх него записи этой транзакции.
func (r orderTx) view(id string) (domain.Order, bool) {
	r.t.store.mu.RLock()
	committed, ok := r.t.store.orders[id]
	committed = cloneOrder(committed)
	r.t.store.mu.RUnlock()

	order := committed
	if w, staged := r.t.orders[id]; staged {
		order = cloneOrder(w.order)
		order.Version = w.expected
		if !w.create {
			order.History = committed.History
		}
		ok = true
	}
	if !ok {
		return domain.Order{}, false
	}
	for _, entry := range r.t.history {
		if entry.OrderID == id {
			order.History = append(order.History, entry)
		}
	}
	return order, true
}

// --- users ---

type userTx struct{ t *memTx }

func (r userTx) Create(_ context.Context, user domain.User) error {
	if strings.TrimSpace(user.ID) == "" {
		return fmt.Errorf("user id is required: %w", domain.ErrInvalidArgument)
	}
	if user.CashBalance < 0 {
		return fmt.Errorf("user %s: balance must be non-negative: %w", user.ID, domain.ErrInvalidArgument)
	}
	if _, err := r.Get(context.Background(), user.ID); err == nil {
		return fmt.Errorf("user %s already exists: %w", user.ID, domain.ErrInvalidArgument)
	}
	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now
	r.t.newUsers[user.ID] = user
	return nil
}

func (r userTx) Get(_ context.Context, id string) (domain.User, error) {
	user, ok := r.t.newUsers[id]
	if !ok {
		r.t.store.mu.RLock()
		user, ok = r.t.store.users[id]
		r.t.store.mu.RUnlock()
	}
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	user.CashBalance += r.t.balanceDeltas[id]
	return user, nil
}

func (r userTx) AdjustBalance(ctx context.Context, id string, delta int64) (domain.User, error) {
	if _, err := r.Get(ctx, id); err != nil {
		return domain.User{}, err
	}
	if err := r.t.lock(ctx, "user:"+id); err != nil {
		return domain.User{}, err
	}
	user, err := r.Get(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	if user.CashBalance+delta < 0 {
		return domain.User{}, domain.NewInsufficientBalanceError(decimal.NewFromInt(-delta), user.CashBalance)
	}
	r.t.balanceDeltas[id] += delta
	user.CashBalance += delta
	return user, nil
}

// --- outbox ---

type outboxTx struct{ t *memTx }

func (r outboxTx) Enqueue(_ context.Context, msg domain.OutboxMessage) (domain.OutboxMessage, error) {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	r.t.outbox = append(r.t.outbox, msg)
	return msg, nil
}

var _ domain.Tx = (*memTx)(nil)
