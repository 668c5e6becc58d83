// Package checkout превращает корзину в заказ одной транзакцией.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/shop/internal/domain"
	"github.com/vladislavdragonenkov/shop/internal/metrics"
	"github.com/vladislavdragonenkov/shop/internal/service/retry"
)

const (
	opCheckout = "checkout"

	// DefaultLowStockThreshold: остаток, при котором публикуется stock.low.
	DefaultLowStockThreshold = 5
)

// Request: параметры оформления заказа.
type Request struct {
	UserID         string
	Shipping       domain.ShippingInfo
	PaymentMethod  domain.PaymentMethod
	ShippingAmount decimal.Decimal
	DiscountAmount decimal.Decimal
}

// RemoteStock: склад другого сервиса. Списание на нём не откатывается вместе
// с локальной транзакцией, поэтому применённые шаги компенсируются явно.
type RemoteStock interface {
	domain.StockLedger
	domain.ProductCatalog
}

// CartInvalidator сбрасывает кеш корзины после оформления.
type CartInvalidator interface {
	Invalidate(ctx context.Context, userID string)
}

// Option настраивает Service.
type Option func(*Service)

// WithRemoteStock переключает checkout на удалённый склад.
func WithRemoteStock(remote RemoteStock) Option {
	return func(s *Service) {
		s.remote = remote
	}
}

// WithLowStockThreshold задаёт порог stock.low; отрицательное значение выключает события.
func WithLowStockThreshold(threshold int) Option {
	return func(s *Service) {
		s.lowStockThreshold = threshold
	}
}

// WithCartInvalidator подключает сброс кеша корзины.
func WithCartInvalidator(inv CartInvalidator) Option {
	return func(s *Service) {
		s.carts = inv
	}
}

// Service оформляет заказы.
type Service struct {
	store             domain.Store
	retrier           *retry.Retrier
	remote            RemoteStock
	carts             CartInvalidator
	lowStockThreshold int
	logger            *log.Entry
	metrics           *metrics.ShopMetrics
	now               func() time.Time
}

// NewService создаёт сервис оформления заказа.
func NewService(store domain.Store, retrier *retry.Retrier, logger *log.Entry, m *metrics.ShopMetrics, opts ...Option) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "checkout")
	}
	if retrier == nil {
		retrier = retry.New(retry.DefaultConfig(), logger, m)
	}
	s := &Service{
		store:             store,
		retrier:           retrier,
		lowStockThreshold: DefaultLowStockThreshold,
		logger:            logger,
		metrics:           m,
		now:               func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// reservedLine: позиция, прошедшая проверку склада, и остаток после списания.
type reservedLine struct {
	line      domain.OrderLine
	remaining int
}

// Checkout оформляет заказ из корзины пользователя. Либо создаются заказ, списание
// остатков и очистка корзины, либо не меняется ничего.
func (s *Service) Checkout(ctx context.Context, req Request) (domain.Order, error) {
	started := time.Now()
	if strings.TrimSpace(req.UserID) == "" {
		return domain.Order{}, fmt.Errorf("%w: user id is required", domain.ErrInvalidArgument)
	}
	if req.ShippingAmount.IsNegative() || req.DiscountAmount.IsNegative() {
		return domain.Order{}, fmt.Errorf("%w: shipping and discount must be non-negative", domain.ErrInvalidArgument)
	}

	var order domain.Order
	err := s.retrier.Do(ctx, opCheckout, func(ctx context.Context) error {
		var applied []domain.OrderLine
		err := s.store.WithinTx(ctx, func(ctx context.Context, tx domain.Tx) error {
			var err error
			order, err = s.checkoutTx(ctx, tx, req, &applied)
			return err
		})
		if err != nil && len(applied) > 0 {
			s.compensate(ctx, req.UserID, applied)
		}
		return err
	})

	s.metrics.RecordCheckout(resultLabel(err), time.Since(started))
	if err != nil {
		s.logger.WithError(err).WithField("user_id", req.UserID).Info("checkout rejected")
		return domain.Order{}, err
	}

	if s.carts != nil {
		s.carts.Invalidate(ctx, req.UserID)
	}
	s.logger.WithFields(log.Fields{
		"user_id":      req.UserID,
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
		"total":        order.TotalAmount.StringFixed(2),
		"items":        len(order.Items),
	}).Info("order placed")
	return order, nil
}

func (s *Service) checkoutTx(ctx context.Context, tx domain.Tx, req Request, applied *[]domain.OrderLine) (domain.Order, error) {
	now := s.now()

	if _, err := tx.Users().Get(ctx, req.UserID); err != nil {
		return domain.Order{}, err
	}
	cart, err := tx.Carts().GetByUser(ctx, req.UserID)
	if errors.Is(err, domain.ErrCartNotFound) {
		return domain.Order{}, domain.ErrEmptyCart
	}
	if err != nil {
		return domain.Order{}, err
	}
	if cart.IsEmpty() {
		return domain.Order{}, domain.ErrEmptyCart
	}

	// Возрастающий порядок товаров задаёт единый порядок захвата блокировок для всех checkout.
	items := cart.Items()
	sort.Slice(items, func(i, j int) bool { return items[i].ProductID < items[j].ProductID })

	var reserved []reservedLine
	if s.remote != nil {
		reserved, err = s.reserveRemote(ctx, items, applied)
	} else {
		reserved, err = s.reserveLocal(ctx, tx, items)
	}
	if err != nil {
		return domain.Order{}, err
	}

	lines := make([]domain.OrderLine, 0, len(reserved))
	for _, r := range reserved {
		lines = append(lines, r.line)
	}
	order, err := domain.PlaceOrder(domain.PlaceOrderParams{
		UserID:         req.UserID,
		Lines:          lines,
		ShippingAmount: req.ShippingAmount,
		DiscountAmount: req.DiscountAmount,
		PaymentMethod:  req.PaymentMethod,
		Shipping:       req.Shipping,
		Now:            now,
	})
	if err != nil {
		return domain.Order{}, err
	}
	if err := tx.Orders().Create(ctx, order); err != nil {
		return domain.Order{}, err
	}

	cart.Clear(now)
	if err := tx.Carts().Save(ctx, cart); err != nil {
		return domain.Order{}, err
	}

	if err := s.enqueueEvents(ctx, tx, order, reserved, now); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

// reserveLocal списывает остатки под блокировкой строк: GetForUpdate, затем DecreaseLocked.
func (s *Service) reserveLocal(ctx context.Context, tx domain.Tx, items []domain.CartItem) ([]reservedLine, error) {
	reserved := make([]reservedLine, 0, len(items))
	for _, item := range items {
		product, err := tx.Products().GetForUpdate(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if !product.CanFulfil(item.Quantity) {
			return nil, &domain.InsufficientStockError{ProductID: item.ProductID, Requested: item.Quantity, Available: product.Stock}
		}
		after, err := tx.Products().DecreaseLocked(ctx, product, item.Quantity)
		if err != nil {
			return nil, err
		}
		reserved = append(reserved, reservedLine{
			line:      domain.OrderLine{ProductID: product.ID, Quantity: item.Quantity, UnitPrice: product.Price},
			remaining: after.Stock,
		})
	}
	return reserved, nil
}

// reserveRemote списывает остатки на удалённом складе условной записью.
// Каждый успешный шаг попадает в applied для компенсации.
func (s *Service) reserveRemote(ctx context.Context, items []domain.CartItem, applied *[]domain.OrderLine) ([]reservedLine, error) {
	reserved := make([]reservedLine, 0, len(items))
	for _, item := range items {
		product, err := s.remote.GetProduct(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if err := s.remote.DecreaseStock(ctx, item.ProductID, item.Quantity); err != nil {
			return nil, err
		}
		line := domain.OrderLine{ProductID: product.ID, Quantity: item.Quantity, UnitPrice: product.Price}
		*applied = append(*applied, line)
		reserved = append(reserved, reservedLine{line: line, remaining: product.Stock - item.Quantity})
	}
	return reserved, nil
}

// compensate возвращает удалённому складу уже списанные единицы в обратном порядке.
// Сбой компенсации логируется и не меняет ошибку checkout.
func (s *Service) compensate(ctx context.Context, userID string, applied []domain.OrderLine) {
	if s.remote == nil {
		return
	}
	compCtx := context.WithoutCancel(ctx)
	for i := len(applied) - 1; i >= 0; i-- {
		line := applied[i]
		if err := s.remote.IncreaseStock(compCtx, line.ProductID, line.Quantity); err != nil {
			s.logger.WithError(err).WithFields(log.Fields{
				"user_id":    userID,
				"product_id": line.ProductID,
				"quantity":   line.Quantity,
			}).Error("remote stock compensation failed")
			continue
		}
		s.metrics.RecordStockRestored(line.Quantity)
	}
}

func (s *Service) enqueueEvents(ctx context.Context, tx domain.Tx, order domain.Order, reserved []reservedLine, now time.Time) error {
	created, err := domain.OrderEvent(domain.EventOrderCreated, order, "", domain.ActorSystem, "", now)
	if err != nil {
		return err
	}
	if _, err := tx.Outbox().Enqueue(ctx, created); err != nil {
		return err
	}

	if s.lowStockThreshold < 0 {
		return nil
	}
	for _, r := range reserved {
		if r.remaining > s.lowStockThreshold {
			continue
		}
		msg, err := domain.NewOutboxMessage(domain.AggregateProduct, r.line.ProductID, domain.EventStockLow, domain.StockEventPayload{
			ProductID:  r.line.ProductID,
			Quantity:   r.line.Quantity,
			Remaining:  r.remaining,
			OrderID:    order.ID,
			OccurredAt: now,
		})
		if err != nil {
			return err
		}
		if _, err := tx.Outbox().Enqueue(ctx, msg); err != nil {
			return err
		}
	}
	return nil
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrEmptyCart):
		return "empty_cart"
	case errors.Is(err, domain.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, domain.ErrConcurrencyConflict):
		return "conflict"
	case errors.Is(err, domain.ErrStockUnavailable):
		return "stock_unavailable"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidArgument):
		return "invalid"
	default:
		return "error"
	}
}
