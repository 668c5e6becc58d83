// Package order управляет жизненным циклом заказа: переходы статусов, отмена с возвратом товара
// на склад, логическое удаление и оплата с денежного баланса.
package order

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/shop/internal/domain"
	"github.com/vladislavdragonenkov/shop/internal/metrics"
	"github.com/vladislavdragonenkov/shop/internal/service/retry"
)

const (
	opUpdateStatus = "order.update_status"
	opCancel       = "order.cancel"
	opDelete       = "order.delete"
	opPay          = "order.pay"
)

// Option настраивает Service.
type Option func(*Service)

// WithRemoteStock возвращает товар при отмене на удалённый склад, а не в локальную книгу.
func WithRemoteStock(remote domain.StockLedger) Option {
	return func(s *Service) {
		s.remote = remote
	}
}

// Service управляет статусами заказов.
type Service struct {
	store   domain.Store
	retrier *retry.Retrier
	remote  domain.StockLedger
	logger  *log.Entry
	metrics *metrics.ShopMetrics
	now     func() time.Time
}

// NewService создаёт сервис жизненного цикла заказа.
func NewService(store domain.Store, retrier *retry.Retrier, logger *log.Entry, m *metrics.ShopMetrics, opts ...Option) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "order")
	}
	if retrier == nil {
		retrier = retry.New(retry.DefaultConfig(), logger, m)
	}
	s := &Service{
		store:   store,
		retrier: retrier,
		logger:  logger,
		metrics: m,
		now:     func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get возвращает заказ с позициями и историей.
func (s *Service) Get(ctx context.Context, orderID string) (domain.Order, error) {
	if err := requireID("order id", orderID); err != nil {
		return domain.Order{}, err
	}
	var order domain.Order
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx domain.Tx) error {
		var err error
		order, err = tx.Orders().Get(ctx, orderID)
		return err
	})
	return order, err
}

// GetByNumber ищет заказ по номеру.
func (s *Service) GetByNumber(ctx context.Context, orderNumber string) (domain.Order, error) {
	if err := requireID("order number", orderNumber); err != nil {
		return domain.Order{}, err
	}
	var order domain.Order
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx domain.Tx) error {
		var err error
		order, err = tx.Orders().GetByNumber(ctx, orderNumber)
		return err
	})
	return order, err
}

// ListByUser возвращает заказы пользователя, новые первыми.
func (s *Service) ListByUser(ctx context.Context, userID string, filter domain.OrderFilter) ([]domain.Order, error) {
	if err := requireID("user id", userID); err != nil {
		return nil, err
	}
	var orders []domain.Order
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx domain.Tx) error {
		var err error
		orders, err = tx.Orders().ListByUser(ctx, userID, filter)
		return err
	})
	return orders, err
}

// UpdateStatus переводит заказ в newStatus. Переход в текущий статус ничего не меняет.
func (s *Service) UpdateStatus(ctx context.Context, orderID string, newStatus domain.OrderStatus, actor string) (domain.Order, error) {
	return s.transition(ctx, opUpdateStatus, transitionRequest{
		orderID: orderID,
		to:      newStatus,
		actor:   actor,
	})
}

// CancelOrder отменяет заказ; reason попадает в историю.
// Отмена из PENDING или PAID возвращает товар на склад, а списанный баланс возвращается пользователю.
func (s *Service) CancelOrder(ctx context.Context, orderID, reason string) (domain.Order, error) {
	return s.transition(ctx, opCancel, transitionRequest{
		orderID: orderID,
		to:      domain.OrderStatusCancelled,
		actor:   domain.ActorUser,
		message: strings.TrimSpace(reason),
	})
}

// MarkDeleted логически удаляет заказ. Склад не трогается.
func (s *Service) MarkDeleted(ctx context.Context, orderID string) (domain.Order, error) {
	return s.transition(ctx, opDelete, transitionRequest{
		orderID: orderID,
		to:      domain.OrderStatusDeleted,
		actor:   domain.ActorSystem,
	})
}

// PayWithBalance оплачивает PENDING-заказ с денежного баланса владельца.
func (s *Service) PayWithBalance(ctx context.Context, orderID, userID string) (domain.Order, error) {
	if err := requireID("user id", userID); err != nil {
		return domain.Order{}, err
	}
	return s.transition(ctx, opPay, transitionRequest{
		orderID: orderID,
		to:      domain.OrderStatusPaid,
		actor:   userID,
		before: func(ctx context.Context, tx domain.Tx, order *domain.Order) error {
			if order.UserID != userID {
				return domain.ErrOrderNotOwned
			}
			if order.Status != domain.OrderStatusPending {
				return &domain.InvalidTransitionError{From: order.Status, To: domain.OrderStatusPaid}
			}

			user, err := tx.Users().Get(ctx, userID)
			if err != nil {
				return err
			}
			if err := domain.CheckAffordable(order.TotalAmount, user.CashBalance); err != nil {
				return err
			}
			charge := domain.BalanceUnits(order.TotalAmount)
			if _, err := tx.Users().AdjustBalance(ctx, userID, -charge); err != nil {
				return err
			}
			order.PaymentMethod = domain.PaymentMethodCashBalance
			order.BalanceCharged = charge
			return nil
		},
	})
}

type transitionRequest struct {
	orderID string
	to      domain.OrderStatus
	actor   string
	message string
	// before выполняется в транзакции до смены статуса.
	before func(ctx context.Context, tx domain.Tx, order *domain.Order) error
}

func (s *Service) transition(ctx context.Context, operation string, req transitionRequest) (domain.Order, error) {
	if err := requireID("order id", req.orderID); err != nil {
		return domain.Order{}, err
	}
	if !req.to.Valid() {
		return domain.Order{}, fmt.Errorf("%w: unknown order status %q", domain.ErrInvalidArgument, req.to)
	}

	var (
		result  domain.Order
		from    domain.OrderStatus
		changed bool
	)
	err := s.retrier.Do(ctx, operation, func(ctx context.Context) error {
		var restoredRemote []domain.OrderItem
		err := s.store.WithinTx(ctx, func(ctx context.Context, tx domain.Tx) error {
			order, err := tx.Orders().Get(ctx, req.orderID)
			if err != nil {
				return err
			}
			from = order.Status

			if req.before != nil {
				if err := req.before(ctx, tx, &order); err != nil {
					return err
				}
			}

			now := s.now()
			entry, ok, err := order.ChangeStatus(req.to, req.actor, req.message, now)
			if err != nil {
				return err
			}
			changed = ok
			if !ok {
				result = order
				return nil
			}

			if err := tx.Orders().Save(ctx, order); err != nil {
				return err
			}
			if err := tx.Orders().AppendHistory(ctx, entry); err != nil {
				return err
			}

			if domain.RestoresStock(from, req.to) {
				if err := s.restoreStock(ctx, tx, order, now, &restoredRemote); err != nil {
					return err
				}
			}
			if req.to == domain.OrderStatusCancelled && order.BalanceCharged > 0 {
				if _, err := tx.Users().AdjustBalance(ctx, order.UserID, order.BalanceCharged); err != nil {
					return fmt.Errorf("refund order %s: %w", order.ID, err)
				}
			}

			if err := s.enqueueStatusEvent(ctx, tx, order, from, req, now); err != nil {
				return err
			}

			order.Version++
			result = order
			return nil
		})
		if err != nil && len(restoredRemote) > 0 {
			s.undoRemoteRestore(ctx, req.orderID, restoredRemote)
		}
		return err
	})
	if err != nil {
		s.logger.WithError(err).WithFields(log.Fields{
			"operation": operation,
			"order_id":  req.orderID,
			"to":        req.to,
		}).Info("order transition rejected")
		return domain.Order{}, err
	}

	if changed {
		s.metrics.RecordTransition(string(from), string(req.to))
		if domain.RestoresStock(from, req.to) {
			s.metrics.RecordStockRestored(totalUnits(result.Items))
		}
		s.logger.WithFields(log.Fields{
			"order_id":     result.ID,
			"order_number": result.OrderNumber,
			"from":         from,
			"to":           req.to,
			"actor":        req.actor,
		}).Info("order status changed")
	}
	return result, nil
}

// restoreStock возвращает на склад все позиции заказа в порядке возрастания ID товара.
func (s *Service) restoreStock(ctx context.Context, tx domain.Tx, order domain.Order, now time.Time, restoredRemote *[]domain.OrderItem) error {
	items := append([]domain.OrderItem(nil), order.Items...)
	sort.Slice(items, func(i, j int) bool { return items[i].ProductID < items[j].ProductID })

	for _, item := range items {
		if s.remote != nil {
			if err := s.remote.IncreaseStock(ctx, item.ProductID, item.Quantity); err != nil {
				return fmt.Errorf("restore stock of %s: %w", item.ProductID, err)
			}
			*restoredRemote = append(*restoredRemote, item)
			continue
		}

		if err := tx.Products().IncreaseStock(ctx, item.ProductID, item.Quantity); err != nil {
			return fmt.Errorf("restore stock of %s: %w", item.ProductID, err)
		}
		product, err := tx.Products().GetProduct(ctx, item.ProductID)
		if err != nil {
			return err
		}
		msg, err := domain.NewOutboxMessage(domain.AggregateProduct, item.ProductID, domain.EventStockRestored, domain.StockEventPayload{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			Remaining:  product.Stock,
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

// undoRemoteRestore снова списывает единицы, возвращённые удалённому складу в откатившейся транзакции.
func (s *Service) undoRemoteRestore(ctx context.Context, orderID string, items []domain.OrderItem) {
	compCtx := context.WithoutCancel(ctx)
	for i := len(items) - 1; i >= 0; i-- {
		item := items[i]
		if err := s.remote.DecreaseStock(compCtx, item.ProductID, item.Quantity); err != nil {
			s.logger.WithError(err).WithFields(log.Fields{
				"order_id":   orderID,
				"product_id": item.ProductID,
				"quantity":   item.Quantity,
			}).Error("remote stock compensation failed")
		}
	}
}

func (s *Service) enqueueStatusEvent(ctx context.Context, tx domain.Tx, order domain.Order, from domain.OrderStatus, req transitionRequest, now time.Time) error {
	eventType := domain.EventOrderStatusChanged
	if req.to == domain.OrderStatusCancelled {
		eventType = domain.EventOrderCancelled
	}
	msg, err := domain.OrderEvent(eventType, order, from, req.actor, req.message, now)
	if err != nil {
		return err
	}
	_, err = tx.Outbox().Enqueue(ctx, msg)
	return err
}

func totalUnits(items []domain.OrderItem) int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return total
}

func requireID(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", domain.ErrInvalidArgument, name)
	}
	return nil
}
