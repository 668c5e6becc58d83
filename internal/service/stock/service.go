// Package stock реализует складскую книгу для самостоятельных вызовов: каждая операция
// выполняется в собственной транзакции.
package stock

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/shop/internal/domain"
	"github.com/vladislavdragonenkov/shop/internal/metrics"
)

// Service обслуживает удалённый StockService и consumer пополнений.
type Service struct {
	store   domain.Store
	logger  *log.Entry
	metrics *metrics.ShopMetrics
	now     func() time.Time
}

// NewService создаёт складской сервис поверх транзакционного хранилища.
func NewService(store domain.Store, logger *log.Entry, m *metrics.ShopMetrics) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "stock")
	}
	return &Service{
		store:   store,
		logger:  logger,
		metrics: m,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// GetProduct возвращает снимок товара.
func (s *Service) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	var product domain.Product
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx domain.Tx) error {
		var err error
		product, err = tx.Products().GetProduct(ctx, id)
		return err
	})
	return product, err
}

// DecreaseStock условно списывает qty единиц; при нехватке остаток не меняется.
func (s *Service) DecreaseStock(ctx context.Context, productID string, qty int) error {
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx domain.Tx) error {
		return tx.Products().DecreaseStock(ctx, productID, qty)
	})
	if err != nil {
		s.logger.WithError(err).WithFields(log.Fields{
			"product_id": productID,
			"quantity":   qty,
		}).Debug("stock decrease rejected")
		return err
	}
	return nil
}

// IncreaseStock возвращает qty единиц на склад и публикует stock.restored.
func (s *Service) IncreaseStock(ctx context.Context, productID string, qty int) error {
	return s.Restock(ctx, productID, qty, "")
}

// Restock пополняет остаток; reference попадает в событие (номер поставки, ID заказа).
func (s *Service) Restock(ctx context.Context, productID string, qty int, reference string) error {
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx domain.Tx) error {
		if err := tx.Products().IncreaseStock(ctx, productID, qty); err != nil {
			return err
		}
		product, err := tx.Products().GetProduct(ctx, productID)
		if err != nil {
			return err
		}
		msg, err := domain.NewOutboxMessage(domain.AggregateProduct, productID, domain.EventStockRestored, domain.StockEventPayload{
			ProductID:  productID,
			Quantity:   qty,
			Remaining:  product.Stock,
			OrderID:    reference,
			OccurredAt: s.now(),
		})
		if err != nil {
			return err
		}
		_, err = tx.Outbox().Enqueue(ctx, msg)
		return err
	})
	if err != nil {
		return fmt.Errorf("restock %s: %w", productID, err)
	}

	s.logger.WithFields(log.Fields{
		"product_id": productID,
		"quantity":   qty,
		"reference":  reference,
	}).Info("stock restored")
	return nil
}

var (
	_ domain.StockLedger    = (*Service)(nil)
	_ domain.ProductCatalog = (*Service)(nil)
)
