// Package cart выполняет мутации корзины с проверкой склада и баланса и повтором при конфликте версий.
package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/vladislavdragonenkov/shop/internal/cache"
	"github.com/vladislavdragonenkov/shop/internal/domain"
	"github.com/vladislavdragonenkov/shop/internal/metrics"
	"github.com/vladislavdragonenkov/shop/internal/service/retry"
)

const (
	opAddItem        = "cart.add_item"
	opUpdateQuantity = "cart.update_quantity"
	opRemoveItem     = "cart.remove_item"
	opClear          = "cart.clear"
)

// Service выполняет операции над корзиной пользователя.
// Каждая мутация выполняется одной транзакцией; при конфликте версии корзины она перезапускается целиком.
type Service struct {
	store   domain.Store
	retrier *retry.Retrier
	cache   cache.CartCache
	logger  *log.Entry
	metrics *metrics.ShopMetrics
	now     func() time.Time

	loads singleflight.Group
}

// NewService создаёт сервис корзины. при cartCache == nil кеш выключен.
func NewService(store domain.Store, retrier *retry.Retrier, cartCache cache.CartCache, logger *log.Entry, m *metrics.ShopMetrics) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "cart")
	}
	if retrier == nil {
		retrier = retry.New(retry.DefaultConfig(), logger, m)
	}
	if cartCache == nil {
		cartCache = cache.Noop{}
	}
	return &Service{
		store:   store,
		retrier: retrier,
		cache:   cartCache,
		logger:  logger,
		metrics: m,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// GetCart возвращает корзину пользователя. Отсутствующая корзина отдаётся пустой и не сохраняется.
func (s *Service) GetCart(ctx context.Context, userID string) (domain.Cart, error) {
	if err := requireID("user id", userID); err != nil {
		return domain.Cart{}, err
	}

	if cached, ok, err := s.cache.Get(ctx, userID); err != nil {
		s.metrics.RecordCartCache("error")
		s.logger.WithError(err).WithField("user_id", userID).Warn("cart cache read failed")
	} else if ok {
		s.metrics.RecordCartCache("hit")
		return cached, nil
	}
	s.metrics.RecordCartCache("miss")

	value, err, _ := s.loads.Do(userID, func() (any, error) {
		var loaded domain.Cart
		err := s.store.WithinTx(ctx, func(ctx context.Context, tx domain.Tx) error {
			var err error
			loaded, err = tx.Carts().GetByUser(ctx, userID)
			return err
		})
		if errors.Is(err, domain.ErrCartNotFound) {
			return domain.NewCart(userID, s.now()), nil
		}
		if err != nil {
			return domain.Cart{}, err
		}
		if err := s.cache.Set(ctx, loaded); err != nil {
			s.logger.WithError(err).WithField("user_id", userID).Warn("cart cache write failed")
		}
		return loaded, nil
	})
	if err != nil {
		return domain.Cart{}, err
	}
	return value.(domain.Cart), nil
}

// AddItem добавляет qty единиц товара. Остаток проверяется на итоговое количество строки,
// баланс проверяется на сумму корзины после добавления.
func (s *Service) AddItem(ctx context.Context, userID, productID string, qty int) (domain.Cart, error) {
	if err := validateLine(userID, productID); err != nil {
		return domain.Cart{}, err
	}
	if err := domain.ValidateQuantity(qty); err != nil {
		return domain.Cart{}, err
	}

	return s.mutate(ctx, opAddItem, userID, func(ctx context.Context, tx domain.Tx, cart *domain.Cart, now time.Time) error {
		product, err := tx.Products().GetProduct(ctx, productID)
		if err != nil {
			return err
		}

		requested := qty
		if line, ok := cart.Line(productID); ok {
			requested += line.Quantity
		}
		if !product.CanFulfil(requested) {
			return &domain.InsufficientStockError{ProductID: productID, Requested: requested, Available: product.Stock}
		}

		user, err := tx.Users().Get(ctx, userID)
		if err != nil {
			return err
		}
		if err := domain.CheckAffordable(cart.ProspectiveTotal(productID, qty, product.Price), user.CashBalance); err != nil {
			return err
		}

		cart.AddQuantity(productID, qty, product.Price, now)
		return nil
	})
}

// UpdateQuantity задаёт абсолютное количество строки; qty <= 0 удаляет строку.
// Баланс проверяется только на прирост, уменьшение разрешено всегда.
func (s *Service) UpdateQuantity(ctx context.Context, userID, productID string, qty int) (domain.Cart, error) {
	if qty <= 0 {
		return s.RemoveItem(ctx, userID, productID)
	}
	if err := validateLine(userID, productID); err != nil {
		return domain.Cart{}, err
	}

	return s.mutate(ctx, opUpdateQuantity, userID, func(ctx context.Context, tx domain.Tx, cart *domain.Cart, now time.Time) error {
		product, err := tx.Products().GetProduct(ctx, productID)
		if err != nil {
			return err
		}
		if !product.CanFulfil(qty) {
			return &domain.InsufficientStockError{ProductID: productID, Requested: qty, Available: product.Stock}
		}

		current := 0
		if line, ok := cart.Line(productID); ok {
			current = line.Quantity
		}
		if increase := qty - current; increase > 0 {
			user, err := tx.Users().Get(ctx, userID)
			if err != nil {
				return err
			}
			if err := domain.CheckAffordable(cart.ProspectiveTotal(productID, increase, product.Price), user.CashBalance); err != nil {
				return err
			}
		}

		cart.SetQuantity(productID, qty, product.Price, now)
		return nil
	})
}

// RemoveItem удаляет строку товара; для отсутствующей строки возвращается ErrCartItemNotFound.
func (s *Service) RemoveItem(ctx context.Context, userID, productID string) (domain.Cart, error) {
	if err := validateLine(userID, productID); err != nil {
		return domain.Cart{}, err
	}

	return s.mutate(ctx, opRemoveItem, userID, func(_ context.Context, _ domain.Tx, cart *domain.Cart, now time.Time) error {
		if !cart.Remove(productID, now) {
			return domain.ErrCartItemNotFound
		}
		return nil
	})
}

// Clear очищает корзину безусловно.
func (s *Service) Clear(ctx context.Context, userID string) (domain.Cart, error) {
	if err := requireID("user id", userID); err != nil {
		return domain.Cart{}, err
	}

	return s.mutate(ctx, opClear, userID, func(_ context.Context, _ domain.Tx, cart *domain.Cart, now time.Time) error {
		cart.Clear(now)
		return nil
	})
}

type mutation func(ctx context.Context, tx domain.Tx, cart *domain.Cart, now time.Time) error

// mutate читает (или создаёт) корзину, применяет fn и сохраняет её с проверкой версии.
// Весь цикл повторяется ретраером при конфликте.
func (s *Service) mutate(ctx context.Context, operation, userID string, fn mutation) (domain.Cart, error) {
	var result domain.Cart
	err := s.retrier.Do(ctx, operation, func(ctx context.Context) error {
		return s.store.WithinTx(ctx, func(ctx context.Context, tx domain.Tx) error {
			now := s.now()
			cart, err := tx.Carts().GetByUser(ctx, userID)
			if errors.Is(err, domain.ErrCartNotFound) {
				cart = domain.NewCart(userID, now)
			} else if err != nil {
				return err
			}

			if err := fn(ctx, tx, &cart, now); err != nil {
				return err
			}
			if err := tx.Carts().Save(ctx, cart); err != nil {
				return err
			}
			cart.Version++
			result = cart
			return nil
		})
	})
	if err != nil {
		s.metrics.RecordCartMutation(operation, resultLabel(err))
		s.logger.WithError(err).WithFields(log.Fields{
			"operation": operation,
			"user_id":   userID,
		}).Debug("cart mutation rejected")
		return domain.Cart{}, err
	}

	s.writeThrough(ctx, result)
	s.metrics.RecordCartMutation(operation, "ok")
	s.logger.WithFields(log.Fields{
		"operation": operation,
		"user_id":   userID,
		"version":   result.Version,
		"total":     result.TotalPrice().StringFixed(2),
	}).Debug("cart updated")
	return result, nil
}

// Invalidate заменяет снимок в кеше зафиксированной корзиной из хранилища.
// Вызывается checkout после очистки корзины в своей транзакции.
func (s *Service) Invalidate(ctx context.Context, userID string) {
	var committed domain.Cart
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx domain.Tx) error {
		var err error
		committed, err = tx.Carts().GetByUser(ctx, userID)
		return err
	})
	if err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Debug("cart reload after checkout failed")
		s.drop(ctx, userID)
		return
	}
	s.writeThrough(ctx, committed)
}

// writeThrough кладёт в кеш корзину после коммита. Более новая версия вытесняет снимок,
// который параллельный GetCart прочитал до коммита и ещё не успел записать.
func (s *Service) writeThrough(ctx context.Context, committed domain.Cart) {
	s.loads.Forget(committed.UserID)
	if err := s.cache.Set(ctx, committed); err != nil {
		s.logger.WithError(err).WithField("user_id", committed.UserID).Warn("cart cache write-through failed")
		s.drop(ctx, committed.UserID)
	}
}

func (s *Service) drop(ctx context.Context, userID string) {
	s.loads.Forget(userID)
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Warn("cart cache invalidation failed")
	}
}

func resultLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrConcurrencyConflict):
		return "conflict"
	case errors.Is(err, domain.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, domain.ErrInsufficientBalance):
		return "insufficient_balance"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidArgument):
		return "invalid"
	default:
		return "error"
	}
}

func validateLine(userID, productID string) error {
	if err := requireID("user id", userID); err != nil {
		return err
	}
	return requireID("product id", productID)
}

func requireID(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", domain.ErrInvalidArgument, name)
	}
	return nil
}
