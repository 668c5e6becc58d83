package memory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/shop/internal/domain"
	"github.com/vladislavdragonenkov/shop/internal/storage/memory"
)

func seedStore(t *testing.T, store *memory.Store, stock int, balance int64) {
	t.Helper()
	err := store.WithinTx(context.Background(), func(ctx context.Context, tx domain.Tx) error {
		if err := tx.Products().Create(ctx, domain.Product{ID: "p-1", Name: "Kettle", Price: decimal.NewFromInt(100), Stock: stock}); err != nil {
			return err
		}
		return tx.Users().Create(ctx, domain.User{ID: "u-1", Name: "Ann", CashBalance: balance})
	})
	require.NoError(t, err)
}

func TestStore_RollbackOnError(t *testing.T) {
	store := memory.NewStore()
	seedStore(t, store, 5, 1000)

	boom := errors.New("boom")
	err := store.WithinTx(context.Background(), func(ctx context.Context, tx domain.Tx) error {
		require.NoError(t, tx.Products().DecreaseStock(ctx, "p-1", 3))
		_, err := tx.Outbox().Enqueue(ctx, domain.OutboxMessage{EventType: domain.EventStockLow})
		require.NoError(t, err)
		return boom
	})
	require.ErrorIs(t, err, boom)

	p, _ := store.ProductSnapshot("p-1")
	require.Equal(t, 5, p.Stock)
	require.Empty(t, store.Outbox().AllPending())
}

func TestStore_DecreaseStockIsConditional(t *testing.T) {
	store := memory.NewStore()
	seedStore(t, store, 5, 1000)
	ctx := context.Background()

	err := store.WithinTx(ctx, func(ctx context.Context, tx domain.Tx) error {
		return tx.Products().DecreaseStock(ctx, "p-1", 6)
	})
	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	require.Equal(t, 5, stockErr.Available)

	err = store.WithinTx(ctx, func(ctx context.Context, tx domain.Tx) error {
		return tx.Products().DecreaseStock(ctx, "missing", 1)
	})
	require.ErrorIs(t, err, domain.ErrProductNotFound)

	require.NoError(t, store.WithinTx(ctx, func(ctx context.Context, tx domain.Tx) error {
		return tx.Products().DecreaseStock(ctx, "p-1", 5)
	}))
	p, _ := store.ProductSnapshot("p-1")
	require.Equal(t, 0, p.Stock)
}

func TestStore_ConcurrentDecreasesNeverOversell(t *testing.T) {
	store := memory.NewStore()
	seedStore(t, store, 10, 1000)

	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		success    int
		unexpected []error
	)
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := store.WithinTx(context.Background(), func(ctx context.Context, tx domain.Tx) error {
				p, err := tx.Products().GetForUpdate(ctx, "p-1")
				if err != nil {
					return err
				}
				_, err = tx.Products().DecreaseLocked(ctx, p, 1)
				return err
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				success++
			case !errors.Is(err, domain.ErrInsufficientStock):
				unexpected = append(unexpected, err)
			}
		}()
	}
	wg.Wait()

	require.Empty(t, unexpected)
	p, _ := store.ProductSnapshot("p-1")
	require.Equal(t, 10, success)
	require.Equal(t, 0, p.Stock)
}

func TestStore_CartVersionConflictAtCommit(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, store.WithinTx(ctx, func(ctx context.Context, tx domain.Tx) error {
		return tx.Carts().Save(ctx, domain.NewCart("u-1", now))
	}))

	inside := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- store.WithinTx(ctx, func(ctx context.Context, tx domain.Tx) error {
			cart, err := tx.Carts().GetByUser(ctx, "u-1")
			if err != nil {
				return err
			}
			close(inside)
			<-release
			cart.AddQuantity("p-1", 1, decimal.NewFromInt(10), now)
			return tx.Carts().Save(ctx, cart)
		})
	}()

	<-inside
	require.NoError(t, store.WithinTx(ctx, func(ctx context.Context, tx domain.Tx) error {
		cart, err := tx.Carts().GetByUser(ctx, "u-1")
		if err != nil {
			return err
		}
		cart.AddQuantity("p-2", 1, decimal.NewFromInt(20), now)
		return tx.Carts().Save(ctx, cart)
	}))
	close(release)

	require.ErrorIs(t, <-done, domain.ErrCartVersionConflict)

	require.NoError(t, store.WithinTx(ctx, func(ctx context.Context, tx domain.Tx) error {
		cart, err := tx.Carts().GetByUser(ctx, "u-1")
		require.NoError(t, err)
		require.Equal(t, int64(2), cart.Version)
		require.Len(t, cart.Items(), 1)
		return nil
	}))
}

func TestStore_OrderSaveAndHistory(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	now := time.Now().UTC()

	order, err := domain.PlaceOrder(domain.PlaceOrderParams{
		UserID: "u-1",
		Lines:  []domain.OrderLine{{ProductID: "p-1", Quantity: 1, UnitPrice: decimal.NewFromInt(100)}},
		Now:    now,
	})
	require.NoError(t, err)
	require.NoError(t, store.WithinTx(ctx, func(ctx context.Context, tx domain.Tx) error {
		return tx.Orders().Create(ctx, order)
	}))

	require.NoError(t, store.WithinTx(ctx, func(ctx context.Context, tx domain.Tx) error {
		current, err := tx.Orders().Get(ctx, order.ID)
		if err != nil {
			return err
		}
		entry, _, err := current.ChangeStatus(domain.OrderStatusPaid, "u-1", "", now)
		if err != nil {
			return err
		}
		if err := tx.Orders().Save(ctx, current); err != nil {
			return err
		}
		return tx.Orders().AppendHistory(ctx, entry)
	}))

	// Сохранение устаревшей версии должно конфликтовать.
	err = store.WithinTx(ctx, func(ctx context.Context, tx domain.Tx) error {
		stale := order
		stale.Status = domain.OrderStatusCancelled
		return tx.Orders().Save(ctx, stale)
	})
	require.ErrorIs(t, err, domain.ErrOrderVersionConflict)

	require.NoError(t, store.WithinTx(ctx, func(ctx context.Context, tx domain.Tx) error {
		stored, err := tx.Orders().GetByNumber(ctx, order.OrderNumber)
		require.NoError(t, err)
		require.Equal(t, domain.OrderStatusPaid, stored.Status)
		require.Equal(t, int64(1), stored.Version)
		require.Len(t, stored.History, 2)

		list, err := tx.Orders().ListByUser(ctx, "u-1", domain.OrderFilter{})
		require.NoError(t, err)
		require.Len(t, list, 1)
		return nil
	}))
}

func TestStore_AdjustBalanceNeverNegative(t *testing.T) {
	store := memory.NewStore()
	seedStore(t, store, 1, 100)
	ctx := context.Background()

	err := store.WithinTx(ctx, func(ctx context.Context, tx domain.Tx) error {
		_, err := tx.Users().AdjustBalance(ctx, "u-1", -101)
		return err
	})
	var balanceErr *domain.InsufficientBalanceError
	require.ErrorAs(t, err, &balanceErr)
	require.True(t, balanceErr.Shortfall.Equal(decimal.NewFromInt(1)))

	require.NoError(t, store.WithinTx(ctx, func(ctx context.Context, tx domain.Tx) error {
		user, err := tx.Users().AdjustBalance(ctx, "u-1", -100)
		require.NoError(t, err)
		require.Zero(t, user.CashBalance)
		return nil
	}))
	user, _ := store.UserSnapshot("u-1")
	require.Zero(t, user.CashBalance)
}
