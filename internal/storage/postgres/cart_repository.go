package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/shop/internal/domain"
)

type cartRepository struct {
	q queryer
}

func (r *cartRepository) GetByUser(ctx context.Context, userID string) (domain.Cart, error) {
	var (
		id                   string
		version              int64
		createdAt, updatedAt time.Time
	)
	err := r.q.QueryRowContext(ctx, `
		SELECT id, version, created_at, updated_at
		FROM carts
		WHERE user_id = $1
	`, userID).Scan(&id, &version, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Cart{}, domain.ErrCartNotFound
		}
		return domain.Cart{}, fmt.Errorf("select cart: %w", err)
	}

	items, err := r.loadItems(ctx, id)
	if err != nil {
		return domain.Cart{}, err
	}
	return domain.RestoreCart(id, userID, items, version, createdAt, updatedAt), nil
}

// Save вставляет новую корзину или обновляет существующую по совпадению версии,
// после чего целиком переписывает её позиции.
func (r *cartRepository) Save(ctx context.Context, cart domain.Cart) error {
	if cart.IsNew() {
		if _, err := r.q.ExecContext(ctx, `
			INSERT INTO carts (id, user_id, total_price, version, created_at, updated_at)
			VALUES ($1,$2,$3,1,$4,$5)
		`, cart.ID, cart.UserID, cart.TotalPrice(), cart.CreatedAt, cart.UpdatedAt); err != nil {
			if isUniqueViolation(err) {
				return domain.ErrCartVersionConflict
			}
			return fmt.Errorf("insert cart: %w", err)
		}
	} else {
		res, err := r.q.ExecContext(ctx, `
			UPDATE carts
			SET total_price = $1,
			    version = version + 1,
			    updated_at = $2
			WHERE id = $3
			  AND version = $4
		`, cart.TotalPrice(), cart.UpdatedAt, cart.ID, cart.Version)
		if err != nil {
			return fmt.Errorf("update cart: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("rows affected: %w", err)
		}
		if affected == 0 {
			exists, err := r.cartExists(ctx, cart.ID)
			if err != nil {
				return err
			}
			if !exists {
				return domain.ErrCartNotFound
			}
			return domain.ErrCartVersionConflict
		}
	}

	if _, err := r.q.ExecContext(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, cart.ID); err != nil {
		return fmt.Errorf("clear cart items: %w", err)
	}
	for pos, item := range cart.Items() {
		if _, err := r.q.ExecContext(ctx, `
			INSERT INTO cart_items (cart_id, product_id, position, quantity, price, added_at)
			VALUES ($1,$2,$3,$4,$5,$6)
		`, cart.ID, item.ProductID, pos, item.Quantity, item.Price, item.AddedAt); err != nil {
			return fmt.Errorf("insert cart item: %w", err)
		}
	}
	return nil
}

func (r *cartRepository) loadItems(ctx context.Context, cartID string) ([]domain.CartItem, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT product_id, quantity, price, added_at
		FROM cart_items
		WHERE cart_id = $1
		ORDER BY position ASC
	`, cartID)
	if err != nil {
		return nil, fmt.Errorf("load cart items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.CartItem, 0)
	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(&item.ProductID, &item.Quantity, &item.Price, &item.AddedAt); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cart items: %w", err)
	}
	return items, nil
}

func (r *cartRepository) cartExists(ctx context.Context, cartID string) (bool, error) {
	var id string
	err := r.q.QueryRowContext(ctx, `SELECT id FROM carts WHERE id = $1`, cartID).Scan(&id)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return false, fmt.Errorf("check cart exists: %w", err)
}

var _ domain.CartRepository = (*cartRepository)(nil)
