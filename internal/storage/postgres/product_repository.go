package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/shop/internal/domain"
)

const productColumns = `id, name, price, stock, version, created_at, updated_at`

type productRepository struct {
	q queryer
}

func (r *productRepository) Create(ctx context.Context, p domain.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}

	_, err := r.q.ExecContext(ctx, `
		INSERT INTO products (id, name, price, stock, version, created_at, updated_at)
		VALUES ($1,$2,$3,$4,0,$5,$6)
	`, p.ID, p.Name, p.Price, p.Stock, p.CreatedAt, now)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("product %s already exists: %w", p.ID, domain.ErrInvalidArgument)
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *productRepository) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	return r.get(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

// GetForUpdate: эксклюзивная дисциплина: строка заблокирована до конца транзакции.
func (r *productRepository) GetForUpdate(ctx context.Context, id string) (domain.Product, error) {
	return r.get(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1 FOR UPDATE`, id)
}

func (r *productRepository) DecreaseLocked(ctx context.Context, p domain.Product, qty int) (domain.Product, error) {
	if err := domain.ValidateQuantity(qty); err != nil {
		return domain.Product{}, err
	}

	// Остаток проверяет сама строка: снимок p мог устареть, если его прочитали без FOR UPDATE.
	updated, err := r.get(ctx, `
		UPDATE products
		SET stock = stock - $2,
		    version = version + 1,
		    updated_at = NOW()
		WHERE id = $1
		  AND stock >= $2
		RETURNING `+productColumns, p.ID, qty)
	switch {
	case err == nil:
		return updated, nil
	case errors.Is(err, domain.ErrProductNotFound):
		return domain.Product{}, r.insufficientOrMissing(ctx, p.ID, qty)
	default:
		return domain.Product{}, err
	}
}

// DecreaseStock: условная дисциплина: одна запись, которая проверяет и списывает остаток.
func (r *productRepository) DecreaseStock(ctx context.Context, productID string, qty int) error {
	if err := domain.ValidateQuantity(qty); err != nil {
		return err
	}

	res, err := r.q.ExecContext(ctx, `
		UPDATE products
		SET stock = stock - $2,
		    version = version + 1,
		    updated_at = NOW()
		WHERE id = $1
		  AND stock >= $2
	`, productID, qty)
	if err != nil {
		return fmt.Errorf("decrease stock: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 1 {
		return nil
	}

	return r.insufficientOrMissing(ctx, productID, qty)
}

// insufficientOrMissing объясняет, почему условное списание не затронуло строку.
func (r *productRepository) insufficientOrMissing(ctx context.Context, productID string, qty int) error {
	var available int
	err := r.q.QueryRowContext(ctx, `SELECT stock FROM products WHERE id = $1`, productID).Scan(&available)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrProductNotFound
		}
		return fmt.Errorf("read stock after failed decrease: %w", err)
	}
	return &domain.InsufficientStockError{ProductID: productID, Requested: qty, Available: available}
}

func (r *productRepository) IncreaseStock(ctx context.Context, productID string, qty int) error {
	if err := domain.ValidateQuantity(qty); err != nil {
		return err
	}

	res, err := r.q.ExecContext(ctx, `
		UPDATE products
		SET stock = stock + $2,
		    version = version + 1,
		    updated_at = NOW()
		WHERE id = $1
	`, productID, qty)
	if err != nil {
		return fmt.Errorf("increase stock: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *productRepository) get(ctx context.Context, query string, args ...any) (domain.Product, error) {
	var p domain.Product
	err := r.q.QueryRowContext(ctx, query, args...).Scan(
		&p.ID, &p.Name, &p.Price, &p.Stock, &p.Version, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, domain.ErrProductNotFound
		}
		return domain.Product{}, fmt.Errorf("select product: %w", err)
	}
	return p, nil
}

var _ domain.ProductRepository = (*productRepository)(nil)
