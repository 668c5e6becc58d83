package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/shop/internal/domain"
)

const userColumns = `id, name, cash_balance, version, created_at, updated_at`

type userRepository struct {
	q queryer
}

func (r *userRepository) Create(ctx context.Context, user domain.User) error {
	if user.ID == "" {
		return fmt.Errorf("user id is required: %w", domain.ErrInvalidArgument)
	}
	if user.CashBalance < 0 {
		return fmt.Errorf("cash balance must be non-negative: %w", domain.ErrInvalidArgument)
	}
	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}

	_, err := r.q.ExecContext(ctx, `
		INSERT INTO users (id, name, cash_balance, version, created_at, updated_at)
		VALUES ($1,$2,$3,0,$4,$5)
	`, user.ID, user.Name, user.CashBalance, user.CreatedAt, now)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("user %s already exists: %w", user.ID, domain.ErrInvalidArgument)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *userRepository) Get(ctx context.Context, id string) (domain.User, error) {
	return r.get(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// AdjustBalance меняет баланс одной условной записью; строка остаётся заблокированной до конца транзакции.
func (r *userRepository) AdjustBalance(ctx context.Context, id string, delta int64) (domain.User, error) {
	user, err := r.get(ctx, `
		UPDATE users
		SET cash_balance = cash_balance + $2,
		    version = version + 1,
		    updated_at = NOW()
		WHERE id = $1
		  AND cash_balance + $2 >= 0
		RETURNING `+userColumns, id, delta)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return domain.User{}, err
	}

	current, err := r.Get(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	return domain.User{}, domain.NewInsufficientBalanceError(decimal.NewFromInt(-delta), current.CashBalance)
}

func (r *userRepository) get(ctx context.Context, query string, args ...any) (domain.User, error) {
	var u domain.User
	err := r.q.QueryRowContext(ctx, query, args...).Scan(
		&u.ID, &u.Name, &u.CashBalance, &u.Version, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("select user: %w", err)
	}
	return u, nil
}

var _ domain.UserRepository = (*userRepository)(nil)
