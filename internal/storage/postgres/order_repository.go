package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vladislavdragonenkov/shop/internal/domain"
)

const orderColumns = `
	id, order_number, user_id, status,
	subtotal_amount, shipping_amount, discount_amount, total_amount,
	payment_method, balance_charged,
	receiver_name, receiver_phone, zipcode, address, address_detail, delivery_message,
	version, created_at, updated_at`

type orderRepository struct {
	q queryer
}

func (r *orderRepository) Create(ctx context.Context, order domain.Order) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO orders (`+orderColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)
	`,
		order.ID, order.OrderNumber, order.UserID, string(order.Status),
		order.SubtotalAmount, order.ShippingAmount, order.DiscountAmount, order.TotalAmount,
		string(order.PaymentMethod), order.BalanceCharged,
		order.Shipping.ReceiverName, order.Shipping.ReceiverPhone, order.Shipping.Zipcode,
		order.Shipping.Address, order.Shipping.AddressDetail, order.Shipping.DeliveryMessage,
		order.Version, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrOrderVersionConflict
		}
		return fmt.Errorf("insert order: %w", err)
	}

	for position, item := range order.Items {
		if _, err := r.q.ExecContext(ctx, `
			INSERT INTO order_items (id, order_id, product_id, quantity, unit_price, created_at, position)
			VALUES ($1,$2,$3,$4,$5,$6,$7)
		`, item.ID, order.ID, item.ProductID, item.Quantity, item.UnitPrice, item.CreatedAt, position); err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}

	for _, entry := range order.History {
		if err := r.AppendHistory(ctx, entry); err != nil {
			return err
		}
	}
	return nil
}

func (r *orderRepository) Get(ctx context.Context, id string) (domain.Order, error) {
	return r.getOne(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
}

func (r *orderRepository) GetByNumber(ctx context.Context, orderNumber string) (domain.Order, error) {
	return r.getOne(ctx, `SELECT `+orderColumns+` FROM orders WHERE order_number = $1`, orderNumber)
}

func (r *orderRepository) ListByUser(ctx context.Context, userID string, filter domain.OrderFilter) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1`
	args := []any{userID}
	if !filter.IncludeDeleted {
		query += ` AND status <> $2`
		args = append(args, string(domain.OrderStatusDeleted))
	}
	query += ` ORDER BY created_at DESC, id DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	orders := make([]domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}
	rows.Close()

	// Позиции и историю догружаем после закрытия курсора: внутри транзакции
	// одно соединение не может держать два открытых результата.
	for i := range orders {
		if err := r.loadChildren(ctx, &orders[i]); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (r *orderRepository) Save(ctx context.Context, order domain.Order) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE orders
		SET status = $1,
		    payment_method = $2,
		    balance_charged = $3,
		    version = version + 1,
		    updated_at = $4
		WHERE id = $5
		  AND version = $6
	`,
		string(order.Status),
		string(order.PaymentMethod),
		order.BalanceCharged,
		order.UpdatedAt,
		order.ID,
		order.Version,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		exists, err := r.orderExists(ctx, order.ID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrOrderNotFound
		}
		return domain.ErrOrderVersionConflict
	}
	return nil
}

func (r *orderRepository) AppendHistory(ctx context.Context, entry domain.OrderHistory) error {
	var from sql.NullString
	if entry.From != nil {
		from = sql.NullString{String: string(*entry.From), Valid: true}
	}
	if _, err := r.q.ExecContext(ctx, `
		INSERT INTO order_history (id, order_id, status_from, status_to, message, actor, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`, entry.ID, entry.OrderID, from, string(entry.To), entry.Message, entry.Actor, entry.CreatedAt); err != nil {
		return fmt.Errorf("insert order history: %w", err)
	}
	return nil
}

func (r *orderRepository) getOne(ctx context.Context, query string, arg any) (domain.Order, error) {
	rows, err := r.q.QueryContext(ctx, query, arg)
	if err != nil {
		return domain.Order{}, fmt.Errorf("select order: %w", err)
	}
	if !rows.Next() {
		err := rows.Err()
		rows.Close()
		if err != nil {
			return domain.Order{}, fmt.Errorf("select order: %w", err)
		}
		return domain.Order{}, domain.ErrOrderNotFound
	}
	order, err := scanOrder(rows)
	rows.Close()
	if err != nil {
		return domain.Order{}, err
	}

	if err := r.loadChildren(ctx, &order); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

func (r *orderRepository) loadChildren(ctx context.Context, order *domain.Order) error {
	items, err := r.loadItems(ctx, order.ID)
	if err != nil {
		return err
	}
	history, err := r.loadHistory(ctx, order.ID)
	if err != nil {
		return err
	}
	order.Items = items
	order.History = history
	return nil
}

func (r *orderRepository) loadItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, product_id, quantity, unit_price, created_at
		FROM order_items
		WHERE order_id = $1
		ORDER BY position ASC
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.OrderItem, 0)
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.ProductID, &item.Quantity, &item.UnitPrice, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order items: %w", err)
	}
	return items, nil
}

func (r *orderRepository) loadHistory(ctx context.Context, orderID string) ([]domain.OrderHistory, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, order_id, status_from, status_to, message, actor, created_at
		FROM order_history
		WHERE order_id = $1
		ORDER BY seq ASC
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order history: %w", err)
	}
	defer rows.Close()

	history := make([]domain.OrderHistory, 0)
	for rows.Next() {
		var (
			entry domain.OrderHistory
			from  sql.NullString
			to    string
		)
		if err := rows.Scan(&entry.ID, &entry.OrderID, &from, &to, &entry.Message, &entry.Actor, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order history: %w", err)
		}
		if from.Valid {
			status := domain.OrderStatus(from.String)
			entry.From = &status
		}
		entry.To = domain.OrderStatus(to)
		history = append(history, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order history: %w", err)
	}
	return history, nil
}

func (r *orderRepository) orderExists(ctx context.Context, orderID string) (bool, error) {
	var id string
	err := r.q.QueryRowContext(ctx, `SELECT id FROM orders WHERE id = $1`, orderID).Scan(&id)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return false, fmt.Errorf("check order exists: %w", err)
}

func scanOrder(rows *sql.Rows) (domain.Order, error) {
	var (
		order         domain.Order
		status        string
		paymentMethod string
	)
	if err := rows.Scan(
		&order.ID, &order.OrderNumber, &order.UserID, &status,
		&order.SubtotalAmount, &order.ShippingAmount, &order.DiscountAmount, &order.TotalAmount,
		&paymentMethod, &order.BalanceCharged,
		&order.Shipping.ReceiverName, &order.Shipping.ReceiverPhone, &order.Shipping.Zipcode,
		&order.Shipping.Address, &order.Shipping.AddressDetail, &order.Shipping.DeliveryMessage,
		&order.Version, &order.CreatedAt, &order.UpdatedAt,
	); err != nil {
		return domain.Order{}, fmt.Errorf("scan order row: %w", err)
	}
	order.Status = domain.OrderStatus(status)
	order.PaymentMethod = domain.PaymentMethod(paymentMethod)
	return order, nil
}

var _ domain.OrderRepository = (*orderRepository)(nil)
