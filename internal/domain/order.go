package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// ActorSystem: автор системных записей истории (создание, удаление).
	ActorSystem = "SYSTEM"
	// ActorUser: автор записей, инициированных покупателем без явного идентификатора.
	ActorUser = "USER"

	orderCreatedMessage = "Order created."
)

// OrderItem представляет одну позицию заказа.
type OrderItem struct {
	ID        string
	ProductID string
	Quantity  int
	// UnitPrice: цена товара на момент оформления; дальше не меняется.
	UnitPrice decimal.Decimal
	CreatedAt time.Time
}

// LineTotal возвращает стоимость позиции.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ShippingInfo: данные доставки, указанные при оформлении.
type ShippingInfo struct {
	ReceiverName    string
	ReceiverPhone   string
	Zipcode         string
	Address         string
	AddressDetail   string
	DeliveryMessage string
}

// Order агрегирует состояние заказа, его позиции и историю статусов.
type Order struct {
	ID             string
	OrderNumber    string
	UserID         string
	Status         OrderStatus
	Items          []OrderItem
	SubtotalAmount decimal.Decimal
	ShippingAmount decimal.Decimal
	DiscountAmount decimal.Decimal
	TotalAmount    decimal.Decimal
	PaymentMethod  PaymentMethod
	// BalanceCharged: сколько списано с денежного баланса; возвращается при отмене.
	BalanceCharged int64
	Shipping       ShippingInfo
	History        []OrderHistory
	Version        int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// OrderLine: входные данные для позиции нового заказа.
type OrderLine struct {
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
}

// PlaceOrderParams: всё, что нужно для создания заказа.
type PlaceOrderParams struct {
	UserID         string
	Lines          []OrderLine
	ShippingAmount decimal.Decimal
	DiscountAmount decimal.Decimal
	PaymentMethod  PaymentMethod
	Shipping       ShippingInfo
	Now            time.Time
}

// PlaceOrder создаёт заказ в статусе PENDING с записью истории nil -> PENDING.
func PlaceOrder(p PlaceOrderParams) (Order, error) {
	if strings.TrimSpace(p.UserID) == "" {
		return Order{}, errorf("user id is required")
	}
	if len(p.Lines) == 0 {
		return Order{}, ErrEmptyCart
	}
	if p.ShippingAmount.IsNegative() {
		return Order{}, errorf("shipping amount must be non-negative")
	}
	if p.DiscountAmount.IsNegative() {
		return Order{}, errorf("discount amount must be non-negative")
	}
	if p.PaymentMethod == "" {
		p.PaymentMethod = PaymentMethodCashBalance
	}
	if !p.PaymentMethod.Valid() {
		return Order{}, errorf("unsupported payment method %q", p.PaymentMethod)
	}

	order := Order{
		ID:             uuid.NewString(),
		OrderNumber:    NewOrderNumber(p.Now),
		UserID:         p.UserID,
		Status:         OrderStatusPending,
		ShippingAmount: p.ShippingAmount,
		DiscountAmount: p.DiscountAmount,
		PaymentMethod:  p.PaymentMethod,
		Shipping:       p.Shipping,
		CreatedAt:      p.Now,
		UpdatedAt:      p.Now,
	}
	for _, line := range p.Lines {
		if err := ValidateQuantity(line.Quantity); err != nil {
			return Order{}, err
		}
		order.Items = append(order.Items, OrderItem{
			ID:        uuid.NewString(),
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			CreatedAt: p.Now,
		})
	}
	order.recalculate()
	if order.TotalAmount.IsNegative() {
		return Order{}, errorf("discount %s exceeds order amount", p.DiscountAmount.StringFixed(2))
	}

	order.History = []OrderHistory{newHistory(order.ID, nil, OrderStatusPending, orderCreatedMessage, ActorSystem, p.Now)}
	return order, nil
}

// NewOrderNumber генерирует человекочитаемый номер заказа.
func NewOrderNumber(now time.Time) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("ORD-%s-%s", now.UTC().Format("20060102"), strings.ToUpper(raw[:12]))
}

// ChangeStatus переводит заказ в новый статус и дописывает историю.
// Переход в текущий статус ничего не делает (changed=false, без записи истории).
func (o *Order) ChangeStatus(to OrderStatus, actor, message string, now time.Time) (OrderHistory, bool, error) {
	if !to.Valid() {
		return OrderHistory{}, false, errorf("unknown order status %q", to)
	}
	if o.Status == to {
		return OrderHistory{}, false, nil
	}
	if !CanTransition(o.Status, to) {
		return OrderHistory{}, false, &InvalidTransitionError{From: o.Status, To: to}
	}
	if strings.TrimSpace(actor) == "" {
		actor = ActorSystem
	}
	if strings.TrimSpace(message) == "" {
		message = StatusChangeMessage(o.Status, to)
	}

	from := o.Status
	entry := newHistory(o.ID, &from, to, message, actor, now)
	o.Status = to
	o.UpdatedAt = now
	o.History = append(o.History, entry)
	return entry, true, nil
}

// StatusChangeMessage формирует текст записи истории.
func StatusChangeMessage(from, to OrderStatus) string {
	return fmt.Sprintf("Order status changed from '%s' to '%s'.", from.DisplayName(), to.DisplayName())
}

// ValidateInvariants проверяет базовые инварианты заказа и возвращает список замечаний.
func (o *Order) ValidateInvariants() []error {
	var errs []error

	if o.UserID == "" {
		errs = append(errs, errorf("user id is required"))
	}
	if o.OrderNumber == "" {
		errs = append(errs, errorf("order number is required"))
	}
	if len(o.Items) == 0 {
		errs = append(errs, ErrEmptyCart)
	}
	if !o.Status.Valid() {
		errs = append(errs, errorf("unknown order status %q", o.Status))
	}

	subtotal := decimal.Zero
	for _, item := range o.Items {
		if item.Quantity <= 0 {
			errs = append(errs, errorf("item %s: quantity must be greater than zero", item.ID))
		}
		if item.UnitPrice.IsNegative() {
			errs = append(errs, errorf("item %s: price must be non-negative", item.ID))
		}
		subtotal = subtotal.Add(item.LineTotal())
	}
	if !subtotal.Equal(o.SubtotalAmount) {
		errs = append(errs, errorf("subtotal %s does not match items sum %s", o.SubtotalAmount, subtotal))
	}
	if !o.TotalAmount.Equal(o.SubtotalAmount.Add(o.ShippingAmount).Sub(o.DiscountAmount)) {
		errs = append(errs, errorf("total %s != subtotal + shipping - discount", o.TotalAmount))
	}

	return errs
}

func (o *Order) recalculate() {
	subtotal := decimal.Zero
	for _, item := range o.Items {
		subtotal = subtotal.Add(item.LineTotal())
	}
	o.SubtotalAmount = subtotal
	o.TotalAmount = subtotal.Add(o.ShippingAmount).Sub(o.DiscountAmount)
}
