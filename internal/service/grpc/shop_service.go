package grpcsvc

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/shop/internal/domain"
	"github.com/vladislavdragonenkov/shop/internal/service/checkout"
	shopv1 "github.com/vladislavdragonenkov/shop/proto/shop/v1"
)

// CartService: операции над корзиной, которые публикует ShopService.
type CartService interface {
	GetCart(ctx context.Context, userID string) (domain.Cart, error)
	AddItem(ctx context.Context, userID, productID string, qty int) (domain.Cart, error)
	UpdateQuantity(ctx context.Context, userID, productID string, qty int) (domain.Cart, error)
	RemoveItem(ctx context.Context, userID, productID string) (domain.Cart, error)
	Clear(ctx context.Context, userID string) (domain.Cart, error)
}

// CheckoutService оформляет заказ из корзины.
type CheckoutService interface {
	Checkout(ctx context.Context, req checkout.Request) (domain.Order, error)
}

// OrderService: чтение заказов и переходы их статусов.
type OrderService interface {
	Get(ctx context.Context, orderID string) (domain.Order, error)
	GetByNumber(ctx context.Context, orderNumber string) (domain.Order, error)
	ListByUser(ctx context.Context, userID string, filter domain.OrderFilter) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus, actor string) (domain.Order, error)
	CancelOrder(ctx context.Context, orderID, reason string) (domain.Order, error)
	MarkDeleted(ctx context.Context, orderID string) (domain.Order, error)
	PayWithBalance(ctx context.Context, orderID, userID string) (domain.Order, error)
}

// ShopService реализует gRPC API корзины и заказов.
type ShopService struct {
	shopv1.UnimplementedShopServiceServer

	carts    CartService
	checkout CheckoutService
	orders   OrderService
	idemRepo domain.IdempotencyRepository
	logger   *log.Entry
}

const defaultListOrdersLimit = 100

// NewShopService конструирует сервис с зависимостями. idemRepo может быть nil:
// тогда запросы выполняются без idempotency-key.
func NewShopService(
	carts CartService,
	checkoutSvc CheckoutService,
	orders OrderService,
	idemRepo domain.IdempotencyRepository,
	logger *log.Entry,
) *ShopService {
	if logger == nil {
		logger = log.New().WithField("component", "shop-grpc")
	}
	return &ShopService{
		carts:    carts,
		checkout: checkoutSvc,
		orders:   orders,
		idemRepo: idemRepo,
		logger:   logger,
	}
}

// GetCart возвращает корзину пользователя.
func (s *ShopService) GetCart(ctx context.Context, req *shopv1.GetCartRequest) (*shopv1.CartResponse, error) {
	if req == nil || strings.TrimSpace(req.UserId) == "" {
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}
	cart, err := s.carts.GetCart(ctx, req.UserId)
	if err != nil {
		return nil, s.fail(err, "GetCart")
	}
	return &shopv1.CartResponse{Cart: toProtoCart(cart)}, nil
}

// AddItem добавляет товар в корзину.
func (s *ShopService) AddItem(ctx context.Context, req *shopv1.AddItemRequest) (*shopv1.CartResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	cart, err := s.carts.AddItem(ctx, req.UserId, req.ProductId, int(req.Quantity))
	if err != nil {
		return nil, s.fail(err, "AddItem")
	}
	return &shopv1.CartResponse{Cart: toProtoCart(cart)}, nil
}

// UpdateQuantity задаёт количество товара; 0 удаляет строку.
func (s *ShopService) UpdateQuantity(ctx context.Context, req *shopv1.UpdateQuantityRequest) (*shopv1.CartResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	cart, err := s.carts.UpdateQuantity(ctx, req.UserId, req.ProductId, int(req.Quantity))
	if err != nil {
		return nil, s.fail(err, "UpdateQuantity")
	}
	return &shopv1.CartResponse{Cart: toProtoCart(cart)}, nil
}

// RemoveItem удаляет строку корзины.
func (s *ShopService) RemoveItem(ctx context.Context, req *shopv1.RemoveItemRequest) (*shopv1.CartResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	cart, err := s.carts.RemoveItem(ctx, req.UserId, req.ProductId)
	if err != nil {
		return nil, s.fail(err, "RemoveItem")
	}
	return &shopv1.CartResponse{Cart: toProtoCart(cart)}, nil
}

// ClearCart очищает корзину.
func (s *ShopService) ClearCart(ctx context.Context, req *shopv1.ClearCartRequest) (*shopv1.CartResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	cart, err := s.carts.Clear(ctx, req.UserId)
	if err != nil {
		return nil, s.fail(err, "ClearCart")
	}
	return &shopv1.CartResponse{Cart: toProtoCart(cart)}, nil
}

// Checkout оформляет заказ из корзины.
func (s *ShopService) Checkout(ctx context.Context, req *shopv1.CheckoutRequest) (*shopv1.OrderResponse, error) {
	if req == nil || strings.TrimSpace(req.UserId) == "" {
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}

	return withIdempotency(
		s,
		ctx,
		shopv1.ShopService_Checkout_FullMethodName,
		domain.IdempotencyScopeCheckout,
		req,
		newOrderResponse,
		func(ctx context.Context) (*shopv1.OrderResponse, error) {
			return s.checkoutInternal(ctx, req)
		},
	)
}

func newOrderResponse() *shopv1.OrderResponse { return &shopv1.OrderResponse{} }

func (s *ShopService) checkoutInternal(ctx context.Context, req *shopv1.CheckoutRequest) (*shopv1.OrderResponse, error) {
	shippingAmount, err := parseAmount("shipping_amount", req.ShippingAmount)
	if err != nil {
		return nil, err
	}
	discountAmount, err := parseAmount("discount_amount", req.DiscountAmount)
	if err != nil {
		return nil, err
	}

	order, err := s.checkout.Checkout(ctx, checkout.Request{
		UserID:         req.UserId,
		Shipping:       fromProtoShipping(req.Shipping),
		PaymentMethod:  domain.PaymentMethod(strings.ToUpper(strings.TrimSpace(req.PaymentMethod))),
		ShippingAmount: shippingAmount,
		DiscountAmount: discountAmount,
	})
	if err != nil {
		return nil, s.fail(err, "Checkout")
	}
	return &shopv1.OrderResponse{Order: toProtoOrder(order)}, nil
}

// GetOrder возвращает заказ по идентификатору или номеру вместе с историей.
func (s *ShopService) GetOrder(ctx context.Context, req *shopv1.GetOrderRequest) (*shopv1.OrderResponse, error) {
	if req == nil || (req.OrderId == "" && req.OrderNumber == "") {
		return nil, status.Error(codes.InvalidArgument, "order_id or order_number is required")
	}

	var (
		order domain.Order
		err   error
	)
	if req.OrderId != "" {
		order, err = s.orders.Get(ctx, req.OrderId)
	} else {
		order, err = s.orders.GetByNumber(ctx, req.OrderNumber)
	}
	if err != nil {
		return nil, s.fail(err, "GetOrder")
	}
	return &shopv1.OrderResponse{Order: toProtoOrder(order)}, nil
}

// ListOrders возвращает заказы пользователя, новые первыми.
func (s *ShopService) ListOrders(ctx context.Context, req *shopv1.ListOrdersRequest) (*shopv1.ListOrdersResponse, error) {
	if req == nil || strings.TrimSpace(req.UserId) == "" {
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}

	limit := int(req.PageSize)
	if limit <= 0 {
		limit = defaultListOrdersLimit
	}

	orders, err := s.orders.ListByUser(ctx, req.UserId, domain.OrderFilter{Limit: limit, IncludeDeleted: req.IncludeDeleted})
	if err != nil {
		return nil, s.fail(err, "ListOrders")
	}

	result := make([]*shopv1.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, toProtoOrder(order))
	}
	return &shopv1.ListOrdersResponse{Orders: result}, nil
}

// UpdateOrderStatus переводит заказ в новый статус.
func (s *ShopService) UpdateOrderStatus(ctx context.Context, req *shopv1.UpdateOrderStatusRequest) (*shopv1.OrderResponse, error) {
	if req == nil || req.OrderId == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}
	target := domain.OrderStatus(strings.ToUpper(strings.TrimSpace(req.Status)))
	if !target.Valid() {
		return nil, status.Errorf(codes.InvalidArgument, "unknown order status %q", req.Status)
	}
	actor := req.Actor
	if strings.TrimSpace(actor) == "" {
		actor = domain.ActorSystem
	}

	order, err := s.orders.UpdateStatus(ctx, req.OrderId, target, actor)
	if err != nil {
		return nil, s.fail(err, "UpdateOrderStatus")
	}
	return &shopv1.OrderResponse{Order: toProtoOrder(order)}, nil
}

// CancelOrder отменяет заказ и возвращает товар на склад.
func (s *ShopService) CancelOrder(ctx context.Context, req *shopv1.CancelOrderRequest) (*shopv1.OrderResponse, error) {
	if req == nil || req.OrderId == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}

	return withIdempotency(
		s,
		ctx,
		shopv1.ShopService_CancelOrder_FullMethodName,
		domain.IdempotencyScopeCancel,
		req,
		newOrderResponse,
		func(ctx context.Context) (*shopv1.OrderResponse, error) {
			order, err := s.orders.CancelOrder(ctx, req.OrderId, req.Reason)
			if err != nil {
				return nil, s.fail(err, "CancelOrder")
			}
			return &shopv1.OrderResponse{Order: toProtoOrder(order)}, nil
		},
	)
}

// DeleteOrder помечает завершённый или отменённый заказ удалённым.
func (s *ShopService) DeleteOrder(ctx context.Context, req *shopv1.DeleteOrderRequest) (*shopv1.OrderResponse, error) {
	if req == nil || req.OrderId == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}
	order, err := s.orders.MarkDeleted(ctx, req.OrderId)
	if err != nil {
		return nil, s.fail(err, "DeleteOrder")
	}
	return &shopv1.OrderResponse{Order: toProtoOrder(order)}, nil
}

// PayOrder оплачивает заказ с денежного баланса пользователя.
func (s *ShopService) PayOrder(ctx context.Context, req *shopv1.PayOrderRequest) (*shopv1.OrderResponse, error) {
	if req == nil || req.OrderId == "" || req.UserId == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id and user_id are required")
	}

	return withIdempotency(
		s,
		ctx,
		shopv1.ShopService_PayOrder_FullMethodName,
		domain.IdempotencyScopePayment,
		req,
		newOrderResponse,
		func(ctx context.Context) (*shopv1.OrderResponse, error) {
			order, err := s.orders.PayWithBalance(ctx, req.OrderId, req.UserId)
			if err != nil {
				return nil, s.fail(err, "PayOrder")
			}
			return &shopv1.OrderResponse{Order: toProtoOrder(order)}, nil
		},
	)
}

// fail логирует ошибку слоя сервисов и переводит её в gRPC-статус.
func (s *ShopService) fail(err error, operation string) error {
	st := statusFromError(err)
	entry := s.logger.WithError(err).WithField("operation", operation)
	if st.Code() == codes.Internal || st.Code() == codes.Unavailable {
		entry.Error("request failed")
	} else {
		entry.Debug("request rejected")
	}
	return st.Err()
}

func parseAmount(field, value string) (decimal.Decimal, error) {
	if strings.TrimSpace(value) == "" {
		return decimal.Zero, nil
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, status.Errorf(codes.InvalidArgument, "%s must be a decimal number", field)
	}
	return amount, nil
}
