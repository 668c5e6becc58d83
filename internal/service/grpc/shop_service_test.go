package grpcsvc_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/vladislavdragonenkov/shop/internal/domain"
	"github.com/vladislavdragonenkov/shop/internal/service/cart"
	"github.com/vladislavdragonenkov/shop/internal/service/checkout"
	grpcsvc "github.com/vladislavdragonenkov/shop/internal/service/grpc"
	"github.com/vladislavdragonenkov/shop/internal/service/order"
	"github.com/vladislavdragonenkov/shop/internal/service/retry"
	"github.com/vladislavdragonenkov/shop/internal/service/stock"
	"github.com/vladislavdragonenkov/shop/internal/storage/memory"
	shopv1 "github.com/vladislavdragonenkov/shop/proto/shop/v1"
)

const bufSize = 1024 * 1024

func idemCtx(key string) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), "idempotency-key", key)
}

func loggerForTests() *logrus.Entry {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: false, DisableTimestamp: true})
	logger.SetLevel(logrus.DebugLevel)
	return logger.WithField("component", "test")
}

type testEnv struct {
	store *memory.Store
	shop  shopv1.ShopServiceClient
	stock shopv1.StockServiceClient
}

func newTestServer(t *testing.T) *testEnv {
	t.Helper()

	store := memory.NewStore()
	seed(t, store)

	logger := loggerForTests()
	retrier := retry.New(retry.DefaultConfig(), logger, nil).WithSleep(func(context.Context, time.Duration) error { return nil })
	carts := cart.NewService(store, retrier, nil, logger, nil)
	checkoutSvc := checkout.NewService(store, retrier, logger, nil, checkout.WithCartInvalidator(carts))
	orders := order.NewService(store, retrier, logger, nil)

	listener := bufconn.Listen(bufSize)
	server := grpc.NewServer()
	shopv1.RegisterShopServiceServer(server, grpcsvc.NewShopService(carts, checkoutSvc, orders, memory.NewIdempotencyRepository(), logger))
	shopv1.RegisterStockServiceServer(server, grpcsvc.NewStockService(stock.NewService(store, logger, nil), logger))

	go func() {
		if err := server.Serve(listener); err != nil {
			logger.WithError(err).Error("grpc serve failed")
		}
	}()

	dialer := func(context.Context, string) (net.Conn, error) {
		return listener.Dial()
	}

	//nolint:staticcheck // grpc.Dial is required for bufconn testing
	conn, err := grpc.Dial("bufnet", grpc.WithContextDialer(dialer), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		server.Stop()
	})

	return &testEnv{
		store: store,
		shop:  shopv1.NewShopServiceClient(conn),
		stock: shopv1.NewStockServiceClient(conn),
	}
}

func seed(t *testing.T, store *memory.Store) {
	t.Helper()
	require.NoError(t, store.WithinTx(context.Background(), func(ctx context.Context, tx domain.Tx) error {
		products := []domain.Product{
			{ID: "p-1", Name: "Mug", Price: decimal.RequireFromString("10.00"), Stock: 5},
			{ID: "p-2", Name: "Lamp", Price: decimal.RequireFromString("35.50"), Stock: 2},
		}
		for _, p := range products {
			if err := tx.Products().Create(ctx, p); err != nil {
				return err
			}
		}
		for _, id := range []string{"u-1", "u-2"} {
			if err := tx.Users().Create(ctx, domain.User{ID: id, Name: id, CashBalance: 100}); err != nil {
				return err
			}
		}
		return nil
	}))
}

func (e *testEnv) placeOrder(t *testing.T, userID, key string) *shopv1.Order {
	t.Helper()
	ctx := context.Background()
	_, err := e.shop.AddItem(ctx, &shopv1.AddItemRequest{UserId: userID, ProductId: "p-1", Quantity: 2})
	require.NoError(t, err)

	resp, err := e.shop.Checkout(idemCtx(key), &shopv1.CheckoutRequest{UserId: userID, ShippingAmount: "3.00"})
	require.NoError(t, err)
	require.NotNil(t, resp.GetOrder())
	return resp.GetOrder()
}

func TestCartLifecycle(t *testing.T) {
	env := newTestServer(t)
	ctx := context.Background()

	empty, err := env.shop.GetCart(ctx, &shopv1.GetCartRequest{UserId: "u-1"})
	require.NoError(t, err)
	require.Empty(t, empty.GetCart().GetItems())
	require.Equal(t, "0.00", empty.GetCart().TotalPrice)

	_, err = env.shop.AddItem(ctx, &shopv1.AddItemRequest{UserId: "u-1", ProductId: "p-1", Quantity: 2})
	require.NoError(t, err)
	added, err := env.shop.AddItem(ctx, &shopv1.AddItemRequest{UserId: "u-1", ProductId: "p-2", Quantity: 1})
	require.NoError(t, err)
	require.Len(t, added.GetCart().GetItems(), 2)
	require.Equal(t, "55.50", added.GetCart().TotalPrice)
	require.Equal(t, int64(2), added.GetCart().Version)

	updated, err := env.shop.UpdateQuantity(ctx, &shopv1.UpdateQuantityRequest{UserId: "u-1", ProductId: "p-1", Quantity: 4})
	require.NoError(t, err)
	require.Equal(t, "75.50", updated.GetCart().TotalPrice)

	removed, err := env.shop.RemoveItem(ctx, &shopv1.RemoveItemRequest{UserId: "u-1", ProductId: "p-2"})
	require.NoError(t, err)
	require.Len(t, removed.GetCart().GetItems(), 1)
	require.Equal(t, "p-1", removed.GetCart().GetItems()[0].ProductId)
	require.Equal(t, "40.00", removed.GetCart().GetItems()[0].LineTotal)

	cleared, err := env.shop.ClearCart(ctx, &shopv1.ClearCartRequest{UserId: "u-1"})
	require.NoError(t, err)
	require.Empty(t, cleared.GetCart().GetItems())

	got, err := env.shop.GetCart(ctx, &shopv1.GetCartRequest{UserId: "u-1"})
	require.NoError(t, err)
	require.Empty(t, got.GetCart().GetItems())
	require.Equal(t, cleared.GetCart().Version, got.GetCart().Version)
}

func TestCartErrorsMapToStatusCodes(t *testing.T) {
	env := newTestServer(t)
	ctx := context.Background()

	cases := []struct {
		name string
		req  *shopv1.AddItemRequest
		code codes.Code
	}{
		{name: "missing user", req: &shopv1.AddItemRequest{ProductId: "p-1", Quantity: 1}, code: codes.InvalidArgument},
		{name: "zero quantity", req: &shopv1.AddItemRequest{UserId: "u-1", ProductId: "p-1"}, code: codes.InvalidArgument},
		{name: "unknown product", req: &shopv1.AddItemRequest{UserId: "u-1", ProductId: "p-404", Quantity: 1}, code: codes.NotFound},
		{name: "not enough stock", req: &shopv1.AddItemRequest{UserId: "u-1", ProductId: "p-2", Quantity: 3}, code: codes.FailedPrecondition},
		{name: "fits balance", req: &shopv1.AddItemRequest{UserId: "u-1", ProductId: "p-1", Quantity: 5}, code: codes.OK},
		{name: "over balance", req: &shopv1.AddItemRequest{UserId: "u-1", ProductId: "p-2", Quantity: 2}, code: codes.FailedPrecondition},
	}

	for _, tc := range cases {
		_, err := env.shop.AddItem(ctx, tc.req)
		require.Equal(t, tc.code, status.Code(err), tc.name)
	}

	_, err := env.shop.RemoveItem(ctx, &shopv1.RemoveItemRequest{UserId: "u-2", ProductId: "p-1"})
	require.Equal(t, codes.NotFound, status.Code(err))

	_, err = env.shop.GetCart(ctx, &shopv1.GetCartRequest{})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestCheckoutIdempotency(t *testing.T) {
	env := newTestServer(t)
	ctx := context.Background()

	_, err := env.shop.AddItem(ctx, &shopv1.AddItemRequest{UserId: "u-1", ProductId: "p-1", Quantity: 3})
	require.NoError(t, err)

	_, err = env.shop.Checkout(ctx, &shopv1.CheckoutRequest{UserId: "u-1"})
	require.Equal(t, codes.InvalidArgument, status.Code(err), "idempotency key is required")

	req := &shopv1.CheckoutRequest{
		UserId:         "u-1",
		ShippingAmount: "4.50",
		Shipping:       &shopv1.ShippingInfo{ReceiverName: "Anna", Address: "Lenina 1"},
	}
	first, err := env.shop.Checkout(idemCtx("checkout-1"), req)
	require.NoError(t, err)
	require.Equal(t, "PENDING", first.GetOrder().GetStatus())
	require.Equal(t, "30.00", first.GetOrder().SubtotalAmount)
	require.Equal(t, "34.50", first.GetOrder().TotalAmount)
	require.Equal(t, "Anna", first.GetOrder().Shipping.ReceiverName)
	require.Len(t, first.GetOrder().History, 1)

	replay, err := env.shop.Checkout(idemCtx("checkout-1"), req)
	require.NoError(t, err)
	require.Equal(t, first.GetOrder().Id, replay.GetOrder().Id)
	require.Equal(t, first.GetOrder().OrderNumber, replay.GetOrder().OrderNumber)
	require.Len(t, env.store.OrderIDs(), 1)

	p, ok := env.store.ProductSnapshot("p-1")
	require.True(t, ok)
	require.Equal(t, 2, p.Stock)

	_, err = env.shop.Checkout(idemCtx("checkout-1"), &shopv1.CheckoutRequest{UserId: "u-1", ShippingAmount: "1.00"})
	require.Equal(t, codes.AlreadyExists, status.Code(err))
}

func TestCheckoutFailureIsReplayed(t *testing.T) {
	env := newTestServer(t)

	_, err := env.shop.Checkout(idemCtx("empty-1"), &shopv1.CheckoutRequest{UserId: "u-1"})
	require.Equal(t, codes.FailedPrecondition, status.Code(err))

	_, err = env.shop.AddItem(context.Background(), &shopv1.AddItemRequest{UserId: "u-1", ProductId: "p-1", Quantity: 1})
	require.NoError(t, err)

	_, err = env.shop.Checkout(idemCtx("empty-1"), &shopv1.CheckoutRequest{UserId: "u-1"})
	require.Equal(t, codes.FailedPrecondition, status.Code(err), "stored failure must be replayed")
	require.Empty(t, env.store.OrderIDs())

	_, err = env.shop.Checkout(idemCtx("bad-amount"), &shopv1.CheckoutRequest{UserId: "u-1", ShippingAmount: "free"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = env.shop.Checkout(idemCtx("bad-method"), &shopv1.CheckoutRequest{UserId: "u-1", PaymentMethod: "crypto"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestOrderLookupsAndTransitions(t *testing.T) {
	env := newTestServer(t)
	ctx := context.Background()
	placed := env.placeOrder(t, "u-1", "place-1")

	byID, err := env.shop.GetOrder(ctx, &shopv1.GetOrderRequest{OrderId: placed.Id})
	require.NoError(t, err)
	require.Equal(t, placed.OrderNumber, byID.GetOrder().OrderNumber)

	byNumber, err := env.shop.GetOrder(ctx, &shopv1.GetOrderRequest{OrderNumber: placed.OrderNumber})
	require.NoError(t, err)
	require.Equal(t, placed.Id, byNumber.GetOrder().Id)

	_, err = env.shop.GetOrder(ctx, &shopv1.GetOrderRequest{OrderId: "missing"})
	require.Equal(t, codes.NotFound, status.Code(err))
	_, err = env.shop.GetOrder(ctx, &shopv1.GetOrderRequest{})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	list, err := env.shop.ListOrders(ctx, &shopv1.ListOrdersRequest{UserId: "u-1"})
	require.NoError(t, err)
	require.Len(t, list.Orders, 1)

	_, err = env.shop.UpdateOrderStatus(ctx, &shopv1.UpdateOrderStatusRequest{OrderId: placed.Id, Status: "UNKNOWN"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = env.shop.UpdateOrderStatus(ctx, &shopv1.UpdateOrderStatusRequest{OrderId: placed.Id, Status: "COMPLETED"})
	require.Equal(t, codes.FailedPrecondition, status.Code(err))

	for _, next := range []string{"PAID", "SHIPPING", "COMPLETED"} {
		resp, err := env.shop.UpdateOrderStatus(ctx, &shopv1.UpdateOrderStatusRequest{OrderId: placed.Id, Status: next, Actor: "admin"})
		require.NoError(t, err)
		require.Equal(t, next, resp.GetOrder().GetStatus())
	}

	deleted, err := env.shop.DeleteOrder(ctx, &shopv1.DeleteOrderRequest{OrderId: placed.Id})
	require.NoError(t, err)
	require.Equal(t, "DELETED", deleted.GetOrder().GetStatus())
	require.Len(t, deleted.GetOrder().History, 5)

	visible, err := env.shop.ListOrders(ctx, &shopv1.ListOrdersRequest{UserId: "u-1"})
	require.NoError(t, err)
	require.Empty(t, visible.Orders)

	all, err := env.shop.ListOrders(ctx, &shopv1.ListOrdersRequest{UserId: "u-1", IncludeDeleted: true})
	require.NoError(t, err)
	require.Len(t, all.Orders, 1)
}

func TestCancelOrderRestoresStock(t *testing.T) {
	env := newTestServer(t)
	placed := env.placeOrder(t, "u-1", "place-1")

	p, _ := env.store.ProductSnapshot("p-1")
	require.Equal(t, 3, p.Stock)

	_, err := env.shop.CancelOrder(context.Background(), &shopv1.CancelOrderRequest{OrderId: placed.Id})
	require.Equal(t, codes.InvalidArgument, status.Code(err), "idempotency key is required")

	cancelled, err := env.shop.CancelOrder(idemCtx("cancel-1"), &shopv1.CancelOrderRequest{OrderId: placed.Id, Reason: "changed mind"})
	require.NoError(t, err)
	require.Equal(t, "CANCELLED", cancelled.GetOrder().GetStatus())

	replay, err := env.shop.CancelOrder(idemCtx("cancel-1"), &shopv1.CancelOrderRequest{OrderId: placed.Id, Reason: "changed mind"})
	require.NoError(t, err)
	require.Equal(t, cancelled.GetOrder().Version, replay.GetOrder().Version)

	p, _ = env.store.ProductSnapshot("p-1")
	require.Equal(t, 5, p.Stock)

	_, err = env.shop.UpdateOrderStatus(context.Background(), &shopv1.UpdateOrderStatusRequest{OrderId: placed.Id, Status: "PAID"})
	require.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestPayOrder(t *testing.T) {
	env := newTestServer(t)
	placed := env.placeOrder(t, "u-1", "place-1")

	_, err := env.shop.PayOrder(idemCtx("pay-foreign"), &shopv1.PayOrderRequest{OrderId: placed.Id, UserId: "u-2"})
	require.Equal(t, codes.PermissionDenied, status.Code(err))

	paid, err := env.shop.PayOrder(idemCtx("pay-1"), &shopv1.PayOrderRequest{OrderId: placed.Id, UserId: "u-1"})
	require.NoError(t, err)
	require.Equal(t, "PAID", paid.GetOrder().GetStatus())
	require.Equal(t, "CASH_BALANCE", paid.GetOrder().PaymentMethod)
	require.Equal(t, int64(23), paid.GetOrder().BalanceCharged)

	user, ok := env.store.UserSnapshot("u-1")
	require.True(t, ok)
	require.Equal(t, int64(77), user.CashBalance)

	_, err = env.shop.PayOrder(idemCtx("pay-2"), &shopv1.PayOrderRequest{OrderId: placed.Id, UserId: "u-1"})
	require.Equal(t, codes.FailedPrecondition, status.Code(err))

	_, err = env.shop.PayOrder(idemCtx("pay-3"), &shopv1.PayOrderRequest{OrderId: placed.Id})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestStockService(t *testing.T) {
	env := newTestServer(t)
	ctx := context.Background()

	product, err := env.stock.GetProduct(ctx, &shopv1.GetProductRequest{ProductId: "p-2"})
	require.NoError(t, err)
	require.Equal(t, "35.50", product.GetProduct().Price)
	require.Equal(t, int32(2), product.GetProduct().Stock)

	_, err = env.stock.GetProduct(ctx, &shopv1.GetProductRequest{ProductId: "p-404"})
	require.Equal(t, codes.NotFound, status.Code(err))

	applied, err := env.stock.DecreaseStock(ctx, &shopv1.StockChangeRequest{ProductId: "p-2", Quantity: 2})
	require.NoError(t, err)
	require.True(t, applied.Applied)

	rejected, err := env.stock.DecreaseStock(ctx, &shopv1.StockChangeRequest{ProductId: "p-2", Quantity: 1})
	require.NoError(t, err, "rejection travels in the response body")
	require.False(t, rejected.Applied)
	require.Equal(t, shopv1.RejectReasonInsufficientStock, rejected.RejectReason)
	require.Equal(t, int32(0), rejected.Available)

	missing, err := env.stock.DecreaseStock(ctx, &shopv1.StockChangeRequest{ProductId: "p-404", Quantity: 1})
	require.NoError(t, err)
	require.Equal(t, shopv1.RejectReasonNotFound, missing.RejectReason)

	invalid, err := env.stock.IncreaseStock(ctx, &shopv1.StockChangeRequest{ProductId: "p-2"})
	require.NoError(t, err)
	require.Equal(t, shopv1.RejectReasonInvalidArgument, invalid.RejectReason)

	restored, err := env.stock.IncreaseStock(ctx, &shopv1.StockChangeRequest{ProductId: "p-2", Quantity: 2})
	require.NoError(t, err)
	require.True(t, restored.Applied)

	p, _ := env.store.ProductSnapshot("p-2")
	require.Equal(t, 2, p.Stock)
}
