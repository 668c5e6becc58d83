package app

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/vladislavdragonenkov/shop/internal/cache"
	"github.com/vladislavdragonenkov/shop/internal/metrics"
	shopv1 "github.com/vladislavdragonenkov/shop/proto/shop/v1"
)

type wiredClients struct {
	deps  *runtimeDependencies
	shop  shopv1.ShopServiceClient
	stock shopv1.StockServiceClient
}

// startWired собирает сервисы так же, как Run, и отдаёт клиентов через bufconn.
func startWired(t *testing.T, cfg Config) *wiredClients {
	t.Helper()
	logger := log.WithField("test", t.Name())

	deps, err := initRuntimeDependencies(context.Background(), Config{StorageDriver: StorageDriverMemory}, logger)
	require.NoError(t, err)
	require.NoError(t, seedDemoData(context.Background(), deps.store))

	m := metrics.NewShopMetricsWithRegisterer(prometheus.NewRegistry())
	svcs, err := buildServices(cfg, deps, cache.NewMemory(time.Minute), m, logger)
	require.NoError(t, err)

	listener := bufconn.Listen(1 << 20)
	server := grpc.NewServer()
	svcs.registerGRPC(server)
	go func() { _ = server.Serve(listener) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) { return listener.Dial() }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		server.Stop()
		svcs.close(logger)
	})

	return &wiredClients{
		deps:  deps,
		shop:  shopv1.NewShopServiceClient(conn),
		stock: shopv1.NewStockServiceClient(conn),
	}
}

func TestBuildServices_CheckoutThroughGRPC(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CartRetryDelay = time.Millisecond
	env := startWired(t, cfg)
	ctx := context.Background()

	cart, err := env.shop.AddItem(ctx, &shopv1.AddItemRequest{UserId: "user-1", ProductId: "sku-coffee", Quantity: 2})
	require.NoError(t, err)
	require.Equal(t, "49.80", cart.GetCart().TotalPrice)

	placed, err := env.shop.Checkout(ctx, &shopv1.CheckoutRequest{UserId: "user-1"})
	require.NoError(t, err)
	require.Equal(t, "PENDING", placed.GetOrder().Status)
	require.Equal(t, "49.80", placed.GetOrder().TotalAmount)

	product, err := env.stock.GetProduct(ctx, &shopv1.GetProductRequest{ProductId: "sku-coffee"})
	require.NoError(t, err)
	require.EqualValues(t, 98, product.GetProduct().Stock)

	after, err := env.shop.GetCart(ctx, &shopv1.GetCartRequest{UserId: "user-1"})
	require.NoError(t, err)
	require.Empty(t, after.GetCart().GetItems())

	pending, err := env.deps.outboxRepo.Stats(ctx)
	require.NoError(t, err)
	require.Positive(t, pending.PendingCount)
}

func TestBuildServices_RemoteStock(t *testing.T) {
	// Склад должен быть доступен по TCP: RemoteLedger сам открывает соединение.
	logger := log.WithField("test", "warehouse")
	whDeps, err := initRuntimeDependencies(context.Background(), Config{StorageDriver: StorageDriverMemory}, logger)
	require.NoError(t, err)
	require.NoError(t, seedDemoData(context.Background(), whDeps.store))
	whSvcs, err := buildServices(DefaultConfig(), whDeps, cache.Noop{}, nil, logger)
	require.NoError(t, err)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	whServer := grpc.NewServer()
	whSvcs.registerGRPC(whServer)
	go func() { _ = whServer.Serve(lis) }()
	t.Cleanup(whServer.Stop)

	cfg := DefaultConfig()
	cfg.RemoteStockAddr = lis.Addr().String()
	cfg.RemoteStockTimeout = time.Second
	shop := startWired(t, cfg)
	ctx := context.Background()

	_, err = shop.shop.AddItem(ctx, &shopv1.AddItemRequest{UserId: "user-2", ProductId: "sku-kettle", Quantity: 3})
	require.NoError(t, err)
	_, err = shop.shop.Checkout(ctx, &shopv1.CheckoutRequest{UserId: "user-2"})
	require.NoError(t, err)

	remote, ok := whDeps.memStore.ProductSnapshot("sku-kettle")
	require.True(t, ok)
	require.Equal(t, 12, remote.Stock)

	local, ok := shop.deps.memStore.ProductSnapshot("sku-kettle")
	require.True(t, ok)
	require.Equal(t, 15, local.Stock)
}

func TestRegisterGRPCMetrics_ReusesCollector(t *testing.T) {
	logger := log.WithField("test", "grpc-metrics")
	first := registerGRPCMetrics(logger)
	second := registerGRPCMetrics(logger)
	require.Same(t, first, second)
}

func TestServicesClose_NilSafe(_ *testing.T) {
	var svcs *services
	svcs.close(log.WithField("test", "close"))
	(&services{}).close(log.WithField("test", "close"))
}
