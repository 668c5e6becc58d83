package app

import (
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"

	"github.com/vladislavdragonenkov/shop/internal/cache"
	"github.com/vladislavdragonenkov/shop/internal/metrics"
	"github.com/vladislavdragonenkov/shop/internal/service/cart"
	"github.com/vladislavdragonenkov/shop/internal/service/checkout"
	grpcsvc "github.com/vladislavdragonenkov/shop/internal/service/grpc"
	"github.com/vladislavdragonenkov/shop/internal/service/inventory"
	"github.com/vladislavdragonenkov/shop/internal/service/order"
	"github.com/vladislavdragonenkov/shop/internal/service/retry"
	"github.com/vladislavdragonenkov/shop/internal/service/stock"
	shopv1 "github.com/vladislavdragonenkov/shop/proto/shop/v1"
)

// services: собранные бизнес-сервисы и их gRPC-обёртки.
type services struct {
	stock    *stock.Service
	carts    *cart.Service
	checkout *checkout.Service
	orders   *order.Service

	shop      *grpcsvc.ShopService
	stockGRPC *grpcsvc.StockService

	// remoteConn: соединение с удалённым складом, если он настроен.
	remoteConn *grpc.ClientConn
}

// buildServices связывает сервисы поверх хранилища. При заданном RemoteStockAddr
// checkout и отмена заказа работают со складом другого сервиса.
func buildServices(cfg Config, deps *runtimeDependencies, cartCache cache.CartCache, m *metrics.ShopMetrics, logger *log.Entry) (*services, error) {
	retrier := retry.New(retry.Config{
		MaxAttempts: cfg.CartRetryAttempts,
		Delay:       cfg.CartRetryDelay,
	}, logger.WithField("component", "retry"), m)

	stockSvc := stock.NewService(deps.store, logger.WithField("component", "stock"), m)
	cartSvc := cart.NewService(deps.store, retrier, cartCache, logger.WithField("component", "cart"), m)

	checkoutOpts := []checkout.Option{
		checkout.WithLowStockThreshold(cfg.LowStockThreshold),
		checkout.WithCartInvalidator(cartSvc),
	}
	var orderOpts []order.Option

	var remoteConn *grpc.ClientConn
	if cfg.RemoteStockAddr != "" {
		conn, err := inventory.Dial(cfg.RemoteStockAddr)
		if err != nil {
			return nil, err
		}
		remoteConn = conn

		remoteCfg := inventory.DefaultConfig()
		if cfg.RemoteStockTimeout > 0 {
			remoteCfg.Timeout = cfg.RemoteStockTimeout
		}
		ledger := inventory.NewRemoteLedger(
			shopv1.NewStockServiceClient(conn),
			remoteCfg,
			logger.WithField("component", "remote-stock"),
			m,
		)
		checkoutOpts = append(checkoutOpts, checkout.WithRemoteStock(ledger))
		orderOpts = append(orderOpts, order.WithRemoteStock(ledger))
		logger.WithField("addr", cfg.RemoteStockAddr).Info("using remote stock ledger")
	}

	checkoutSvc := checkout.NewService(deps.store, retrier, logger.WithField("component", "checkout"), m, checkoutOpts...)
	orderSvc := order.NewService(deps.store, retrier, logger.WithField("component", "order"), m, orderOpts...)

	return &services{
		stock:    stockSvc,
		carts:    cartSvc,
		checkout: checkoutSvc,
		orders:   orderSvc,
		shop: grpcsvc.NewShopService(
			cartSvc,
			checkoutSvc,
			orderSvc,
			deps.idempotencyRepo,
			logger.WithField("layer", "grpc"),
		),
		stockGRPC:  grpcsvc.NewStockService(stockSvc, logger.WithField("layer", "grpc-stock")),
		remoteConn: remoteConn,
	}, nil
}

func (s *services) close(logger *log.Entry) {
	if s == nil || s.remoteConn == nil {
		return
	}
	if err := s.remoteConn.Close(); err != nil {
		logger.WithError(err).Warn("failed to close remote stock connection")
	}
}

// registerGRPC регистрирует ShopService и StockService на сервере.
func (s *services) registerGRPC(server *grpc.Server) {
	shopv1.RegisterShopServiceServer(server, s.shop)
	shopv1.RegisterStockServiceServer(server, s.stockGRPC)
}
