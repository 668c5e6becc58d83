package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/shop/internal/domain"
	"github.com/vladislavdragonenkov/shop/internal/metrics"
	shopv1 "github.com/vladislavdragonenkov/shop/proto/shop/v1"
)

// CallOutcome классифицирует результат обращения к удалённому складу.
type CallOutcome string

const (
	// OutcomeSuccess: склад применил операцию.
	OutcomeSuccess CallOutcome = "success"
	// OutcomeRejected: склад ответил отказом (нехватка, неизвестный товар).
	OutcomeRejected CallOutcome = "rejected"
	// OutcomeTransportFailed: ответа нет (таймаут, обрыв, breaker открыт);
	// исход на стороне склада неизвестен, вызов считается неуспешным.
	OutcomeTransportFailed CallOutcome = "transport_failed"
)

const (
	opGetProduct = "get_product"
	opDecrease   = "decrease"
	opIncrease   = "increase"
)

// Config: параметры клиента удалённого склада.
type Config struct {
	// Timeout ограничивает каждый вызов.
	Timeout      time.Duration
	MaxFailures  int
	ResetTimeout time.Duration
}

// DefaultConfig возвращает конфигурацию по умолчанию.
func DefaultConfig() Config {
	return Config{
		Timeout:      2 * time.Second,
		MaxFailures:  5,
		ResetTimeout: 10 * time.Second,
	}
}

// RemoteLedger: складская книга другого сервиса, доступная по gRPC.
type RemoteLedger struct {
	client  shopv1.StockServiceClient
	timeout time.Duration
	breaker *CircuitBreaker
	logger  *log.Entry
	metrics *metrics.ShopMetrics
}

// Dial открывает соединение со складским сервисом.
func Dial(addr string) (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("dial stock service %s: %w", addr, err)
	}
	return conn, nil
}

// NewRemoteLedger создаёт клиент удалённого склада.
func NewRemoteLedger(client shopv1.StockServiceClient, cfg Config, logger *log.Entry, m *metrics.ShopMetrics) *RemoteLedger {
	if logger == nil {
		logger = log.New().WithField("component", "remote-stock")
	}
	defaults := DefaultConfig()
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaults.Timeout
	}
	if cfg.MaxFailures <= 0 {
		cfg.MaxFailures = defaults.MaxFailures
	}
	if cfg.ResetTimeout <= 0 {
		cfg.ResetTimeout = defaults.ResetTimeout
	}
	return &RemoteLedger{
		client:  client,
		timeout: cfg.Timeout,
		breaker: NewCircuitBreaker(cfg.MaxFailures, cfg.ResetTimeout, logger),
		logger:  logger,
		metrics: m,
	}
}

// GetProduct читает снимок товара со склада.
func (r *RemoteLedger) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	var resp *shopv1.ProductResponse
	outcome, err := r.call(ctx, opGetProduct, id, func(ctx context.Context) (CallOutcome, error) {
		var callErr error
		resp, callErr = r.client.GetProduct(ctx, &shopv1.GetProductRequest{ProductId: id})
		if callErr != nil {
			switch status.Code(callErr) {
			case codes.NotFound:
				return OutcomeRejected, domain.ErrProductNotFound
			case codes.InvalidArgument:
				return OutcomeRejected, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, status.Convert(callErr).Message())
			}
			return OutcomeTransportFailed, callErr
		}
		if resp.GetProduct() == nil {
			return OutcomeTransportFailed, errors.New("empty product response")
		}
		return OutcomeSuccess, nil
	})
	if outcome != OutcomeSuccess {
		return domain.Product{}, err
	}
	return fromProtoProduct(resp.GetProduct())
}

// DecreaseStock списывает qty на удалённом складе.
func (r *RemoteLedger) DecreaseStock(ctx context.Context, productID string, qty int) error {
	_, err := r.change(ctx, opDecrease, productID, qty, r.client.DecreaseStock)
	return err
}

// IncreaseStock возвращает qty на удалённый склад.
func (r *RemoteLedger) IncreaseStock(ctx context.Context, productID string, qty int) error {
	_, err := r.change(ctx, opIncrease, productID, qty, r.client.IncreaseStock)
	return err
}

type stockCall func(ctx context.Context, in *shopv1.StockChangeRequest, opts ...grpc.CallOption) (*shopv1.StockChangeResponse, error)

func (r *RemoteLedger) change(ctx context.Context, operation, productID string, qty int, invoke stockCall) (CallOutcome, error) {
	if err := domain.ValidateQuantity(qty); err != nil {
		return OutcomeRejected, err
	}
	return r.call(ctx, operation, productID, func(ctx context.Context) (CallOutcome, error) {
		resp, err := invoke(ctx, &shopv1.StockChangeRequest{
			ProductId: productID,
			Quantity:  int32(qty), //nolint:gosec // quantity is validated to be small and positive.
		})
		if err != nil {
			return OutcomeTransportFailed, err
		}
		if resp.Applied {
			return OutcomeSuccess, nil
		}
		return OutcomeRejected, rejection(productID, qty, resp)
	})
}

// call выполняет запрос с таймаутом через breaker. Ошибка транспорта превращается
// в ErrStockUnavailable; отказ склада возвращается доменной ошибкой.
func (r *RemoteLedger) call(
	ctx context.Context,
	operation, productID string,
	fn func(ctx context.Context) (CallOutcome, error),
) (CallOutcome, error) {
	outcome := OutcomeTransportFailed
	err := r.breaker.Execute(operation, func() error {
		callCtx, cancel := context.WithTimeout(ctx, r.timeout)
		defer cancel()

		var callErr error
		outcome, callErr = fn(callCtx)
		return callErr
	}, func(error) bool {
		return outcome == OutcomeTransportFailed
	})

	label := string(outcome)
	if IsCircuitOpen(err) {
		label = "circuit_open"
	}
	r.metrics.RecordRemoteStockCall(operation, label)

	if outcome != OutcomeTransportFailed {
		return outcome, err
	}
	if IsCircuitOpen(err) {
		return outcome, err
	}

	r.logger.WithError(err).WithFields(log.Fields{
		"operation":  operation,
		"product_id": productID,
	}).Warn("stock service call failed")
	if ctxErr := ctx.Err(); ctxErr != nil {
		return outcome, fmt.Errorf("%s %s: %w: %w", operation, productID, domain.ErrStockUnavailable, ctxErr)
	}
	return outcome, fmt.Errorf("%s %s: %w: %v", operation, productID, domain.ErrStockUnavailable, err)
}

func rejection(productID string, qty int, resp *shopv1.StockChangeResponse) error {
	switch resp.RejectReason {
	case shopv1.RejectReasonInsufficientStock:
		return &domain.InsufficientStockError{ProductID: productID, Requested: qty, Available: int(resp.Available)}
	case shopv1.RejectReasonNotFound:
		return domain.ErrProductNotFound
	case shopv1.RejectReasonInvalidArgument:
		return fmt.Errorf("%w: stock service rejected product %s qty %d", domain.ErrInvalidArgument, productID, qty)
	default:
		return fmt.Errorf("stock service rejected product %s: %q", productID, resp.RejectReason)
	}
}

func fromProtoProduct(p *shopv1.Product) (domain.Product, error) {
	price, err := decimal.NewFromString(p.Price)
	if err != nil {
		return domain.Product{}, fmt.Errorf("product %s: malformed price %q: %w", p.Id, p.Price, err)
	}
	return domain.Product{
		ID:      p.Id,
		Name:    p.Name,
		Price:   price,
		Stock:   int(p.Stock),
		Version: p.Version,
	}, nil
}

var (
	_ domain.StockLedger    = (*RemoteLedger)(nil)
	_ domain.ProductCatalog = (*RemoteLedger)(nil)
)
