package grpcsvc

import (
	"context"
	"errors"
	"strings"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/shop/internal/domain"
	shopv1 "github.com/vladislavdragonenkov/shop/proto/shop/v1"
)

// StockBackend: складская книга, которую публикует StockService.
type StockBackend interface {
	domain.StockLedger
	domain.ProductCatalog
}

// StockService отдаёт складскую книгу другим сервисам. Бизнес-отказ (нехватка,
// неизвестный товар) возвращается в теле ответа; ошибка RPC означает, что исход
// операции неизвестен вызывающей стороне.
type StockService struct {
	shopv1.UnimplementedStockServiceServer

	ledger StockBackend
	logger *log.Entry
}

// NewStockService конструирует складской gRPC-сервис.
func NewStockService(ledger StockBackend, logger *log.Entry) *StockService {
	if logger == nil {
		logger = log.New().WithField("component", "stock-grpc")
	}
	return &StockService{ledger: ledger, logger: logger}
}

// GetProduct возвращает цену и остаток товара.
func (s *StockService) GetProduct(ctx context.Context, req *shopv1.GetProductRequest) (*shopv1.ProductResponse, error) {
	if req == nil || strings.TrimSpace(req.ProductId) == "" {
		return nil, status.Error(codes.InvalidArgument, "product_id is required")
	}
	product, err := s.ledger.GetProduct(ctx, req.ProductId)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.WithError(err).WithField("product_id", req.ProductId).Error("failed to load product")
		}
		return nil, statusFromError(err).Err()
	}
	return &shopv1.ProductResponse{Product: toProtoProduct(product)}, nil
}

// DecreaseStock условно списывает остаток.
func (s *StockService) DecreaseStock(ctx context.Context, req *shopv1.StockChangeRequest) (*shopv1.StockChangeResponse, error) {
	return s.change(ctx, req, "DecreaseStock", s.ledger.DecreaseStock)
}

// IncreaseStock возвращает единицы на склад.
func (s *StockService) IncreaseStock(ctx context.Context, req *shopv1.StockChangeRequest) (*shopv1.StockChangeResponse, error) {
	return s.change(ctx, req, "IncreaseStock", s.ledger.IncreaseStock)
}

func (s *StockService) change(
	ctx context.Context,
	req *shopv1.StockChangeRequest,
	operation string,
	apply func(ctx context.Context, productID string, qty int) error,
) (*shopv1.StockChangeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	resp := &shopv1.StockChangeResponse{ProductId: req.ProductId, Requested: req.Quantity}
	if strings.TrimSpace(req.ProductId) == "" || req.Quantity <= 0 {
		resp.RejectReason = shopv1.RejectReasonInvalidArgument
		return resp, nil
	}

	err := apply(ctx, req.ProductId, int(req.Quantity))
	var shortage *domain.InsufficientStockError
	switch {
	case err == nil:
		resp.Applied = true
	case errors.As(err, &shortage):
		resp.RejectReason = shopv1.RejectReasonInsufficientStock
		resp.Available = int32(shortage.Available) //nolint:gosec // stock fits into int32 for catalog sizes we serve.
	case errors.Is(err, domain.ErrNotFound):
		resp.RejectReason = shopv1.RejectReasonNotFound
	case errors.Is(err, domain.ErrInvalidArgument):
		resp.RejectReason = shopv1.RejectReasonInvalidArgument
	default:
		s.logger.WithError(err).WithFields(log.Fields{
			"operation":  operation,
			"product_id": req.ProductId,
		}).Error("stock change failed")
		return nil, statusFromError(err).Err()
	}
	return resp, nil
}
