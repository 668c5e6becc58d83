package grpcsvc

import (
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/vladislavdragonenkov/shop/internal/domain"
	shopv1 "github.com/vladislavdragonenkov/shop/proto/shop/v1"
)

const moneyScale = 2

func toProtoCart(cart domain.Cart) *shopv1.Cart {
	items := make([]*shopv1.CartItem, 0, len(cart.Items()))
	for _, item := range cart.Items() {
		items = append(items, &shopv1.CartItem{
			ProductId: item.ProductID,
			Quantity:  int32(item.Quantity), //nolint:gosec // quantity is validated to be small and positive.
			UnitPrice: item.Price.StringFixed(moneyScale),
			LineTotal: item.LineTotal().StringFixed(moneyScale),
			AddedAt:   timestamppb.New(item.AddedAt),
		})
	}
	return &shopv1.Cart{
		Id:         cart.ID,
		UserId:     cart.UserID,
		Items:      items,
		TotalPrice: cart.TotalPrice().StringFixed(moneyScale),
		Version:    cart.Version,
	}
}

func toProtoOrder(order domain.Order) *shopv1.Order {
	items := make([]*shopv1.OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, &shopv1.OrderItem{
			Id:        item.ID,
			ProductId: item.ProductID,
			Quantity:  int32(item.Quantity), //nolint:gosec // quantity is validated to be small and positive.
			UnitPrice: item.UnitPrice.StringFixed(moneyScale),
		})
	}

	history := make([]*shopv1.OrderHistoryEntry, 0, len(order.History))
	for _, entry := range order.History {
		history = append(history, &shopv1.OrderHistoryEntry{
			From:      string(entry.FromStatus()),
			To:        string(entry.To),
			Message:   entry.Message,
			Actor:     entry.Actor,
			CreatedAt: timestamppb.New(entry.CreatedAt),
		})
	}

	return &shopv1.Order{
		Id:             order.ID,
		OrderNumber:    order.OrderNumber,
		UserId:         order.UserID,
		Status:         string(order.Status),
		StatusDisplay:  order.Status.DisplayName(),
		Items:          items,
		SubtotalAmount: order.SubtotalAmount.StringFixed(moneyScale),
		ShippingAmount: order.ShippingAmount.StringFixed(moneyScale),
		DiscountAmount: order.DiscountAmount.StringFixed(moneyScale),
		TotalAmount:    order.TotalAmount.StringFixed(moneyScale),
		PaymentMethod:  string(order.PaymentMethod),
		BalanceCharged: order.BalanceCharged,
		Shipping:       toProtoShipping(order.Shipping),
		History:        history,
		Version:        order.Version,
		CreatedAt:      timestamppb.New(order.CreatedAt),
		UpdatedAt:      timestamppb.New(order.UpdatedAt),
	}
}

func toProtoShipping(info domain.ShippingInfo) *shopv1.ShippingInfo {
	if info == (domain.ShippingInfo{}) {
		return nil
	}
	return &shopv1.ShippingInfo{
		ReceiverName:    info.ReceiverName,
		ReceiverPhone:   info.ReceiverPhone,
		Zipcode:         info.Zipcode,
		Address:         info.Address,
		AddressDetail:   info.AddressDetail,
		DeliveryMessage: info.DeliveryMessage,
	}
}

func fromProtoShipping(info *shopv1.ShippingInfo) domain.ShippingInfo {
	if info == nil {
		return domain.ShippingInfo{}
	}
	return domain.ShippingInfo{
		ReceiverName:    info.ReceiverName,
		ReceiverPhone:   info.ReceiverPhone,
		Zipcode:         info.Zipcode,
		Address:         info.Address,
		AddressDetail:   info.AddressDetail,
		DeliveryMessage: info.DeliveryMessage,
	}
}

func toProtoProduct(p domain.Product) *shopv1.Product {
	return &shopv1.Product{
		Id:      p.ID,
		Name:    p.Name,
		Price:   p.Price.StringFixed(moneyScale),
		Stock:   int32(p.Stock), //nolint:gosec // stock fits into int32 for catalog sizes we serve.
		Version: p.Version,
	}
}
