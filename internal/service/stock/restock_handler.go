package stock

import (
	"context"

	"github.com/IBM/sarama"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/shop/internal/messaging/kafka"
)

// RestockHandler применяет команды пополнения склада из topic shop.stock.restock.
// Ошибка обработки отдаётся consumer'у, который повторяет сообщение и затем кладёт его в DLQ.
func RestockHandler(svc *Service) kafka.MessageHandler {
	return func(ctx context.Context, message *sarama.ConsumerMessage) error {
		cmd, err := kafka.ParseRestockMessage(message)
		if err != nil {
			svc.metrics.RecordRestockMessage("invalid")
			svc.logger.WithError(err).WithField("offset", message.Offset).Warn("invalid restock message")
			return err
		}

		if err := svc.Restock(ctx, cmd.ProductID, cmd.Quantity, cmd.Reference); err != nil {
			svc.metrics.RecordRestockMessage("failed")
			svc.logger.WithError(err).WithFields(log.Fields{
				"product_id": cmd.ProductID,
				"quantity":   cmd.Quantity,
			}).Warn("restock failed")
			return err
		}
		svc.metrics.RecordRestockMessage("processed")
		return nil
	}
}
