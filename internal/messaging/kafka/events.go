package kafka

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/IBM/sarama"

	"github.com/vladislavdragonenkov/shop/internal/domain"
)

// Topics для Kafka
const (
	TopicOrderEvents     = "shop.order.events"
	TopicStockEvents     = "shop.stock.events"
	TopicRestock         = "shop.stock.restock"
	TopicDeadLetterQueue = "shop.dlq"
)

// Kafka headers
const (
	HeaderRetryCount    = "x-retry-count"
	HeaderOriginalTopic = "x-original-topic"
	HeaderErrorMessage  = "x-error-message"
	HeaderFailedAt      = "x-failed-at"
	HeaderEventType     = "x-event-type"
	HeaderOutboxID      = "x-outbox-id"
)

// OutboxEnvelope: формат события, публикуемого из transactional outbox.
type OutboxEnvelope struct {
	ID            string          `json:"id"`
	AggregateType string          `json:"aggregate_type"`
	AggregateID   string          `json:"aggregate_id"`
	EventType     string          `json:"event_type"`
	Payload       json.RawMessage `json:"payload"`
	OccurredAt    time.Time       `json:"occurred_at"`
	PublishedAt   time.Time       `json:"published_at"`
}

// RestockMessage: команда склада на пополнение остатка товара.
type RestockMessage struct {
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Reference string    `json:"reference,omitempty"`
	IssuedAt  time.Time `json:"issued_at"`
}

// Validate проверяет обязательные поля команды.
func (m RestockMessage) Validate() error {
	if strings.TrimSpace(m.ProductID) == "" {
		return fmt.Errorf("restock product_id is required: %w", domain.ErrInvalidArgument)
	}
	return domain.ValidateQuantity(m.Quantity)
}

// DeadLetter: содержимое сообщения, отправленного в DLQ после исчерпания попыток.
type DeadLetter struct {
	OriginalTopic     string `json:"original_topic"`
	OriginalPartition int32  `json:"original_partition"`
	OriginalOffset    int64  `json:"original_offset"`
	OriginalKey       string `json:"original_key"`
	OriginalValue     string `json:"original_value"`
	ErrorMessage      string `json:"error_message"`
	FailedAt          string `json:"failed_at"`
	RetryCount        int    `json:"retry_count"`
}

// ParseRestockMessage разбирает и проверяет команду пополнения.
func ParseRestockMessage(message *sarama.ConsumerMessage) (RestockMessage, error) {
	var msg RestockMessage
	if err := json.Unmarshal(message.Value, &msg); err != nil {
		return RestockMessage{}, fmt.Errorf("failed to unmarshal restock message: %w", err)
	}
	if err := msg.Validate(); err != nil {
		return RestockMessage{}, err
	}
	return msg, nil
}

// ParseOutboxEnvelope разбирает событие outbox.
func ParseOutboxEnvelope(message *sarama.ConsumerMessage) (OutboxEnvelope, error) {
	var env OutboxEnvelope
	if err := json.Unmarshal(message.Value, &env); err != nil {
		return OutboxEnvelope{}, fmt.Errorf("failed to unmarshal outbox envelope: %w", err)
	}
	return env, nil
}

func headerValue(headers []*sarama.RecordHeader, key string) (string, bool) {
	for _, h := range headers {
		if h != nil && string(h.Key) == key {
			return string(h.Value), true
		}
	}
	return "", false
}
