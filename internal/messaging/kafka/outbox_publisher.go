package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/shop/internal/domain"
)

// OutboxTopics задаёт topic для каждого типа агрегата.
type OutboxTopics struct {
	Orders string
	Stock  string
}

// DefaultOutboxTopics возвращает стандартные topics событий.
func DefaultOutboxTopics() OutboxTopics {
	return OutboxTopics{Orders: TopicOrderEvents, Stock: TopicStockEvents}
}

// Route возвращает topic для событий агрегата aggregateType.
func (t OutboxTopics) Route(aggregateType string) string {
	if aggregateType == domain.AggregateProduct && t.Stock != "" {
		return t.Stock
	}
	if t.Orders != "" {
		return t.Orders
	}
	return TopicOrderEvents
}

// OutboxTopicPublisher публикует события outbox в Kafka; ключ сообщения равен ID агрегата,
// поэтому события одного заказа попадают в одну партицию по порядку.
type OutboxTopicPublisher struct {
	producer *Producer
	topics   OutboxTopics
	now      func() time.Time
}

// NewOutboxPublisher создаёт Kafka-паблишер для transactional outbox.
func NewOutboxPublisher(producer *Producer, topics OutboxTopics) *OutboxTopicPublisher {
	return &OutboxTopicPublisher{
		producer: producer,
		topics:   topics,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (p *OutboxTopicPublisher) Publish(ctx context.Context, event domain.OutboxMessage) error {
	if p == nil || p.producer == nil {
		return fmt.Errorf("kafka outbox publisher is not initialized")
	}

	key := event.AggregateID
	if key == "" {
		key = event.ID
	}

	payload := json.RawMessage(event.Payload)
	if len(payload) == 0 {
		payload = json.RawMessage(`{}`)
	}
	body, err := json.Marshal(OutboxEnvelope{
		ID:            event.ID,
		AggregateType: event.AggregateType,
		AggregateID:   event.AggregateID,
		EventType:     event.EventType,
		Payload:       payload,
		OccurredAt:    event.CreatedAt,
		PublishedAt:   p.now(),
	})
	if err != nil {
		return fmt.Errorf("marshal outbox envelope: %w", err)
	}

	return p.producer.PublishRaw(ctx, p.topics.Route(event.AggregateType), key, body, map[string]string{
		HeaderEventType: event.EventType,
		HeaderOutboxID:  event.ID,
	})
}

var _ domain.OutboxPublisher = (*OutboxTopicPublisher)(nil)
