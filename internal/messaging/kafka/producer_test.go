package kafka

import (
	"context"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
)

func TestProducer_PublishEvent(t *testing.T) {
	mockProducer := mocks.NewSyncProducer(t, nil)
	mockProducer.ExpectSendMessageWithCheckerFunctionAndSucceed(mocks.ValueChecker(func(val []byte) error {
		if string(val) != `{"product_id":"p-1","quantity":3,"issued_at":"0001-01-01T00:00:00Z"}` {
			return errors.New("unexpected payload: " + string(val))
		}
		return nil
	}))

	producer := newProducer(mockProducer, nil)
	err := producer.PublishEvent(context.Background(), TopicRestock, "p-1", RestockMessage{ProductID: "p-1", Quantity: 3})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := mockProducer.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestProducer_PublishEvent_Error(t *testing.T) {
	mockProducer := mocks.NewSyncProducer(t, nil)
	mockProducer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	producer := newProducer(mockProducer, nil)
	err := producer.PublishEvent(context.Background(), TopicOrderEvents, "order-1", map[string]string{"status": "PAID"})
	if !errors.Is(err, sarama.ErrOutOfBrokers) {
		t.Fatalf("expected ErrOutOfBrokers, got %v", err)
	}
	if err := mockProducer.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestProducer_PublishEvent_MarshalError(t *testing.T) {
	mockProducer := mocks.NewSyncProducer(t, nil)
	producer := newProducer(mockProducer, nil)

	if err := producer.PublishEvent(context.Background(), TopicOrderEvents, "k", make(chan int)); err == nil {
		t.Fatal("expected marshal error")
	}
	if err := mockProducer.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestProducer_PublishRawCancelledContext(t *testing.T) {
	mockProducer := mocks.NewSyncProducer(t, nil)
	producer := newProducer(mockProducer, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := producer.PublishRaw(ctx, TopicOrderEvents, "k", []byte("{}"), nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if err := mockProducer.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestProducer_NilSafe(t *testing.T) {
	var producer *Producer
	if err := producer.PublishRaw(context.Background(), TopicOrderEvents, "k", nil, nil); err == nil {
		t.Fatal("expected error for nil producer")
	}
	if err := producer.Close(); err != nil {
		t.Fatalf("close nil producer: %v", err)
	}
}

func TestNewProducerConfig(t *testing.T) {
	cfg := NewProducerConfig()
	if !cfg.Producer.Idempotent || cfg.Net.MaxOpenRequests != 1 {
		t.Fatal("producer must be idempotent with a single in-flight request")
	}
	if cfg.Producer.RequiredAcks != sarama.WaitForAll {
		t.Fatalf("unexpected acks: %v", cfg.Producer.RequiredAcks)
	}
}
