package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/IBM/sarama"

	"github.com/vladislavdragonenkov/shop/internal/messaging/kafka"
)

const consumerDLQValue = `{"original_topic":"shop.stock.restock","original_key":"sku-coffee","original_value":"{\"product_id\":\"sku-coffee\",\"quantity\":5}","retry_count":3}`

func testConfig() config {
	return config{
		sourceTopic:  kafka.TopicDeadLetterQueue,
		topics:       kafka.DefaultOutboxTopics(),
		restockTopic: kafka.TopicRestock,
		limit:        10,
		idleTimeout:  20 * time.Millisecond,
	}
}

func noEnv(string) string { return "" }

func TestParseBrokers(t *testing.T) {
	brokers := parseBrokers(" broker-1:9092, ,broker-2:9092 ")
	if len(brokers) != 2 {
		t.Fatalf("unexpected brokers count: got=%d want=2", len(brokers))
	}
	if brokers[0] != "broker-1:9092" || brokers[1] != "broker-2:9092" {
		t.Fatalf("unexpected brokers: %+v", brokers)
	}
}

func TestExtractReplayMessage_ConsumerDLQPayload(t *testing.T) {
	got, ok, err := extractReplayMessage(&sarama.ConsumerMessage{Value: []byte(consumerDLQValue)}, testConfig())
	if err != nil {
		t.Fatalf("extractReplayMessage failed: %v", err)
	}
	if !ok {
		t.Fatal("expected replay candidate")
	}
	if got.topic != kafka.TopicRestock {
		t.Fatalf("unexpected topic: %s", got.topic)
	}
	if got.key != "sku-coffee" {
		t.Fatalf("unexpected key: %s", got.key)
	}
	if string(got.value) != `{"product_id":"sku-coffee","quantity":5}` {
		t.Fatalf("unexpected replay value: %s", string(got.value))
	}
	if len(got.headers) != 0 {
		t.Fatalf("consumer replay must not add headers: %+v", got.headers)
	}
}

func TestExtractReplayMessage_ConsumerDLQWithoutTopic(t *testing.T) {
	raw := []byte(`{"original_key":"sku-scale","original_value":"{\"product_id\":\"sku-scale\",\"quantity\":1}"}`)

	cfg := testConfig()
	cfg.restockTopic = "custom.restock"
	got, ok, err := extractReplayMessage(&sarama.ConsumerMessage{Value: raw}, cfg)
	if err != nil || !ok {
		t.Fatalf("expected replay candidate, ok=%v err=%v", ok, err)
	}
	if got.topic != "custom.restock" {
		t.Fatalf("expected fallback to restock topic, got %s", got.topic)
	}
}

func TestExtractReplayMessage_OutboxDLQPayload(t *testing.T) {
	tests := []struct {
		name          string
		aggregateType string
		aggregateID   string
		eventType     string
		wantTopic     string
	}{
		{name: "order event", aggregateType: "order", aggregateID: "order-1", eventType: "order.status_changed", wantTopic: kafka.TopicOrderEvents},
		{name: "stock event", aggregateType: "product", aggregateID: "sku-scale", eventType: "stock.low", wantTopic: kafka.TopicStockEvents},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			envelope := map[string]any{
				"id":             "dlq-1",
				"aggregate_type": tt.aggregateType,
				"aggregate_id":   tt.aggregateID,
				"event_type":     "outbox.dead_letter",
				"payload": map[string]any{
					"outbox_id":      "outbox-1",
					"aggregate_type": tt.aggregateType,
					"aggregate_id":   tt.aggregateID,
					"event_type":     tt.eventType,
					"payload":        map[string]any{"status": "PAID"},
					"publish_error":  "timeout",
				},
			}
			raw, err := json.Marshal(envelope)
			if err != nil {
				t.Fatalf("marshal envelope failed: %v", err)
			}

			got, ok, err := extractReplayMessage(&sarama.ConsumerMessage{Value: raw}, testConfig())
			if err != nil {
				t.Fatalf("extractReplayMessage failed: %v", err)
			}
			if !ok {
				t.Fatal("expected replay candidate")
			}
			if got.topic != tt.wantTopic {
				t.Fatalf("unexpected topic: got=%s want=%s", got.topic, tt.wantTopic)
			}
			if got.key != tt.aggregateID {
				t.Fatalf("unexpected key: %s", got.key)
			}
			if got.headers[kafka.HeaderEventType] != tt.eventType || got.headers[kafka.HeaderOutboxID] != "outbox-1" {
				t.Fatalf("unexpected headers: %+v", got.headers)
			}

			var replay kafka.OutboxEnvelope
			if err := json.Unmarshal(got.value, &replay); err != nil {
				t.Fatalf("replay payload must be an outbox envelope: %v", err)
			}
			if replay.ID != "outbox-1" || replay.EventType != tt.eventType {
				t.Fatalf("unexpected replay envelope: %+v", replay)
			}
			if string(replay.Payload) != `{"status":"PAID"}` {
				t.Fatalf("original payload must be restored, got %s", string(replay.Payload))
			}
			if replay.PublishedAt.IsZero() {
				t.Fatal("expected PublishedAt to be set")
			}
		})
	}
}

func TestExtractReplayMessage_OutboxInvalidNestedPayload(t *testing.T) {
	envelope := map[string]any{
		"id":             "dlq-1",
		"aggregate_type": "order",
		"aggregate_id":   "order-1",
		"event_type":     "outbox.dead_letter",
		"payload": map[string]any{
			"outbox_id":      "outbox-1",
			"aggregate_type": "order",
			"aggregate_id":   "order-1",
			"event_type":     "order.cancelled",
		},
	}
	raw, err := json.Marshal(envelope)
	if err != nil {
		t.Fatalf("marshal envelope failed: %v", err)
	}

	_, ok, err := extractReplayMessage(&sarama.ConsumerMessage{Value: raw}, testConfig())
	if err == nil {
		t.Fatal("expected error for missing nested payload")
	}
	if ok {
		t.Fatal("expected no replay candidate")
	}
}

func TestExtractReplayMessage_UnknownPayload(t *testing.T) {
	for _, value := range []string{`{"foo":"bar"}`, `not-json`, `{"id":"x","payload":"not-an-object"}`} {
		_, ok, _ := extractReplayMessage(&sarama.ConsumerMessage{Value: []byte(value)}, testConfig())
		if ok {
			t.Fatalf("expected %q to be skipped", value)
		}
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := firstNonEmpty("", "  ", "x", "y"); got != "x" {
		t.Fatalf("unexpected first non-empty value: %q", got)
	}
	if got := firstNonEmpty("", " "); got != "" {
		t.Fatalf("expected empty result, got %q", got)
	}
}

func TestReadConfig_FromFlags(t *testing.T) {
	cfg, err := readConfig([]string{
		"-brokers=broker-1:9092,broker-2:9092",
		"-source-topic=custom.dlq",
		"-orders-topic=custom.orders",
		"-stock-topic=custom.stock",
		"-limit=10",
		"-execute=true",
		"-from-newest=true",
		"-idle-timeout=3s",
	}, noEnv)
	if err != nil {
		t.Fatalf("readConfig failed: %v", err)
	}
	if len(cfg.brokers) != 2 {
		t.Fatalf("unexpected brokers count: %d", len(cfg.brokers))
	}
	if cfg.sourceTopic != "custom.dlq" || cfg.topics.Orders != "custom.orders" || cfg.topics.Stock != "custom.stock" {
		t.Fatalf("unexpected topics: %+v", cfg)
	}
	if cfg.restockTopic != kafka.TopicRestock {
		t.Fatalf("unexpected restock topic: %s", cfg.restockTopic)
	}
	if cfg.limit != 10 || !cfg.execute || !cfg.fromNewest {
		t.Fatalf("unexpected flags: %+v", cfg)
	}
	if cfg.idleTimeout != 3*time.Second {
		t.Fatalf("unexpected idle-timeout: %s", cfg.idleTimeout)
	}
}

func TestReadConfig_BrokersFromEnv(t *testing.T) {
	cfg, err := readConfig(nil, func(key string) string {
		if key == envKafkaBrokers {
			return "env-broker:9092"
		}
		return ""
	})
	if err != nil {
		t.Fatalf("readConfig failed: %v", err)
	}
	if len(cfg.brokers) != 1 || cfg.brokers[0] != "env-broker:9092" {
		t.Fatalf("unexpected brokers: %+v", cfg.brokers)
	}
	if cfg.sourceTopic != kafka.TopicDeadLetterQueue || cfg.limit != defaultReplayLimit || cfg.execute {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestReadConfig_ValidationErrors(t *testing.T) {
	tests := []struct {
		args    []string
		wantErr string
	}{
		{args: []string{"-brokers="}, wantErr: "kafka brokers are required"},
		{args: []string{"-brokers=broker:9092", "-source-topic="}, wantErr: "source-topic is required"},
		{args: []string{"-brokers=broker:9092", "-orders-topic="}, wantErr: "orders-topic and stock-topic are required"},
		{args: []string{"-brokers=broker:9092", "-restock-topic= "}, wantErr: "restock-topic is required"},
		{args: []string{"-brokers=broker:9092", "-limit=0"}, wantErr: "limit must be > 0"},
		{args: []string{"-brokers=broker:9092", "-idle-timeout=0s"}, wantErr: "idle-timeout must be > 0"},
		{args: []string{"-unknown"}, wantErr: "flag provided but not defined"},
	}

	for _, tt := range tests {
		_, err := readConfig(tt.args, noEnv)
		if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
			t.Fatalf("readConfig(%v): expected %q, got %v", tt.args, tt.wantErr, err)
		}
	}
}

func TestPublishReplay(t *testing.T) {
	if err := publishReplay(nil, replayMessage{}); err == nil {
		t.Fatal("expected error for nil producer")
	}

	producer := &stubReplayProducer{}
	err := publishReplay(producer, replayMessage{
		topic:   "topic",
		key:     "key",
		value:   []byte(`{"x":1}`),
		headers: map[string]string{kafka.HeaderEventType: "order.created"},
	})
	if err != nil {
		t.Fatalf("publishReplay failed: %v", err)
	}
	if producer.calls != 1 {
		t.Fatalf("unexpected producer calls: %d", producer.calls)
	}
	if producer.lastMsg == nil || producer.lastMsg.Topic != "topic" {
		t.Fatalf("unexpected last message: %+v", producer.lastMsg)
	}
	if len(producer.lastMsg.Headers) != 1 || string(producer.lastMsg.Headers[0].Key) != kafka.HeaderEventType {
		t.Fatalf("unexpected headers: %+v", producer.lastMsg.Headers)
	}

	producer.sendErr = errors.New("send failed")
	if err := publishReplay(producer, replayMessage{topic: "topic", key: "key", value: []byte(`{"x":1}`)}); err == nil {
		t.Fatal("expected publishReplay error")
	}
}

func TestProcessPartition_DryRun(t *testing.T) {
	client := &stubOffsetClient{
		partitions: []int32{0},
		offsets:    map[int32]offsetRange{0: {oldest: 0, newest: 2}},
	}
	consumer := &stubPartitionConsumerSource{
		consumers: map[int32]partitionConsumer{
			0: closedPartitionConsumer([]*sarama.ConsumerMessage{{Partition: 0, Offset: 0, Value: []byte(consumerDLQValue)}}),
		},
	}

	stats, err := processPartition(context.Background(), consumer, client, nil, testConfig(), 0, 10)
	if err != nil {
		t.Fatalf("processPartition failed: %v", err)
	}
	if stats.processed != 1 || stats.replayed != 1 || stats.skipped != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if len(consumer.calls) != 1 || consumer.calls[0].offset != 0 {
		t.Fatalf("unexpected consume calls: %+v", consumer.calls)
	}
}

func TestProcessPartition_FromNewest(t *testing.T) {
	client := &stubOffsetClient{offsets: map[int32]offsetRange{0: {oldest: 3, newest: 10}}}
	consumer := &stubPartitionConsumerSource{
		consumers: map[int32]partitionConsumer{0: closedPartitionConsumer(nil)},
	}

	cfg := testConfig()
	cfg.fromNewest = true
	if _, err := processPartition(context.Background(), consumer, client, nil, cfg, 0, 2); err != nil {
		t.Fatalf("processPartition failed: %v", err)
	}
	if len(consumer.calls) != 1 || consumer.calls[0].offset != 8 {
		t.Fatalf("expected scan to start at offset 8, got %+v", consumer.calls)
	}

	consumer.calls = nil
	if _, err := processPartition(context.Background(), consumer, client, nil, cfg, 0, 50); err != nil {
		t.Fatalf("processPartition failed: %v", err)
	}
	if consumer.calls[0].offset != 3 {
		t.Fatalf("start offset must not go below oldest, got %d", consumer.calls[0].offset)
	}
}

func TestProcessPartition_EmptyPartition(t *testing.T) {
	client := &stubOffsetClient{offsets: map[int32]offsetRange{0: {oldest: 5, newest: 5}}}
	consumer := &stubPartitionConsumerSource{}

	stats, err := processPartition(context.Background(), consumer, client, nil, testConfig(), 0, 10)
	if err != nil {
		t.Fatalf("processPartition failed: %v", err)
	}
	if stats.processed != 0 || len(consumer.calls) != 0 {
		t.Fatalf("empty partition must not be consumed: stats=%+v calls=%+v", stats, consumer.calls)
	}
}

func TestProcessPartition_Execute(t *testing.T) {
	client := &stubOffsetClient{offsets: map[int32]offsetRange{0: {oldest: 0, newest: 2}}}
	consumer := &stubPartitionConsumerSource{
		consumers: map[int32]partitionConsumer{
			0: closedPartitionConsumer([]*sarama.ConsumerMessage{{Partition: 0, Offset: 0, Value: []byte(consumerDLQValue)}}),
		},
	}
	producer := &stubReplayProducer{}

	cfg := testConfig()
	cfg.execute = true

	stats, err := processPartition(context.Background(), consumer, client, producer, cfg, 0, 10)
	if err != nil {
		t.Fatalf("processPartition failed: %v", err)
	}
	if stats.replayed != 1 {
		t.Fatalf("expected replayed=1, got %+v", stats)
	}
	if producer.calls != 1 || producer.lastMsg.Topic != kafka.TopicRestock {
		t.Fatalf("unexpected producer state: calls=%d msg=%+v", producer.calls, producer.lastMsg)
	}
}

func TestProcessPartition_ErrorBranches(t *testing.T) {
	cfg := testConfig()
	cfg.execute = true

	clientOffsetErr := &stubOffsetClient{offsetErr: map[int32]error{0: errors.New("offset")}}
	if _, err := processPartition(context.Background(), &stubPartitionConsumerSource{}, clientOffsetErr, &stubReplayProducer{}, cfg, 0, 1); err == nil {
		t.Fatal("expected offset error")
	}

	client := &stubOffsetClient{offsets: map[int32]offsetRange{0: {oldest: 0, newest: 2}}}
	consumerErr := &stubPartitionConsumerSource{consumeErr: errors.New("consume")}
	if _, err := processPartition(context.Background(), consumerErr, client, &stubReplayProducer{}, cfg, 0, 1); err == nil {
		t.Fatal("expected consume error")
	}

	pcWithErr := &stubPartitionConsumer{
		messages: make(chan *sarama.ConsumerMessage),
		errors:   make(chan *sarama.ConsumerError, 1),
	}
	pcWithErr.errors <- &sarama.ConsumerError{Err: errors.New("consumer boom")}
	close(pcWithErr.errors)
	consumer := &stubPartitionConsumerSource{consumers: map[int32]partitionConsumer{0: pcWithErr}}
	if _, err := processPartition(context.Background(), consumer, client, &stubReplayProducer{}, cfg, 0, 1); err == nil {
		t.Fatal("expected consumer error branch")
	}
	close(pcWithErr.messages)

	pcBadPayload := closedPartitionConsumer([]*sarama.ConsumerMessage{{
		Partition: 0,
		Offset:    0,
		Value:     []byte(`{"id":"x","payload":{"outbox_id":"x"}}`),
	}})
	consumer = &stubPartitionConsumerSource{consumers: map[int32]partitionConsumer{0: pcBadPayload}}
	stats, err := processPartition(context.Background(), consumer, client, &stubReplayProducer{}, cfg, 0, 1)
	if err != nil {
		t.Fatalf("unexpected bad-payload error: %v", err)
	}
	if stats.skipped != 1 {
		t.Fatalf("expected skipped=1, got %+v", stats)
	}

	pcOK := closedPartitionConsumer([]*sarama.ConsumerMessage{{Partition: 0, Offset: 0, Value: []byte(consumerDLQValue)}})
	consumer = &stubPartitionConsumerSource{consumers: map[int32]partitionConsumer{0: pcOK}}
	producer := &stubReplayProducer{sendErr: errors.New("send fail")}
	if _, err := processPartition(context.Background(), consumer, client, producer, cfg, 0, 1); err == nil {
		t.Fatal("expected producer send error")
	}
}

func TestProcessPartition_IdleTimeoutAndContext(t *testing.T) {
	client := &stubOffsetClient{offsets: map[int32]offsetRange{0: {oldest: 0, newest: 2}}}
	cfg := testConfig()
	cfg.idleTimeout = 10 * time.Millisecond

	idleConsumer := &stubPartitionConsumer{
		messages: make(chan *sarama.ConsumerMessage),
		errors:   make(chan *sarama.ConsumerError),
	}
	consumer := &stubPartitionConsumerSource{consumers: map[int32]partitionConsumer{0: idleConsumer}}

	stats, err := processPartition(context.Background(), consumer, client, nil, cfg, 0, 1)
	if err != nil {
		t.Fatalf("unexpected idle-timeout error: %v", err)
	}
	if stats.processed != 0 {
		t.Fatalf("expected processed=0, got %+v", stats)
	}
	if !idleConsumer.closed {
		t.Fatal("partition consumer must be closed")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	canceledPC := &stubPartitionConsumer{
		messages: make(chan *sarama.ConsumerMessage),
		errors:   make(chan *sarama.ConsumerError),
	}
	canceledConsumer := &stubPartitionConsumerSource{consumers: map[int32]partitionConsumer{0: canceledPC}}
	if _, err := processPartition(ctx, canceledConsumer, client, nil, cfg, 0, 1); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled, got %v", err)
	}
}

func TestRunReplay(t *testing.T) {
	cfg := testConfig()
	cfg.limit = 1

	if _, err := runReplay(context.Background(), cfg, nil, nil, nil); err == nil {
		t.Fatal("expected missing deps error")
	}

	client := &stubOffsetClient{
		partitions: []int32{2, 0},
		offsets: map[int32]offsetRange{
			0: {oldest: 0, newest: 2},
			2: {oldest: 0, newest: 2},
		},
	}
	consumer := &stubPartitionConsumerSource{
		consumers: map[int32]partitionConsumer{
			0: closedPartitionConsumer([]*sarama.ConsumerMessage{{Partition: 0, Offset: 0, Value: []byte(consumerDLQValue)}}),
			2: closedPartitionConsumer([]*sarama.ConsumerMessage{{Partition: 2, Offset: 0, Value: []byte(consumerDLQValue)}}),
		},
	}

	stats, err := runReplay(context.Background(), cfg, client, consumer, nil)
	if err != nil {
		t.Fatalf("runReplay failed: %v", err)
	}
	if stats.processed != 1 || stats.replayed != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if len(consumer.calls) != 1 {
		t.Fatalf("expected one partition due limit=1, got calls=%d", len(consumer.calls))
	}
	if consumer.calls[0].partition != 0 {
		t.Fatalf("expected first sorted partition=0, got %d", consumer.calls[0].partition)
	}

	executeCfg := cfg
	executeCfg.execute = true
	if _, err := runReplay(context.Background(), executeCfg, client, consumer, nil); err == nil {
		t.Fatal("expected execute mode to require producer")
	}

	if _, err := runReplay(context.Background(), cfg, &stubOffsetClient{partitionsErr: errors.New("metadata")}, consumer, nil); err == nil {
		t.Fatal("expected partitions error")
	}

	if _, err := runReplay(context.Background(), cfg, &stubOffsetClient{}, consumer, nil); err != nil {
		t.Fatalf("expected nil error for empty partitions, got %v", err)
	}
}

func TestRun_UsesDependencies(t *testing.T) {
	oldDeps := newReplayDependencies
	defer func() { newReplayDependencies = oldDeps }()

	cfg := testConfig()
	cfg.limit = 1

	newReplayDependencies = func(config) (offsetClient, partitionConsumerSource, replayProducer, error) {
		return nil, nil, nil, errors.New("deps failed")
	}
	if err := run(context.Background(), cfg); err == nil || !strings.Contains(err.Error(), "deps failed") {
		t.Fatalf("expected deps error, got %v", err)
	}

	client := &stubOffsetClient{
		partitions: []int32{0},
		offsets:    map[int32]offsetRange{0: {oldest: 0, newest: 2}},
	}
	consumer := &stubPartitionConsumerSource{
		consumers: map[int32]partitionConsumer{
			0: closedPartitionConsumer([]*sarama.ConsumerMessage{{Partition: 0, Offset: 0, Value: []byte(consumerDLQValue)}}),
		},
	}
	producer := &stubReplayProducer{}

	newReplayDependencies = func(config) (offsetClient, partitionConsumerSource, replayProducer, error) {
		return client, consumer, producer, nil
	}
	if err := run(context.Background(), cfg); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !client.closed || !consumer.closed || !producer.closed {
		t.Fatalf("expected all deps to be closed: client=%v consumer=%v producer=%v", client.closed, consumer.closed, producer.closed)
	}
}

func TestMain_SuccessWithStubbedDeps(t *testing.T) {
	oldDeps := newReplayDependencies
	oldArgs := os.Args
	defer func() {
		newReplayDependencies = oldDeps
		os.Args = oldArgs
	}()

	client := &stubOffsetClient{
		partitions: []int32{0},
		offsets:    map[int32]offsetRange{0: {oldest: 0, newest: 2}},
	}
	consumer := &stubPartitionConsumerSource{
		consumers: map[int32]partitionConsumer{
			0: closedPartitionConsumer([]*sarama.ConsumerMessage{{Partition: 0, Offset: 0, Value: []byte(consumerDLQValue)}}),
		},
	}
	newReplayDependencies = func(config) (offsetClient, partitionConsumerSource, replayProducer, error) {
		return client, consumer, nil, nil
	}

	os.Args = []string{"dlq-reprocess", "-brokers=broker:9092", "-limit=1", "-idle-timeout=50ms"}
	main()

	if !client.closed {
		t.Fatal("expected client to be closed after main")
	}
}

func TestFailExits(t *testing.T) {
	if os.Getenv("DLQ_TEST_FAIL_EXIT") == "1" {
		fail("boom")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestFailExits")
	cmd.Env = append(os.Environ(), "DLQ_TEST_FAIL_EXIT=1")
	err := cmd.Run()
	if err == nil {
		t.Fatal("expected subprocess to exit with error")
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) || exitErr.ExitCode() == 0 {
		t.Fatalf("expected non-zero exit code, got %v", err)
	}
}

type offsetRange struct {
	oldest int64
	newest int64
}

type stubOffsetClient struct {
	partitions    []int32
	partitionsErr error
	offsets       map[int32]offsetRange
	offsetErr     map[int32]error
	closed        bool
}

func (s *stubOffsetClient) GetOffset(_ string, partition int32, marker int64) (int64, error) {
	if err, ok := s.offsetErr[partition]; ok {
		return 0, err
	}

	r := s.offsets[partition]
	switch marker {
	case sarama.OffsetOldest:
		return r.oldest, nil
	case sarama.OffsetNewest:
		return r.newest, nil
	default:
		return 0, fmt.Errorf("unsupported marker %d", marker)
	}
}

func (s *stubOffsetClient) Partitions(string) ([]int32, error) {
	if s.partitionsErr != nil {
		return nil, s.partitionsErr
	}
	return append([]int32(nil), s.partitions...), nil
}

func (s *stubOffsetClient) Close() error {
	s.closed = true
	return nil
}

type consumeCall struct {
	partition int32
	offset    int64
}

type stubPartitionConsumerSource struct {
	consumers  map[int32]partitionConsumer
	consumeErr error
	calls      []consumeCall
	closed     bool
}

func (s *stubPartitionConsumerSource) ConsumePartition(_ string, partition int32, offset int64) (partitionConsumer, error) {
	s.calls = append(s.calls, consumeCall{partition: partition, offset: offset})
	if s.consumeErr != nil {
		return nil, s.consumeErr
	}
	pc, ok := s.consumers[partition]
	if !ok {
		return nil, fmt.Errorf("partition %d not configured", partition)
	}
	return pc, nil
}

func (s *stubPartitionConsumerSource) Close() error {
	s.closed = true
	return nil
}

type stubPartitionConsumer struct {
	messages chan *sarama.ConsumerMessage
	errors   chan *sarama.ConsumerError
	closed   bool
}

func (s *stubPartitionConsumer) Messages() <-chan *sarama.ConsumerMessage { return s.messages }
func (s *stubPartitionConsumer) Errors() <-chan *sarama.ConsumerError     { return s.errors }
func (s *stubPartitionConsumer) Close() error {
	s.closed = true
	return nil
}

func closedPartitionConsumer(messages []*sarama.ConsumerMessage) *stubPartitionConsumer {
	msgCh := make(chan *sarama.ConsumerMessage, len(messages))
	errCh := make(chan *sarama.ConsumerError)
	for _, msg := range messages {
		msgCh <- msg
	}
	close(msgCh)
	close(errCh)
	return &stubPartitionConsumer{messages: msgCh, errors: errCh}
}

type stubReplayProducer struct {
	sendErr error
	calls   int
	closed  bool
	lastMsg *sarama.ProducerMessage
}

func (s *stubReplayProducer) SendMessage(msg *sarama.ProducerMessage) (int32, int64, error) {
	s.calls++
	s.lastMsg = msg
	if s.sendErr != nil {
		return 0, 0, s.sendErr
	}
	return 0, int64(s.calls), nil
}

func (s *stubReplayProducer) Close() error {
	s.closed = true
	return nil
}
