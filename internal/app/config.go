package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/vladislavdragonenkov/shop/internal/messaging/kafka"
)

// Поддерживаемые драйверы хранилища.
const (
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"
)

// Config описывает настройки запуска приложения.
type Config struct {
	GRPCAddr    string
	MetricsAddr string

	StorageDriver       string
	PostgresDSN         string
	PostgresAutoMigrate bool

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CartCacheTTL  time.Duration

	// KafkaBrokers: список адресов через запятую; пустая строка выключает Kafka.
	KafkaBrokers       string
	KafkaConsumerGroup string
	KafkaOrderTopic    string
	KafkaStockTopic    string
	KafkaRestockTopic  string

	OutboxPollInterval time.Duration
	OutboxBatchSize    int
	OutboxMaxAttempts  int
	OutboxRetryDelay   time.Duration

	IdempotencyCleanupInterval  time.Duration
	IdempotencyCleanupBatchSize int
	// IdempotencyStaleAfter: через сколько ключ в processing считается брошенным.
	IdempotencyStaleAfter time.Duration

	CartRetryAttempts int
	CartRetryDelay    time.Duration
	LowStockThreshold int

	// RemoteStockAddr переключает checkout и отмену на склад другого сервиса.
	RemoteStockAddr    string
	RemoteStockTimeout time.Duration

	SeedDemoData bool
}

// DefaultConfig возвращает настройки для локального запуска.
func DefaultConfig() Config {
	return Config{
		GRPCAddr:                    ":50051",
		MetricsAddr:                 ":9090",
		StorageDriver:               StorageDriverMemory,
		PostgresAutoMigrate:         true,
		CartCacheTTL:                5 * time.Minute,
		KafkaConsumerGroup:          "shop-service",
		KafkaOrderTopic:             kafka.TopicOrderEvents,
		KafkaStockTopic:             kafka.TopicStockEvents,
		KafkaRestockTopic:           kafka.TopicRestock,
		OutboxPollInterval:          time.Second,
		OutboxBatchSize:             100,
		OutboxMaxAttempts:           3,
		OutboxRetryDelay:            100 * time.Millisecond,
		IdempotencyCleanupInterval:  time.Minute,
		IdempotencyCleanupBatchSize: 500,
		IdempotencyStaleAfter:       5 * time.Minute,
		CartRetryAttempts:           3,
		CartRetryDelay:              100 * time.Millisecond,
		LowStockThreshold:           5,
		RemoteStockTimeout:          2 * time.Second,
		SeedDemoData:                true,
	}
}

// LoadConfigFromEnv накладывает переменные SHOP_* на DefaultConfig.
func LoadConfigFromEnv() (Config, error) {
	return loadConfig(os.LookupEnv)
}

func loadConfig(lookup func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()
	env := envReader{lookup: lookup}

	env.str("SHOP_GRPC_ADDR", &cfg.GRPCAddr)
	env.str("SHOP_METRICS_ADDR", &cfg.MetricsAddr)
	env.str("SHOP_STORAGE_DRIVER", &cfg.StorageDriver)
	env.str("SHOP_POSTGRES_DSN", &cfg.PostgresDSN)
	env.boolean("SHOP_POSTGRES_AUTO_MIGRATE", &cfg.PostgresAutoMigrate)

	env.str("SHOP_REDIS_ADDR", &cfg.RedisAddr)
	env.str("SHOP_REDIS_PASSWORD", &cfg.RedisPassword)
	env.integer("SHOP_REDIS_DB", &cfg.RedisDB)
	env.duration("SHOP_CART_CACHE_TTL", &cfg.CartCacheTTL)

	env.str("SHOP_KAFKA_BROKERS", &cfg.KafkaBrokers)
	env.str("SHOP_KAFKA_CONSUMER_GROUP", &cfg.KafkaConsumerGroup)
	env.str("SHOP_KAFKA_ORDER_TOPIC", &cfg.KafkaOrderTopic)
	env.str("SHOP_KAFKA_STOCK_TOPIC", &cfg.KafkaStockTopic)
	env.str("SHOP_KAFKA_RESTOCK_TOPIC", &cfg.KafkaRestockTopic)

	env.duration("SHOP_OUTBOX_POLL_INTERVAL", &cfg.OutboxPollInterval)
	env.integer("SHOP_OUTBOX_BATCH_SIZE", &cfg.OutboxBatchSize)
	env.integer("SHOP_OUTBOX_MAX_ATTEMPTS", &cfg.OutboxMaxAttempts)
	env.duration("SHOP_OUTBOX_RETRY_DELAY", &cfg.OutboxRetryDelay)

	env.duration("SHOP_IDEMPOTENCY_CLEANUP_INTERVAL", &cfg.IdempotencyCleanupInterval)
	env.integer("SHOP_IDEMPOTENCY_CLEANUP_BATCH_SIZE", &cfg.IdempotencyCleanupBatchSize)
	env.duration("SHOP_IDEMPOTENCY_STALE_AFTER", &cfg.IdempotencyStaleAfter)

	env.integer("SHOP_CART_RETRY_ATTEMPTS", &cfg.CartRetryAttempts)
	env.duration("SHOP_CART_RETRY_DELAY", &cfg.CartRetryDelay)
	env.integer("SHOP_LOW_STOCK_THRESHOLD", &cfg.LowStockThreshold)

	env.str("SHOP_REMOTE_STOCK_ADDR", &cfg.RemoteStockAddr)
	env.duration("SHOP_REMOTE_STOCK_TIMEOUT", &cfg.RemoteStockTimeout)

	env.boolean("SHOP_SEED_DEMO_DATA", &cfg.SeedDemoData)

	if env.err != nil {
		return Config{}, env.err
	}
	cfg.StorageDriver = strings.ToLower(cfg.StorageDriver)
	return cfg, nil
}

// envReader запоминает первую ошибку разбора, чтобы не проверять каждую переменную.
type envReader struct {
	lookup func(string) (string, bool)
	err    error
}

func (r *envReader) value(key string) (string, bool) {
	raw, ok := r.lookup(key)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(raw), true
}

func (r *envReader) str(key string, dst *string) {
	if v, ok := r.value(key); ok {
		*dst = v
	}
}

func (r *envReader) integer(key string, dst *int) {
	v, ok := r.value(key)
	if !ok || v == "" || r.err != nil {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.err = fmt.Errorf("parse %s: %w", key, err)
		return
	}
	*dst = n
}

func (r *envReader) boolean(key string, dst *bool) {
	v, ok := r.value(key)
	if !ok || v == "" || r.err != nil {
		return
	}
	b, err := parseBool(v)
	if err != nil {
		r.err = fmt.Errorf("parse %s: %w", key, err)
		return
	}
	*dst = b
}

func (r *envReader) duration(key string, dst *time.Duration) {
	v, ok := r.value(key)
	if !ok || v == "" || r.err != nil {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		r.err = fmt.Errorf("parse %s: %w", key, err)
		return
	}
	*dst = d
}

// parseBool дополняет strconv.ParseBool значениями yes/no и on/off.
func parseBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "on":
		return true, nil
	case "no", "off":
		return false, nil
	}
	return strconv.ParseBool(strings.TrimSpace(raw))
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
