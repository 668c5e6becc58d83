package app

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/shop/internal/cache"
	"github.com/vladislavdragonenkov/shop/internal/domain"
	healthcheck "github.com/vladislavdragonenkov/shop/internal/health"
	"github.com/vladislavdragonenkov/shop/internal/storage/memory"
	"github.com/vladislavdragonenkov/shop/internal/storage/postgres"
)

// runtimeDependencies: хранилище и связанные с ним репозитории выбранного драйвера.
type runtimeDependencies struct {
	store           domain.Store
	outboxRepo      domain.OutboxRepository
	idempotencyRepo domain.IdempotencyRepository
	storageChecker  healthcheck.Checker
	// memStore заполнен только для драйвера memory.
	memStore *memory.Store
	closeFn  func() error
}

func (d *runtimeDependencies) close(logger *log.Entry) {
	if d == nil || d.closeFn == nil {
		return
	}
	if err := d.closeFn(); err != nil {
		logger.WithError(err).Warn("failed to close storage")
	}
}

// initRuntimeDependencies открывает хранилище по cfg.StorageDriver.
func initRuntimeDependencies(ctx context.Context, cfg Config, logger *log.Entry) (*runtimeDependencies, error) {
	driver := strings.ToLower(strings.TrimSpace(cfg.StorageDriver))
	if driver == "" {
		driver = StorageDriverMemory
	}

	switch driver {
	case StorageDriverMemory:
		store := memory.NewStore()
		logger.Info("using in-memory storage")
		return &runtimeDependencies{
			store:           store,
			outboxRepo:      store.Outbox(),
			idempotencyRepo: memory.NewIdempotencyRepository(),
			storageChecker:  healthcheck.NewStorageChecker(store),
			memStore:        store,
		}, nil

	case StorageDriverPostgres:
		if strings.TrimSpace(cfg.PostgresDSN) == "" {
			return nil, fmt.Errorf("postgres dsn is required for storage driver %q", driver)
		}
		store, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		if cfg.PostgresAutoMigrate {
			if err := store.EnsureSchema(ctx); err != nil {
				_ = store.Close()
				return nil, fmt.Errorf("apply postgres migrations: %w", err)
			}
			logger.Info("postgres schema is up to date")
		}
		logger.Info("using postgres storage")
		return &runtimeDependencies{
			store:           store,
			outboxRepo:      postgres.NewOutboxRepository(store),
			idempotencyRepo: postgres.NewIdempotencyRepository(store),
			storageChecker:  healthcheck.NewStorageChecker(store),
			closeFn:         store.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

// cartCacheDeps: кеш корзин и его health-проверка (nil для in-process кеша).
type cartCacheDeps struct {
	cache   cache.CartCache
	checker healthcheck.Checker
	closeFn func() error
}

// initCartCache подключает Redis, если задан адрес. Недоступный Redis не мешает запуску:
// сервис работает с in-process кешем.
func initCartCache(ctx context.Context, cfg Config, logger *log.Entry) cartCacheDeps {
	if strings.TrimSpace(cfg.RedisAddr) == "" {
		return cartCacheDeps{cache: cache.NewMemory(cfg.CartCacheTTL)}
	}

	client, err := cache.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.WithError(err).Warn("redis is not available, falling back to in-process cart cache")
		return cartCacheDeps{cache: cache.NewMemory(cfg.CartCacheTTL)}
	}

	redisCache := cache.NewRedisCartCache(client, cfg.CartCacheTTL)
	logger.WithField("addr", cfg.RedisAddr).Info("redis cart cache initialized")
	return cartCacheDeps{
		cache:   redisCache,
		checker: healthcheck.NewCacheChecker(redisCache),
		closeFn: client.Close,
	}
}
