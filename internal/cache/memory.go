package cache

import (
	"context"
	"sync"
	"time"

	"github.com/vladislavdragonenkov/shop/internal/domain"
)

type memoryEntry struct {
	payload   []byte
	version   int64
	expiresAt time.Time
}

// Memory: процессный TTL-кеш для memory-драйвера и тестов.
// Хранит сериализованные снимки, чтобы вызывающий не делил данные с кешем.
type Memory struct {
	mu    sync.RWMutex
	items map[string]memoryEntry
	ttl   time.Duration
	now   func() time.Time
}

// NewMemory создаёт процессный кеш.
func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{
		items: make(map[string]memoryEntry),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (m *Memory) Get(_ context.Context, userID string) (domain.Cart, bool, error) {
	key := cartKey(userID)

	m.mu.RLock()
	entry, ok := m.items[key]
	m.mu.RUnlock()
	if !ok {
		return domain.Cart{}, false, nil
	}
	if m.now().After(entry.expiresAt) {
		m.mu.Lock()
		delete(m.items, key)
		m.mu.Unlock()
		return domain.Cart{}, false, nil
	}

	cart, err := decodeCart(entry.payload)
	if err != nil {
		return domain.Cart{}, false, err
	}
	return cart, true, nil
}

func (m *Memory) Set(_ context.Context, cart domain.Cart) error {
	payload, err := encodeCart(cart)
	if err != nil {
		return err
	}
	key := cartKey(cart.UserID)
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()
	if current, ok := m.items[key]; ok && !now.After(current.expiresAt) && current.version > cart.Version {
		return nil
	}
	m.items[key] = memoryEntry{payload: payload, version: cart.Version, expiresAt: now.Add(m.ttl)}
	return nil
}

func (m *Memory) Invalidate(_ context.Context, userID string) error {
	m.mu.Lock()
	delete(m.items, cartKey(userID))
	m.mu.Unlock()
	return nil
}

// Len: число записей, включая просроченные.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

var _ CartCache = (*Memory)(nil)

// Ping всегда успешен: кеш в памяти процесса.
func (m *Memory) Ping(context.Context) error { return nil }
