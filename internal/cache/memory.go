package cache

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

type entry struct {
	key       string
	value     []byte
	createdAt time.Time
	ttl       time.Duration
	hitCount  int64
}

func (e *entry) expired(now time.Time) bool {
	return e.ttl > 0 && !now.Before(e.createdAt.Add(e.ttl))
}

// MemoryBackend - внутрипроцессное хранилище. Просроченные записи удаляются
// при обращении и периодической очисткой Sweep.
type MemoryBackend struct {
	mu         sync.Mutex
	entries    map[string]*entry
	clock      clockwork.Clock
	maxEntries int
}

// NewMemoryBackend создаёт хранилище. maxEntries <= 0 снимает ограничение,
// иначе при переполнении вытесняется самая старая запись.
func NewMemoryBackend(clock clockwork.Clock, maxEntries int) *MemoryBackend {
	return &MemoryBackend{
		entries:    make(map[string]*entry),
		clock:      clock,
		maxEntries: maxEntries,
	}
}

func (m *MemoryBackend) Name() string { return "memory" }

func (m *MemoryBackend) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return nil, false, nil
	}
	if e.expired(m.clock.Now()) {
		delete(m.entries, key)
		return nil, false, nil
	}
	e.hitCount++
	return append([]byte(nil), e.value...), true, nil
}

func (m *MemoryBackend) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = &entry{
		key:       key,
		value:     append([]byte(nil), value...),
		createdAt: m.clock.Now(),
		ttl:       ttl,
	}
	if m.maxEntries > 0 && len(m.entries) > m.maxEntries {
		m.evictOldest()
	}
	return nil
}

func (m *MemoryBackend) evictOldest() {
	var oldest *entry
	for _, e := range m.entries {
		if oldest == nil || e.createdAt.Before(oldest.createdAt) {
			oldest = e
		}
	}
	if oldest != nil {
		delete(m.entries, oldest.key)
	}
}

func (m *MemoryBackend) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

func (m *MemoryBackend) Clear(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := len(m.entries)
	m.entries = make(map[string]*entry)
	return n, nil
}

func (m *MemoryBackend) Len(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.clock.Now()
	n := 0
	for _, e := range m.entries {
		if !e.expired(now) {
			n++
		}
	}
	return n, nil
}

// Sweep удаляет просроченные записи и возвращает их количество
func (m *MemoryBackend) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.clock.Now()
	removed := 0
	for k, e := range m.entries {
		if e.expired(now) {
			delete(m.entries, k)
			removed++
		}
	}
	return removed
}

// HitCount возвращает число попаданий в запись
func (m *MemoryBackend) HitCount(key string) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.entries[key]; ok {
		return e.hitCount
	}
	return 0
}
