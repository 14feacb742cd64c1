package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/aseptimu/tinylink/internal/app/service"
	"github.com/aseptimu/tinylink/internal/app/shortkey"
)

// InMemoryStore хранит прямое (data) и обратное (rev) отображения в памяти процесса.
type InMemoryStore struct {
	data map[shortkey.Key]string
	rev  map[string]shortkey.Key
	mu   sync.RWMutex

	gen      shortkey.Generator
	attempts int
}

var _ service.Store = (*InMemoryStore)(nil)

func NewStore(opts ...Option) *InMemoryStore {
	m := &InMemoryStore{
		data:     make(map[shortkey.Key]string),
		rev:      make(map[string]shortkey.Key),
		gen:      shortkey.NanoidGenerator{Length: shortkey.DefaultLength},
		attempts: DefaultKeyAttempts,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *InMemoryStore) Get(ctx context.Context, key shortkey.Key) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	value, exists := m.data[key]
	if !exists {
		return "", fmt.Errorf("%w: key %q", service.ErrURLNotFound, key)
	}
	return value, nil
}

// Shorten возвращает уже выданный ключ для originalURL либо выдаёт новый.
// Сгенерированный ключ, который уже занят, отбрасывается и генерируется заново.
func (m *InMemoryStore) Shorten(ctx context.Context, originalURL string) (shortkey.Key, error) {
	if err := ctx.Err(); err != nil {
		return shortkey.Key{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, found := m.rev[originalURL]; found {
		return existing, nil
	}

	for i := 0; i < m.attempts; i++ {
		key, err := m.gen.Generate()
		if err != nil {
			return shortkey.Key{}, err
		}
		if _, taken := m.data[key]; taken {
			continue
		}

		m.data[key] = originalURL
		m.rev[originalURL] = key
		return key, nil
	}

	return shortkey.Key{}, fmt.Errorf("%w after %d attempts", service.ErrKeySpaceExhausted, m.attempts)
}

func (m *InMemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

func (m *InMemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}
