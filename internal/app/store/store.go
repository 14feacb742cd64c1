// Package store содержит реализации хранилища коротких ссылок.
package store

import "github.com/aseptimu/tinylink/internal/app/shortkey"

// DefaultKeyAttempts — сколько раз Shorten генерирует ключ, прежде чем сдаться.
const DefaultKeyAttempts = 10

// Option настраивает InMemoryStore.
type Option func(*InMemoryStore)

// WithGenerator задаёт генератор ключей.
func WithGenerator(gen shortkey.Generator) Option {
	return func(m *InMemoryStore) {
		m.gen = gen
	}
}

// WithKeyAttempts задаёт число попыток подобрать свободный ключ.
func WithKeyAttempts(n int) Option {
	return func(m *InMemoryStore) {
		if n > 0 {
			m.attempts = n
		}
	}
}
