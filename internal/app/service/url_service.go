// Package service содержит бизнес-логику работы с URL.
package service

import (
	"context"
	"fmt"

	"github.com/aseptimu/tinylink/internal/app/shortkey"
)

// Store — хранилище за URLService. Реализация держит отображения
// ключ -> URL и URL -> ключ взаимно обратными.
type Store interface {
	Shorten(ctx context.Context, originalURL string) (shortkey.Key, error)
	Get(ctx context.Context, key shortkey.Key) (string, error)
	Len() int
}

// URLShortener описывает операции, от которых зависят вызывающие.
type URLShortener interface {
	ShortenURL(ctx context.Context, originalURL string) (shortkey.Key, error)
	GetURL(ctx context.Context, key shortkey.Key) (string, error)
}

// URLService делегирует всё одному Store.
type URLService struct {
	store Store
}

var _ URLShortener = (*URLService)(nil)

// NewURLService создаёт URLService поверх переданного хранилища.
func NewURLService(store Store) *URLService {
	return &URLService{store: store}
}

// ShortenURL возвращает ключ для originalURL, регистрируя его при первом обращении.
func (s *URLService) ShortenURL(ctx context.Context, originalURL string) (shortkey.Key, error) {
	return s.store.Shorten(ctx, originalURL)
}

// GetURL возвращает URL по ключу или ошибку, оборачивающую ErrURLNotFound.
func (s *URLService) GetURL(ctx context.Context, key shortkey.Key) (string, error) {
	return s.store.Get(ctx, key)
}

// Shorten возвращает полную короткую ссылку для originalURL относительно host.
func (s *URLService) Shorten(ctx context.Context, originalURL, host string) (string, error) {
	key, err := s.ShortenURL(ctx, originalURL)
	if err != nil {
		return "", err
	}
	return key.BuildURL(host), nil
}

// ShortenURLs сокращает набор URL за один вызов. i-я ссылка результата
// соответствует originalURLs[i]; повторы внутри набора получают одну и ту же ссылку.
func (s *URLService) ShortenURLs(ctx context.Context, originalURLs []string, host string) ([]string, error) {
	shortURLs := make([]string, len(originalURLs))
	for i, originalURL := range originalURLs {
		shortURL, err := s.Shorten(ctx, originalURL, host)
		if err != nil {
			return nil, fmt.Errorf("shorten %q: %w", originalURL, err)
		}
		shortURLs[i] = shortURL
	}
	return shortURLs, nil
}
