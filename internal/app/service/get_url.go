package service

import (
	"context"

	"github.com/aseptimu/tinylink/internal/app/shortkey"
)

// StatsDTO хранит данные о количестве сохраненных url
type StatsDTO struct {
	Urls int
}

// Resolve возвращает оригинальный URL по ключу из пути запроса.
func (s *URLService) Resolve(ctx context.Context, segment string) (string, error) {
	return s.GetURL(ctx, shortkey.FromID(segment))
}

// Expand возвращает оригинальный URL по полной короткой ссылке вида "short.ly/abc12".
func (s *URLService) Expand(ctx context.Context, shortURL string) (string, error) {
	key, err := shortkey.FromURL(shortURL)
	if err != nil {
		return "", err
	}
	return s.GetURL(ctx, key)
}

// GetStats возвращает количество url
func (s *URLService) GetStats(ctx context.Context) (StatsDTO, error) {
	if err := ctx.Err(); err != nil {
		return StatsDTO{}, err
	}
	return StatsDTO{Urls: s.store.Len()}, nil
}
