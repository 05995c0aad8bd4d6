package repository

import (
	"context"
	"time"

	"github.com/odor-source-service/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу. Промах кеша - (nil, nil).
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// GetGeocode получает закешированный результат геокодирования
	GetGeocode(ctx context.Context, city, name string) (*domain.GeocodedPoint, bool, error)

	// SetGeocode сохраняет результат геокодирования. point=nil кеширует
	// отрицательный результат, чтобы не повторять заведомо пустые запросы.
	SetGeocode(ctx context.Context, city, name string, point *domain.GeocodedPoint, ttl time.Duration) error
}
