package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/odor-source-service/internal/domain"
	"github.com/odor-source-service/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

func geocodeKey(city, name string) string {
	return fmt.Sprintf("geocode:%s:%s", strings.ToLower(city), strings.ToLower(name))
}

// GetGeocode получает закешированный результат геокодирования.
// Второе значение - признак попадания в кеш; закешированный отрицательный
// результат возвращается как (nil, true, nil).
func (r *cacheRepository) GetGeocode(ctx context.Context, city, name string) (*domain.GeocodedPoint, bool, error) {
	data, err := r.Get(ctx, geocodeKey(city, name))
	if err != nil {
		return nil, false, err
	}
	if data == nil {
		return nil, false, nil // Cache miss
	}

	var point *domain.GeocodedPoint
	if err := json.Unmarshal(data, &point); err != nil {
		r.logger.Error("Failed to unmarshal geocode cache entry", zap.Error(err))
		return nil, false, fmt.Errorf("unmarshal geocode: %w", err)
	}

	return point, true, nil
}

// SetGeocode сохраняет результат геокодирования. nil кодируется как
// JSON null и кеширует отрицательный ответ.
func (r *cacheRepository) SetGeocode(ctx context.Context, city, name string, point *domain.GeocodedPoint, ttl time.Duration) error {
	data, err := json.Marshal(point)
	if err != nil {
		r.logger.Error("Failed to marshal geocode result", zap.Error(err))
		return fmt.Errorf("marshal geocode: %w", err)
	}

	return r.Set(ctx, geocodeKey(city, name), data, ttl)
}
