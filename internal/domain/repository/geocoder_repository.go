package repository

import (
	"context"

	"github.com/odor-source-service/internal/domain"
)

// GeocoderRepository определяет методы для разрешения названий мест в координаты
type GeocoderRepository interface {
	// Geocode разрешает название места в координаты в контексте города.
	// Возвращает (nil, nil), если место не найдено - это обычный исход,
	// а не ошибка. Вызов идемпотентен и ограничен таймаутом.
	Geocode(ctx context.Context, name, city string) (*domain.GeocodedPoint, error)
}
