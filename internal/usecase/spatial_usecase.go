package usecase

import (
	"go.uber.org/zap"

	"github.com/odor-source-service/internal/domain"
	"github.com/odor-source-service/internal/domain/repository"
	"github.com/odor-source-service/internal/pkg/proj"
)

// SpatialUseCase - пространственный поиск по хранилищу записей.
// Все записи проецируются в плоскую систему координат один раз при
// создании; пороговые сравнения и расстояния считаются только в метрах
// проекции, никогда в градусах.
type SpatialUseCase struct {
	records   []domain.FacilityRecord
	projected []proj.PlanarPoint
	tm        proj.TransverseMercator
	logger    *zap.Logger
}

// NewSpatialUseCase - создание нового SpatialUseCase.
// Индекс записи в projected совпадает с её позицией в хранилище.
func NewSpatialUseCase(facilityRepo repository.FacilityRepository, logger *zap.Logger) *SpatialUseCase {
	records := facilityRepo.Records()
	projected := make([]proj.PlanarPoint, len(records))
	for i, r := range records {
		projected[i] = proj.UTM43N.Forward(r.Latitude, r.Longitude)
	}

	logger.Info("Facility records projected", zap.Int("count", len(records)))

	return &SpatialUseCase{
		records:   records,
		projected: projected,
		tm:        proj.UTM43N,
		logger:    logger,
	}
}

// FindNearby возвращает записи, чьи спроецированные координаты попадают
// в круговой буфер radiusM метров вокруг точки (граница включительно),
// вместе с их порядковым номером в хранилище и плоским расстоянием.
// Пустой набор кандидатов - обычный исход.
func (uc *SpatialUseCase) FindNearby(center domain.GeocodedPoint, radiusM float64) []IndexedCandidate {
	q := uc.tm.Forward(center.Latitude, center.Longitude)

	var candidates []IndexedCandidate
	for i, p := range uc.projected {
		d := proj.Distance(q, p)
		if d <= radiusM {
			candidates = append(candidates, IndexedCandidate{
				Index: i,
				Candidate: domain.Candidate{
					Record:    uc.records[i],
					DistanceM: d,
				},
			})
		}
	}

	uc.logger.Debug("Radius search completed",
		zap.Float64("lat", center.Latitude),
		zap.Float64("lon", center.Longitude),
		zap.Float64("radius_m", radiusM),
		zap.Int("candidates", len(candidates)))

	return candidates
}

// IndexedCandidate - кандидат вместе с его позицией в хранилище записей.
// Позиция нужна фильтру релевантности для выбора строки матрицы весов.
type IndexedCandidate struct {
	Index int
	domain.Candidate
}
