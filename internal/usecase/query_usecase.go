package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/odor-source-service/internal/domain"
	"github.com/odor-source-service/internal/domain/repository"
	"github.com/odor-source-service/internal/metrics"
	"github.com/odor-source-service/internal/usecase/dto"
)

// LocationExtractor - контракт каскада извлечения места
type LocationExtractor interface {
	Extract(query string) *domain.ExtractedLocation
}

// QueryUseCase - конвейер обработки текстового запроса:
// извлечение места -> геокодирование -> радиусный поиск -> фильтрация
// и ранжирование. Все "ничего не найдено" завершают конвейер пустым
// результатом, а не ошибкой.
type QueryUseCase struct {
	extractor    LocationExtractor
	geocoderRepo repository.GeocoderRepository
	cacheRepo    repository.CacheRepository
	spatialUC    *SpatialUseCase
	rankUC       *RankUseCase
	radiusM      float64
	city         string
	cacheTTL     time.Duration
	logger       *zap.Logger
}

// NewQueryUseCase - создание нового QueryUseCase
func NewQueryUseCase(
	extractor LocationExtractor,
	geocoderRepo repository.GeocoderRepository,
	cacheRepo repository.CacheRepository,
	spatialUC *SpatialUseCase,
	rankUC *RankUseCase,
	radiusM float64,
	city string,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *QueryUseCase {
	return &QueryUseCase{
		extractor:    extractor,
		geocoderRepo: geocoderRepo,
		cacheRepo:    cacheRepo,
		spatialUC:    spatialUC,
		rankUC:       rankUC,
		radiusM:      radiusM,
		city:         city,
		cacheTTL:     cacheTTL,
		logger:       logger,
	}
}

// Process выполняет конвейер для одного запроса
func (uc *QueryUseCase) Process(ctx context.Context, req dto.QueryRequest) (*dto.QueryResponse, error) {
	start := time.Now()
	defer func() {
		metrics.QueryDuration.Observe(time.Since(start).Seconds())
	}()

	resp := &dto.QueryResponse{Results: []domain.SearchResult{}}

	// Step 1: extract location
	loc := uc.extractor.Extract(req.Query)
	if loc == nil {
		uc.logger.Info("No location extracted from query")
		metrics.QueriesTotal.WithLabelValues("no_location").Inc()
		return resp, nil
	}
	metrics.ExtractionTotal.WithLabelValues(loc.Stage).Inc()
	resp.Location = loc

	// Step 2: geocode location
	point := uc.geocode(ctx, loc.Name)
	if point == nil {
		uc.logger.Info("Could not geocode location", zap.String("location", loc.Name))
		metrics.QueriesTotal.WithLabelValues("no_geocode").Inc()
		return resp, nil
	}
	resp.Point = point

	// Step 3: radius search
	candidates := uc.spatialUC.FindNearby(*point, uc.radiusM)
	if len(candidates) == 0 {
		uc.logger.Info("No facilities within search radius",
			zap.String("location", loc.Name),
			zap.Float64("radius_m", uc.radiusM))
		metrics.QueriesTotal.WithLabelValues("no_candidates").Inc()
		return resp, nil
	}

	// Step 4: keyword gate + relevance ranking
	results := uc.rankUC.FilterAndRank(candidates, req.Query)
	if len(results) == 0 {
		uc.logger.Info("No odor-relevant facilities after filtering",
			zap.String("location", loc.Name))
		metrics.QueriesTotal.WithLabelValues("no_match").Inc()
		return resp, nil
	}

	uc.logger.Info("Query processed",
		zap.String("location", loc.Name),
		zap.String("stage", loc.Stage),
		zap.Int("results", len(results)))
	metrics.QueriesTotal.WithLabelValues("ok").Inc()

	return &dto.QueryResponse{
		Location: loc,
		Point:    point,
		Results:  results,
		Total:    len(results),
	}, nil
}

// geocode разрешает название места с кешированием. Ошибки геокодера
// и кеша приравниваются к отсутствию результата: запрос пользователя
// никогда не падает из-за внешнего сервиса.
func (uc *QueryUseCase) geocode(ctx context.Context, name string) *domain.GeocodedPoint {
	cached, hit, err := uc.cacheRepo.GetGeocode(ctx, uc.city, name)
	if err != nil {
		uc.logger.Warn("Geocode cache read failed", zap.Error(err))
	} else if hit {
		metrics.GeocodeTotal.WithLabelValues("cache_hit").Inc()
		return cached
	}

	point, err := uc.geocoderRepo.Geocode(ctx, name, uc.city)
	if err != nil {
		// External-service failure: same outcome as not-found for the
		// caller, but logged and counted separately for diagnostics.
		uc.logger.Error("Geocoder call failed",
			zap.String("location", name),
			zap.Error(err))
		metrics.GeocodeTotal.WithLabelValues("error").Inc()
		return nil
	}

	if point == nil {
		metrics.GeocodeTotal.WithLabelValues("no_match").Inc()
	} else {
		metrics.GeocodeTotal.WithLabelValues("ok").Inc()
	}

	if err := uc.cacheRepo.SetGeocode(ctx, uc.city, name, point, uc.cacheTTL); err != nil {
		uc.logger.Warn("Geocode cache write failed", zap.Error(err))
	}

	return point
}
