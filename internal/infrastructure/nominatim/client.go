// Package nominatim resolves place names to WGS-84 coordinates through
// the OpenStreetMap Nominatim HTTP API.
package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/odor-source-service/internal/config"
	"github.com/odor-source-service/internal/domain"
	"github.com/odor-source-service/internal/domain/repository"
	"github.com/odor-source-service/internal/pkg/utils"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *zap.Logger
}

// searchResult - одна строка ответа Nominatim /search.
// Координаты приходят строками.
type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// NewClient создает новый клиент для Nominatim API
func NewClient(cfg *config.GeocoderConfig, logger *zap.Logger) repository.GeocoderRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		logger:    logger,
	}
}

// Geocode разрешает название места в координаты в контексте города.
// Пустой ответ сервиса - обычный исход (nil, nil); сетевые ошибки и
// таймауты возвращаются вызывающей стороне, которая трактует их так же,
// как отсутствие результата, но логирует отдельно.
func (c *client) Geocode(ctx context.Context, name, city string) (*domain.GeocodedPoint, error) {
	if name == "" {
		return nil, fmt.Errorf("location name cannot be empty")
	}

	q := url.Values{}
	q.Set("q", fmt.Sprintf("%s, %s, India", name, city))
	q.Set("format", "json")
	q.Set("limit", "1")

	reqURL := fmt.Sprintf("%s/search?%s", c.baseURL, q.Encode())

	c.logger.Debug("Calling Nominatim search API",
		zap.String("location", name),
		zap.String("city", city))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	// Nominatim's usage policy requires an identifying User-Agent.
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Nominatim API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("nominatim API error: status %d", resp.StatusCode)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(results) == 0 {
		c.logger.Info("No coordinates found for location",
			zap.String("location", name),
			zap.String("city", city))
		return nil, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude in response: %w", err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude in response: %w", err)
	}
	if !utils.ValidateCoordinates(lat, lon) {
		return nil, fmt.Errorf("coordinates out of range in response: %s, %s", results[0].Lat, results[0].Lon)
	}

	c.logger.Debug("Nominatim search successful",
		zap.String("location", name),
		zap.Float64("lat", lat),
		zap.Float64("lon", lon),
		zap.Duration("took", time.Since(start)))

	return &domain.GeocodedPoint{Latitude: lat, Longitude: lon}, nil
}
