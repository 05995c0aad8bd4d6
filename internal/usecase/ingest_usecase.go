package usecase

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/xy"
	"go.uber.org/zap"

	"github.com/odor-source-service/internal/domain"
	"github.com/odor-source-service/internal/pkg/proj"
)

// IngestUseCase - ETL из сырого GeoJSON в плоский CSV с записями объектов.
// Оставляются только точки и полигоны; для полигона берётся центроид,
// а площадь считается в метрах в плоской проекции.
type IngestUseCase struct {
	logger *zap.Logger
}

// NewIngestUseCase - создание нового IngestUseCase
func NewIngestUseCase(logger *zap.Logger) *IngestUseCase {
	return &IngestUseCase{logger: logger}
}

// Ingest читает коллекцию объектов GeoJSON и записывает плоский CSV.
// Возвращает число записанных записей. Объекты неподдерживаемых
// геометрий пропускаются, это не ошибка.
func (uc *IngestUseCase) Ingest(inputPath, outputPath string) (int, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return 0, fmt.Errorf("read geojson: %w", err)
	}

	var fc geojson.FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return 0, fmt.Errorf("decode geojson: %w", err)
	}

	records := make([]domain.FacilityRecord, 0, len(fc.Features))
	skipped := 0
	for _, f := range fc.Features {
		rec, ok, err := featureToRecord(f)
		if err != nil {
			return 0, fmt.Errorf("feature %q: %w", f.ID, err)
		}
		if !ok {
			skipped++
			continue
		}
		records = append(records, rec)
	}

	if err := writeCSV(outputPath, records); err != nil {
		return 0, err
	}

	uc.logger.Info("GeoJSON ingested",
		zap.String("input", inputPath),
		zap.String("output", outputPath),
		zap.Int("records", len(records)),
		zap.Int("skipped", skipped))

	return len(records), nil
}

// featureToRecord извлекает запись из объекта GeoJSON. Второе значение -
// false для геометрий, которые не попадают в набор данных.
func featureToRecord(f *geojson.Feature) (domain.FacilityRecord, bool, error) {
	var rec domain.FacilityRecord

	tags := make(map[string]string)
	for _, key := range domain.TagKeys {
		if v, ok := f.Properties[key]; ok {
			if s, ok := v.(string); ok && s != "" {
				tags[key] = s
			}
		}
	}
	if name, ok := f.Properties["name"].(string); ok {
		rec.Name = name
	}
	rec.Tags = tags
	rec.TagsValid = true

	switch g := f.Geometry.(type) {
	case *geom.Point:
		rec.Category = domain.CategoryPoint
		rec.Longitude = g.X()
		rec.Latitude = g.Y()
		rec.AreaM2 = 0
	case *geom.Polygon:
		rec.Category = domain.CategoryPolygon
		centroid, err := xy.Centroid(g)
		if err != nil {
			return rec, false, fmt.Errorf("polygon centroid: %w", err)
		}
		rec.Longitude = centroid.X()
		rec.Latitude = centroid.Y()
		rec.AreaM2 = polygonAreaM2(g)
	default:
		// Other geometry kinds are dropped at ingestion.
		return rec, false, nil
	}

	return rec, true, nil
}

// polygonAreaM2 проецирует кольца полигона в плоскость и считает площадь
// по формуле Гаусса: внешнее кольцо минус отверстия.
func polygonAreaM2(g *geom.Polygon) float64 {
	var area float64
	for i := 0; i < g.NumLinearRings(); i++ {
		coords := g.LinearRing(i).Coords()
		projected := make([]proj.PlanarPoint, len(coords))
		for j, c := range coords {
			projected[j] = proj.UTM43N.Forward(c.Y(), c.X())
		}
		ringArea := shoelaceArea(projected)
		if i == 0 {
			area = ringArea
		} else {
			area -= ringArea
		}
	}
	if area < 0 {
		area = 0
	}
	return area
}

func shoelaceArea(ring []proj.PlanarPoint) float64 {
	if len(ring) < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < len(ring)-1; i++ {
		sum += ring[i].X*ring[i+1].Y - ring[i+1].X*ring[i].Y
	}
	// Close the ring in case the last vertex does not repeat the first.
	last, first := ring[len(ring)-1], ring[0]
	sum += last.X*first.Y - first.X*last.Y
	return math.Abs(sum) / 2
}

func writeCSV(path string, records []domain.FacilityRecord) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"name", "type", "tags", "latitude", "longitude", "area_m2"}); err != nil {
		return err
	}

	for _, rec := range records {
		tagsJSON, err := json.Marshal(rec.Tags)
		if err != nil {
			return fmt.Errorf("encode tags: %w", err)
		}
		row := []string{
			rec.Name,
			rec.Category,
			string(tagsJSON),
			strconv.FormatFloat(rec.Latitude, 'f', -1, 64),
			strconv.FormatFloat(rec.Longitude, 'f', -1, 64),
			strconv.FormatFloat(rec.AreaM2, 'f', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
