// Package facility loads the flat facility dataset produced by the
// preparation pipeline into an in-memory, read-only record store.
package facility

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/odor-source-service/internal/domain"
	"github.com/odor-source-service/internal/domain/repository"
)

// Columns of the facility CSV, in order. The tags column holds a
// JSON-encoded object string.
var columns = []string{"name", "type", "tags", "latitude", "longitude", "area_m2"}

type store struct {
	records []domain.FacilityRecord
	logger  *zap.Logger
}

// Load читает CSV-файл с записями объектов. Недоступный или структурно
// повреждённый файл - фатальная ошибка запуска. Строка с непарсящимся
// полем tags загружается с TagsValid=false и не участвует в фильтрации
// и скоринге, но остаётся видимой для пространственного поиска.
func Load(path string, logger *zap.Logger) (repository.FacilityRepository, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open facility file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read facility header: %w", err)
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	var records []domain.FacilityRecord
	malformed := 0
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read facility row %d: %w", line, err)
		}

		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("facility row %d: %w", line, err)
		}
		if !rec.TagsValid {
			malformed++
			logger.Warn("Facility record has malformed tags, excluded from gating",
				zap.Int("row", line),
				zap.String("name", rec.Name))
		}
		records = append(records, rec)
	}

	logger.Info("Facility records loaded",
		zap.String("path", path),
		zap.Int("total", len(records)),
		zap.Int("malformed_tags", malformed))

	return &store{records: records, logger: logger}, nil
}

func checkHeader(header []string) error {
	if len(header) != len(columns) {
		return fmt.Errorf("facility header has %d columns, want %d", len(header), len(columns))
	}
	for i, col := range columns {
		if header[i] != col {
			return fmt.Errorf("facility header column %d is %q, want %q", i, header[i], col)
		}
	}
	return nil
}

func parseRow(row []string) (domain.FacilityRecord, error) {
	var rec domain.FacilityRecord
	if len(row) != len(columns) {
		return rec, fmt.Errorf("row has %d columns, want %d", len(row), len(columns))
	}

	rec.Name = row[0]
	rec.Category = row[1]
	rec.Tags, rec.TagsValid = domain.ParseTags(row[2])

	var err error
	if rec.Latitude, err = strconv.ParseFloat(row[3], 64); err != nil {
		return rec, fmt.Errorf("invalid latitude %q: %w", row[3], err)
	}
	if rec.Longitude, err = strconv.ParseFloat(row[4], 64); err != nil {
		return rec, fmt.Errorf("invalid longitude %q: %w", row[4], err)
	}
	if rec.AreaM2, err = strconv.ParseFloat(row[5], 64); err != nil {
		return rec, fmt.Errorf("invalid area_m2 %q: %w", row[5], err)
	}
	if rec.AreaM2 < 0 {
		return rec, fmt.Errorf("negative area_m2 %v", rec.AreaM2)
	}
	return rec, nil
}

func (s *store) Records() []domain.FacilityRecord {
	return s.records
}

func (s *store) Len() int {
	return len(s.records)
}
