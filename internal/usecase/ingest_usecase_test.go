package usecase_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/odor-source-service/internal/repository/facility"
	"github.com/odor-source-service/internal/usecase"
)

const sampleGeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {"name": "Pirana landfill", "landuse": "landfill", "operator": "AMC"},
      "geometry": {
        "type": "Polygon",
        "coordinates": [[[72.620, 23.000], [72.630, 23.000], [72.630, 23.010], [72.620, 23.010], [72.620, 23.000]]]
      }
    },
    {
      "type": "Feature",
      "properties": {"name": "pumping station", "man_made": "wastewater_plant"},
      "geometry": {"type": "Point", "coordinates": [72.58, 23.03]}
    },
    {
      "type": "Feature",
      "properties": {"name": "ring road"},
      "geometry": {"type": "LineString", "coordinates": [[72.58, 23.03], [72.59, 23.04]]}
    }
  ]
}`

func TestIngestUseCase_Ingest(t *testing.T) {
	logger := zap.NewNop()
	dir := t.TempDir()
	input := filepath.Join(dir, "export.geojson")
	output := filepath.Join(dir, "facilities.csv")
	assert.NoError(t, os.WriteFile(input, []byte(sampleGeoJSON), 0o644))

	uc := usecase.NewIngestUseCase(logger)
	n, err := uc.Ingest(input, output)

	assert.NoError(t, err)
	assert.Equal(t, 2, n)

	// The produced CSV must load back through the facility store.
	repo, err := facility.Load(output, logger)
	assert.NoError(t, err)
	assert.Equal(t, 2, repo.Len())

	records := repo.Records()

	landfill := records[0]
	assert.Equal(t, "Pirana landfill", landfill.Name)
	assert.Equal(t, "Polygon", landfill.Category)
	assert.Equal(t, "landfill", landfill.Tags["landuse"])
	assert.Equal(t, "AMC", landfill.Tags["operator"])
	assert.True(t, landfill.TagsValid)
	// Centroid of the square sits at its middle.
	assert.InDelta(t, 23.005, landfill.Latitude, 0.0001)
	assert.InDelta(t, 72.625, landfill.Longitude, 0.0001)
	// A hundredth of a degree on each side is roughly 1km by 1.1km.
	assert.Greater(t, landfill.AreaM2, 0.8e6)
	assert.Less(t, landfill.AreaM2, 1.5e6)

	station := records[1]
	assert.Equal(t, "pumping station", station.Name)
	assert.Equal(t, "Point", station.Category)
	assert.Zero(t, station.AreaM2)
	assert.InDelta(t, 23.03, station.Latitude, 0.0001)
	assert.InDelta(t, 72.58, station.Longitude, 0.0001)
}

func TestIngestUseCase_Ingest_MissingInput(t *testing.T) {
	uc := usecase.NewIngestUseCase(zap.NewNop())
	_, err := uc.Ingest(filepath.Join(t.TempDir(), "nope.geojson"), filepath.Join(t.TempDir(), "out.csv"))
	assert.Error(t, err)
}

func TestIngestUseCase_Ingest_MalformedInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "broken.geojson")
	assert.NoError(t, os.WriteFile(input, []byte("{not geojson"), 0o644))

	uc := usecase.NewIngestUseCase(zap.NewNop())
	_, err := uc.Ingest(input, filepath.Join(dir, "out.csv"))
	assert.Error(t, err)
}
