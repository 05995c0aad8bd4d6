package facility_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/odor-source-service/internal/repository/facility"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "facilities.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const header = "name,type,tags,latitude,longitude,area_m2\n"

func TestLoad_ParsesRecords(t *testing.T) {
	csv := header +
		`Pirana Landfill,Polygon,"{""landuse"": ""landfill""}",23.00,72.62,150000.5` + "\n" +
		`,Point,{},23.05,72.55,0` + "\n"

	repo, err := facility.Load(writeCSV(t, csv), zap.NewNop())
	require.NoError(t, err)

	records := repo.Records()
	require.Len(t, records, 2)
	assert.Equal(t, 2, repo.Len())

	assert.Equal(t, "Pirana Landfill", records[0].Name)
	assert.Equal(t, "Polygon", records[0].Category)
	assert.Equal(t, map[string]string{"landuse": "landfill"}, records[0].Tags)
	assert.True(t, records[0].TagsValid)
	assert.Equal(t, 23.00, records[0].Latitude)
	assert.Equal(t, 72.62, records[0].Longitude)
	assert.Equal(t, 150000.5, records[0].AreaM2)

	assert.Empty(t, records[1].Name)
	assert.True(t, records[1].TagsValid)
	assert.Empty(t, records[1].Tags)
}

func TestLoad_MalformedTagsKeptButInvalid(t *testing.T) {
	csv := header +
		`Mystery Site,Point,"{not json",23.01,72.60,0` + "\n"

	repo, err := facility.Load(writeCSV(t, csv), zap.NewNop())
	require.NoError(t, err)

	records := repo.Records()
	require.Len(t, records, 1)
	assert.False(t, records[0].TagsValid)
}

func TestLoad_MissingFileFatal(t *testing.T) {
	_, err := facility.Load(filepath.Join(t.TempDir(), "absent.csv"), zap.NewNop())
	assert.Error(t, err)
}

func TestLoad_BadHeaderFatal(t *testing.T) {
	csv := "name,kind,tags,latitude,longitude,area_m2\n"
	_, err := facility.Load(writeCSV(t, csv), zap.NewNop())
	assert.Error(t, err)
}

func TestLoad_BadCoordinateFatal(t *testing.T) {
	csv := header + `X,Point,{},abc,72.60,0` + "\n"
	_, err := facility.Load(writeCSV(t, csv), zap.NewNop())
	assert.Error(t, err)
}

func TestLoad_NegativeAreaFatal(t *testing.T) {
	csv := header + `X,Polygon,{},23.0,72.6,-5` + "\n"
	_, err := facility.Load(writeCSV(t, csv), zap.NewNop())
	assert.Error(t, err)
}
