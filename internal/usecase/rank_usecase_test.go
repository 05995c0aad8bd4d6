package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/odor-source-service/internal/domain"
	"github.com/odor-source-service/internal/relevance"
	"github.com/odor-source-service/internal/usecase"
)

func candidate(index int, rec domain.FacilityRecord, distanceM float64) usecase.IndexedCandidate {
	return usecase.IndexedCandidate{
		Index: index,
		Candidate: domain.Candidate{
			Record:    rec,
			DistanceM: distanceM,
		},
	}
}

func rankFixture(t *testing.T) (*usecase.RankUseCase, []usecase.IndexedCandidate) {
	t.Helper()

	landfill := facilityAt("Pirana dump", 23.0, 72.62, map[string]string{"landuse": "landfill"})
	sewage := facilityAt("treatment plant", 23.0, 72.63, map[string]string{"man_made": "wastewater_plant", "amenity": "sewage works"})
	cafe := facilityAt("corner cafe", 23.0, 72.64, map[string]string{"amenity": "cafe"})

	records := []domain.FacilityRecord{landfill, sewage, cafe}
	corpus := make([]string, len(records))
	for i, r := range records {
		corpus[i] = r.Document()
	}
	vec := relevance.Fit(corpus, relevance.MaxFeatures)
	rows := make([]relevance.Vector, len(corpus))
	for i, doc := range corpus {
		rows[i] = vec.Transform(doc)
	}

	uc := usecase.NewRankUseCase(vec, rows, zap.NewNop())
	candidates := []usecase.IndexedCandidate{
		candidate(0, landfill, 300),
		candidate(1, sewage, 100),
		candidate(2, cafe, 50),
	}
	return uc, candidates
}

func TestRankUseCase_KeywordGate(t *testing.T) {
	uc, candidates := rankFixture(t)

	results := uc.FilterAndRank(candidates, "")

	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.Name
	}
	assert.Contains(t, names, "Pirana dump")
	assert.Contains(t, names, "treatment plant")
	assert.NotContains(t, names, "corner cafe")
}

func TestRankUseCase_InvalidTagsExcluded(t *testing.T) {
	uc, _ := rankFixture(t)

	broken := facilityAt("broken landfill", 23.0, 72.62, map[string]string{"landuse": "landfill"})
	broken.TagsValid = false

	results := uc.FilterAndRank([]usecase.IndexedCandidate{candidate(0, broken, 100)}, "landfill")
	assert.Empty(t, results)
}

func TestRankUseCase_NothingGatedReturnsEmpty(t *testing.T) {
	uc, _ := rankFixture(t)

	cafe := facilityAt("corner cafe", 23.0, 72.64, map[string]string{"amenity": "cafe"})
	results := uc.FilterAndRank([]usecase.IndexedCandidate{candidate(2, cafe, 50)}, "smell")
	assert.Empty(t, results)
}

func TestRankUseCase_EmptyQuerySortsByDistance(t *testing.T) {
	uc, candidates := rankFixture(t)

	results := uc.FilterAndRank(candidates, "")

	assert.Len(t, results, 2)
	assert.Equal(t, "treatment plant", results[0].Name)
	assert.Equal(t, "Pirana dump", results[1].Name)
	for _, r := range results {
		assert.Zero(t, r.Similarity)
	}
}

func TestRankUseCase_SimilarityOrdersResults(t *testing.T) {
	uc, candidates := rankFixture(t)

	// The query shares vocabulary with the sewage record only, so it must
	// outrank the landfill despite any distance ordering.
	results := uc.FilterAndRank(candidates, "sewage treatment plant")

	assert.Len(t, results, 2)
	assert.Equal(t, "treatment plant", results[0].Name)
	assert.Greater(t, results[0].Similarity, results[1].Similarity)
}

func TestRankUseCase_DistanceBreaksSimilarityTies(t *testing.T) {
	uc, candidates := rankFixture(t)

	// No query token appears in the vocabulary, so every similarity is
	// zero and distance decides the order.
	results := uc.FilterAndRank(candidates, "qqq zzz")

	assert.Len(t, results, 2)
	assert.Equal(t, "treatment plant", results[0].Name)
	assert.Equal(t, "Pirana dump", results[1].Name)
	assert.Zero(t, results[0].Similarity)
}

func TestRankUseCase_ResultCarriesRecordFields(t *testing.T) {
	uc, candidates := rankFixture(t)

	results := uc.FilterAndRank(candidates, "landfill garbage")

	assert.NotEmpty(t, results)
	top := results[0]
	assert.Equal(t, "Pirana dump", top.Name)
	assert.Equal(t, domain.CategoryPoint, top.Category)
	assert.Equal(t, "landfill", top.Tags["landuse"])
	assert.InDelta(t, 300, top.DistanceM, 0.001)
	assert.Greater(t, top.Similarity, 0.0)
}
