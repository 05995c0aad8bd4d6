package relevance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odor-source-service/internal/relevance"
)

func TestFit_Deterministic(t *testing.T) {
	corpus := []string{
		"Pirana Landfill Polygon landfill",
		"Vatva GIDC Polygon industrial chemical",
		"Sewage Treatment Plant Point sewage",
		"Torrent Power Point power coal",
	}

	a := relevance.Fit(corpus, 500)
	b := relevance.Fit(corpus, 500)

	require.Equal(t, a.Terms, b.Terms)
	require.Equal(t, a.IDF, b.IDF)

	for _, doc := range corpus {
		assert.Equal(t, a.Transform(doc), b.Transform(doc))
	}
}

func TestFit_CapsVocabulary(t *testing.T) {
	corpus := []string{
		"alpha alpha alpha beta beta gamma",
		"alpha beta delta epsilon",
	}

	v := relevance.Fit(corpus, 3)

	require.Len(t, v.Terms, 3)
	// alpha (4) and beta (3) dominate by corpus frequency; the third slot
	// goes to the lexicographically first of the frequency-1 terms.
	assert.Equal(t, []string{"alpha", "beta", "delta"}, v.Terms)
}

func TestFit_TieBreakByTermOrder(t *testing.T) {
	corpus := []string{"zeta alpha", "zeta alpha"}

	v := relevance.Fit(corpus, 1)

	require.Len(t, v.Terms, 1)
	assert.Equal(t, "alpha", v.Terms[0])
}

func TestTransform_Normalized(t *testing.T) {
	corpus := []string{"landfill waste", "factory chemical", "landfill dump"}
	v := relevance.Fit(corpus, 500)

	vec := v.Transform("landfill waste dump")
	require.NotEmpty(t, vec)

	var norm float64
	for _, e := range vec {
		norm += e.Weight * e.Weight
	}
	assert.InDelta(t, 1.0, norm, 1e-9)

	// Identical documents score 1, disjoint documents score 0.
	assert.InDelta(t, 1.0, relevance.Cosine(vec, v.Transform("landfill waste dump")), 1e-9)
	assert.Equal(t, 0.0, relevance.Cosine(vec, v.Transform("factory chemical")))
}

func TestTransform_UnknownTermsIgnored(t *testing.T) {
	v := relevance.Fit([]string{"landfill waste"}, 500)

	assert.Empty(t, v.Transform("quantum entanglement"))
	assert.NotEmpty(t, v.Transform("landfill something"))
}

func TestCosine_Range(t *testing.T) {
	corpus := []string{
		"landfill waste site",
		"waste transfer station",
		"chemical factory",
	}
	v := relevance.Fit(corpus, 500)

	q := v.Transform("waste landfill")
	for _, doc := range corpus {
		s := relevance.Cosine(q, v.Transform(doc))
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0+1e-9)
	}
}

func TestReindex_RestoresLookup(t *testing.T) {
	v := relevance.Fit([]string{"landfill waste"}, 500)

	// Simulate a model loaded from its artifact: only exported state set.
	loaded := &relevance.Vectorizer{Terms: v.Terms, IDF: v.IDF, Docs: v.Docs}
	loaded.Reindex()

	assert.Equal(t, v.Transform("landfill"), loaded.Transform("landfill"))
}
