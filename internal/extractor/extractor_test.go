package extractor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/odor-source-service/internal/domain"
	"github.com/odor-source-service/internal/extractor"
)

// fakeStrategy - управляемая стратегия для проверки каскада
type fakeStrategy struct {
	name   string
	result string
	ok     bool
	calls  int
}

func (f *fakeStrategy) Name() string { return f.name }

func (f *fakeStrategy) Extract(string) (string, bool) {
	f.calls++
	return f.result, f.ok
}

func TestExtract_FirstSuccessShortCircuits(t *testing.T) {
	first := &fakeStrategy{name: "first", result: "Navrangpura", ok: true}
	second := &fakeStrategy{name: "second", result: "Vatva", ok: true}

	e := extractor.NewWithStrategies(zap.NewNop(), first, second)
	loc := e.Extract("anything")

	require.NotNil(t, loc)
	assert.Equal(t, "Navrangpura", loc.Name)
	assert.Equal(t, "first", loc.Stage)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 0, second.calls)
}

func TestExtract_FallsThroughToLaterStage(t *testing.T) {
	first := &fakeStrategy{name: "first"}
	second := &fakeStrategy{name: "second", result: "Vatva", ok: true}

	e := extractor.NewWithStrategies(zap.NewNop(), first, second)
	loc := e.Extract("anything")

	require.NotNil(t, loc)
	assert.Equal(t, "Vatva", loc.Name)
	assert.Equal(t, "second", loc.Stage)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
}

func TestExtract_AllStagesFailIsAbsent(t *testing.T) {
	e := extractor.NewWithStrategies(zap.NewNop(), &fakeStrategy{name: "only"})
	assert.Nil(t, e.Extract("anything"))
}

func TestGazetteer_MatchesKnownCity(t *testing.T) {
	s := extractor.NewGazetteerStrategy()

	name, ok := s.Extract("terrible smell in ahmedabad today")
	require.True(t, ok)
	assert.Equal(t, "Ahmedabad", name)
	assert.Equal(t, domain.StageGazetteer, s.Name())
}

func TestGazetteer_WholeWordOnly(t *testing.T) {
	s := extractor.NewGazetteerStrategy()

	// "Surat" must not match inside another word.
	_, ok := s.Extract("saturating smell everywhere")
	assert.False(t, ok)
}

func TestGazetteer_NoCityNoMatch(t *testing.T) {
	s := extractor.NewGazetteerStrategy()

	_, ok := s.Extract("what is that awful smell")
	assert.False(t, ok)
}

func TestAreaList_ExactToken(t *testing.T) {
	s := extractor.NewAreaListStrategy()

	name, ok := s.Extract("odor in Navrangpura")
	require.True(t, ok)
	assert.Equal(t, "Navrangpura", name)
	assert.Equal(t, domain.StageAreaList, s.Name())
}

func TestAreaList_PrefixBoundedMatch(t *testing.T) {
	s := extractor.NewAreaListStrategy()

	// The area name as a leading token followed by more word characters
	// still matches, and the canonical list entry is returned.
	cases := []string{
		"bad smell on Navrangpura Road",
		"navrangpura crossing stinks",
		"near NAVRANGPURAX",
	}
	for _, q := range cases {
		name, ok := s.Extract(q)
		require.True(t, ok, q)
		assert.Equal(t, "Navrangpura", name, q)
	}
}

func TestAreaList_NoMidwordMatch(t *testing.T) {
	s := extractor.NewAreaListStrategy()

	// "gota" must not match inside "bogota".
	_, ok := s.Extract("smell in bogota")
	assert.False(t, ok)
}

func TestAreaList_ListOrderBreaksTies(t *testing.T) {
	s := extractor.NewAreaListStrategy()

	// Both "Ranip" and "New Ranip" occur; "Ranip" comes first in the list.
	name, ok := s.Extract("garbage near new ranip")
	require.True(t, ok)
	assert.Equal(t, "Ranip", name)
}

func TestAreaList_EveryKnownAreaExtractsItself(t *testing.T) {
	s := extractor.NewAreaListStrategy()

	for _, area := range []string{"Vatva", "Naroda", "Sarkhej", "Ellis Bridge", "SindhuBhavan"} {
		name, ok := s.Extract("odor complaint near " + area + " yesterday")
		require.True(t, ok, area)
		assert.Equal(t, area, name)
	}
}

func TestFullCascade_NoPlaceIsAbsent(t *testing.T) {
	e := extractor.New(zap.NewNop())
	assert.Nil(t, e.Extract("what is that awful smell"))
}
