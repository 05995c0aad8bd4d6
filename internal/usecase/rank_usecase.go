package usecase

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/odor-source-service/internal/domain"
	"github.com/odor-source-service/internal/relevance"
)

// odorKeywords - жёсткий текстовый фильтр: кандидат остаётся, только если
// значения его тегов содержат хотя бы одно из этих слов.
var odorKeywords = []string{
	"landfill", "waste", "industrial", "sewage", "dump", "garbage",
	"chemical", "factory", "slaughterhouse", "refinery",
}

// RankUseCase - фильтрация кандидатов по ключевым словам и ранжирование
// по текстовой близости к запросу
type RankUseCase struct {
	vectorizer    *relevance.Vectorizer
	recordWeights []relevance.Vector
	logger        *zap.Logger
}

// NewRankUseCase - создание нового RankUseCase. Матрица весов выровнена
// по порядку записей хранилища.
func NewRankUseCase(
	vectorizer *relevance.Vectorizer,
	recordWeights []relevance.Vector,
	logger *zap.Logger,
) *RankUseCase {
	return &RankUseCase{
		vectorizer:    vectorizer,
		recordWeights: recordWeights,
		logger:        logger,
	}
}

// isOdorSource проверяет значения тегов записи на ключевые слова.
// Записи с невалидными тегами исключаются (fail-closed).
func isOdorSource(rec domain.FacilityRecord) bool {
	if !rec.TagsValid {
		return false
	}
	var b strings.Builder
	for _, v := range rec.Tags {
		b.WriteString(v)
		b.WriteByte(' ')
	}
	values := strings.ToLower(b.String())
	for _, kw := range odorKeywords {
		if strings.Contains(values, kw) {
			return true
		}
	}
	return false
}

// FilterAndRank сужает набор кандидатов до правдоподобных источников
// запаха и упорядочивает их. При пустом тексте запроса возвращается
// отфильтрованный набор по возрастанию расстояния с нулевой близостью;
// иначе - по убыванию близости, при равенстве по возрастанию расстояния.
// Пустой результат - обычный исход, а не ошибка.
func (uc *RankUseCase) FilterAndRank(candidates []IndexedCandidate, query string) []domain.SearchResult {
	var gated []IndexedCandidate
	for _, c := range candidates {
		if isOdorSource(c.Record) {
			gated = append(gated, c)
		}
	}

	uc.logger.Debug("Keyword gate applied",
		zap.Int("in", len(candidates)),
		zap.Int("out", len(gated)))

	if len(gated) == 0 {
		return nil
	}

	results := make([]domain.SearchResult, len(gated))
	for i, c := range gated {
		results[i] = domain.SearchResult{
			Name:      c.Record.Name,
			Category:  c.Record.Category,
			Tags:      c.Record.Tags,
			Latitude:  c.Record.Latitude,
			Longitude: c.Record.Longitude,
			DistanceM: c.DistanceM,
		}
	}

	if query == "" {
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].DistanceM < results[j].DistanceM
		})
		return results
	}

	queryVec := uc.vectorizer.Transform(query)
	for i, c := range gated {
		if c.Index < len(uc.recordWeights) {
			results[i].Similarity = relevance.Cosine(queryVec, uc.recordWeights[c.Index])
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Similarity != results[j].Similarity {
			return results[i].Similarity > results[j].Similarity
		}
		return results[i].DistanceM < results[j].DistanceM
	})

	return results
}
