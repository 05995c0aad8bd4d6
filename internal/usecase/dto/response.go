package dto

import "github.com/odor-source-service/internal/domain"

// QueryResponse - ответ на текстовый запрос. Пустой список результатов -
// обычный исход (место не извлечено, не геокодировано или рядом ничего нет).
type QueryResponse struct {
	Location *domain.ExtractedLocation `json:"location,omitempty"`
	Point    *domain.GeocodedPoint     `json:"point,omitempty"`
	Results  []domain.SearchResult     `json:"results"`
	Total    int                       `json:"total"`
}
