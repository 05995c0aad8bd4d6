// Package extractor pulls a single place reference out of free query text
// using an ordered cascade of fallback strategies.
package extractor

import (
	"go.uber.org/zap"

	"github.com/odor-source-service/internal/domain"
)

// Strategy - одна стратегия извлечения места из текста.
// Возвращает (название, true) при успехе.
type Strategy interface {
	Name() string
	Extract(query string) (string, bool)
}

// Extractor - каскад стратегий. Стратегии пробуются по порядку, первая
// успешная останавливает каскад.
type Extractor struct {
	strategies []Strategy
	logger     *zap.Logger
}

// New собирает стандартный трёхступенчатый каскад: газетир городов,
// NER-теггер и список районов целевого города.
func New(logger *zap.Logger) *Extractor {
	return NewWithStrategies(logger,
		NewGazetteerStrategy(),
		NewNERStrategy(logger),
		NewAreaListStrategy(),
	)
}

// NewWithStrategies собирает каскад из произвольных стратегий
func NewWithStrategies(logger *zap.Logger, strategies ...Strategy) *Extractor {
	return &Extractor{
		strategies: strategies,
		logger:     logger,
	}
}

// Extract возвращает первое извлечённое место или nil, если ни одна
// стратегия не сработала. Отсутствие результата - обычный исход,
// а не ошибка.
func (e *Extractor) Extract(query string) *domain.ExtractedLocation {
	for _, s := range e.strategies {
		if name, ok := s.Extract(query); ok {
			e.logger.Debug("Location extracted",
				zap.String("location", name),
				zap.String("stage", s.Name()))
			return &domain.ExtractedLocation{Name: name, Stage: s.Name()}
		}
	}

	e.logger.Debug("No location found in query")
	return nil
}
