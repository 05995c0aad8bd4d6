package extractor

import (
	prose "github.com/jdkato/prose/v2"
	"go.uber.org/zap"

	"github.com/odor-source-service/internal/domain"
)

type nerStrategy struct {
	logger *zap.Logger
}

// NewNERStrategy - статистический теггер именованных сущностей.
// Возвращает текст первой сущности с меткой GPE.
func NewNERStrategy(logger *zap.Logger) Strategy {
	return &nerStrategy{logger: logger}
}

func (s *nerStrategy) Name() string {
	return domain.StageNER
}

func (s *nerStrategy) Extract(query string) (string, bool) {
	doc, err := prose.NewDocument(query,
		prose.WithSegmentation(false),
		prose.WithExtraction(true))
	if err != nil {
		// A tagger failure must not abort the cascade; the next stage
		// still gets its chance.
		s.logger.Warn("NER tagging failed", zap.Error(err))
		return "", false
	}

	for _, ent := range doc.Entities() {
		if ent.Label == "GPE" {
			return ent.Text, true
		}
	}
	return "", false
}
