package usecase

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/odor-source-service/internal/domain/repository"
	"github.com/odor-source-service/internal/relevance"
)

// KBUseCase - офлайн-подготовка базы знаний: обучение TF-IDF модели на
// корпусе записей и публикация артефактов. Одноразовая пакетная операция;
// на запросном пути никогда не выполняется.
type KBUseCase struct {
	facilityRepo repository.FacilityRepository
	indexRepo    repository.IndexRepository
	maxFeatures  int
	logger       *zap.Logger
}

// NewKBUseCase - создание нового KBUseCase
func NewKBUseCase(
	facilityRepo repository.FacilityRepository,
	indexRepo repository.IndexRepository,
	maxFeatures int,
	logger *zap.Logger,
) *KBUseCase {
	return &KBUseCase{
		facilityRepo: facilityRepo,
		indexRepo:    indexRepo,
		maxFeatures:  maxFeatures,
		logger:       logger,
	}
}

// Build обучает модель и атомарно публикует оба артефакта.
// Матрица весов содержит ровно одну строку на запись хранилища в том же
// порядке; повторный запуск на неизменном корпусе даёт идентичные артефакты.
func (uc *KBUseCase) Build() error {
	records := uc.facilityRepo.Records()
	if len(records) == 0 {
		return fmt.Errorf("facility store is empty, nothing to index")
	}

	corpus := make([]string, len(records))
	for i, r := range records {
		corpus[i] = r.Document()
	}

	uc.logger.Info("Fitting relevance model",
		zap.Int("documents", len(corpus)),
		zap.Int("max_features", uc.maxFeatures))

	vec := relevance.Fit(corpus, uc.maxFeatures)

	rows := make([]relevance.Vector, len(corpus))
	for i, doc := range corpus {
		rows[i] = vec.Transform(doc)
	}

	if err := uc.indexRepo.Save(vec, rows); err != nil {
		return fmt.Errorf("publish index artifacts: %w", err)
	}

	uc.logger.Info("Knowledge base preparation completed",
		zap.Int("vocabulary", len(vec.Terms)),
		zap.Int("rows", len(rows)))
	return nil
}
