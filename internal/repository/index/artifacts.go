// Package index persists the relevance-index artifacts: the fitted
// vectorizer (vocabulary + IDF weights) and the per-record weight matrix.
package index

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/odor-source-service/internal/domain/repository"
	"github.com/odor-source-service/internal/relevance"
)

type artifactRepository struct {
	vectorizerPath string
	weightsPath    string
	logger         *zap.Logger
}

// NewArtifactRepository - репозиторий артефактов на двух JSON-файлах
func NewArtifactRepository(vectorizerPath, weightsPath string, logger *zap.Logger) repository.IndexRepository {
	return &artifactRepository{
		vectorizerPath: vectorizerPath,
		weightsPath:    weightsPath,
		logger:         logger,
	}
}

// Load загружает оба артефакта. Любая ошибка здесь фатальна для запуска.
func (r *artifactRepository) Load() (*relevance.Vectorizer, []relevance.Vector, error) {
	var vec relevance.Vectorizer
	if err := readJSON(r.vectorizerPath, &vec); err != nil {
		return nil, nil, fmt.Errorf("load vectorizer artifact: %w", err)
	}
	if len(vec.Terms) != len(vec.IDF) {
		return nil, nil, fmt.Errorf("vectorizer artifact corrupt: %d terms, %d idf weights",
			len(vec.Terms), len(vec.IDF))
	}
	vec.Reindex()

	var rows []relevance.Vector
	if err := readJSON(r.weightsPath, &rows); err != nil {
		return nil, nil, fmt.Errorf("load weight matrix artifact: %w", err)
	}

	r.logger.Info("Relevance index artifacts loaded",
		zap.Int("vocabulary", len(vec.Terms)),
		zap.Int("rows", len(rows)))

	return &vec, rows, nil
}

// Save атомарно публикует новую пару артефактов. Каждый файл пишется во
// временный файл в том же каталоге и переименовывается; читатели никогда
// не видят частично записанное состояние.
func (r *artifactRepository) Save(vec *relevance.Vectorizer, rows []relevance.Vector) error {
	if err := writeJSONAtomic(r.vectorizerPath, vec); err != nil {
		return fmt.Errorf("save vectorizer artifact: %w", err)
	}
	if err := writeJSONAtomic(r.weightsPath, rows); err != nil {
		return fmt.Errorf("save weight matrix artifact: %w", err)
	}

	r.logger.Info("Relevance index artifacts saved",
		zap.String("vectorizer", r.vectorizerPath),
		zap.String("weights", r.weightsPath),
		zap.Int("vocabulary", len(vec.Terms)),
		zap.Int("rows", len(rows)))
	return nil
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func writeJSONAtomic(path string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
