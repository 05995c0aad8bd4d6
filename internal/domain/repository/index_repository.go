package repository

import "github.com/odor-source-service/internal/relevance"

// IndexRepository определяет персистентность артефактов индекса релевантности.
// Словарь с весами и матрица весов записей хранятся как два отдельных
// артефакта, но загружаются и публикуются только вместе.
type IndexRepository interface {
	// Load загружает оба артефакта. Отсутствующий или повреждённый файл -
	// фатальная ошибка этапа запуска, сервис не должен обслуживать запросы.
	Load() (*relevance.Vectorizer, []relevance.Vector, error)

	// Save атомарно публикует новую пару артефактов: каждый файл пишется
	// во временный файл и переименовывается, частично записанное состояние
	// никогда не видно читателям.
	Save(vec *relevance.Vectorizer, rows []relevance.Vector) error
}
