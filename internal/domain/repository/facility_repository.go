package repository

import "github.com/odor-source-service/internal/domain"

// FacilityRepository определяет доступ к хранилищу записей объектов.
// Хранилище загружается один раз при старте и после этого только читается.
type FacilityRepository interface {
	// Records возвращает все записи в порядке загрузки. Порядок стабилен
	// и совпадает с порядком строк матрицы весов индекса релевантности.
	Records() []domain.FacilityRecord

	// Len возвращает количество записей
	Len() int
}
