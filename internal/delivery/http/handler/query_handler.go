package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/odor-source-service/internal/pkg/errors"
	"github.com/odor-source-service/internal/pkg/utils"
	"github.com/odor-source-service/internal/pkg/validator"
	"github.com/odor-source-service/internal/usecase"
	"github.com/odor-source-service/internal/usecase/dto"
)

// QueryHandler - обработчик текстовых запросов об источниках запаха
type QueryHandler struct {
	queryUC *usecase.QueryUseCase
	logger  *zap.Logger
}

// NewQueryHandler - создание нового QueryHandler
func NewQueryHandler(queryUC *usecase.QueryUseCase, logger *zap.Logger) *QueryHandler {
	return &QueryHandler{
		queryUC: queryUC,
		logger:  logger,
	}
}

// Query godoc
// @Summary Поиск источников запаха по текстовому запросу
// @Description Извлекает из текста название места, геокодирует его и возвращает вероятные источники запаха в радиусе поиска, упорядоченные по релевантности и расстоянию. Пустой список результатов - обычный исход.
// @Tags Query
// @Accept json
// @Produce json
// @Param request body dto.QueryRequest true "Текст запроса"
// @Success 200 {object} utils.SuccessResponse{data=dto.QueryResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/query [post]
func (h *QueryHandler) Query(c *fiber.Ctx) error {
	var req dto.QueryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	return h.process(c, req)
}

// QueryGET godoc
// @Summary Поиск источников запаха по текстовому запросу (GET)
// @Description Вариант POST /api/v1/query с текстом запроса в параметре q, удобный для ручной проверки из браузера.
// @Tags Query
// @Accept json
// @Produce json
// @Param q query string true "Текст запроса (минимум 2 символа)"
// @Success 200 {object} utils.SuccessResponse{data=dto.QueryResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/query [get]
func (h *QueryHandler) QueryGET(c *fiber.Ctx) error {
	req := dto.QueryRequest{Query: c.Query("q")}
	return h.process(c, req)
}

func (h *QueryHandler) process(c *fiber.Ctx, req dto.QueryRequest) error {
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidQuery)
	}

	start := time.Now()
	result, err := h.queryUC.Process(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total:    result.Total,
		TimeMSec: float64(time.Since(start).Microseconds()) / 1000,
	})
}
