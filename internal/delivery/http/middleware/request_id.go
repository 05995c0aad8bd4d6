package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// HeaderRequestID - имя заголовка с идентификатором запроса
const HeaderRequestID = "X-Request-ID"

// RequestID - middleware, присваивающее каждому запросу идентификатор.
// Входящий заголовок X-Request-ID сохраняется, иначе генерируется новый.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(requestIDKey, id)
		c.Set(HeaderRequestID, id)
		return c.Next()
	}
}

// RequestIDFromCtx возвращает идентификатор текущего запроса
func RequestIDFromCtx(c *fiber.Ctx) string {
	if id, ok := c.Locals(requestIDKey).(string); ok {
		return id
	}
	return ""
}
