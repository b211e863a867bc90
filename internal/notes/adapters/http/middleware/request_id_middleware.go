// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"github.com/gofiber/fiber/v3"

	"notekeep/pkg/logger"
)

// HeaderRequestID - заголовок с входящим идентификатором запроса.
const HeaderRequestID = "X-Request-ID"

// NewRequestIDMiddleware кладет в Locals контекст запроса с идентификатором:
// входящий X-Request-ID или сгенерированный.
func NewRequestIDMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		reqCtx := logger.NewRequestIDContext(ctx.Context(), ctx.Get(HeaderRequestID))
		ctx.Locals("requestContext", reqCtx)

		if id, ok := logger.GetRequestID(reqCtx); ok {
			ctx.Set(HeaderRequestID, id)
		}

		return ctx.Next()
	}
}
