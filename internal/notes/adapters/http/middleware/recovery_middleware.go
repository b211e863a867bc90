package middleware

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notekeep/internal/notes/app/dto"
	"notekeep/pkg/logger"
)

// NewRecoveryMiddleware создает новое промежуточное ПО для восстановления после паники.
func NewRecoveryMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		reqCtx, ok := ctx.Locals("requestContext").(context.Context)
		if !ok {
			reqCtx = ctx.Context()
		}
		log := logger.Log(reqCtx)

		defer func() {
			if r := recover(); r != nil {
				stack := debug.Stack()

				log.Error(reqCtx, "Server panic",
					zap.String("error", fmt.Sprintf("%v", r)),
					zap.String("stack", string(stack)),
				)

				if err := ctx.Status(fiber.StatusInternalServerError).JSON(dto.MessageEnvelope{
					Status:  dto.StatusError,
					Message: "Internal Server Error",
				}); err != nil {
					log.Error(reqCtx, "Failed to send error response after panic", zap.Error(err))
				}
			}
		}()

		return ctx.Next()
	}
}
