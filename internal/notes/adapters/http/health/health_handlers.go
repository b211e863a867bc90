// Package health содержит обработчик проверки работоспособности.
package health

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"notekeep/internal/notes/app/dto"
)

// Фиксированный ответ проверки работоспособности.
const healthMessage = "OK"

// Get возвращает фиксированный успешный ответ без обращения к хранилищу.
func Get(ctx fiber.Ctx) error {
	if err := ctx.JSON(dto.MessageEnvelope{
		Status:  dto.StatusSuccess,
		Message: healthMessage,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
