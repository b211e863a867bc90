// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"

	"notekeep/internal/notes/adapters/http/health"
	"notekeep/internal/notes/adapters/http/middleware"
	"notekeep/internal/notes/adapters/http/notes"
	"notekeep/internal/notes/app/dto"
	"notekeep/internal/notes/ports/api"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, noteService api.NoteService) {
	notesHandler := notes.NewHandler(noteService)

	// Middleware для всех запросов.
	app.Use(middleware.NewRequestIDMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	app.Get("/health", health.Get)

	notesRoutes := app.Group("/notes")
	notesRoutes.Get("/", notesHandler.ListNotes)
	notesRoutes.Post("/", notesHandler.CreateNote)
	notesRoutes.Get("/:note_id", notesHandler.GetNote)
	notesRoutes.Patch("/:note_id", notesHandler.UpdateNote)
	notesRoutes.Delete("/:note_id", notesHandler.DeleteNote)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageEnvelope{
			Status:  dto.StatusFail,
			Message: "Route not found",
		})
	})
}
