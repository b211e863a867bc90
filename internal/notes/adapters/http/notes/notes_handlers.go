// Package notes содержит HTTP-обработчики для управления заметками.
package notes

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notekeep/internal/notes/app"
	"notekeep/internal/notes/app/dto"
	"notekeep/internal/notes/domain/entities"
	"notekeep/internal/notes/ports/api"
	"notekeep/pkg/logger"
)

// Константы сообщений для логирования.
const (
	LogHandlerListNotes  = "handling list notes request"
	LogHandlerCreateNote = "handling create note request"
	LogHandlerGetNote    = "handling get note request"
	LogHandlerUpdateNote = "handling update note request"
	LogHandlerDeleteNote = "handling delete note request"
)

// Константы клиентских сообщений об ошибках.
const (
	ErrMsgInvalidPagination  = "invalid pagination parameters"
	ErrMsgInvalidRequestBody = "invalid request body"
)

// Handler обработчик HTTP-запросов для работы с заметками.
type Handler struct {
	noteService api.NoteService
}

// NewHandler создает новый экземпляр обработчика заметок.
func NewHandler(noteService api.NoteService) *Handler {
	return &Handler{noteService: noteService}
}

// ListNotes обрабатывает запрос списка заметок с пагинацией.
func (h *Handler) ListNotes(ctx fiber.Ctx) error {
	reqCtx := requestContext(ctx)
	log := logger.Log(reqCtx).With(zap.String("handler", "Handler.ListNotes"))
	log.Debug(reqCtx, LogHandlerListNotes)

	page, err := strconv.Atoi(ctx.Query("page", strconv.Itoa(app.DefaultPage)))
	if err != nil {
		log.Debug(reqCtx, ErrMsgInvalidPagination, zap.Error(err))
		return sendFail(ctx, fiber.StatusBadRequest, ErrMsgInvalidPagination)
	}

	limit, err := strconv.Atoi(ctx.Query("limit", strconv.Itoa(app.DefaultLimit)))
	if err != nil {
		log.Debug(reqCtx, ErrMsgInvalidPagination, zap.Error(err))
		return sendFail(ctx, fiber.StatusBadRequest, ErrMsgInvalidPagination)
	}

	notes, err := h.noteService.ListNotes(reqCtx, page, limit)
	if err != nil {
		log.Error(reqCtx, "failed to list notes", zap.Error(err))
		return sendDomainError(ctx, err, "")
	}

	if err := ctx.JSON(dto.NewListNotesEnvelope(notes)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// CreateNote обрабатывает запрос на создание новой заметки.
func (h *Handler) CreateNote(ctx fiber.Ctx) error {
	reqCtx := requestContext(ctx)
	log := logger.Log(reqCtx).With(zap.String("handler", "Handler.CreateNote"))
	log.Debug(reqCtx, LogHandlerCreateNote)

	var req dto.CreateNoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(reqCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return sendFail(ctx, fiber.StatusBadRequest, ErrMsgInvalidRequestBody)
	}

	note, err := h.noteService.CreateNote(reqCtx, &req)
	if err != nil {
		log.Error(reqCtx, "failed to create note", zap.Error(err))
		return sendDomainError(ctx, err, "")
	}

	if err := ctx.JSON(dto.NewNoteEnvelope(note)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// GetNote обрабатывает запрос на получение заметки по ID.
func (h *Handler) GetNote(ctx fiber.Ctx) error {
	reqCtx := requestContext(ctx)
	log := logger.Log(reqCtx).With(zap.String("handler", "Handler.GetNote"))
	log.Debug(reqCtx, LogHandlerGetNote)

	noteID := ctx.Params("note_id")

	note, err := h.noteService.GetNote(reqCtx, noteID)
	if err != nil {
		log.Error(reqCtx, "failed to get note", zap.Error(err))
		return sendDomainError(ctx, err, noteID)
	}

	if err := ctx.JSON(dto.NewNoteEnvelope(note)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// UpdateNote обрабатывает запрос на частичное обновление заметки.
func (h *Handler) UpdateNote(ctx fiber.Ctx) error {
	reqCtx := requestContext(ctx)
	log := logger.Log(reqCtx).With(zap.String("handler", "Handler.UpdateNote"))
	log.Debug(reqCtx, LogHandlerUpdateNote)

	noteID := ctx.Params("note_id")

	var req dto.UpdateNoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(reqCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return sendFail(ctx, fiber.StatusBadRequest, ErrMsgInvalidRequestBody)
	}

	note, err := h.noteService.UpdateNote(reqCtx, noteID, &req)
	if err != nil {
		log.Error(reqCtx, "failed to update note", zap.Error(err))
		return sendDomainError(ctx, err, noteID)
	}

	if err := ctx.JSON(dto.NewNoteEnvelope(note)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// DeleteNote обрабатывает запрос на удаление заметки.
func (h *Handler) DeleteNote(ctx fiber.Ctx) error {
	reqCtx := requestContext(ctx)
	log := logger.Log(reqCtx).With(zap.String("handler", "Handler.DeleteNote"))
	log.Debug(reqCtx, LogHandlerDeleteNote)

	noteID := ctx.Params("note_id")

	if err := h.noteService.DeleteNote(reqCtx, noteID); err != nil {
		log.Error(reqCtx, "failed to delete note", zap.Error(err))
		return sendDomainError(ctx, err, noteID)
	}

	if err := ctx.SendStatus(fiber.StatusNoContent); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// requestContext извлекает обогащенный контекст запроса из Locals.
func requestContext(ctx fiber.Ctx) context.Context {
	if reqCtx, ok := ctx.Locals("requestContext").(context.Context); ok {
		return reqCtx
	}
	return ctx.Context()
}

// sendDomainError отображает доменную ошибку в HTTP-статус и конверт.
// Conflict и NotFound никогда не маскируются под Internal.
func sendDomainError(ctx fiber.Ctx, err error, noteID string) error {
	switch {
	case errors.Is(err, entities.ErrDuplicateTitle):
		return sendFail(ctx, fiber.StatusConflict, "note with that title already exists")
	case errors.Is(err, entities.ErrNoteNotFound):
		return sendFail(ctx, fiber.StatusNotFound, fmt.Sprintf("Note with ID: %s not found", noteID))
	case errors.Is(err, app.ErrInvalidNoteID),
		errors.Is(err, app.ErrTitleRequired),
		errors.Is(err, app.ErrContentRequired):
		return sendFail(ctx, fiber.StatusBadRequest, err.Error())
	default:
		return sendError(ctx, err)
	}
}

// sendFail отправляет конверт ожидаемой клиентской ошибки.
func sendFail(ctx fiber.Ctx, status int, message string) error {
	if err := ctx.Status(status).JSON(dto.MessageEnvelope{
		Status:  dto.StatusFail,
		Message: message,
	}); err != nil {
		return fmt.Errorf("error sending fail response: %w", err)
	}
	return nil
}

// sendError отправляет конверт неожиданной ошибки хранилища.
func sendError(ctx fiber.Ctx, cause error) error {
	if err := ctx.Status(fiber.StatusInternalServerError).JSON(dto.MessageEnvelope{
		Status:  dto.StatusError,
		Message: cause.Error(),
	}); err != nil {
		return fmt.Errorf("error sending error response: %w", err)
	}
	return nil
}
