// Package app implements application business logic for the notes service.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"notekeep/internal/notes/app/dto"
	"notekeep/internal/notes/domain/entities"
	"notekeep/internal/notes/ports/repositories"
)

// Ошибки валидации: отклоняются до обращения к репозиторию.
var (
	ErrInvalidNoteID   = errors.New("invalid note id")
	ErrTitleRequired   = errors.New("title is required")
	ErrContentRequired = errors.New("content is required")
)

// Параметры пагинации по умолчанию.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// NoteUseCase представляет собой бизнес-логику работы с заметками.
type NoteUseCase struct {
	noteRepo repositories.NoteRepository
}

// NewNoteUseCase создает новый экземпляр NoteUseCase.
func NewNoteUseCase(noteRepo repositories.NoteRepository) *NoteUseCase {
	return &NoteUseCase{noteRepo: noteRepo}
}

// ListNotes возвращает страницу заметок в порядке возрастания ID.
// Неположительные page и limit заменяются значениями по умолчанию.
func (uc *NoteUseCase) ListNotes(ctx context.Context, page, limit int) ([]*entities.Note, error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	offset := (page - 1) * limit

	notes, err := uc.noteRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	return notes, nil
}

// CreateNote создает новую заметку. Заголовок и содержимое обязательны,
// категория по умолчанию пустая строка.
func (uc *NoteUseCase) CreateNote(ctx context.Context, req *dto.CreateNoteRequest) (*entities.Note, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrTitleRequired
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrContentRequired
	}

	note := entities.NewNote(req.Title, req.Content, req.Category)
	created, err := uc.noteRepo.Create(ctx, note)
	if err != nil {
		if errors.Is(err, entities.ErrDuplicateTitle) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	return created, nil
}

// GetNote возвращает заметку по ID.
func (uc *NoteUseCase) GetNote(ctx context.Context, noteID string) (*entities.Note, error) {
	if err := validateNoteID(noteID); err != nil {
		return nil, err
	}

	note, err := uc.noteRepo.GetByID(ctx, noteID)
	if err != nil {
		if errors.Is(err, entities.ErrNoteNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return note, nil
}

// UpdateNote выполняет частичное обновление: читает текущее состояние,
// сливает присланные поля и записывает результат. Отсутствующие поля
// сохраняют прежние значения, отсутствующий published - прежний флаг.
// Последовательность чтение-слияние-запись не атомарна: конкурентное
// удаление между чтением и записью проявляется как not found.
func (uc *NoteUseCase) UpdateNote(ctx context.Context, noteID string, req *dto.UpdateNoteRequest) (*entities.Note, error) {
	if err := validateNoteID(noteID); err != nil {
		return nil, err
	}

	note, err := uc.noteRepo.GetByID(ctx, noteID)
	if err != nil {
		if errors.Is(err, entities.ErrNoteNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Content != nil {
		note.Content = *req.Content
	}
	if req.Category != nil {
		note.Category = *req.Category
	}
	if req.Published != nil {
		note.SetPublished(*req.Published)
	}

	updated, err := uc.noteRepo.Update(ctx, note)
	if err != nil {
		if errors.Is(err, entities.ErrNoteNotFound) || errors.Is(err, entities.ErrDuplicateTitle) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	return updated, nil
}

// DeleteNote удаляет заметку по ID.
func (uc *NoteUseCase) DeleteNote(ctx context.Context, noteID string) error {
	if err := validateNoteID(noteID); err != nil {
		return err
	}

	if err := uc.noteRepo.Delete(ctx, noteID); err != nil {
		if errors.Is(err, entities.ErrNoteNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete note: %w", err)
	}

	return nil
}

// validateNoteID проверяет синтаксис идентификатора до обращения к хранилищу.
func validateNoteID(noteID string) error {
	if _, err := uuid.Parse(noteID); err != nil {
		return ErrInvalidNoteID
	}
	return nil
}
