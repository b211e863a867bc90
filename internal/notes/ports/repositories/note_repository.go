// Package repositories defines repository interfaces for the notes service.
package repositories

import (
	"context"

	"notekeep/internal/notes/domain/entities"
)

// NoteRepository определяет интерфейс для работы с репозиторием заметок.
// Все операции выполняются только со связанными параметрами запросов.
type NoteRepository interface {
	Create(ctx context.Context, note *entities.Note) (*entities.Note, error)
	GetByID(ctx context.Context, noteID string) (*entities.Note, error)
	List(ctx context.Context, limit, offset int) ([]*entities.Note, error)
	Update(ctx context.Context, note *entities.Note) (*entities.Note, error)
	Delete(ctx context.Context, noteID string) error
}
