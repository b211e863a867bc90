// Package api defines service interfaces consumed by transport adapters.
package api

import (
	"context"

	"notekeep/internal/notes/app/dto"
	"notekeep/internal/notes/domain/entities"
)

// NoteService определяет операции сервиса заметок, доступные HTTP-слою.
type NoteService interface {
	ListNotes(ctx context.Context, page, limit int) ([]*entities.Note, error)
	CreateNote(ctx context.Context, req *dto.CreateNoteRequest) (*entities.Note, error)
	GetNote(ctx context.Context, noteID string) (*entities.Note, error)
	UpdateNote(ctx context.Context, noteID string, req *dto.UpdateNoteRequest) (*entities.Note, error)
	DeleteNote(ctx context.Context, noteID string) error
}
