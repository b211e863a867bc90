// Package postgres provides PostgreSQL implementations of repositories.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"notekeep/internal/notes/domain/entities"
	"notekeep/internal/notes/ports/repositories"
	"notekeep/pkg/logger"
)

// PgxPoolInterface описывает операции пула, используемые репозиторием.
type PgxPoolInterface interface {
	QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Close()
}

// uniqueViolationCode - SQLSTATE нарушения уникального ограничения.
const uniqueViolationCode = "23505"

const (
	queryInsertNote = `INSERT INTO notes (id, title, content, category) VALUES ($1, $2, $3, $4)`
	querySelectNote = `SELECT id, title, content, category, published, created_at, updated_at FROM notes WHERE id = $1`
	queryListNotes  = `SELECT id, title, content, category, published, created_at, updated_at FROM notes ORDER BY id LIMIT $1 OFFSET $2`
	queryUpdateNote = `UPDATE notes SET title = $1, content = $2, category = $3, published = $4 WHERE id = $5`
	queryDeleteNote = `DELETE FROM notes WHERE id = $1`
)

// NoteRepository реализует интерфейс repositories.NoteRepository.
type NoteRepository struct {
	pool PgxPoolInterface
}

// NewNoteRepository создает новый репозиторий заметок.
func NewNoteRepository(pool PgxPoolInterface) repositories.NoteRepository {
	return &NoteRepository{pool: pool}
}

// Create сохраняет новую заметку. Идентификатор назначается до вставки,
// после вставки запись перечитывается ради проставленных хранилищем
// временных меток.
func (r *NoteRepository) Create(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Create"))

	note.ID = uuid.New().String()
	log.Debug(ctx, "creating new note", zap.String("noteID", note.ID))

	_, err := r.pool.Exec(ctx, queryInsertNote, note.ID, note.Title, note.Content, note.Category)
	if err != nil {
		if isUniqueViolation(err) {
			log.Debug(ctx, "duplicate note title", zap.String("title", note.Title))
			return nil, entities.ErrDuplicateTitle
		}
		log.Error(ctx, "failed to create note", zap.Error(err))
		return nil, fmt.Errorf("error creating note: %w", err)
	}

	created, err := r.GetByID(ctx, note.ID)
	if err != nil {
		return nil, fmt.Errorf("error reading back created note: %w", err)
	}

	log.Debug(ctx, "note created", zap.String("noteID", created.ID))
	return created, nil
}

// GetByID получает заметку по ID.
func (r *NoteRepository) GetByID(ctx context.Context, noteID string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "GetByID"))

	var note entities.Note
	err := r.pool.QueryRow(ctx, querySelectNote, noteID).Scan(
		&note.ID,
		&note.Title,
		&note.Content,
		&note.Category,
		&note.Published,
		&note.CreatedAt,
		&note.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found", zap.String("noteID", noteID))
			return nil, entities.ErrNoteNotFound
		}
		log.Error(ctx, "failed to get note", zap.Error(err))
		return nil, fmt.Errorf("error querying note by id: %w", err)
	}

	return &note, nil
}

// List получает заметки в порядке возрастания ID с пагинацией.
// Пустой результат не является ошибкой.
func (r *NoteRepository) List(ctx context.Context, limit, offset int) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "List"))
	log.Debug(ctx, "listing notes", zap.Int("limit", limit), zap.Int("offset", offset))

	rows, err := r.pool.Query(ctx, queryListNotes, limit, offset)
	if err != nil {
		log.Error(ctx, "failed to list notes", zap.Error(err))
		return nil, fmt.Errorf("error listing notes: %w", err)
	}
	defer rows.Close()

	notes := make([]*entities.Note, 0)
	for rows.Next() {
		var note entities.Note
		err := rows.Scan(
			&note.ID,
			&note.Title,
			&note.Content,
			&note.Category,
			&note.Published,
			&note.CreatedAt,
			&note.UpdatedAt,
		)
		if err != nil {
			log.Error(ctx, "failed to scan note", zap.Error(err))
			return nil, fmt.Errorf("error scanning note: %w", err)
		}
		notes = append(notes, &note)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating notes: %w", err)
	}

	return notes, nil
}

// Update записывает слитое состояние заметки одной командой UPDATE и
// перечитывает запись. Ноль затронутых строк означает, что заметка исчезла
// между чтением и записью.
func (r *NoteRepository) Update(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Update"))
	log.Debug(ctx, "updating note", zap.String("noteID", note.ID))

	result, err := r.pool.Exec(ctx, queryUpdateNote,
		note.Title, note.Content, note.Category, note.Published, note.ID)
	if err != nil {
		if isUniqueViolation(err) {
			log.Debug(ctx, "duplicate note title", zap.String("title", note.Title))
			return nil, entities.ErrDuplicateTitle
		}
		log.Error(ctx, "failed to update note", zap.Error(err))
		return nil, fmt.Errorf("error updating note: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "note vanished before update", zap.String("noteID", note.ID))
		return nil, entities.ErrNoteNotFound
	}

	updated, err := r.GetByID(ctx, note.ID)
	if err != nil {
		return nil, fmt.Errorf("error reading back updated note: %w", err)
	}

	return updated, nil
}

// Delete удаляет заметку по ID.
func (r *NoteRepository) Delete(ctx context.Context, noteID string) error {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Delete"))
	log.Debug(ctx, "deleting note", zap.String("noteID", noteID))

	result, err := r.pool.Exec(ctx, queryDeleteNote, noteID)
	if err != nil {
		log.Error(ctx, "failed to delete note", zap.Error(err))
		return fmt.Errorf("error deleting note: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "note not found", zap.String("noteID", noteID))
		return entities.ErrNoteNotFound
	}

	return nil
}

// isUniqueViolation распознает нарушение уникального ограничения по
// SQLSTATE, не полагаясь на текст ошибки.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
