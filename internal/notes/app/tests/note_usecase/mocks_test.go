package noteusecase_test

import (
	"context"

	"notekeep/internal/notes/domain/entities"
)

// mockNoteRepository - ручной мок репозитория заметок с настраиваемыми
// функциями и счетчиками вызовов.
type mockNoteRepository struct {
	createFn  func(ctx context.Context, note *entities.Note) (*entities.Note, error)
	getByIDFn func(ctx context.Context, noteID string) (*entities.Note, error)
	listFn    func(ctx context.Context, limit, offset int) ([]*entities.Note, error)
	updateFn  func(ctx context.Context, note *entities.Note) (*entities.Note, error)
	deleteFn  func(ctx context.Context, noteID string) error

	createCalls int
	getCalls    int
	listCalls   int
	updateCalls int
	deleteCalls int
}

func (m *mockNoteRepository) Create(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	m.createCalls++
	return m.createFn(ctx, note)
}

func (m *mockNoteRepository) GetByID(ctx context.Context, noteID string) (*entities.Note, error) {
	m.getCalls++
	return m.getByIDFn(ctx, noteID)
}

func (m *mockNoteRepository) List(ctx context.Context, limit, offset int) ([]*entities.Note, error) {
	m.listCalls++
	return m.listFn(ctx, limit, offset)
}

func (m *mockNoteRepository) Update(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	m.updateCalls++
	return m.updateFn(ctx, note)
}

func (m *mockNoteRepository) Delete(ctx context.Context, noteID string) error {
	m.deleteCalls++
	return m.deleteFn(ctx, noteID)
}
