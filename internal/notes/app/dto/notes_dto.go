// Package dto содержит структуры запросов и ответов HTTP API.
package dto

import (
	"fmt"
	"time"

	"notekeep/internal/notes/domain/entities"
)

// Дискриминаторы статуса в конвертах ответов.
const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// CreateNoteRequest содержит данные для создания заметки.
// Категория необязательна и по умолчанию пустая строка.
type CreateNoteRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

// UpdateNoteRequest содержит частичное обновление заметки.
// nil-поля сохраняют прежние хранимые значения.
type UpdateNoteRequest struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Category  *string `json:"category"`
	Published *bool   `json:"published"`
}

// NoteResponse - публичное представление заметки: хранимый флаг published
// становится булевым, временные метки обязательны.
type NoteResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteData оборачивает заметку в поле data конверта.
type NoteData struct {
	Note *NoteResponse `json:"note"`
}

// NoteEnvelope - конверт успешного ответа с одной заметкой.
type NoteEnvelope struct {
	Status string   `json:"status"`
	Data   NoteData `json:"data"`
}

// ListNotesEnvelope - конверт успешного ответа со списком заметок.
type ListNotesEnvelope struct {
	Status  string          `json:"status"`
	Results int             `json:"results"`
	Notes   []*NoteResponse `json:"notes"`
}

// MessageEnvelope - конверт ответа с сообщением: ошибки ("fail"/"error")
// и фиксированный ответ проверки работоспособности.
type MessageEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// FilterDBRecord преобразует хранимую запись в публичное представление.
// Паникует, если временные метки не заполнены: такая запись не могла быть
// прочитана из хранилища и указывает на дефект репозитория.
func FilterDBRecord(note *entities.Note) *NoteResponse {
	if note.CreatedAt == nil || note.UpdatedAt == nil {
		panic(fmt.Sprintf("dto: note %q has unpopulated timestamps", note.ID))
	}

	return &NoteResponse{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		Category:  note.Category,
		Published: note.IsPublished(),
		CreatedAt: note.CreatedAt.UTC(),
		UpdatedAt: note.UpdatedAt.UTC(),
	}
}

// NewNoteEnvelope собирает конверт успешного ответа с одной заметкой.
func NewNoteEnvelope(note *entities.Note) *NoteEnvelope {
	return &NoteEnvelope{
		Status: StatusSuccess,
		Data:   NoteData{Note: FilterDBRecord(note)},
	}
}

// NewListNotesEnvelope собирает конверт успешного ответа со списком заметок.
func NewListNotesEnvelope(notes []*entities.Note) *ListNotesEnvelope {
	responses := make([]*NoteResponse, 0, len(notes))
	for _, note := range notes {
		responses = append(responses, FilterDBRecord(note))
	}

	return &ListNotesEnvelope{
		Status:  StatusSuccess,
		Results: len(responses),
		Notes:   responses,
	}
}
