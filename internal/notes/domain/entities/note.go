// Package entities defines the domain entities for the notes service.
package entities

import "time"

// Флаговые значения колонки published.
const (
	PublishedFlagFalse int16 = 0
	PublishedFlagTrue  int16 = 1
)

// Note представляет собой заметку. Временные метки проставляет и
// поддерживает хранилище: nil только у еще не сохраненного экземпляра.
type Note struct {
	ID        string
	Title     string
	Content   string
	Category  string
	Published int16
	CreatedAt *time.Time
	UpdatedAt *time.Time
}

// NewNote создает еще не сохраненную заметку. Идентификатор назначает
// репозиторий перед вставкой, published по умолчанию 0.
func NewNote(title, content, category string) *Note {
	return &Note{
		Title:    title,
		Content:  content,
		Category: category,
	}
}

// IsPublished возвращает булево представление хранимого флага.
func (n *Note) IsPublished() bool {
	return n.Published != PublishedFlagFalse
}

// SetPublished приводит булево значение обратно к хранимому флагу.
func (n *Note) SetPublished(published bool) {
	if published {
		n.Published = PublishedFlagTrue
		return
	}
	n.Published = PublishedFlagFalse
}
