package entities

import "errors"

// Ошибки доменного уровня, классифицируемые репозиторием.
var (
	// ErrNoteNotFound возвращается, когда заметка с указанным ID не существует
	// или исчезла между чтением и записью.
	ErrNoteNotFound = errors.New("note not found")

	// ErrDuplicateTitle возвращается при нарушении уникальности заголовка.
	ErrDuplicateTitle = errors.New("note with that title already exists")
)
