package domain

import "errors"

var (
	// ErrUnknownSystem возвращается, когда для идентификатора системы нет формулы.
	ErrUnknownSystem = errors.New("unknown profile system")
	// ErrSystemUnavailable — система есть в каталоге, но недоступна для выбора.
	ErrSystemUnavailable = errors.New("profile system unavailable")
	// ErrNotComputable — размеры не позволяют посчитать раскрой (ширина или высота <= 0).
	ErrNotComputable = errors.New("measurements not computable")
	// ErrEmptyDescription — подпись записи истории пустая после обрезки пробелов.
	ErrEmptyDescription = errors.New("description is empty")
	// ErrEntryNotFound — записи истории с таким id нет.
	ErrEntryNotFound = errors.New("history entry not found")
)
