package repositories

import (
	"errors"

	"gorm.io/gorm"
)

// Stable error taxonomy surfaced by every repository. Store-specific errors
// are translated exactly once, here, so callers can match with errors.Is.
var (
	// ErrNotFound means a lookup by id or key missed.
	ErrNotFound = errors.New("record not found")
	// ErrConflict means a write would duplicate a unique value.
	ErrConflict = errors.New("unique constraint violation")
	// ErrReference means a foreign key points at a nonexistent row.
	ErrReference = errors.New("referenced record does not exist")
)

// translateError maps GORM's translated driver errors onto the taxonomy.
// Requires the session to be opened with TranslateError enabled.
func translateError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrReference
	}
	return err
}
