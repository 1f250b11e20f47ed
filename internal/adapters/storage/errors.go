package storage

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	"tessera/internal/domain"
)

func isBusy(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked
	}
	return false
}

// classifyError maps driver errors onto the domain taxonomy. Errors that
// already carry a domain sentinel pass through untouched.
func classifyError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%v: %w", err, domain.ErrNotFound)
	}

	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return err
	}

	switch sqliteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return fmt.Errorf("%v: %w", err, domain.ErrBusy)
	case sqlite3.ErrCorrupt, sqlite3.ErrNotADB:
		return fmt.Errorf("%v: %w", err, domain.ErrCorrupt)
	case sqlite3.ErrIoErr, sqlite3.ErrCantOpen, sqlite3.ErrFull, sqlite3.ErrReadonly, sqlite3.ErrPerm:
		return fmt.Errorf("%v: %w", err, domain.ErrIO)
	case sqlite3.ErrConstraint:
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintPrimaryKey, sqlite3.ErrConstraintUnique:
			return fmt.Errorf("%v: %w", err, domain.ErrConflict)
		case sqlite3.ErrConstraintForeignKey:
			return fmt.Errorf("%v: %w", err, domain.ErrNotFound)
		}
	}
	return err
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, domain.ErrNotFound)
}

func conflict(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, domain.ErrConflict)
}
