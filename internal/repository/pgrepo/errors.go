package pgrepo

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hanmall/pointledger/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolationCode      = "23505"
	checkViolationCode       = "23514"
	lockNotAvailableCode     = "55P03"
	serializationFailureCode = "40001"
	deadlockDetectedCode     = "40P01"
)

// convertErr maps driver errors onto the domain error taxonomy with a
// formatted context message. pgx.ErrNoRows becomes ErrRecordNotFound, unique
// violations become ErrDuplicateKey, lock timeouts / serialization failures /
// deadlocks become ErrConcurrencyConflict, check violations become
// ErrInsufficientBalance (the only CHECK in the schema guards the balance).
// Anything else is ErrUnknown with the original message preserved.
func convertErr(err error, format string, formatArgs ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, formatArgs...)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("[repository/%s] %w", msg, domain.ErrRecordNotFound)
	}

	var pgErr *pgconn.PgError
	errType := domain.ErrUnknown

	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			errType = domain.ErrDuplicateKey
		case checkViolationCode:
			errType = domain.ErrInsufficientBalance
		case lockNotAvailableCode, serializationFailureCode, deadlockDetectedCode:
			errType = domain.ErrConcurrencyConflict
		}
	}

	return fmt.Errorf("[repository/%s] %w: %s", msg, errType, err.Error())
}
