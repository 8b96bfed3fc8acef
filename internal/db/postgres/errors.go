package postgres

import (
	"errors"

	"github.com/lib/pq"
)

// Postgres error codes we branch on. Everything else propagates wrapped.
const (
	codeUniqueViolation      = "23505"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// isUniqueViolation reports whether err is a unique-constraint violation,
// i.e. a lost race against the (actor, content, kind) uniqueness guard.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == codeUniqueViolation
}

// isRetryable reports whether err is a transient conflict worth one retry.
func isRetryable(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == codeSerializationFailure || pqErr.Code == codeDeadlockDetected
}
