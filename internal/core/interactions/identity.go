package interactions

import (
	"strings"

	"github.com/google/uuid"
)

// CanonicalActorID normalizes an actor identity to the single representation
// stored in ledger rows: the lowercase canonical UUID string.
//
// Every write path AND every read path must pass actor ids through here. If a
// query compares against a differently-formatted id, persisted interactions
// silently read back as absent, so no call site may format actor ids ad hoc.
func CanonicalActorID(raw string) (string, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", ErrInvalidActor
	}
	return id.String(), nil
}

// CanonicalContentID normalizes an opaque content id the same way. Malformed
// ids are a caller error for single reads and a skip for batch reads.
func CanonicalContentID(raw string) (string, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", ErrInvalidContentID
	}
	return id.String(), nil
}
