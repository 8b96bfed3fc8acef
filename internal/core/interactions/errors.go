package interactions

import "errors"

var (
	// ErrContentNotFound indicates the content id is well-formed but no such
	// document exists in the resolved collection
	ErrContentNotFound = errors.New("content not found")

	// ErrInvalidContentID indicates a malformed content id
	ErrInvalidContentID = errors.New("invalid content id")

	// ErrInvalidActor indicates an actor identity that cannot be canonicalized
	ErrInvalidActor = errors.New("invalid actor id")

	// ErrActorRequired indicates a mutation was attempted without an actor
	// identity; reads tolerate anonymity, writes do not
	ErrActorRequired = errors.New("actor identity required")

	// ErrConflict indicates a transient write race that exhausted its bounded
	// retry
	ErrConflict = errors.New("interaction write conflict")
)
