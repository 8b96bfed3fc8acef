package interactions

import (
	"context"

	"Selah/internal/core/content"
)

// Service defines the business logic interface for content interactions.
// It is the only surface the HTTP gateway talks to.
type Service interface {
	// ToggleLike flips the caller's like (follow/favorite, per vocabulary)
	// state on a content item and adjusts the denormalized counter.
	// Two concurrent toggles from the same actor serialize to a consistent
	// final state; a detected write race is retried once before surfacing
	// ErrConflict.
	ToggleLike(ctx context.Context, actorID string, ref ContentRef) (*ToggleResult, error)

	// ToggleBookmark is the same toggle mechanism with bookmark vocabulary.
	ToggleBookmark(ctx context.Context, actorID string, ref ContentRef) (*ToggleResult, error)

	// RecordView registers a qualified view exactly once per (actor, content)
	// and updates engagement metadata on every subsequent qualifying event.
	// Unqualified events return current state without touching the ledger.
	RecordView(ctx context.Context, actorID string, ref ContentRef, e Engagement) (*ViewResult, error)

	// RecordShare appends a share fact (not deduplicated) and increments the
	// share counter.
	RecordShare(ctx context.Context, actorID string, ref ContentRef) (int64, error)

	// RecordComment and RemoveComment keep the comment counter in step with
	// the external comment subsystem's lifecycle. Comment bodies are not
	// stored here, only the countable fact.
	RecordComment(ctx context.Context, actorID string, ref ContentRef) (int64, error)
	RemoveComment(ctx context.Context, actorID string, ref ContentRef) (int64, error)

	// GetState resolves counters plus the caller's interaction flags for one
	// content item. An empty actorID is an anonymous read: flags are all
	// false and the call never fails for that reason alone.
	GetState(ctx context.Context, actorID string, ref ContentRef) (*State, error)

	// GetStates is the batched form of GetState for one content type.
	// Malformed ids are excluded from the result and counted, never fatal.
	GetStates(ctx context.Context, actorID string, contentType content.Type, contentIDs []string) (*BatchStates, error)

	// ListLikers returns the actors holding an active like on a content item,
	// newest first.
	ListLikers(ctx context.Context, ref ContentRef, limit, offset int) ([]Liker, error)
}

// Repository defines the storage interface for the interaction ledger and the
// denormalized counters. Implementations must enforce the (actor, content,
// kind) uniqueness constraint at the storage layer and perform each
// ledger-write-plus-counter-adjustment as a single atomic unit.
type Repository interface {
	// ContentExists is the soft existence check run before any mutation.
	ContentExists(ctx context.Context, def content.Definition, contentID string) (bool, error)

	// ToggleActive atomically upserts the toggle row for (actor, content,
	// kind), flipping is_removed if the row exists, and adjusts the kind's
	// counter in the same transaction. Returns the new active state and the
	// new counter value.
	ToggleActive(ctx context.Context, def content.Definition, actorID, contentID string, kind Kind) (active bool, count int64, err error)

	// OriginateView attempts the guarded first-view insert. When this call
	// wins the uniqueness race it increments the view counter in the same
	// transaction and returns originated=true with the new count. When the
	// row already exists it returns originated=false and touches nothing.
	OriginateView(ctx context.Context, def content.Definition, actorID, contentID string, e Engagement) (originated bool, count int64, err error)

	// TouchView updates engagement metadata on an existing view row and
	// returns the current view counter. No counter mutation.
	TouchView(ctx context.Context, def content.Definition, actorID, contentID string, e Engagement) (count int64, err error)

	// InsertShare appends a share row and increments the share counter.
	InsertShare(ctx context.Context, def content.Definition, actorID, contentID string) (count int64, err error)

	// InsertComment appends a comment fact and increments the comment counter.
	InsertComment(ctx context.Context, def content.Definition, actorID, contentID string) (count int64, err error)

	// SoftRemoveComment marks the actor's most recent active comment fact
	// removed and decrements the counter. Removing when no active fact exists
	// is a no-op returning the current count.
	SoftRemoveComment(ctx context.Context, def content.Definition, actorID, contentID string) (count int64, err error)

	// GetCounters reads the denormalized counters off the content document.
	GetCounters(ctx context.Context, def content.Definition, contentID string) (*Counters, error)

	// GetFlags resolves one actor's interaction flags from ledger rows.
	GetFlags(ctx context.Context, def content.Definition, actorID, contentID string) (*Flags, error)

	// BatchCounters and BatchFlags are the batched read forms; ids absent
	// from storage are simply missing from the returned maps.
	BatchCounters(ctx context.Context, def content.Definition, contentIDs []string) (map[string]*Counters, error)
	BatchFlags(ctx context.Context, def content.Definition, actorID string, contentIDs []string) (map[string]*Flags, error)

	// ListLikers returns actors with an active like, newest first.
	ListLikers(ctx context.Context, def content.Definition, contentID string, limit, offset int) ([]Liker, error)
}

// Notifier publishes interaction events to realtime subscribers.
// Publishing is best-effort: failures are logged by the caller and never
// surface as request errors or roll back mutations.
type Notifier interface {
	Publish(ctx context.Context, event Event) error
}
