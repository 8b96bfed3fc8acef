package interactions

import (
	"time"

	"Selah/internal/core/content"
)

// Kind enumerates the interaction facts the ledger records.
type Kind string

const (
	KindLike     Kind = "like"
	KindView     Kind = "view"
	KindShare    Kind = "share"
	KindBookmark Kind = "bookmark"
	KindComment  Kind = "comment"
)

// ContentRef identifies any likeable/viewable entity: a content-type tag plus
// an opaque document id. It must resolve through the content registry before
// any storage access.
type ContentRef struct {
	Type content.Type `json:"contentType"`
	ID   string       `json:"contentId"`
}

// Engagement carries the playback/reading signals attached to a view event.
type Engagement struct {
	DurationMs  int64   `json:"durationMs"`
	ProgressPct float64 `json:"progressPct"`
	IsComplete  bool    `json:"isComplete"`
}

// Interaction is one ledger row: a single user↔content fact.
// Like and bookmark rows toggle is_removed; view rows are created once and
// only their engagement metadata changes afterwards; share and comment rows
// may exist many times per (actor, content).
type Interaction struct {
	ID          int64        `json:"id" db:"id"`
	ActorID     string       `json:"actorId" db:"actor_id"`
	ContentType content.Type `json:"contentType" db:"content_type"`
	ContentID   string       `json:"contentId" db:"content_id"`
	Kind        Kind         `json:"kind" db:"kind"`
	IsRemoved   bool         `json:"isRemoved" db:"is_removed"`
	CreatedAt   time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time    `json:"updatedAt" db:"updated_at"`

	// Engagement metadata, populated for view rows only.
	DurationMs        int64      `json:"durationMs,omitempty" db:"duration_ms"`
	ProgressPct       float64    `json:"progressPct,omitempty" db:"progress_pct"`
	IsComplete        bool       `json:"isComplete,omitempty" db:"is_complete"`
	LastInteractionAt *time.Time `json:"lastInteractionAt,omitempty" db:"last_interaction_at"`
	RepeatCount       int        `json:"repeatCount,omitempty" db:"repeat_count"`
}

// Counters are the denormalized aggregate fields living on a content document.
// They are mutated only through atomic increments, never recomputed inline.
type Counters struct {
	LikeCount     int64 `json:"likeCount"`
	ViewCount     int64 `json:"viewCount"`
	ShareCount    int64 `json:"shareCount"`
	CommentCount  int64 `json:"commentCount"`
	BookmarkCount int64 `json:"bookmarkCount"`
}

// Flags are one actor's current interaction state on a content item.
// Anonymous callers always see all flags false.
type Flags struct {
	HasLiked      bool `json:"hasLiked"`
	HasViewed     bool `json:"hasViewed"`
	HasShared     bool `json:"hasShared"`
	HasBookmarked bool `json:"hasBookmarked"`
}

// State combines counters and per-actor flags for a single content item.
type State struct {
	Counters
	Flags
}

// BatchStates is the result of a batched state read. Malformed ids are not an
// error; they are excluded from States and counted in Skipped.
type BatchStates struct {
	States  map[string]*State
	Skipped int
}

// ToggleResult is the outcome of a like/bookmark toggle.
type ToggleResult struct {
	Active     bool
	Count      int64
	Vocabulary content.Vocabulary
}

// ViewResult is the outcome of a view registration attempt.
type ViewResult struct {
	ViewCount int64 `json:"viewCount"`
	HasViewed bool  `json:"hasViewed"`
}

// Liker is one actor holding an active like on a content item.
type Liker struct {
	ActorID string    `json:"actorId"`
	LikedAt time.Time `json:"likedAt"`
}
