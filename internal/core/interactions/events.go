package interactions

import (
	"fmt"
	"time"

	"Selah/internal/core/content"
)

// Event names published after successful mutations.
const (
	EventLikeUpdated     = "like-updated"
	EventViewUpdated     = "view-updated"
	EventShareUpdated    = "share-updated"
	EventBookmarkUpdated = "bookmark-updated"
	EventCommentUpdated  = "comment-updated"
)

// SubjectGlobal is the firehose subject carrying every interaction event.
const SubjectGlobal = "content.global"

// Event is the compact payload fanned out to realtime subscribers after a
// successful mutation. Only the fields relevant to the event name are set.
type Event struct {
	Name        string       `json:"event"`
	ContentType content.Type `json:"contentType"`
	ContentID   string       `json:"contentId"`
	ActorID     string       `json:"actorId,omitempty"`

	Liked         *bool  `json:"liked,omitempty"`
	Bookmarked    *bool  `json:"bookmarked,omitempty"`
	LikeCount     *int64 `json:"likeCount,omitempty"`
	ViewCount     *int64 `json:"viewCount,omitempty"`
	ShareCount    *int64 `json:"shareCount,omitempty"`
	BookmarkCount *int64 `json:"bookmarkCount,omitempty"`
	CommentCount  *int64 `json:"commentCount,omitempty"`

	Timestamp time.Time `json:"timestamp"`
}

// Subject returns the per-content pub/sub subject for this event.
// Subscribers of a single content item listen here; the same payload is also
// published on SubjectGlobal.
func (e Event) Subject() string {
	return fmt.Sprintf("content.%s.%s", e.ContentType, e.ContentID)
}
