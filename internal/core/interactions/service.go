package interactions

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"Selah/internal/core/content"
	"Selah/internal/metrics"
)

// publishTimeout bounds the fire-and-forget realtime publish so a stuck
// transport cannot leak goroutines indefinitely.
const publishTimeout = 5 * time.Second

// interactionService implements the Service interface. It orchestrates the
// content registry, the ledger/counter repository, and the realtime notifier.
type interactionService struct {
	repo     Repository
	notifier Notifier
	logger   *slog.Logger

	// publishAsync is disabled only in tests that need deterministic
	// assertions on publish calls.
	publishAsync bool
}

// NewService creates a new interaction service instance.
// notifier may be nil; mutations then skip realtime fan-out entirely.
func NewService(repo Repository, notifier Notifier, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &interactionService{
		repo:         repo,
		notifier:     notifier,
		logger:       logger,
		publishAsync: true,
	}
}

// ToggleLike flips the caller's like state on a content item.
func (s *interactionService) ToggleLike(ctx context.Context, actorID string, ref ContentRef) (*ToggleResult, error) {
	return s.toggle(ctx, actorID, ref, KindLike)
}

// ToggleBookmark flips the caller's bookmark state on a content item.
func (s *interactionService) ToggleBookmark(ctx context.Context, actorID string, ref ContentRef) (*ToggleResult, error) {
	return s.toggle(ctx, actorID, ref, KindBookmark)
}

// toggle is the single generic toggle path. Like, follow, favorite and
// bookmark all funnel through here; the resolved definition supplies the
// counter column and the outward vocabulary.
func (s *interactionService) toggle(ctx context.Context, actorID string, ref ContentRef, kind Kind) (*ToggleResult, error) {
	actor, def, contentID, err := s.resolveMutation(ctx, actorID, ref)
	if err != nil {
		return nil, err
	}

	active, count, err := s.repo.ToggleActive(ctx, def, actor, contentID, kind)
	if errors.Is(err, ErrConflict) {
		// Transient store conflict: retried once internally, then surfaced.
		s.logger.Warn("toggle conflict, retrying",
			"actor", actor,
			"contentType", def.Type,
			"contentId", contentID,
			"kind", kind)
		active, count, err = s.repo.ToggleActive(ctx, def, actor, contentID, kind)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to toggle %s: %w", kind, err)
	}

	s.logger.Info("interaction toggled",
		"actor", actor,
		"contentType", def.Type,
		"contentId", contentID,
		"kind", kind,
		"active", active,
		"count", count)
	metrics.InteractionsTotal.WithLabelValues(string(kind), string(def.Type)).Inc()

	ev := Event{
		ContentType: def.Type,
		ContentID:   contentID,
		ActorID:     actor,
		Timestamp:   time.Now().UTC(),
	}
	if kind == KindBookmark {
		ev.Name = EventBookmarkUpdated
		ev.Bookmarked = &active
		ev.BookmarkCount = &count
	} else {
		ev.Name = EventLikeUpdated
		ev.Liked = &active
		ev.LikeCount = &count
	}
	s.publish(ev)

	return &ToggleResult{Active: active, Count: count, Vocabulary: def.Vocabulary}, nil
}

// RecordShare appends a share fact and increments the share counter.
// Shares are not deduplicated; firing twice counts twice.
func (s *interactionService) RecordShare(ctx context.Context, actorID string, ref ContentRef) (int64, error) {
	actor, def, contentID, err := s.resolveMutation(ctx, actorID, ref)
	if err != nil {
		return 0, err
	}

	count, err := s.repo.InsertShare(ctx, def, actor, contentID)
	if err != nil {
		return 0, fmt.Errorf("failed to record share: %w", err)
	}

	s.logger.Info("share recorded",
		"actor", actor,
		"contentType", def.Type,
		"contentId", contentID,
		"count", count)
	metrics.InteractionsTotal.WithLabelValues(string(KindShare), string(def.Type)).Inc()

	s.publish(Event{
		Name:        EventShareUpdated,
		ContentType: def.Type,
		ContentID:   contentID,
		ActorID:     actor,
		ShareCount:  &count,
		Timestamp:   time.Now().UTC(),
	})

	return count, nil
}

// RecordComment appends a comment fact and increments the comment counter.
// Called by the comment subsystem after it commits a comment of its own.
func (s *interactionService) RecordComment(ctx context.Context, actorID string, ref ContentRef) (int64, error) {
	actor, def, contentID, err := s.resolveMutation(ctx, actorID, ref)
	if err != nil {
		return 0, err
	}

	count, err := s.repo.InsertComment(ctx, def, actor, contentID)
	if err != nil {
		return 0, fmt.Errorf("failed to record comment: %w", err)
	}
	metrics.InteractionsTotal.WithLabelValues(string(KindComment), string(def.Type)).Inc()

	s.publish(Event{
		Name:         EventCommentUpdated,
		ContentType:  def.Type,
		ContentID:    contentID,
		ActorID:      actor,
		CommentCount: &count,
		Timestamp:    time.Now().UTC(),
	})

	return count, nil
}

// RemoveComment soft-removes the actor's most recent comment fact and
// decrements the counter. Removing with no active fact is a no-op.
func (s *interactionService) RemoveComment(ctx context.Context, actorID string, ref ContentRef) (int64, error) {
	actor, def, contentID, err := s.resolveMutation(ctx, actorID, ref)
	if err != nil {
		return 0, err
	}

	count, err := s.repo.SoftRemoveComment(ctx, def, actor, contentID)
	if err != nil {
		return 0, fmt.Errorf("failed to remove comment: %w", err)
	}

	s.publish(Event{
		Name:         EventCommentUpdated,
		ContentType:  def.Type,
		ContentID:    contentID,
		ActorID:      actor,
		CommentCount: &count,
		Timestamp:    time.Now().UTC(),
	})

	return count, nil
}

// resolveMutation runs the shared preamble for every write path: canonical
// actor identity, content-type resolution, content-id normalization, and the
// soft existence check. Nothing is mutated when any step fails.
func (s *interactionService) resolveMutation(ctx context.Context, actorID string, ref ContentRef) (string, content.Definition, string, error) {
	if actorID == "" {
		return "", content.Definition{}, "", ErrActorRequired
	}

	actor, err := CanonicalActorID(actorID)
	if err != nil {
		return "", content.Definition{}, "", err
	}

	def, err := content.Resolve(ref.Type)
	if err != nil {
		return "", content.Definition{}, "", err
	}

	contentID, err := CanonicalContentID(ref.ID)
	if err != nil {
		return "", content.Definition{}, "", err
	}

	exists, err := s.repo.ContentExists(ctx, def, contentID)
	if err != nil {
		return "", content.Definition{}, "", fmt.Errorf("failed to check content existence: %w", err)
	}
	if !exists {
		return "", content.Definition{}, "", ErrContentNotFound
	}

	return actor, def, contentID, nil
}

// publish fans an event out to realtime subscribers. Fire-and-forget: the
// caller's response path never waits on it and failures are only logged.
func (s *interactionService) publish(ev Event) {
	if s.notifier == nil {
		return
	}

	send := func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		if err := s.notifier.Publish(ctx, ev); err != nil {
			metrics.RealtimePublishTotal.WithLabelValues("error").Inc()
			s.logger.Warn("realtime publish failed",
				"event", ev.Name,
				"contentType", ev.ContentType,
				"contentId", ev.ContentID,
				"error", err)
			return
		}
		metrics.RealtimePublishTotal.WithLabelValues("ok").Inc()
	}

	if s.publishAsync {
		go send()
		return
	}
	send()
}
