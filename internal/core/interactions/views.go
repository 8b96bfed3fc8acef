package interactions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Selah/internal/metrics"
)

// RecordView decides whether an engagement event is a qualified view and, if
// so, performs an idempotent first-view registration.
//
// Regardless of concurrency, the view counter increases by exactly 1 the
// first time any qualifying event from a given actor is durably recorded, and
// never again for that (actor, content) pair. The creation is guarded by the
// storage-level uniqueness constraint; losing the insert race is not an
// error, it simply falls through to the metadata-only update.
func (s *interactionService) RecordView(ctx context.Context, actorID string, ref ContentRef, e Engagement) (*ViewResult, error) {
	actor, def, contentID, err := s.resolveMutation(ctx, actorID, ref)
	if err != nil {
		return nil, err
	}

	if !Qualifies(def.ViewPolicy, e) {
		// Accepted but side-effect free: return current state only.
		metrics.ViewsUnqualifiedTotal.WithLabelValues(string(def.Type)).Inc()
		counters, err := s.repo.GetCounters(ctx, def, contentID)
		if err != nil {
			return nil, fmt.Errorf("failed to read counters: %w", err)
		}
		flags, err := s.repo.GetFlags(ctx, def, actor, contentID)
		if err != nil {
			return nil, fmt.Errorf("failed to read flags: %w", err)
		}
		return &ViewResult{ViewCount: counters.ViewCount, HasViewed: flags.HasViewed}, nil
	}

	originated, count, err := s.repo.OriginateView(ctx, def, actor, contentID, e)
	if errors.Is(err, ErrConflict) {
		s.logger.Warn("view origination conflict, retrying",
			"actor", actor,
			"contentType", def.Type,
			"contentId", contentID)
		originated, count, err = s.repo.OriginateView(ctx, def, actor, contentID, e)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to originate view: %w", err)
	}

	if !originated {
		// The record already existed, or a concurrent request won the insert.
		// Either way: update engagement metadata, no counter mutation, no
		// fan-out (metadata-only updates would flood subscribers with no-ops).
		count, err = s.repo.TouchView(ctx, def, actor, contentID, e)
		if err != nil {
			return nil, fmt.Errorf("failed to update view engagement: %w", err)
		}
		return &ViewResult{ViewCount: count, HasViewed: true}, nil
	}

	s.logger.Info("view registered",
		"actor", actor,
		"contentType", def.Type,
		"contentId", contentID,
		"viewCount", count)
	metrics.InteractionsTotal.WithLabelValues(string(KindView), string(def.Type)).Inc()

	s.publish(Event{
		Name:        EventViewUpdated,
		ContentType: def.Type,
		ContentID:   contentID,
		ViewCount:   &count,
		Timestamp:   time.Now().UTC(),
	})

	return &ViewResult{ViewCount: count, HasViewed: true}, nil
}
