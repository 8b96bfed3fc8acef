package interactions

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"Selah/internal/core/content"
)

// GetState resolves counters plus the caller's interaction flags for a single
// content item.
//
// Anonymous and malformed actor identities degrade to a counters-only view
// with all flags false; the operation never fails purely because the caller
// is anonymous. Flag reads use the same canonical actor representation as the
// write paths (CanonicalActorID), which is what keeps has* flags truthful.
func (s *interactionService) GetState(ctx context.Context, actorID string, ref ContentRef) (*State, error) {
	def, err := content.Resolve(ref.Type)
	if err != nil {
		return nil, err
	}

	contentID, err := CanonicalContentID(ref.ID)
	if err != nil {
		return nil, err
	}

	counters, err := s.repo.GetCounters(ctx, def, contentID)
	if err != nil {
		return nil, err
	}

	state := &State{Counters: *counters}

	if actorID == "" {
		return state, nil
	}

	actor, err := CanonicalActorID(actorID)
	if err != nil {
		// Invalid actor shape on a read degrades to the anonymous view.
		s.logger.Warn("unresolvable actor on state read, degrading to anonymous",
			"contentType", def.Type,
			"contentId", contentID)
		return state, nil
	}

	flags, err := s.repo.GetFlags(ctx, def, actor, contentID)
	if err != nil {
		return nil, fmt.Errorf("failed to read flags: %w", err)
	}
	state.Flags = *flags

	return state, nil
}

// GetStates is the batched form of GetState for one content type.
//
// Malformed ids do not fail the batch: they are excluded from the result and
// reported in Skipped. Ids that are well-formed but unknown to storage are
// simply absent from States.
func (s *interactionService) GetStates(ctx context.Context, actorID string, contentType content.Type, contentIDs []string) (*BatchStates, error) {
	def, err := content.Resolve(contentType)
	if err != nil {
		return nil, err
	}

	valid := make([]string, 0, len(contentIDs))
	seen := make(map[string]bool, len(contentIDs))
	skipped := 0
	for _, raw := range contentIDs {
		id, err := CanonicalContentID(raw)
		if err != nil {
			skipped++
			continue
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		valid = append(valid, id)
	}

	result := &BatchStates{States: make(map[string]*State, len(valid)), Skipped: skipped}
	if len(valid) == 0 {
		return result, nil
	}

	actor := ""
	if actorID != "" {
		if canonical, err := CanonicalActorID(actorID); err == nil {
			actor = canonical
		} else {
			s.logger.Warn("unresolvable actor on batch read, degrading to anonymous",
				"contentType", def.Type)
		}
	}

	var (
		counters map[string]*Counters
		flags    map[string]*Flags
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		counters, err = s.repo.BatchCounters(gctx, def, valid)
		return err
	})
	if actor != "" {
		g.Go(func() error {
			var err error
			flags, err = s.repo.BatchFlags(gctx, def, actor, valid)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to resolve batch states: %w", err)
	}

	for id, c := range counters {
		state := &State{Counters: *c}
		if f, ok := flags[id]; ok {
			state.Flags = *f
		}
		result.States[id] = state
	}

	return result, nil
}

// ListLikers returns the actors holding an active like on a content item,
// newest first. Public: no actor identity involved.
func (s *interactionService) ListLikers(ctx context.Context, ref ContentRef, limit, offset int) ([]Liker, error) {
	def, err := content.Resolve(ref.Type)
	if err != nil {
		return nil, err
	}

	contentID, err := CanonicalContentID(ref.ID)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.ContentExists(ctx, def, contentID)
	if err != nil {
		return nil, fmt.Errorf("failed to check content existence: %w", err)
	}
	if !exists {
		return nil, ErrContentNotFound
	}

	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	return s.repo.ListLikers(ctx, def, contentID, limit, offset)
}
