package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"Selah/internal/core/content"
	"Selah/internal/core/interactions"
)

type interactionRepo struct {
	db *sql.DB
}

// NewInteractionRepository creates a PostgreSQL interaction ledger repository.
// The ledger is the source of truth for "did this user do X to this content";
// the denormalized counters on the content tables are kept in step inside the
// same transactions.
func NewInteractionRepository(db *sql.DB) interactions.Repository {
	return &interactionRepo{db: db}
}

// ContentExists is the soft existence check run before mutations.
func (r *interactionRepo) ContentExists(ctx context.Context, def content.Definition, contentID string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)`, def.Table)

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, contentID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check existence in %s: %w", def.Table, err)
	}
	return exists, nil
}

// ToggleActive flips the (actor, content, kind) toggle row and adjusts the
// counter in one transaction.
//
// The insert-or-flip is a single upsert against the partial unique index, so
// two concurrent toggles from the same actor serialize on the index instead
// of both winning as inserts.
func (r *interactionRepo) ToggleActive(ctx context.Context, def content.Definition, actorID, contentID string, kind interactions.Kind) (bool, int64, error) {
	column, err := counterColumn(def, kind)
	if err != nil {
		return false, 0, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO interactions (actor_id, content_type, content_id, kind, is_removed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, FALSE, NOW(), NOW())
		ON CONFLICT (actor_id, content_type, content_id, kind)
			WHERE kind IN ('like', 'view', 'bookmark')
		DO UPDATE SET is_removed = NOT interactions.is_removed, updated_at = NOW()
		RETURNING is_removed
	`

	var removed bool
	err = tx.QueryRowContext(ctx, query, actorID, def.Type, contentID, kind).Scan(&removed)
	if err != nil {
		if isRetryable(err) || isUniqueViolation(err) {
			return false, 0, interactions.ErrConflict
		}
		return false, 0, fmt.Errorf("failed to toggle interaction: %w", err)
	}
	active := !removed

	var count int64
	if active {
		count, err = incrementCounter(ctx, tx, def, contentID, column)
	} else {
		count, err = decrementCounter(ctx, tx, def, contentID, column)
	}
	if err != nil {
		if isRetryable(err) {
			return false, 0, interactions.ErrConflict
		}
		return false, 0, err
	}

	if err := tx.Commit(); err != nil {
		if isRetryable(err) {
			return false, 0, interactions.ErrConflict
		}
		return false, 0, fmt.Errorf("failed to commit toggle: %w", err)
	}
	return active, count, nil
}

// OriginateView attempts the guarded first-view insert. The partial unique
// index on (actor, content, kind) is the race arbiter: when two qualifying
// requests collide, exactly one insert lands and only that transaction
// increments the view counter.
func (r *interactionRepo) OriginateView(ctx context.Context, def content.Definition, actorID, contentID string, e interactions.Engagement) (bool, int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO interactions (
			actor_id, content_type, content_id, kind,
			duration_ms, progress_pct, is_complete,
			last_interaction_at, repeat_count, created_at, updated_at
		) VALUES ($1, $2, $3, 'view', $4, $5, $6, NOW(), 1, NOW(), NOW())
		ON CONFLICT (actor_id, content_type, content_id, kind)
			WHERE kind IN ('like', 'view', 'bookmark')
		DO NOTHING
		RETURNING id
	`

	var ledgerID int64
	err = tx.QueryRowContext(ctx, query,
		actorID, def.Type, contentID,
		e.DurationMs, e.ProgressPct, e.IsComplete,
	).Scan(&ledgerID)

	// No row back means the view record already exists (or a concurrent
	// request just created it). Not an error: the caller falls through to
	// the metadata-only update.
	if errors.Is(err, sql.ErrNoRows) {
		return false, 0, nil
	}
	if err != nil {
		if isUniqueViolation(err) {
			return false, 0, nil
		}
		if isRetryable(err) {
			return false, 0, interactions.ErrConflict
		}
		return false, 0, fmt.Errorf("failed to originate view: %w", err)
	}

	count, err := incrementCounter(ctx, tx, def, contentID, def.ViewColumn)
	if err != nil {
		if isRetryable(err) {
			return false, 0, interactions.ErrConflict
		}
		return false, 0, err
	}

	if err := tx.Commit(); err != nil {
		if isRetryable(err) {
			return false, 0, interactions.ErrConflict
		}
		return false, 0, fmt.Errorf("failed to commit view origination: %w", err)
	}
	return true, count, nil
}

// TouchView updates engagement metadata on an existing view row. The row's
// existence is permanent and the counter is never touched here. Completion is
// sticky; duration and progress take the latest reported values.
func (r *interactionRepo) TouchView(ctx context.Context, def content.Definition, actorID, contentID string, e interactions.Engagement) (int64, error) {
	query := `
		UPDATE interactions
		SET duration_ms = $4,
		    progress_pct = $5,
		    is_complete = is_complete OR $6,
		    last_interaction_at = NOW(),
		    repeat_count = repeat_count + 1,
		    updated_at = NOW()
		WHERE actor_id = $1 AND content_type = $2 AND content_id = $3 AND kind = 'view'
	`

	if _, err := r.db.ExecContext(ctx, query,
		actorID, def.Type, contentID,
		e.DurationMs, e.ProgressPct, e.IsComplete,
	); err != nil {
		return 0, fmt.Errorf("failed to update view engagement: %w", err)
	}

	countQuery := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, def.ViewColumn, def.Table)
	var count int64
	err := r.db.QueryRowContext(ctx, countQuery, contentID).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, interactions.ErrContentNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read view counter: %w", err)
	}
	return count, nil
}

// InsertShare appends a share row and increments the share counter.
// Shares are deliberately outside the uniqueness guard: every share counts.
func (r *interactionRepo) InsertShare(ctx context.Context, def content.Definition, actorID, contentID string) (int64, error) {
	return r.insertFact(ctx, def, actorID, contentID, interactions.KindShare, def.ShareColumn)
}

// InsertComment appends a comment fact and increments the comment counter.
func (r *interactionRepo) InsertComment(ctx context.Context, def content.Definition, actorID, contentID string) (int64, error) {
	return r.insertFact(ctx, def, actorID, contentID, interactions.KindComment, def.CommentColumn)
}

func (r *interactionRepo) insertFact(ctx context.Context, def content.Definition, actorID, contentID string, kind interactions.Kind, column string) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO interactions (actor_id, content_type, content_id, kind, is_removed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, FALSE, NOW(), NOW())
	`
	if _, err := tx.ExecContext(ctx, query, actorID, def.Type, contentID, kind); err != nil {
		return 0, fmt.Errorf("failed to insert %s fact: %w", kind, err)
	}

	count, err := incrementCounter(ctx, tx, def, contentID, column)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit %s fact: %w", kind, err)
	}
	return count, nil
}

// SoftRemoveComment marks the actor's most recent active comment fact removed
// and decrements the counter. Idempotent: removing with nothing active just
// returns the current count.
func (r *interactionRepo) SoftRemoveComment(ctx context.Context, def content.Definition, actorID, contentID string) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		UPDATE interactions
		SET is_removed = TRUE, updated_at = NOW()
		WHERE id = (
			SELECT id FROM interactions
			WHERE actor_id = $1 AND content_type = $2 AND content_id = $3
			  AND kind = 'comment' AND NOT is_removed
			ORDER BY created_at DESC
			LIMIT 1
		)
	`
	result, err := tx.ExecContext(ctx, query, actorID, def.Type, contentID)
	if err != nil {
		return 0, fmt.Errorf("failed to remove comment fact: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check remove result: %w", err)
	}

	var count int64
	if affected == 0 {
		countQuery := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, def.CommentColumn, def.Table)
		err = tx.QueryRowContext(ctx, countQuery, contentID).Scan(&count)
		if errors.Is(err, sql.ErrNoRows) {
			return 0, interactions.ErrContentNotFound
		}
		if err != nil {
			return 0, fmt.Errorf("failed to read comment counter: %w", err)
		}
	} else {
		count, err = decrementCounter(ctx, tx, def, contentID, def.CommentColumn)
		if err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit comment removal: %w", err)
	}
	return count, nil
}

// GetFlags resolves one actor's interaction flags from ledger rows.
// Absence of a row is simply false, never an error.
func (r *interactionRepo) GetFlags(ctx context.Context, def content.Definition, actorID, contentID string) (*interactions.Flags, error) {
	query := `
		SELECT kind, is_removed FROM interactions
		WHERE actor_id = $1 AND content_type = $2 AND content_id = $3
	`

	rows, err := r.db.QueryContext(ctx, query, actorID, def.Type, contentID)
	if err != nil {
		return nil, fmt.Errorf("failed to read interaction flags: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var flags interactions.Flags
	for rows.Next() {
		var kind interactions.Kind
		var removed bool
		if err := rows.Scan(&kind, &removed); err != nil {
			return nil, fmt.Errorf("failed to scan interaction flag: %w", err)
		}
		applyFlag(&flags, kind, removed)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating interaction flags: %w", err)
	}
	return &flags, nil
}

// BatchFlags resolves one actor's flags across many content items.
func (r *interactionRepo) BatchFlags(ctx context.Context, def content.Definition, actorID string, contentIDs []string) (map[string]*interactions.Flags, error) {
	query := `
		SELECT content_id, kind, is_removed FROM interactions
		WHERE actor_id = $1 AND content_type = $2 AND content_id = ANY($3::uuid[])
	`

	rows, err := r.db.QueryContext(ctx, query, actorID, def.Type, pq.Array(contentIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to batch-read interaction flags: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make(map[string]*interactions.Flags, len(contentIDs))
	for rows.Next() {
		var contentID string
		var kind interactions.Kind
		var removed bool
		if err := rows.Scan(&contentID, &kind, &removed); err != nil {
			return nil, fmt.Errorf("failed to scan interaction flag: %w", err)
		}
		flags, ok := result[contentID]
		if !ok {
			flags = &interactions.Flags{}
			result[contentID] = flags
		}
		applyFlag(flags, kind, removed)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating interaction flags: %w", err)
	}
	return result, nil
}

// applyFlag folds one ledger row into an actor's flag set. View rows are
// permanent so their mere existence sets the flag; toggles count only while
// active; any active share row sets hasShared.
func applyFlag(flags *interactions.Flags, kind interactions.Kind, removed bool) {
	switch kind {
	case interactions.KindLike:
		flags.HasLiked = !removed
	case interactions.KindView:
		flags.HasViewed = true
	case interactions.KindBookmark:
		flags.HasBookmarked = !removed
	case interactions.KindShare:
		if !removed {
			flags.HasShared = true
		}
	}
}

// ListLikers returns actors with an active like on the content, most recent
// toggle first.
func (r *interactionRepo) ListLikers(ctx context.Context, def content.Definition, contentID string, limit, offset int) ([]interactions.Liker, error) {
	query := `
		SELECT actor_id, updated_at FROM interactions
		WHERE content_type = $1 AND content_id = $2 AND kind = 'like' AND NOT is_removed
		ORDER BY updated_at DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.QueryContext(ctx, query, def.Type, contentID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list likers: %w", err)
	}
	defer func() { _ = rows.Close() }()

	likers := make([]interactions.Liker, 0, limit)
	for rows.Next() {
		var liker interactions.Liker
		if err := rows.Scan(&liker.ActorID, &liker.LikedAt); err != nil {
			return nil, fmt.Errorf("failed to scan liker: %w", err)
		}
		likers = append(likers, liker)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating likers: %w", err)
	}
	return likers, nil
}
