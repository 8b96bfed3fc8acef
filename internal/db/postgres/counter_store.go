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

// Counter mutation helpers. Table and column identifiers come exclusively
// from the static content registry, never from request input, which is what
// makes the fmt.Sprintf query construction safe here.
//
// Counters are adjusted only through these atomic single-field updates;
// read-modify-write of a counter value is forbidden everywhere in this
// package.

// incrementCounter bumps one counter column on one content document inside
// the caller's transaction, returning the new value.
func incrementCounter(ctx context.Context, tx *sql.Tx, def content.Definition, contentID, column string) (int64, error) {
	query := fmt.Sprintf(
		`UPDATE %s SET %s = %s + 1 WHERE id = $1 RETURNING %s`,
		def.Table, column, column, column,
	)

	var count int64
	err := tx.QueryRowContext(ctx, query, contentID).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, interactions.ErrContentNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to increment %s.%s: %w", def.Table, column, err)
	}
	return count, nil
}

// decrementCounter lowers one counter column, floored at zero so replayed or
// mismatched decrements can never drive a counter negative.
func decrementCounter(ctx context.Context, tx *sql.Tx, def content.Definition, contentID, column string) (int64, error) {
	query := fmt.Sprintf(
		`UPDATE %s SET %s = GREATEST(0, %s - 1) WHERE id = $1 RETURNING %s`,
		def.Table, column, column, column,
	)

	var count int64
	err := tx.QueryRowContext(ctx, query, contentID).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, interactions.ErrContentNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to decrement %s.%s: %w", def.Table, column, err)
	}
	return count, nil
}

// counterColumn maps an interaction kind to the content type's counter column.
func counterColumn(def content.Definition, kind interactions.Kind) (string, error) {
	switch kind {
	case interactions.KindLike:
		return def.LikeColumn, nil
	case interactions.KindView:
		return def.ViewColumn, nil
	case interactions.KindShare:
		return def.ShareColumn, nil
	case interactions.KindComment:
		return def.CommentColumn, nil
	case interactions.KindBookmark:
		return def.BookmarkColumn, nil
	}
	return "", fmt.Errorf("no counter column for interaction kind %q", kind)
}

// GetCounters reads the denormalized counters off a content document.
func (r *interactionRepo) GetCounters(ctx context.Context, def content.Definition, contentID string) (*interactions.Counters, error) {
	query := fmt.Sprintf(
		`SELECT %s, %s, %s, %s, %s FROM %s WHERE id = $1`,
		def.LikeColumn, def.ViewColumn, def.ShareColumn, def.CommentColumn, def.BookmarkColumn, def.Table,
	)

	var c interactions.Counters
	err := r.db.QueryRowContext(ctx, query, contentID).Scan(
		&c.LikeCount, &c.ViewCount, &c.ShareCount, &c.CommentCount, &c.BookmarkCount,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, interactions.ErrContentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read counters from %s: %w", def.Table, err)
	}
	return &c, nil
}

// BatchCounters reads counters for many documents of one content type.
// Ids with no matching document are absent from the returned map.
func (r *interactionRepo) BatchCounters(ctx context.Context, def content.Definition, contentIDs []string) (map[string]*interactions.Counters, error) {
	query := fmt.Sprintf(
		`SELECT id, %s, %s, %s, %s, %s FROM %s WHERE id = ANY($1::uuid[])`,
		def.LikeColumn, def.ViewColumn, def.ShareColumn, def.CommentColumn, def.BookmarkColumn, def.Table,
	)

	rows, err := r.db.QueryContext(ctx, query, pq.Array(contentIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to batch-read counters from %s: %w", def.Table, err)
	}
	defer func() { _ = rows.Close() }()

	result := make(map[string]*interactions.Counters, len(contentIDs))
	for rows.Next() {
		var id string
		var c interactions.Counters
		if err := rows.Scan(&id, &c.LikeCount, &c.ViewCount, &c.ShareCount, &c.CommentCount, &c.BookmarkCount); err != nil {
			return nil, fmt.Errorf("failed to scan counters: %w", err)
		}
		result[id] = &c
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating counters: %w", err)
	}
	return result, nil
}
