package pg

import (
	"context"
	"database/sql"
	"fmt"

	"forumapi/internal/domain"
)

func (s *Storage) LikeExists(commentId domain.CommentId, userId domain.UserId) (bool, error) {
	var exists bool
	err := s.db.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM comment_likes WHERE comment_id = $1 AND user_id = $2)`,
		commentId, userId,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}
	return exists, nil
}

// AddLike inserts a like row. The unique index on (user_id, comment_id) plus
// ON CONFLICT DO NOTHING make concurrent toggles converge on a single row
// instead of failing or duplicating.
func (s *Storage) AddLike(commentId domain.CommentId, userId domain.UserId) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		id := "like-" + s.newId()
		_, err := tx.Exec(
			`INSERT INTO comment_likes (id, user_id, comment_id)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (user_id, comment_id) DO NOTHING`,
			id, userId, commentId,
		)
		if err != nil {
			return fmt.Errorf("failed to insert like: %w", err)
		}
		return nil
	})
}

func (s *Storage) RemoveLike(commentId domain.CommentId, userId domain.UserId) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.Exec(
			`DELETE FROM comment_likes WHERE comment_id = $1 AND user_id = $2`,
			commentId, userId,
		)
		if err != nil {
			return fmt.Errorf("failed to delete like: %w", err)
		}
		return nil
	})
}
