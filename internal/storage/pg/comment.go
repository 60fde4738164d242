package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"forumapi/internal/domain"
	internal_errors "forumapi/internal/errors"
)

func (s *Storage) CreateComment(creationData domain.CommentCreationData) (domain.AddedComment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var added domain.AddedComment
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		added, err = s.createComment(tx, creationData)
		return err
	})
	return added, err
}

func (s *Storage) createComment(q Querier, creationData domain.CommentCreationData) (domain.AddedComment, error) {
	id := "comment-" + s.newId()

	var added domain.AddedComment
	err := q.QueryRow(
		`INSERT INTO comments (id, content, thread_id, owner)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, content, owner`,
		id, creationData.Content, creationData.ThreadId, creationData.Owner,
	).Scan(&added.Id, &added.Content, &added.Owner)
	if err != nil {
		return domain.AddedComment{}, fmt.Errorf("failed to insert comment: %w", err)
	}

	return added, nil
}

func (s *Storage) CheckComment(id domain.CommentId) error {
	var exists bool
	err := s.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM comments WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check comment: %w", err)
	}
	if !exists {
		return internal_errors.NewNotFound("comment tidak ditemukan")
	}
	return nil
}

func (s *Storage) CommentOwner(id domain.CommentId) (domain.UserId, error) {
	var owner domain.UserId
	err := s.db.QueryRow(`SELECT owner FROM comments WHERE id = $1`, id).Scan(&owner)
	if errors.Is(err, sql.ErrNoRows) {
		return "", internal_errors.NewNotFound("comment tidak ditemukan")
	}
	if err != nil {
		return "", fmt.Errorf("failed to get comment owner: %w", err)
	}
	return owner, nil
}

// SoftDeleteComment flags the comment as deleted; the row and its replies stay
// in place so the thread view can render placeholders.
func (s *Storage) SoftDeleteComment(id domain.CommentId) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.Exec(`UPDATE comments SET is_deleted = TRUE WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to soft-delete comment: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get affected rows: %w", err)
		}
		if affected == 0 {
			return internal_errors.NewNotFound("comment tidak ditemukan")
		}
		return nil
	})
}

// CommentsByThread returns the comment rows of a thread ordered by creation
// time ascending, each with its author's username and aggregated like count.
func (s *Storage) CommentsByThread(threadId domain.ThreadId) ([]domain.ThreadComment, error) {
	rows, err := s.db.Query(
		`SELECT c.id, u.username, c.date, c.content, c.is_deleted, COUNT(l.id) AS like_count
		 FROM comments c
		 JOIN users u ON c.owner = u.id
		 LEFT JOIN comment_likes l ON l.comment_id = c.id
		 WHERE c.thread_id = $1
		 GROUP BY c.id, u.username
		 ORDER BY c.date ASC`,
		threadId,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	var comments []domain.ThreadComment
	for rows.Next() {
		var c domain.ThreadComment
		if err := rows.Scan(&c.Id, &c.Username, &c.Date, &c.Content, &c.IsDeleted, &c.LikeCount); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comments: %w", err)
	}

	return comments, nil
}
