package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"forumapi/internal/domain"
	internal_errors "forumapi/internal/errors"
)

func (s *Storage) CreateReply(creationData domain.ReplyCreationData) (domain.AddedReply, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var added domain.AddedReply
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		added, err = s.createReply(tx, creationData)
		return err
	})
	return added, err
}

func (s *Storage) createReply(q Querier, creationData domain.ReplyCreationData) (domain.AddedReply, error) {
	id := "reply-" + s.newId()

	var added domain.AddedReply
	err := q.QueryRow(
		`INSERT INTO replies (id, content, comment_id, owner)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, content, owner`,
		id, creationData.Content, creationData.CommentId, creationData.Owner,
	).Scan(&added.Id, &added.Content, &added.Owner)
	if err != nil {
		return domain.AddedReply{}, fmt.Errorf("failed to insert reply: %w", err)
	}

	return added, nil
}

func (s *Storage) ReplyOwner(id domain.ReplyId) (domain.UserId, error) {
	var owner domain.UserId
	err := s.db.QueryRow(`SELECT owner FROM replies WHERE id = $1`, id).Scan(&owner)
	if errors.Is(err, sql.ErrNoRows) {
		return "", internal_errors.NewNotFound("reply tidak ditemukan")
	}
	if err != nil {
		return "", fmt.Errorf("failed to get reply owner: %w", err)
	}
	return owner, nil
}

func (s *Storage) SoftDeleteReply(id domain.ReplyId) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.Exec(`UPDATE replies SET is_deleted = TRUE WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to soft-delete reply: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get affected rows: %w", err)
		}
		if affected == 0 {
			return internal_errors.NewNotFound("reply tidak ditemukan")
		}
		return nil
	})
}

// RepliesByCommentIds fetches the replies of all given comments in one query,
// ordered by creation time ascending.
func (s *Storage) RepliesByCommentIds(commentIds []domain.CommentId) ([]domain.CommentReply, error) {
	if len(commentIds) == 0 {
		return nil, nil
	}

	rows, err := s.db.Query(
		`SELECT r.id, r.comment_id, u.username, r.date, r.content, r.is_deleted
		 FROM replies r
		 JOIN users u ON r.owner = u.id
		 WHERE r.comment_id = ANY($1)
		 ORDER BY r.date ASC`,
		pq.Array(commentIds),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query replies: %w", err)
	}
	defer rows.Close()

	var replies []domain.CommentReply
	for rows.Next() {
		var r domain.CommentReply
		if err := rows.Scan(&r.Id, &r.CommentId, &r.Username, &r.Date, &r.Content, &r.IsDeleted); err != nil {
			return nil, fmt.Errorf("failed to scan reply: %w", err)
		}
		replies = append(replies, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate replies: %w", err)
	}

	return replies, nil
}
