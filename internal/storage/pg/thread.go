package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"forumapi/internal/domain"
	internal_errors "forumapi/internal/errors"
)

func (s *Storage) CreateThread(creationData domain.ThreadCreationData) (domain.AddedThread, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var added domain.AddedThread
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		added, err = s.createThread(tx, creationData)
		return err
	})
	return added, err
}

func (s *Storage) createThread(q Querier, creationData domain.ThreadCreationData) (domain.AddedThread, error) {
	id := "thread-" + s.newId()

	var added domain.AddedThread
	err := q.QueryRow(
		`INSERT INTO threads (id, title, body, owner)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, title, owner`,
		id, creationData.Title, creationData.Body, creationData.Owner,
	).Scan(&added.Id, &added.Title, &added.Owner)
	if err != nil {
		return domain.AddedThread{}, fmt.Errorf("failed to insert thread: %w", err)
	}

	return added, nil
}

func (s *Storage) CheckThread(id domain.ThreadId) error {
	var exists bool
	err := s.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM threads WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check thread: %w", err)
	}
	if !exists {
		return internal_errors.NewNotFound("thread tidak ditemukan")
	}
	return nil
}

// GetThread fetches the thread row with its author's username resolved. The
// Comments slice is left nil; the service layer assembles it.
func (s *Storage) GetThread(id domain.ThreadId) (domain.ThreadDetail, error) {
	var detail domain.ThreadDetail
	err := s.db.QueryRow(
		`SELECT t.id, t.title, t.body, t.date, u.username
		 FROM threads t
		 JOIN users u ON t.owner = u.id
		 WHERE t.id = $1`,
		id,
	).Scan(&detail.Id, &detail.Title, &detail.Body, &detail.Date, &detail.Username)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ThreadDetail{}, internal_errors.NewNotFound("thread tidak ditemukan")
	}
	if err != nil {
		return domain.ThreadDetail{}, fmt.Errorf("failed to get thread: %w", err)
	}

	return detail, nil
}
