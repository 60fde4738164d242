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

const uniqueViolationCode = "23505"

func (s *Storage) SaveUser(user domain.User) (domain.AddedUser, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var added domain.AddedUser
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		added, err = s.saveUser(tx, user)
		return err
	})
	return added, err
}

func (s *Storage) saveUser(q Querier, user domain.User) (domain.AddedUser, error) {
	id := "user-" + s.newId()

	var added domain.AddedUser
	err := q.QueryRow(
		`INSERT INTO users (id, username, password, fullname)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, username, fullname`,
		id, user.Username, user.PassHash, user.Fullname,
	).Scan(&added.Id, &added.Username, &added.Fullname)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
			return domain.AddedUser{}, internal_errors.NewValidation("username tidak tersedia")
		}
		return domain.AddedUser{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return added, nil
}

func (s *Storage) UserByUsername(username domain.Username) (domain.User, error) {
	var user domain.User
	err := s.db.QueryRow(
		`SELECT id, username, password, fullname FROM users WHERE username = $1`,
		username,
	).Scan(&user.Id, &user.Username, &user.PassHash, &user.Fullname)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, internal_errors.NewNotFound("user tidak ditemukan")
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}
