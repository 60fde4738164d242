package service

import (
	"forumapi/internal/domain"
	"forumapi/internal/errors"
)

type LikeService interface {
	Toggle(threadId domain.ThreadId, commentId domain.CommentId, userId domain.UserId) error
}

type Like struct {
	storage  LikeStorage
	threads  ThreadChecker
	comments CommentChecker
}

type LikeStorage interface {
	LikeExists(commentId domain.CommentId, userId domain.UserId) (bool, error)
	AddLike(commentId domain.CommentId, userId domain.UserId) error
	RemoveLike(commentId domain.CommentId, userId domain.UserId) error
}

func NewLike(storage LikeStorage, threads ThreadChecker, comments CommentChecker) *Like {
	return &Like{storage, threads, comments}
}

// Toggle flips the like state of (userId, commentId): inserts when absent,
// removes when present. The storage layer backstops the check-then-act race
// with a unique index, so two concurrent toggles cannot double-insert.
func (l *Like) Toggle(threadId domain.ThreadId, commentId domain.CommentId, userId domain.UserId) error {
	if threadId == "" || commentId == "" {
		return errors.NewValidation("harus mengirimkan id thread dan id comment")
	}

	if err := l.threads.CheckThread(threadId); err != nil {
		return err
	}
	if err := l.comments.CheckComment(commentId); err != nil {
		return err
	}

	liked, err := l.storage.LikeExists(commentId, userId)
	if err != nil {
		return err
	}
	if liked {
		return l.storage.RemoveLike(commentId, userId)
	}
	return l.storage.AddLike(commentId, userId)
}
