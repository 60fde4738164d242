package service

import (
	"forumapi/internal/domain"
	"forumapi/internal/errors"
	"forumapi/internal/service/utils"
)

type CommentService interface {
	Create(creationData domain.CommentCreationData) (domain.AddedComment, error)
	Delete(threadId domain.ThreadId, commentId domain.CommentId, userId domain.UserId) error
}

type Comment struct {
	storage   CommentStorage
	threads   ThreadChecker
	validator ContentValidator
}

type CommentStorage interface {
	CreateComment(creationData domain.CommentCreationData) (domain.AddedComment, error)
	CheckComment(id domain.CommentId) error
	// CommentOwner returns the owner of the comment or a not-found error.
	CommentOwner(id domain.CommentId) (domain.UserId, error)
	SoftDeleteComment(id domain.CommentId) error
}

type ThreadChecker interface {
	CheckThread(id domain.ThreadId) error
}

type ContentValidator interface {
	Content(content string) error
}

func NewComment(storage CommentStorage, threads ThreadChecker, validator ContentValidator) *Comment {
	return &Comment{storage, threads, validator}
}

func (c *Comment) Create(creationData domain.CommentCreationData) (domain.AddedComment, error) {
	if creationData.ThreadId == "" {
		return domain.AddedComment{}, errors.NewValidation("harus mengirimkan id thread")
	}

	creationData.Content = utils.SanitizeText(creationData.Content)
	if err := c.validator.Content(creationData.Content); err != nil {
		return domain.AddedComment{}, err
	}

	if err := c.threads.CheckThread(creationData.ThreadId); err != nil {
		return domain.AddedComment{}, err
	}

	return c.storage.CreateComment(creationData)
}

// Delete soft-deletes a comment: the row stays so replies keep a parent to
// reference, only is_deleted flips. Owner-only.
func (c *Comment) Delete(threadId domain.ThreadId, commentId domain.CommentId, userId domain.UserId) error {
	if threadId == "" || commentId == "" {
		return errors.NewValidation("harus mengirimkan id thread dan id comment")
	}

	if err := c.threads.CheckThread(threadId); err != nil {
		return err
	}

	owner, err := c.storage.CommentOwner(commentId)
	if err != nil {
		return err
	}
	if owner != userId {
		return errors.NewAuthorization("anda tidak memiliki akses untuk menghapus comment ini")
	}

	return c.storage.SoftDeleteComment(commentId)
}
