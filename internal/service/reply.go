package service

import (
	"forumapi/internal/domain"
	"forumapi/internal/errors"
	"forumapi/internal/service/utils"
)

type ReplyService interface {
	Create(threadId domain.ThreadId, creationData domain.ReplyCreationData) (domain.AddedReply, error)
	Delete(threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, userId domain.UserId) error
}

type Reply struct {
	storage   ReplyStorage
	threads   ThreadChecker
	comments  CommentChecker
	validator ContentValidator
}

type ReplyStorage interface {
	CreateReply(creationData domain.ReplyCreationData) (domain.AddedReply, error)
	// ReplyOwner returns the owner of the reply or a not-found error.
	ReplyOwner(id domain.ReplyId) (domain.UserId, error)
	SoftDeleteReply(id domain.ReplyId) error
}

type CommentChecker interface {
	CheckComment(id domain.CommentId) error
}

func NewReply(storage ReplyStorage, threads ThreadChecker, comments CommentChecker, validator ContentValidator) *Reply {
	return &Reply{storage, threads, comments, validator}
}

func (r *Reply) Create(threadId domain.ThreadId, creationData domain.ReplyCreationData) (domain.AddedReply, error) {
	if threadId == "" || creationData.CommentId == "" {
		return domain.AddedReply{}, errors.NewValidation("harus mengirimkan id thread dan id comment")
	}

	creationData.Content = utils.SanitizeText(creationData.Content)
	if err := r.validator.Content(creationData.Content); err != nil {
		return domain.AddedReply{}, err
	}

	if err := r.threads.CheckThread(threadId); err != nil {
		return domain.AddedReply{}, err
	}
	if err := r.comments.CheckComment(creationData.CommentId); err != nil {
		return domain.AddedReply{}, err
	}

	return r.storage.CreateReply(creationData)
}

// Delete soft-deletes a reply, owner-only. Same masking semantics as comments.
func (r *Reply) Delete(threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, userId domain.UserId) error {
	if threadId == "" || commentId == "" || replyId == "" {
		return errors.NewValidation("harus mengirimkan id thread, id comment dan id reply")
	}

	if err := r.threads.CheckThread(threadId); err != nil {
		return err
	}
	if err := r.comments.CheckComment(commentId); err != nil {
		return err
	}

	owner, err := r.storage.ReplyOwner(replyId)
	if err != nil {
		return err
	}
	if owner != userId {
		return errors.NewAuthorization("anda tidak memiliki akses untuk menghapus reply ini")
	}

	return r.storage.SoftDeleteReply(replyId)
}
