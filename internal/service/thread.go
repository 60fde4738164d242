package service

import (
	"forumapi/internal/domain"
	"forumapi/internal/errors"
	"forumapi/internal/service/utils"
)

// Placeholders shown instead of the original content of soft-deleted rows.
// The rows themselves are never removed from storage.
const (
	deletedCommentPlaceholder = "**komentar telah dihapus**"
	deletedReplyPlaceholder   = "**balasan telah dihapus**"
)

type ThreadService interface {
	Create(creationData domain.ThreadCreationData) (domain.AddedThread, error)
	GetDetail(threadId domain.ThreadId) (domain.ThreadDetail, error)
}

type Thread struct {
	storage   ThreadStorage
	comments  CommentFinder
	replies   ReplyFinder
	validator ThreadValidator
}

type ThreadStorage interface {
	CreateThread(creationData domain.ThreadCreationData) (domain.AddedThread, error)
	CheckThread(id domain.ThreadId) error
	GetThread(id domain.ThreadId) (domain.ThreadDetail, error)
}

// CommentFinder supplies the comment rows of a thread, ordered by creation
// time ascending, with like counts already aggregated.
type CommentFinder interface {
	CommentsByThread(threadId domain.ThreadId) ([]domain.ThreadComment, error)
}

// ReplyFinder supplies the reply rows of a set of comments in one batched
// query, ordered by creation time ascending.
type ReplyFinder interface {
	RepliesByCommentIds(commentIds []domain.CommentId) ([]domain.CommentReply, error)
}

type ThreadValidator interface {
	Title(title domain.ThreadTitle) error
	Body(body string) error
}

func NewThread(storage ThreadStorage, comments CommentFinder, replies ReplyFinder, validator ThreadValidator) *Thread {
	return &Thread{storage, comments, replies, validator}
}

func (t *Thread) Create(creationData domain.ThreadCreationData) (domain.AddedThread, error) {
	creationData.Title = utils.SanitizeText(creationData.Title)
	creationData.Body = utils.SanitizeText(creationData.Body)

	if err := t.validator.Title(creationData.Title); err != nil {
		return domain.AddedThread{}, err
	}
	if err := t.validator.Body(creationData.Body); err != nil {
		return domain.AddedThread{}, err
	}

	return t.storage.CreateThread(creationData)
}

// GetDetail assembles the full read view of one thread: core fields, comments
// in ascending creation order with like counts, and replies grouped under
// their comments. Soft-deleted comments and replies stay in place with their
// content masked. Read-only and deterministic for a given set of rows.
func (t *Thread) GetDetail(threadId domain.ThreadId) (domain.ThreadDetail, error) {
	if threadId == "" {
		return domain.ThreadDetail{}, errors.NewValidation("harus mengirimkan id thread")
	}

	if err := t.storage.CheckThread(threadId); err != nil {
		return domain.ThreadDetail{}, err
	}

	detail, err := t.storage.GetThread(threadId)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	comments, err := t.comments.CommentsByThread(threadId)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	grouped, err := t.groupedReplies(comments)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	detail.Comments = make([]domain.CommentDetail, 0, len(comments))
	for _, comment := range comments {
		content := comment.Content
		if comment.IsDeleted {
			content = deletedCommentPlaceholder
		}
		replies := grouped[comment.Id]
		if replies == nil {
			replies = []domain.ReplyDetail{}
		}
		detail.Comments = append(detail.Comments, domain.CommentDetail{
			Id:        comment.Id,
			Username:  comment.Username,
			Date:      comment.Date,
			Content:   content,
			LikeCount: comment.LikeCount,
			Replies:   replies,
		})
	}

	return detail, nil
}

// groupedReplies fetches the replies of all comments in one query and buckets
// them by comment id. Replies pointing at an unknown comment id are dropped.
func (t *Thread) groupedReplies(comments []domain.ThreadComment) (map[domain.CommentId][]domain.ReplyDetail, error) {
	grouped := make(map[domain.CommentId][]domain.ReplyDetail, len(comments))
	if len(comments) == 0 {
		return grouped, nil
	}

	commentIds := make([]domain.CommentId, 0, len(comments))
	for _, comment := range comments {
		commentIds = append(commentIds, comment.Id)
		grouped[comment.Id] = nil
	}

	replies, err := t.replies.RepliesByCommentIds(commentIds)
	if err != nil {
		return nil, err
	}

	for _, reply := range replies {
		if _, ok := grouped[reply.CommentId]; !ok {
			continue
		}
		content := reply.Content
		if reply.IsDeleted {
			content = deletedReplyPlaceholder
		}
		grouped[reply.CommentId] = append(grouped[reply.CommentId], domain.ReplyDetail{
			Id:       reply.Id,
			Content:  content,
			Date:     reply.Date,
			Username: reply.Username,
		})
	}

	return grouped, nil
}
