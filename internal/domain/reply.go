package domain

import (
	"time"
)

type Reply struct {
	Id        ReplyId   `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"date"`
	CommentId CommentId `json:"commentId"`
	Owner     UserId    `json:"owner"`
	IsDeleted bool      `json:"-"`
}

type ReplyCreationData struct {
	Content   string
	CommentId CommentId
	Owner     UserId
}

type AddedReply struct {
	Id      ReplyId `json:"id"`
	Content string  `json:"content"`
	Owner   UserId  `json:"owner"`
}

// CommentReply is a reply row annotated for view assembly, keyed by the parent
// comment id so the service can group replies under their comments.
type CommentReply struct {
	Id        ReplyId
	CommentId CommentId
	Username  Username
	Date      time.Time
	Content   string
	IsDeleted bool
}
