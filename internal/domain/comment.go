package domain

import (
	"time"
)

type Comment struct {
	Id        CommentId `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"date"`
	ThreadId  ThreadId  `json:"threadId"`
	Owner     UserId    `json:"owner"`
	IsDeleted bool      `json:"-"`
}

type CommentCreationData struct {
	Content  string
	ThreadId ThreadId
	Owner    UserId
}

type AddedComment struct {
	Id      CommentId `json:"id"`
	Content string    `json:"content"`
	Owner   UserId    `json:"owner"`
}

// ThreadComment is a comment row annotated for view assembly: author username
// resolved, like count aggregated, soft-delete flag still raw (masking happens
// in the service).
type ThreadComment struct {
	Id        CommentId
	Username  Username
	Date      time.Time
	Content   string
	IsDeleted bool
	LikeCount int
}
