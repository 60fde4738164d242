package domain

import (
	"time"
)

type Thread struct {
	Id        ThreadId    `json:"id"`
	Title     ThreadTitle `json:"title"`
	Body      string      `json:"body"`
	CreatedAt time.Time   `json:"date"`
	Owner     UserId      `json:"owner"`
}

// to iterate thru layers: handler -> service -> storage
type ThreadCreationData struct {
	Title ThreadTitle
	Body  string
	Owner UserId
}

type AddedThread struct {
	Id    ThreadId    `json:"id"`
	Title ThreadTitle `json:"title"`
	Owner UserId      `json:"owner"`
}

// ThreadDetail is the assembled read view of one thread. It is built per
// request and never persisted; deleted comments/replies appear with their
// content masked, not removed.
type ThreadDetail struct {
	Id       ThreadId        `json:"id"`
	Title    ThreadTitle     `json:"title"`
	Body     string          `json:"body"`
	Date     time.Time       `json:"date"`
	Username Username        `json:"username"`
	Comments []CommentDetail `json:"comments"`
}

type CommentDetail struct {
	Id        CommentId     `json:"id"`
	Username  Username      `json:"username"`
	Date      time.Time     `json:"date"`
	Content   string        `json:"content"`
	LikeCount int           `json:"likeCount"`
	Replies   []ReplyDetail `json:"replies"`
}

type ReplyDetail struct {
	Id       ReplyId   `json:"id"`
	Content  string    `json:"content"`
	Date     time.Time `json:"date"`
	Username Username  `json:"username"`
}
