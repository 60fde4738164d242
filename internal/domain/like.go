package domain

// Like is a join-row between a user and a comment. At most one per
// (UserId, CommentId) pair; enforced by a unique index in storage.
type Like struct {
	Id        LikeId    `json:"id"`
	UserId    UserId    `json:"userId"`
	CommentId CommentId `json:"commentId"`
}
