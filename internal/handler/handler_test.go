package handler

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"

	"forumapi/internal/domain"
	"forumapi/internal/middleware"
)

// --- Service mocks ---

type MockAuthService struct {
	registerFunc func(registrationData domain.UserRegistrationData) (domain.AddedUser, error)
	loginFunc    func(username domain.Username, password domain.Password) (string, error)
}

func (m *MockAuthService) Register(registrationData domain.UserRegistrationData) (domain.AddedUser, error) {
	if m.registerFunc != nil {
		return m.registerFunc(registrationData)
	}
	return domain.AddedUser{Id: "user-123", Username: registrationData.Username, Fullname: registrationData.Fullname}, nil
}

func (m *MockAuthService) Login(username domain.Username, password domain.Password) (string, error) {
	if m.loginFunc != nil {
		return m.loginFunc(username, password)
	}
	return "access-token", nil
}

type MockThreadService struct {
	createFunc    func(creationData domain.ThreadCreationData) (domain.AddedThread, error)
	getDetailFunc func(threadId domain.ThreadId) (domain.ThreadDetail, error)
}

func (m *MockThreadService) Create(creationData domain.ThreadCreationData) (domain.AddedThread, error) {
	if m.createFunc != nil {
		return m.createFunc(creationData)
	}
	return domain.AddedThread{Id: "thread-123", Title: creationData.Title, Owner: creationData.Owner}, nil
}

func (m *MockThreadService) GetDetail(threadId domain.ThreadId) (domain.ThreadDetail, error) {
	if m.getDetailFunc != nil {
		return m.getDetailFunc(threadId)
	}
	return domain.ThreadDetail{Id: threadId, Comments: []domain.CommentDetail{}}, nil
}

type MockCommentService struct {
	createFunc func(creationData domain.CommentCreationData) (domain.AddedComment, error)
	deleteFunc func(threadId domain.ThreadId, commentId domain.CommentId, userId domain.UserId) error
}

func (m *MockCommentService) Create(creationData domain.CommentCreationData) (domain.AddedComment, error) {
	if m.createFunc != nil {
		return m.createFunc(creationData)
	}
	return domain.AddedComment{Id: "comment-123", Content: creationData.Content, Owner: creationData.Owner}, nil
}

func (m *MockCommentService) Delete(threadId domain.ThreadId, commentId domain.CommentId, userId domain.UserId) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(threadId, commentId, userId)
	}
	return nil
}

type MockReplyService struct {
	createFunc func(threadId domain.ThreadId, creationData domain.ReplyCreationData) (domain.AddedReply, error)
	deleteFunc func(threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, userId domain.UserId) error
}

func (m *MockReplyService) Create(threadId domain.ThreadId, creationData domain.ReplyCreationData) (domain.AddedReply, error) {
	if m.createFunc != nil {
		return m.createFunc(threadId, creationData)
	}
	return domain.AddedReply{Id: "reply-123", Content: creationData.Content, Owner: creationData.Owner}, nil
}

func (m *MockReplyService) Delete(threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, userId domain.UserId) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(threadId, commentId, replyId, userId)
	}
	return nil
}

type MockLikeService struct {
	toggleFunc func(threadId domain.ThreadId, commentId domain.CommentId, userId domain.UserId) error
}

func (m *MockLikeService) Toggle(threadId domain.ThreadId, commentId domain.CommentId, userId domain.UserId) error {
	if m.toggleFunc != nil {
		return m.toggleFunc(threadId, commentId, userId)
	}
	return nil
}

// --- Helpers ---

type mocks struct {
	auth     *MockAuthService
	threads  *MockThreadService
	comments *MockCommentService
	replies  *MockReplyService
	likes    *MockLikeService
}

func newTestHandler() (*Handler, *mocks) {
	m := &mocks{
		auth:     &MockAuthService{},
		threads:  &MockThreadService{},
		comments: &MockCommentService{},
		replies:  &MockReplyService{},
		likes:    &MockLikeService{},
	}
	return New(m.auth, m.threads, m.comments, m.replies, m.likes), m
}

// newTestRouter mounts the handler on the same routes the real router uses,
// minus the auth middleware: tests inject the user into the context directly.
func newTestRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/users", h.Register)
	r.Post("/authentications", h.Login)
	r.Post("/threads", h.CreateThread)
	r.Get("/threads/{threadId}", h.GetThread)
	r.Post("/threads/{threadId}/comments", h.CreateComment)
	r.Delete("/threads/{threadId}/comments/{commentId}", h.DeleteComment)
	r.Put("/threads/{threadId}/comments/{commentId}/likes", h.ToggleLike)
	r.Post("/threads/{threadId}/comments/{commentId}/replies", h.CreateReply)
	r.Delete("/threads/{threadId}/comments/{commentId}/replies/{replyId}", h.DeleteReply)
	return r
}

func asUser(req *http.Request, user *domain.User) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.UserClaimsKey, user)
	return req.WithContext(ctx)
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}
