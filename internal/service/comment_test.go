package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forumapi/internal/domain"
	internal_errors "forumapi/internal/errors"
)

// --- Mocks shared by comment, reply and like tests ---

// MockThreadChecker mocks the ThreadChecker interface.
type MockThreadChecker struct {
	checkThreadFunc func(id domain.ThreadId) error
}

func (m *MockThreadChecker) CheckThread(id domain.ThreadId) error {
	if m.checkThreadFunc != nil {
		return m.checkThreadFunc(id)
	}
	return nil
}

// MockCommentChecker mocks the CommentChecker interface.
type MockCommentChecker struct {
	checkCommentFunc func(id domain.CommentId) error
}

func (m *MockCommentChecker) CheckComment(id domain.CommentId) error {
	if m.checkCommentFunc != nil {
		return m.checkCommentFunc(id)
	}
	return nil
}

// MockContentValidator mocks the ContentValidator interface.
type MockContentValidator struct {
	contentFunc func(content string) error
}

func (m *MockContentValidator) Content(content string) error {
	if m.contentFunc != nil {
		return m.contentFunc(content)
	}
	return nil
}

// MockCommentStorage mocks the CommentStorage interface.
type MockCommentStorage struct {
	createCommentFunc     func(creationData domain.CommentCreationData) (domain.AddedComment, error)
	checkCommentFunc      func(id domain.CommentId) error
	commentOwnerFunc      func(id domain.CommentId) (domain.UserId, error)
	softDeleteCommentFunc func(id domain.CommentId) error

	softDeleteCalled bool
	softDeleteIdArg  domain.CommentId
}

func (m *MockCommentStorage) CreateComment(creationData domain.CommentCreationData) (domain.AddedComment, error) {
	if m.createCommentFunc != nil {
		return m.createCommentFunc(creationData)
	}
	return domain.AddedComment{Id: "comment-123", Content: creationData.Content, Owner: creationData.Owner}, nil
}

func (m *MockCommentStorage) CheckComment(id domain.CommentId) error {
	if m.checkCommentFunc != nil {
		return m.checkCommentFunc(id)
	}
	return nil
}

func (m *MockCommentStorage) CommentOwner(id domain.CommentId) (domain.UserId, error) {
	if m.commentOwnerFunc != nil {
		return m.commentOwnerFunc(id)
	}
	return "user-123", nil
}

func (m *MockCommentStorage) SoftDeleteComment(id domain.CommentId) error {
	m.softDeleteCalled = true
	m.softDeleteIdArg = id
	if m.softDeleteCommentFunc != nil {
		return m.softDeleteCommentFunc(id)
	}
	return nil
}

// --- Tests ---

func TestCommentCreate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		storage := &MockCommentStorage{}
		service := NewComment(storage, &MockThreadChecker{}, &MockContentValidator{})

		// Act
		added, err := service.Create(domain.CommentCreationData{Content: "sebuah comment", ThreadId: "thread-123", Owner: "user-123"})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "comment-123", added.Id)
		assert.Equal(t, "sebuah comment", added.Content)
		assert.Equal(t, "user-123", added.Owner)
	})

	t.Run("MissingThreadIdIsValidationError", func(t *testing.T) {
		// Arrange
		service := NewComment(&MockCommentStorage{}, &MockThreadChecker{}, &MockContentValidator{})

		// Act
		_, err := service.Create(domain.CommentCreationData{Content: "sebuah comment", Owner: "user-123"})

		// Assert
		require.Error(t, err)
		assert.True(t, internal_errors.IsValidation(err))
	})

	t.Run("UnknownThreadIsNotFound", func(t *testing.T) {
		// Arrange
		threads := &MockThreadChecker{
			checkThreadFunc: func(id domain.ThreadId) error {
				return internal_errors.NewNotFound("thread tidak ditemukan")
			},
		}
		service := NewComment(&MockCommentStorage{}, threads, &MockContentValidator{})

		// Act
		_, err := service.Create(domain.CommentCreationData{Content: "sebuah comment", ThreadId: "thread-404", Owner: "user-123"})

		// Assert
		require.Error(t, err)
		assert.True(t, internal_errors.IsNotFound(err))
	})

	t.Run("ValidatorSeesSanitizedContent", func(t *testing.T) {
		// Arrange
		var validated string
		validator := &MockContentValidator{
			contentFunc: func(content string) error {
				validated = content
				return nil
			},
		}
		service := NewComment(&MockCommentStorage{}, &MockThreadChecker{}, validator)

		// Act
		_, err := service.Create(domain.CommentCreationData{Content: "<script>x</script>halo", ThreadId: "thread-123", Owner: "user-123"})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "halo", validated)
	})
}

func TestCommentDelete(t *testing.T) {
	t.Run("OwnerCanDelete", func(t *testing.T) {
		// Arrange
		storage := &MockCommentStorage{
			commentOwnerFunc: func(id domain.CommentId) (domain.UserId, error) { return "user-123", nil },
		}
		service := NewComment(storage, &MockThreadChecker{}, &MockContentValidator{})

		// Act
		err := service.Delete("thread-123", "comment-123", "user-123")

		// Assert
		require.NoError(t, err)
		assert.True(t, storage.softDeleteCalled)
		assert.Equal(t, "comment-123", storage.softDeleteIdArg)
	})

	t.Run("NonOwnerIsForbidden", func(t *testing.T) {
		// Arrange
		storage := &MockCommentStorage{
			commentOwnerFunc: func(id domain.CommentId) (domain.UserId, error) { return "user-123", nil },
		}
		service := NewComment(storage, &MockThreadChecker{}, &MockContentValidator{})

		// Act
		err := service.Delete("thread-123", "comment-123", "user-456")

		// Assert
		require.Error(t, err)
		assert.True(t, internal_errors.IsAuthorization(err))
		assert.False(t, storage.softDeleteCalled)
	})

	t.Run("UnknownCommentIsNotFound", func(t *testing.T) {
		// Arrange
		storage := &MockCommentStorage{
			commentOwnerFunc: func(id domain.CommentId) (domain.UserId, error) {
				return "", internal_errors.NewNotFound("comment tidak ditemukan")
			},
		}
		service := NewComment(storage, &MockThreadChecker{}, &MockContentValidator{})

		// Act
		err := service.Delete("thread-123", "comment-404", "user-123")

		// Assert
		require.Error(t, err)
		assert.True(t, internal_errors.IsNotFound(err))
	})

	t.Run("MissingIdsAreValidationError", func(t *testing.T) {
		// Arrange
		service := NewComment(&MockCommentStorage{}, &MockThreadChecker{}, &MockContentValidator{})

		// Act
		err := service.Delete("", "comment-123", "user-123")

		// Assert
		require.Error(t, err)
		assert.True(t, internal_errors.IsValidation(err))
	})
}
