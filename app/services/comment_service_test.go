package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell/app/apperrors"
	"inkwell/app/models"
)

func newCommentFixture() (*postFixture, *CommentService) {
	f := newPostFixture()
	return f, NewCommentService(f.commentRepo, f.postRepo)
}

func TestCreateComment(t *testing.T) {
	f, service := newCommentFixture()
	author := f.addAuthor(t, 1, "Author One", "author1@example.com")
	active := f.addPost(t, author, "Open Thread", true, time.Now())
	inactive := f.addPost(t, author, "Closed Thread", false, time.Now())

	t.Run("anonymous comment persists unattributed", func(t *testing.T) {
		comment, err := service.CreateComment(models.Anonymous(), CommentCreateInput{
			Post:    active.ID,
			Content: "drive-by remark",
		})
		require.NoError(t, err)
		assert.Nil(t, comment.UserID)
		assert.Equal(t, active.ID, comment.PostID)
		assert.False(t, comment.Created.IsZero())
	})

	t.Run("authenticated comment is attributed", func(t *testing.T) {
		comment, err := service.CreateComment(authenticated(7), CommentCreateInput{
			Post:    active.ID,
			Content: "signed remark",
		})
		require.NoError(t, err)
		require.NotNil(t, comment.UserID)
		assert.Equal(t, uint(7), *comment.UserID)
	})

	t.Run("inactive post rejects comments with a validation failure", func(t *testing.T) {
		_, err := service.CreateComment(models.Anonymous(), CommentCreateInput{
			Post:    inactive.ID,
			Content: "too late",
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("missing post is not found", func(t *testing.T) {
		_, err := service.CreateComment(models.Anonymous(), CommentCreateInput{
			Post:    999,
			Content: "into the void",
		})
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("empty content is invalid", func(t *testing.T) {
		_, err := service.CreateComment(models.Anonymous(), CommentCreateInput{
			Post: active.ID,
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
	})
}

func TestListPostComments(t *testing.T) {
	f, service := newCommentFixture()
	author := f.addAuthor(t, 1, "Author One", "author1@example.com")
	active := f.addPost(t, author, "Open Thread", true, time.Now())
	inactive := f.addPost(t, author, "Closed Thread", false, time.Now())

	older := time.Now().Add(-time.Hour)
	require.NoError(t, f.commentRepo.Create(&models.Comment{PostID: active.ID, Content: "first", Created: older}))
	require.NoError(t, f.commentRepo.Create(&models.Comment{PostID: active.ID, Content: "second", Created: time.Now()}))

	t.Run("newest first", func(t *testing.T) {
		comments, err := service.ListPostComments(active.ID)
		require.NoError(t, err)
		require.Len(t, comments, 2)
		assert.Equal(t, "second", comments[0].Content)
	})

	t.Run("inactive post is not found", func(t *testing.T) {
		_, err := service.ListPostComments(inactive.ID)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}
