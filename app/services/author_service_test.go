package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell/app/apperrors"
	"inkwell/app/models"
	"inkwell/app/repositories"
	"inkwell/app/repositories/mock"
)

func staffPrincipal() models.Principal {
	return models.Principal{UserID: 99, Username: "admin", IsStaff: true, Authenticated: true}
}

func TestCreateAuthor(t *testing.T) {
	repo := mock.NewAuthorRepository()
	service := NewAuthorService(repo, false)

	t.Run("binds the profile to the requesting principal", func(t *testing.T) {
		author, err := service.CreateAuthor(authenticated(1), AuthorInput{
			Name:  "Author One",
			Email: "author1@example.com",
		})
		require.NoError(t, err)
		require.NotNil(t, author.UserID)
		assert.Equal(t, uint(1), *author.UserID)
	})

	t.Run("second profile rejected when pen names are off", func(t *testing.T) {
		_, err := service.CreateAuthor(authenticated(1), AuthorInput{
			Name:  "Pen Name",
			Email: "pen@example.com",
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("second profile allowed when pen names are on", func(t *testing.T) {
		multi := NewAuthorService(repo, true)
		author, err := multi.CreateAuthor(authenticated(1), AuthorInput{
			Name:  "Pen Name",
			Email: "pen@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, uint(1), *author.UserID)
	})

	t.Run("anonymous principal is a configuration error", func(t *testing.T) {
		_, err := service.CreateAuthor(models.Anonymous(), AuthorInput{
			Name:  "Nobody",
			Email: "nobody@example.com",
		})
		assert.ErrorIs(t, err, apperrors.ErrMissingRequestContext)
	})

	t.Run("invalid email is rejected", func(t *testing.T) {
		_, err := service.CreateAuthor(authenticated(2), AuthorInput{
			Name:  "Broken",
			Email: "not-an-email",
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
	})
}

func TestListAuthors(t *testing.T) {
	repo := mock.NewAuthorRepository()
	service := NewAuthorService(repo, true)

	userOne, userTwo := uint(1), uint(2)
	require.NoError(t, repo.Create(&models.Author{Name: "Author One", Email: "one@example.com", UserID: &userOne}))
	require.NoError(t, repo.Create(&models.Author{Name: "Author Two", Email: "two@example.com", UserID: &userTwo}))

	t.Run("staff sees every author", func(t *testing.T) {
		authors, err := service.ListAuthors(staffPrincipal(), repositories.AuthorFilter{})
		require.NoError(t, err)
		assert.Len(t, authors, 2)
	})

	t.Run("non-staff sees only their own profiles", func(t *testing.T) {
		authors, err := service.ListAuthors(authenticated(1), repositories.AuthorFilter{})
		require.NoError(t, err)
		require.Len(t, authors, 1)
		assert.Equal(t, "Author One", authors[0].Name)
	})

	t.Run("search matches name and email", func(t *testing.T) {
		authors, err := service.ListAuthors(staffPrincipal(), repositories.AuthorFilter{Search: "two@"})
		require.NoError(t, err)
		require.Len(t, authors, 1)
		assert.Equal(t, "Author Two", authors[0].Name)
	})
}

func TestUpdateAuthor(t *testing.T) {
	repo := mock.NewAuthorRepository()
	service := NewAuthorService(repo, true)

	userOne := uint(1)
	author := &models.Author{Name: "Author One", Email: "one@example.com", UserID: &userOne}
	require.NoError(t, repo.Create(author))

	t.Run("owner can edit", func(t *testing.T) {
		updated, err := service.UpdateAuthor(authenticated(1), author.ID, AuthorInput{
			Name:  "Renamed",
			Email: "one@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Name)
	})

	t.Run("non-owner gets permission denied", func(t *testing.T) {
		_, err := service.UpdateAuthor(authenticated(2), author.ID, AuthorInput{
			Name:  "Taken Over",
			Email: "one@example.com",
		})
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("staff may edit anyone's profile", func(t *testing.T) {
		updated, err := service.UpdateAuthor(staffPrincipal(), author.ID, AuthorInput{
			Name:  "Staff Renamed",
			Email: "one@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, "Staff Renamed", updated.Name)
	})
}

func TestDeleteAuthor(t *testing.T) {
	authorRepo := mock.NewAuthorRepository()
	postRepo := mock.NewPostRepository()
	commentRepo := mock.NewCommentRepository()
	authorRepo.Posts = postRepo
	postRepo.Comments = commentRepo
	service := NewAuthorService(authorRepo, true)

	userOne := uint(1)
	author := &models.Author{Name: "Author One", Email: "one@example.com", UserID: &userOne}
	require.NoError(t, authorRepo.Create(author))

	post := &models.Post{Title: "Cascades Away", Content: "gone soon", AuthorID: author.ID, Author: author, Active: true}
	require.NoError(t, postRepo.Create(post))
	require.NoError(t, commentRepo.Create(&models.Comment{PostID: post.ID, Content: "me too"}))

	t.Run("non-owner gets permission denied", func(t *testing.T) {
		err := service.DeleteAuthor(authenticated(2), author.ID)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("owner delete cascades posts and comments", func(t *testing.T) {
		require.NoError(t, service.DeleteAuthor(authenticated(1), author.ID))

		_, err := authorRepo.GetByID(author.ID)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)

		_, err = postRepo.GetByID(post.ID)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)

		comments, err := commentRepo.ListByPost(post.ID)
		require.NoError(t, err)
		assert.Empty(t, comments)
	})

	t.Run("missing author is not found", func(t *testing.T) {
		err := service.DeleteAuthor(staffPrincipal(), 999)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestGetAuthor(t *testing.T) {
	repo := mock.NewAuthorRepository()
	service := NewAuthorService(repo, true)

	userOne := uint(1)
	author := &models.Author{Name: "Author One", Email: "one@example.com", UserID: &userOne}
	require.NoError(t, repo.Create(author))

	t.Run("owner can read", func(t *testing.T) {
		got, err := service.GetAuthor(authenticated(1), author.ID)
		require.NoError(t, err)
		assert.Equal(t, "Author One", got.Name)
	})

	t.Run("staff can read", func(t *testing.T) {
		_, err := service.GetAuthor(staffPrincipal(), author.ID)
		assert.NoError(t, err)
	})

	t.Run("other users cannot", func(t *testing.T) {
		_, err := service.GetAuthor(authenticated(2), author.ID)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})
}
