package repositories

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"inkwell/app/apperrors"
	"inkwell/app/models"
)

// openTestDB connects to the database named by TEST_DATABASE_URL. Tests are
// skipped when it is unset so the suite runs without a server.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	t.Cleanup(func() {
		db.Exec("DELETE FROM comments")
		db.Exec("DELETE FROM posts")
		db.Exec("DELETE FROM authors")
		db.Exec("DELETE FROM auth_tokens")
		db.Exec("DELETE FROM users")
	})
	return db
}

func seedAuthor(t *testing.T, db *gorm.DB, name, email string) *models.Author {
	t.Helper()

	user := &models.User{
		Username:     name,
		Email:        fmt.Sprintf("user-%s", email),
		PasswordHash: "x",
		CreatedAt:    time.Now(),
	}
	require.NoError(t, db.Create(user).Error)

	author := &models.Author{Name: name, Email: email, UserID: &user.ID}
	require.NoError(t, db.Create(author).Error)
	return author
}

func TestGormPostRepository(t *testing.T) {
	db := openTestDB(t)
	posts := NewGormPostRepository(db)
	ada := seedAuthor(t, db, "Ada Wordsmith", "ada@example.com")
	brian := seedAuthor(t, db, "Brian Scribbler", "brian@example.com")

	now := time.Now().Truncate(time.Second)
	mkPost := func(author *models.Author, title string, active bool, published time.Time) *models.Post {
		post := &models.Post{
			Title:         title,
			Content:       "content of " + title,
			PublishedDate: published,
			AuthorID:      author.ID,
			Status:        models.StatusPublished,
			Active:        active,
		}
		require.NoError(t, posts.Create(post))
		return post
	}
	gardening := mkPost(ada, "Gardening for impatient people", true, now.Add(-48*time.Hour))
	hidden := mkPost(ada, "Hidden drafts", false, now.Add(-36*time.Hour))
	myths := mkPost(brian, "Gardening myths", true, now.Add(-24*time.Hour))
	cooking := mkPost(brian, "Cooking notes", true, now)

	t.Run("active read path", func(t *testing.T) {
		got, err := posts.GetActiveByID(gardening.ID)
		require.NoError(t, err)
		require.NotNil(t, got.Author)
		assert.Equal(t, "Ada Wordsmith", got.Author.Name)

		_, err = posts.GetActiveByID(hidden.ID)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)

		// The unfiltered lookup still reaches the inactive row.
		got, err = posts.GetByID(hidden.ID)
		require.NoError(t, err)
		assert.False(t, got.Active)
	})

	t.Run("list filters and ordering", func(t *testing.T) {
		all, err := posts.List(PostFilter{})
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, cooking.ID, all[0].ID)
		assert.Equal(t, gardening.ID, all[2].ID)

		byTitle, err := posts.List(PostFilter{Title: "GARDENING"})
		require.NoError(t, err)
		assert.Len(t, byTitle, 2)

		byAuthor, err := posts.List(PostFilter{AuthorName: "scribbler"})
		require.NoError(t, err)
		assert.Len(t, byAuthor, 2)

		bySearch, err := posts.List(PostFilter{Search: "ada"})
		require.NoError(t, err)
		assert.Len(t, bySearch, 1)

		byDate, err := posts.List(PostFilter{PublishedDate: myths.PublishedDate.Format("2006-01-02")})
		require.NoError(t, err)
		require.Len(t, byDate, 1)
		assert.Equal(t, myths.ID, byDate[0].ID)

		titleAsc, err := posts.List(PostFilter{Ordering: "title"})
		require.NoError(t, err)
		assert.Equal(t, cooking.ID, titleAsc[0].ID)

		paged, err := posts.List(PostFilter{Limit: 2, Offset: 2})
		require.NoError(t, err)
		require.Len(t, paged, 1)
		assert.Equal(t, gardening.ID, paged[0].ID)
	})

	t.Run("soft delete via update keeps the row", func(t *testing.T) {
		myths.Active = false
		require.NoError(t, posts.Update(myths))

		stored, err := posts.GetByID(myths.ID)
		require.NoError(t, err)
		assert.False(t, stored.Active)
		assert.Equal(t, "Gardening myths", stored.Title)
	})
}

func TestGormAuthorRepositoryCascade(t *testing.T) {
	db := openTestDB(t)
	authors := NewGormAuthorRepository(db)
	comments := NewGormCommentRepository(db)
	ada := seedAuthor(t, db, "Ada Wordsmith", "ada@example.com")

	post := &models.Post{
		Title:         "Doomed",
		Content:       "gone soon",
		PublishedDate: time.Now(),
		AuthorID:      ada.ID,
		Active:        true,
	}
	require.NoError(t, db.Create(post).Error)
	require.NoError(t, comments.Create(&models.Comment{PostID: post.ID, Content: "me too", Created: time.Now()}))

	require.NoError(t, authors.Delete(ada.ID))

	var postCount, commentCount int64
	db.Model(&models.Post{}).Count(&postCount)
	db.Model(&models.Comment{}).Count(&commentCount)
	assert.Zero(t, postCount)
	assert.Zero(t, commentCount)

	_, err := authors.GetByID(ada.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGormUserRepositoryUniqueness(t *testing.T) {
	db := openTestDB(t)
	users := NewGormUserRepository(db)

	first := &models.User{Username: "user1", Email: "user1@example.com", PasswordHash: "x", CreatedAt: time.Now()}
	require.NoError(t, users.Create(first))

	dup := &models.User{Username: "user1", Email: "other@example.com", PasswordHash: "x", CreatedAt: time.Now()}
	err := users.Create(dup)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}
