package repositories

import "inkwell/app/models"

// AuthorRepository defines data access for author profiles.
type AuthorRepository interface {
	Create(author *models.Author) error
	GetByID(id uint) (*models.Author, error)
	List(filter AuthorFilter) ([]*models.Author, error)
	CountByUser(userID uint) (int64, error)
	Update(author *models.Author) error
	// Delete removes the author; posts and their comments cascade.
	Delete(id uint) error
}

// PostRepository defines data access for posts.
type PostRepository interface {
	Create(post *models.Post) error
	// GetByID loads a post regardless of its active flag, author included.
	GetByID(id uint) (*models.Post, error)
	// GetActiveByID loads a post only if it is active, author included.
	GetActiveByID(id uint) (*models.Post, error)
	// List returns active posts matching the filter.
	List(filter PostFilter) ([]*models.Post, error)
	Update(post *models.Post) error
}

// CommentRepository defines data access for comments.
type CommentRepository interface {
	Create(comment *models.Comment) error
	// ListByPost returns a post's comments, newest first.
	ListByPost(postID uint) ([]*models.Comment, error)
}

// UserRepository defines data access for user accounts.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
}

// TokenRepository defines data access for issued auth tokens.
type TokenRepository interface {
	Create(token *models.AuthToken) error
	GetByHash(hash string) (*models.AuthToken, error)
	DeleteByHash(hash string) error
}
