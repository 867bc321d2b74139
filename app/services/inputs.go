package services

import (
	"time"

	"github.com/go-playground/validator/v10"

	"inkwell/app/apperrors"
)

var validate = validator.New()

// RegisterInput is the payload for creating a user account.
type RegisterInput struct {
	Username string `json:"username" validate:"required,max=150"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// SignInInput is the payload for exchanging credentials for a token.
type SignInInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthorInput is the payload for creating or editing an author profile. The
// owning user is never part of the payload; it always comes from the
// session.
type AuthorInput struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email"`
}

// PostCreateInput is the payload for creating a post. Author references an
// existing author profile by id.
type PostCreateInput struct {
	Title         string     `json:"title" validate:"required,max=200"`
	Content       string     `json:"content" validate:"required"`
	PublishedDate *time.Time `json:"published_date"`
	Author        uint       `json:"author" validate:"required"`
}

// PostEditInput is the payload for editing a post. Active may flip the post
// back to visible; status and published date stay as they are.
type PostEditInput struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
	Active  *bool  `json:"active"`
}

// CommentCreateInput is the payload for creating a comment. Post references
// the target post by id.
type CommentCreateInput struct {
	Post    uint   `json:"post" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// validateInput runs struct validation and folds failures into the shared
// taxonomy.
func validateInput(input interface{}) error {
	if err := validate.Struct(input); err != nil {
		return apperrors.Validation("%s", err.Error())
	}
	return nil
}
