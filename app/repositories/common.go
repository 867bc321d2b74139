package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"inkwell/app/apperrors"
	"inkwell/app/models"
)

// AuthorFilter narrows and orders author listings.
type AuthorFilter struct {
	// UserID, when set, restricts the listing to that user's profiles.
	UserID *uint
	// Search matches name or email, case-insensitive substring.
	Search string
	// Ordering is one of id, name, email; "-" prefix for descending.
	Ordering string
}

// PostFilter narrows, orders and paginates the public post listing.
type PostFilter struct {
	// Title matches case-insensitive substring.
	Title string
	// AuthorName matches the author's name, case-insensitive substring.
	AuthorName string
	// PublishedDate matches the calendar date (YYYY-MM-DD).
	PublishedDate string
	// Search matches title, content or author name.
	Search string
	// Ordering is one of published_date, title, author_name; "-" prefix for
	// descending. Unknown keys fall back to -published_date.
	Ordering string
	Limit    int
	Offset   int
}

// AutoMigrate creates or updates the schema for all entities.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.AuthToken{},
		&models.Author{},
		&models.Post{},
		&models.Comment{},
	)
}

// translateError maps store errors onto the shared failure taxonomy.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.Validation("a record with this value already exists")
	default:
		return err
	}
}

// orderClause resolves a requested ordering key against a whitelist of
// sortable columns. Unknown keys get the fallback.
func orderClause(ordering string, columns map[string]string, fallback string) string {
	desc := strings.HasPrefix(ordering, "-")
	key := strings.TrimPrefix(ordering, "-")
	column, ok := columns[key]
	if !ok {
		return fallback
	}
	if desc {
		return column + " DESC"
	}
	return column + " ASC"
}
