package repositories

import (
	"gorm.io/gorm"

	"inkwell/app/models"
)

// GormCommentRepository implements CommentRepository on the relational store.
type GormCommentRepository struct {
	db *gorm.DB
}

// NewGormCommentRepository creates a new GormCommentRepository.
func NewGormCommentRepository(db *gorm.DB) *GormCommentRepository {
	return &GormCommentRepository{db: db}
}

// Create persists a new comment.
func (r *GormCommentRepository) Create(comment *models.Comment) error {
	return translateError(r.db.Create(comment).Error)
}

// ListByPost retrieves a post's comments, newest first, with commenting
// users for attribution.
func (r *GormCommentRepository) ListByPost(postID uint) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.Preload("User").
		Where("post_id = ?", postID).
		Order("created DESC").
		Find(&comments).Error
	if err != nil {
		return nil, translateError(err)
	}
	return comments, nil
}
