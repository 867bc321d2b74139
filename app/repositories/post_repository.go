package repositories

import (
	"gorm.io/gorm"

	"inkwell/app/models"
)

// GormPostRepository implements PostRepository on the relational store.
type GormPostRepository struct {
	db *gorm.DB
}

// NewGormPostRepository creates a new GormPostRepository.
func NewGormPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{db: db}
}

var postOrderColumns = map[string]string{
	"published_date": "posts.published_date",
	"title":          "posts.title",
	"author_name":    "authors.name",
}

const defaultPostOrder = "posts.published_date DESC"

// Create persists a new post.
func (r *GormPostRepository) Create(post *models.Post) error {
	return translateError(r.db.Create(post).Error)
}

// GetByID retrieves a post regardless of its active flag. The author and its
// owning user come along for ownership checks.
func (r *GormPostRepository) GetByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Author.User").First(&post, id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &post, nil
}

// GetActiveByID retrieves a post only if it is active. Inactive posts are
// invisible on the read path, their author included.
func (r *GormPostRepository) GetActiveByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Author.User").Where("posts.active = ?", true).First(&post, id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &post, nil
}

// List retrieves active posts matching the filter, joined against authors so
// name filters and ordering can reach the author columns.
func (r *GormPostRepository) List(filter PostFilter) ([]*models.Post, error) {
	q := r.db.Model(&models.Post{}).
		Joins("JOIN authors ON authors.id = posts.author_id").
		Where("posts.active = ?", true).
		Preload("Author")

	if filter.Title != "" {
		q = q.Where("posts.title ILIKE ?", "%"+filter.Title+"%")
	}
	if filter.AuthorName != "" {
		q = q.Where("authors.name ILIKE ?", "%"+filter.AuthorName+"%")
	}
	if filter.PublishedDate != "" {
		q = q.Where("DATE(posts.published_date) = ?", filter.PublishedDate)
	}
	if filter.Search != "" {
		term := "%" + filter.Search + "%"
		q = q.Where("posts.title ILIKE ? OR posts.content ILIKE ? OR authors.name ILIKE ?", term, term, term)
	}

	q = q.Order(orderClause(filter.Ordering, postOrderColumns, defaultPostOrder))
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit).Offset(filter.Offset)
	}

	var posts []*models.Post
	if err := q.Find(&posts).Error; err != nil {
		return nil, translateError(err)
	}
	return posts, nil
}

// Update persists changes to an existing post. Save writes every column, so
// flipping Active to false sticks.
func (r *GormPostRepository) Update(post *models.Post) error {
	return translateError(r.db.Save(post).Error)
}
