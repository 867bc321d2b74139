package repositories

import (
	"gorm.io/gorm"

	"inkwell/app/models"
)

// GormAuthorRepository implements AuthorRepository on the relational store.
type GormAuthorRepository struct {
	db *gorm.DB
}

// NewGormAuthorRepository creates a new GormAuthorRepository.
func NewGormAuthorRepository(db *gorm.DB) *GormAuthorRepository {
	return &GormAuthorRepository{db: db}
}

var authorOrderColumns = map[string]string{
	"id":    "authors.id",
	"name":  "authors.name",
	"email": "authors.email",
}

// Create persists a new author profile.
func (r *GormAuthorRepository) Create(author *models.Author) error {
	return translateError(r.db.Create(author).Error)
}

// GetByID retrieves an author with its owning user.
func (r *GormAuthorRepository) GetByID(id uint) (*models.Author, error) {
	var author models.Author
	err := r.db.Preload("User").First(&author, id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &author, nil
}

// List retrieves authors matching the filter.
func (r *GormAuthorRepository) List(filter AuthorFilter) ([]*models.Author, error) {
	q := r.db.Model(&models.Author{}).Preload("User")
	if filter.UserID != nil {
		q = q.Where("authors.user_id = ?", *filter.UserID)
	}
	if filter.Search != "" {
		term := "%" + filter.Search + "%"
		q = q.Where("authors.name ILIKE ? OR authors.email ILIKE ?", term, term)
	}
	q = q.Order(orderClause(filter.Ordering, authorOrderColumns, "authors.id ASC"))

	var authors []*models.Author
	if err := q.Find(&authors).Error; err != nil {
		return nil, translateError(err)
	}
	return authors, nil
}

// CountByUser counts the author profiles bound to a user.
func (r *GormAuthorRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Author{}).Where("user_id = ?", userID).Count(&count).Error
	return count, translateError(err)
}

// Update persists changes to an existing author.
func (r *GormAuthorRepository) Update(author *models.Author) error {
	return translateError(r.db.Save(author).Error)
}

// Delete removes an author. Posts and their comments go with it through the
// foreign key cascades.
func (r *GormAuthorRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Author{}, id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound)
	}
	return nil
}
