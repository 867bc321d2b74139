package repositories

import (
	"gorm.io/gorm"

	"inkwell/app/models"
)

// GormUserRepository implements UserRepository on the relational store.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Create persists a new user account.
func (r *GormUserRepository) Create(user *models.User) error {
	return translateError(r.db.Create(user).Error)
}

// GetByID retrieves a user by primary id.
func (r *GormUserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

// GetByUsername retrieves a user by its unique username.
func (r *GormUserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

// GormTokenRepository implements TokenRepository on the relational store.
type GormTokenRepository struct {
	db *gorm.DB
}

// NewGormTokenRepository creates a new GormTokenRepository.
func NewGormTokenRepository(db *gorm.DB) *GormTokenRepository {
	return &GormTokenRepository{db: db}
}

// Create persists a new token hash.
func (r *GormTokenRepository) Create(token *models.AuthToken) error {
	return translateError(r.db.Create(token).Error)
}

// GetByHash retrieves a token record by its hash.
func (r *GormTokenRepository) GetByHash(hash string) (*models.AuthToken, error) {
	var token models.AuthToken
	if err := r.db.Where("token_hash = ?", hash).First(&token).Error; err != nil {
		return nil, translateError(err)
	}
	return &token, nil
}

// DeleteByHash revokes a token.
func (r *GormTokenRepository) DeleteByHash(hash string) error {
	result := r.db.Where("token_hash = ?", hash).Delete(&models.AuthToken{})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound)
	}
	return nil
}
