package services

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"inkwell/app/apperrors"
	"inkwell/app/models"
	"inkwell/app/repositories"
)

// AuthService handles accounts and bearer tokens. Tokens are opaque UUIDs;
// only their SHA-256 hash is stored, so a leaked table cannot be replayed.
type AuthService struct {
	userRepo  repositories.UserRepository
	tokenRepo repositories.TokenRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, tokenRepo repositories.TokenRepository) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
	}
}

// Register creates a user account with a bcrypt-hashed password.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// SignIn exchanges credentials for a fresh bearer token. Bad username and
// bad password fail identically.
func (s *AuthService) SignIn(input SignInInput) (string, error) {
	if err := validateInput(input); err != nil {
		return "", err
	}

	user, err := s.userRepo.GetByUsername(input.Username)
	if err != nil {
		if err == apperrors.ErrNotFound {
			return "", apperrors.Validation("invalid username or password")
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return "", apperrors.Validation("invalid username or password")
	}

	token := uuid.New()
	record := &models.AuthToken{
		UserID:    user.ID,
		TokenHash: hashToken(token),
		CreatedAt: time.Now(),
	}
	if err := s.tokenRepo.Create(record); err != nil {
		return "", err
	}
	return token.String(), nil
}

// SignOut revokes the presented token.
func (s *AuthService) SignOut(token string) error {
	parsed, err := uuid.Parse(token)
	if err != nil {
		return apperrors.ErrInvalidToken
	}
	if err := s.tokenRepo.DeleteByHash(hashToken(parsed)); err != nil {
		if err == apperrors.ErrNotFound {
			return apperrors.ErrInvalidToken
		}
		return err
	}
	return nil
}

// ResolvePrincipal maps a bearer token to the principal it was issued to.
func (s *AuthService) ResolvePrincipal(token string) (models.Principal, error) {
	parsed, err := uuid.Parse(token)
	if err != nil {
		return models.Anonymous(), apperrors.ErrInvalidToken
	}

	record, err := s.tokenRepo.GetByHash(hashToken(parsed))
	if err != nil {
		if err == apperrors.ErrNotFound {
			return models.Anonymous(), apperrors.ErrInvalidToken
		}
		return models.Anonymous(), err
	}

	user, err := s.userRepo.GetByID(record.UserID)
	if err != nil {
		if err == apperrors.ErrNotFound {
			return models.Anonymous(), apperrors.ErrInvalidToken
		}
		return models.Anonymous(), err
	}

	return models.Principal{
		UserID:        user.ID,
		Username:      user.Username,
		IsStaff:       user.IsStaff,
		Authenticated: true,
	}, nil
}

func hashToken(token uuid.UUID) string {
	sum := sha256.Sum256(token[:])
	return hex.EncodeToString(sum[:])
}
