package services

import (
	"inkwell/app/apperrors"
	"inkwell/app/models"
	"inkwell/app/repositories"
)

// AuthorService handles business logic for author profiles. Every mutation
// is gated by the ownership rule: staff, or the profile's own user.
type AuthorService struct {
	authorRepo repositories.AuthorRepository

	// allowMultipleProfiles permits several pen names per user. The schema
	// allows many either way; this is the application policy.
	allowMultipleProfiles bool
}

// NewAuthorService creates a new AuthorService.
func NewAuthorService(authorRepo repositories.AuthorRepository, allowMultipleProfiles bool) *AuthorService {
	return &AuthorService{
		authorRepo:            authorRepo,
		allowMultipleProfiles: allowMultipleProfiles,
	}
}

// ListAuthors returns all authors for staff, and only the requester's own
// profiles for everyone else.
func (s *AuthorService) ListAuthors(principal models.Principal, filter repositories.AuthorFilter) ([]*models.Author, error) {
	if !principal.Authenticated {
		return nil, apperrors.ErrMissingRequestContext
	}
	if !principal.IsStaff {
		userID := principal.UserID
		filter.UserID = &userID
	}
	return s.authorRepo.List(filter)
}

// GetAuthor retrieves a single author, gated by the ownership rule.
func (s *AuthorService) GetAuthor(principal models.Principal, id uint) (*models.Author, error) {
	author, err := s.authorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !principal.IsStaff && !author.IsOwnedBy(principal) {
		return nil, apperrors.ErrPermissionDenied
	}
	return author, nil
}

// CreateAuthor creates a profile bound to the requesting principal. The
// binding is always derived from the session, never trusted from payload.
func (s *AuthorService) CreateAuthor(principal models.Principal, input AuthorInput) (*models.Author, error) {
	if !principal.Authenticated {
		return nil, apperrors.ErrMissingRequestContext
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	if !s.allowMultipleProfiles {
		count, err := s.authorRepo.CountByUser(principal.UserID)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, apperrors.Validation("an author profile already exists for this user")
		}
	}

	userID := principal.UserID
	author := &models.Author{
		Name:   input.Name,
		Email:  input.Email,
		UserID: &userID,
	}
	if err := s.authorRepo.Create(author); err != nil {
		return nil, err
	}
	return author, nil
}

// UpdateAuthor edits a profile, gated by the ownership rule.
func (s *AuthorService) UpdateAuthor(principal models.Principal, id uint, input AuthorInput) (*models.Author, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	author, err := s.authorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !principal.IsStaff && !author.IsOwnedBy(principal) {
		return nil, apperrors.ErrPermissionDenied
	}

	author.Name = input.Name
	author.Email = input.Email
	if err := s.authorRepo.Update(author); err != nil {
		return nil, err
	}
	return author, nil
}

// DeleteAuthor removes a profile, gated by the ownership rule. The author's
// posts and their comments cascade away with it.
func (s *AuthorService) DeleteAuthor(principal models.Principal, id uint) error {
	author, err := s.authorRepo.GetByID(id)
	if err != nil {
		return err
	}
	if !principal.IsStaff && !author.IsOwnedBy(principal) {
		return apperrors.ErrPermissionDenied
	}
	return s.authorRepo.Delete(id)
}
