package services

import (
	"time"

	"inkwell/app/apperrors"
	"inkwell/app/models"
	"inkwell/app/repositories"
)

// CommentService handles business logic for comments. Creation is open to
// anonymous callers; the active-post gate is the only policy.
type CommentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// CreateComment creates a comment on an active post. The comment is
// attributed to the principal when authenticated and left anonymous
// otherwise; anonymous comments stay unattributed for good.
func (s *CommentService) CreateComment(principal models.Principal, input CommentCreateInput) (*models.Comment, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetByID(input.Post)
	if err != nil {
		return nil, err
	}
	if !post.Active {
		return nil, apperrors.Validation("cannot comment on an inactive post")
	}

	comment := &models.Comment{
		PostID:  post.ID,
		Content: input.Content,
		Created: time.Now(),
	}
	if principal.Authenticated {
		userID := principal.UserID
		comment.UserID = &userID
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListPostComments retrieves the comments of an active post, newest first.
func (s *CommentService) ListPostComments(postID uint) ([]*models.Comment, error) {
	if _, err := s.postRepo.GetActiveByID(postID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(postID)
}
