package services

import (
	"time"

	"inkwell/app/apperrors"
	"inkwell/app/models"
	"inkwell/app/repositories"
)

// PostService handles business logic for posts. The read path sees only
// active posts; edit and delete reach inactive rows but are ownership-gated.
type PostService struct {
	postRepo    repositories.PostRepository
	authorRepo  repositories.AuthorRepository
	commentRepo repositories.CommentRepository
}

// NewPostService creates a new PostService.
func NewPostService(postRepo repositories.PostRepository, authorRepo repositories.AuthorRepository, commentRepo repositories.CommentRepository) *PostService {
	return &PostService{
		postRepo:    postRepo,
		authorRepo:  authorRepo,
		commentRepo: commentRepo,
	}
}

// ListPosts retrieves a filtered, paginated page of active posts.
func (s *PostService) ListPosts(filter repositories.PostFilter, page, perPage int) ([]*models.Post, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	filter.Limit = perPage
	filter.Offset = (page - 1) * perPage
	return s.postRepo.List(filter)
}

// GetPost retrieves an active post with its comments. Inactive posts are
// not found on this path, even for their own author.
func (s *PostService) GetPost(id uint) (*models.Post, []*models.Comment, error) {
	post, err := s.postRepo.GetActiveByID(id)
	if err != nil {
		return nil, nil, err
	}
	comments, err := s.commentRepo.ListByPost(id)
	if err != nil {
		return nil, nil, err
	}
	return post, comments, nil
}

// CreatePost creates a post under one of the requester's own author
// profiles. Posting through someone else's profile is a validation failure.
func (s *PostService) CreatePost(principal models.Principal, input PostCreateInput) (*models.Post, error) {
	if !principal.Authenticated {
		return nil, apperrors.ErrMissingRequestContext
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	author, err := s.authorRepo.GetByID(input.Author)
	if err != nil {
		if err == apperrors.ErrNotFound {
			return nil, apperrors.Validation("author %d does not exist", input.Author)
		}
		return nil, err
	}
	if !author.IsOwnedBy(principal) {
		return nil, apperrors.Validation("you can only post as your own author profile")
	}

	publishedDate := time.Now()
	if input.PublishedDate != nil {
		publishedDate = *input.PublishedDate
	}
	post := &models.Post{
		Title:         input.Title,
		Content:       input.Content,
		PublishedDate: publishedDate,
		AuthorID:      author.ID,
		Author:        author,
		Status:        models.StatusDraft,
		Active:        true,
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// EditPost updates title, content and the active flag. The post is looked
// up without the active filter, so an owner can edit (and reactivate) a
// soft-deleted post. Editing someone else's post is a validation failure,
// staff status notwithstanding.
func (s *PostService) EditPost(principal models.Principal, id uint, input PostEditInput) (*models.Post, error) {
	if !principal.Authenticated {
		return nil, apperrors.ErrMissingRequestContext
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !post.IsOwnedBy(principal) {
		return nil, apperrors.Validation("you can only edit your own posts")
	}

	post.Title = input.Title
	post.Content = input.Content
	if input.Active != nil {
		post.Active = *input.Active
	}
	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost soft-deletes a post: Active flips false, the row stays. The
// ownership check happens here at destroy time and fails as permission
// denied, not validation.
func (s *PostService) DeletePost(principal models.Principal, id uint) error {
	if !principal.Authenticated {
		return apperrors.ErrMissingRequestContext
	}

	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return err
	}
	if !post.IsOwnedBy(principal) {
		return apperrors.ErrPermissionDenied
	}

	post.Active = false
	return s.postRepo.Update(post)
}
