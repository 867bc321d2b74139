// Package mock provides in-memory repositories for tests. Filtering,
// ordering and cascade behavior mirror the relational implementations.
package mock

import (
	"sort"
	"strings"
	"sync"

	"inkwell/app/apperrors"
	"inkwell/app/models"
	"inkwell/app/repositories"
)

// AuthorRepository is an in-memory repositories.AuthorRepository.
type AuthorRepository struct {
	mutex   sync.RWMutex
	authors map[uint]*models.Author
	nextID  uint

	// Posts, when set, receives cascade deletes.
	Posts *PostRepository
	// Users, when set, hydrates the User relation the way the relational
	// implementation preloads it.
	Users *UserRepository
}

// NewAuthorRepository creates an empty in-memory author repository.
func NewAuthorRepository() *AuthorRepository {
	return &AuthorRepository{
		authors: make(map[uint]*models.Author),
		nextID:  1,
	}
}

func (m *AuthorRepository) Create(author *models.Author) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, existing := range m.authors {
		if existing.Email == author.Email {
			return apperrors.Validation("a record with this value already exists")
		}
	}
	author.ID = m.nextID
	m.nextID++
	m.authors[author.ID] = author
	return nil
}

func (m *AuthorRepository) GetByID(id uint) (*models.Author, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	author, exists := m.authors[id]
	if !exists {
		return nil, apperrors.ErrNotFound
	}
	m.hydrate(author)
	return author, nil
}

func (m *AuthorRepository) hydrate(author *models.Author) {
	if m.Users == nil || author.UserID == nil || author.User != nil {
		return
	}
	if user, err := m.Users.GetByID(*author.UserID); err == nil {
		author.User = user
	}
}

func (m *AuthorRepository) List(filter repositories.AuthorFilter) ([]*models.Author, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var authors []*models.Author
	for _, author := range m.authors {
		if filter.UserID != nil {
			if author.UserID == nil || *author.UserID != *filter.UserID {
				continue
			}
		}
		if filter.Search != "" && !containsFold(author.Name, filter.Search) && !containsFold(author.Email, filter.Search) {
			continue
		}
		m.hydrate(author)
		authors = append(authors, author)
	}

	key := strings.TrimPrefix(filter.Ordering, "-")
	desc := strings.HasPrefix(filter.Ordering, "-")
	sort.SliceStable(authors, func(i, j int) bool {
		var less bool
		switch key {
		case "name":
			less = authors[i].Name < authors[j].Name
		case "email":
			less = authors[i].Email < authors[j].Email
		default:
			less = authors[i].ID < authors[j].ID
		}
		if desc {
			return !less
		}
		return less
	})
	return authors, nil
}

func (m *AuthorRepository) CountByUser(userID uint) (int64, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var count int64
	for _, author := range m.authors {
		if author.UserID != nil && *author.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (m *AuthorRepository) Update(author *models.Author) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.authors[author.ID]; !exists {
		return apperrors.ErrNotFound
	}
	m.authors[author.ID] = author
	return nil
}

func (m *AuthorRepository) Delete(id uint) error {
	m.mutex.Lock()
	if _, exists := m.authors[id]; !exists {
		m.mutex.Unlock()
		return apperrors.ErrNotFound
	}
	delete(m.authors, id)
	m.mutex.Unlock()

	if m.Posts != nil {
		m.Posts.deleteByAuthor(id)
	}
	return nil
}

// PostRepository is an in-memory repositories.PostRepository.
type PostRepository struct {
	mutex  sync.RWMutex
	posts  map[uint]*models.Post
	nextID uint

	// Comments, when set, receives cascade deletes.
	Comments *CommentRepository
}

// NewPostRepository creates an empty in-memory post repository.
func NewPostRepository() *PostRepository {
	return &PostRepository{
		posts:  make(map[uint]*models.Post),
		nextID: 1,
	}
}

func (m *PostRepository) Create(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post.ID = m.nextID
	m.nextID++
	m.posts[post.ID] = post
	return nil
}

func (m *PostRepository) GetByID(id uint) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, apperrors.ErrNotFound
	}
	return post, nil
}

func (m *PostRepository) GetActiveByID(id uint) (*models.Post, error) {
	post, err := m.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !post.Active {
		return nil, apperrors.ErrNotFound
	}
	return post, nil
}

func (m *PostRepository) List(filter repositories.PostFilter) ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var posts []*models.Post
	for _, post := range m.posts {
		if !post.Active {
			continue
		}
		if filter.Title != "" && !containsFold(post.Title, filter.Title) {
			continue
		}
		if filter.AuthorName != "" && (post.Author == nil || !containsFold(post.Author.Name, filter.AuthorName)) {
			continue
		}
		if filter.PublishedDate != "" && post.PublishedDate.Format("2006-01-02") != filter.PublishedDate {
			continue
		}
		if filter.Search != "" {
			authorName := ""
			if post.Author != nil {
				authorName = post.Author.Name
			}
			if !containsFold(post.Title, filter.Search) &&
				!containsFold(post.Content, filter.Search) &&
				!containsFold(authorName, filter.Search) {
				continue
			}
		}
		posts = append(posts, post)
	}

	sortPosts(posts, filter.Ordering)

	if filter.Limit > 0 {
		if filter.Offset >= len(posts) {
			return nil, nil
		}
		end := filter.Offset + filter.Limit
		if end > len(posts) {
			end = len(posts)
		}
		posts = posts[filter.Offset:end]
	}
	return posts, nil
}

func (m *PostRepository) Update(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[post.ID]; !exists {
		return apperrors.ErrNotFound
	}
	m.posts[post.ID] = post
	return nil
}

func (m *PostRepository) deleteByAuthor(authorID uint) {
	m.mutex.Lock()
	var removed []uint
	for id, post := range m.posts {
		if post.AuthorID == authorID {
			delete(m.posts, id)
			removed = append(removed, id)
		}
	}
	m.mutex.Unlock()

	if m.Comments != nil {
		for _, id := range removed {
			m.Comments.deleteByPost(id)
		}
	}
}

func sortPosts(posts []*models.Post, ordering string) {
	key := strings.TrimPrefix(ordering, "-")
	desc := strings.HasPrefix(ordering, "-")
	if _, known := map[string]bool{"published_date": true, "title": true, "author_name": true}[key]; !known {
		key = "published_date"
		desc = true
	}
	sort.SliceStable(posts, func(i, j int) bool {
		var less bool
		switch key {
		case "title":
			less = posts[i].Title < posts[j].Title
		case "author_name":
			less = authorName(posts[i]) < authorName(posts[j])
		default:
			less = posts[i].PublishedDate.Before(posts[j].PublishedDate)
		}
		if desc {
			return !less
		}
		return less
	})
}

func authorName(post *models.Post) string {
	if post.Author == nil {
		return ""
	}
	return post.Author.Name
}

// CommentRepository is an in-memory repositories.CommentRepository.
type CommentRepository struct {
	mutex    sync.RWMutex
	comments map[uint]*models.Comment
	nextID   uint

	// Users, when set, hydrates the User relation for attribution.
	Users *UserRepository
}

// NewCommentRepository creates an empty in-memory comment repository.
func NewCommentRepository() *CommentRepository {
	return &CommentRepository{
		comments: make(map[uint]*models.Comment),
		nextID:   1,
	}
}

func (m *CommentRepository) Create(comment *models.Comment) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	comment.ID = m.nextID
	m.nextID++
	m.comments[comment.ID] = comment
	return nil
}

func (m *CommentRepository) ListByPost(postID uint) ([]*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var comments []*models.Comment
	for _, comment := range m.comments {
		if comment.PostID == postID {
			if m.Users != nil && comment.UserID != nil && comment.User == nil {
				if user, err := m.Users.GetByID(*comment.UserID); err == nil {
					comment.User = user
				}
			}
			comments = append(comments, comment)
		}
	}
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].Created.After(comments[j].Created)
	})
	return comments, nil
}

func (m *CommentRepository) deleteByPost(postID uint) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for id, comment := range m.comments {
		if comment.PostID == postID {
			delete(m.comments, id)
		}
	}
}

// UserRepository is an in-memory repositories.UserRepository.
type UserRepository struct {
	mutex  sync.RWMutex
	users  map[uint]*models.User
	nextID uint
}

// NewUserRepository creates an empty in-memory user repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:  make(map[uint]*models.User),
		nextID: 1,
	}
}

func (m *UserRepository) Create(user *models.User) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, existing := range m.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return apperrors.Validation("a record with this value already exists")
		}
	}
	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = user
	return nil
}

func (m *UserRepository) GetByID(id uint) (*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	user, exists := m.users[id]
	if !exists {
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}

func (m *UserRepository) GetByUsername(username string) (*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for _, user := range m.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// TokenRepository is an in-memory repositories.TokenRepository.
type TokenRepository struct {
	mutex  sync.RWMutex
	tokens map[string]*models.AuthToken
	nextID uint
}

// NewTokenRepository creates an empty in-memory token repository.
func NewTokenRepository() *TokenRepository {
	return &TokenRepository{
		tokens: make(map[string]*models.AuthToken),
		nextID: 1,
	}
}

func (m *TokenRepository) Create(token *models.AuthToken) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	token.ID = m.nextID
	m.nextID++
	m.tokens[token.TokenHash] = token
	return nil
}

func (m *TokenRepository) GetByHash(hash string) (*models.AuthToken, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	token, exists := m.tokens[hash]
	if !exists {
		return nil, apperrors.ErrNotFound
	}
	return token, nil
}

func (m *TokenRepository) DeleteByHash(hash string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.tokens[hash]; !exists {
		return apperrors.ErrNotFound
	}
	delete(m.tokens, hash)
	return nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
