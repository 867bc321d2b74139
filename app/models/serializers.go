package models

import "time"

// Response shapes for the JSON API. Related users are rendered as their
// username, or null for anonymous/unbound records.

// AuthorView renders an Author with its owning username.
type AuthorView struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	User  *string `json:"user"`
}

// PostListItem is the public list rendering of a Post.
type PostListItem struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	PublishedDate time.Time `json:"published_date"`
	AuthorName    string    `json:"author_name"`
}

// PostDetail is the public detail rendering of a Post, comments included.
type PostDetail struct {
	PostListItem
	Status   string        `json:"status"`
	Active   bool          `json:"active"`
	Comments []CommentView `json:"comments"`
}

// CommentView renders a Comment with its commenting username.
type CommentView struct {
	ID      uint      `json:"id"`
	Content string    `json:"content"`
	User    *string   `json:"user"`
	Created time.Time `json:"created"`
}

func username(u *User) *string {
	if u == nil {
		return nil
	}
	name := u.Username
	return &name
}

// NewAuthorView builds the JSON view of an author.
func NewAuthorView(a *Author) AuthorView {
	return AuthorView{
		ID:    a.ID,
		Name:  a.Name,
		Email: a.Email,
		User:  username(a.User),
	}
}

// NewPostListItem builds the JSON list view of a post.
func NewPostListItem(p *Post) PostListItem {
	item := PostListItem{
		ID:            p.ID,
		Title:         p.Title,
		Content:       p.Content,
		PublishedDate: p.PublishedDate,
	}
	if p.Author != nil {
		item.AuthorName = p.Author.Name
	}
	return item
}

// NewPostDetail builds the JSON detail view of a post with its comments.
func NewPostDetail(p *Post, comments []*Comment) PostDetail {
	detail := PostDetail{
		PostListItem: NewPostListItem(p),
		Status:       p.Status,
		Active:       p.Active,
		Comments:     make([]CommentView, 0, len(comments)),
	}
	for _, c := range comments {
		detail.Comments = append(detail.Comments, NewCommentView(c))
	}
	return detail
}

// NewCommentView builds the JSON view of a comment.
func NewCommentView(c *Comment) CommentView {
	return CommentView{
		ID:      c.ID,
		Content: c.Content,
		User:    username(c.User),
		Created: c.Created,
	}
}
