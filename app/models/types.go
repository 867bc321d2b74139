package models

import "time"

// Post status values.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// User is an account that can sign in, own author profiles and be credited
// for comments.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:150;uniqueIndex" json:"username"`
	Email        string    `gorm:"size:254;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"size:60" json:"-"`
	IsStaff      bool      `gorm:"default:false" json:"is_staff"`
	CreatedAt    time.Time `json:"created_at"`
}

// AuthToken holds the SHA-256 hash of an issued bearer token. The token
// itself is never stored.
type AuthToken struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserID    uint      `gorm:"not null;index" json:"-"`
	User      *User     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	TokenHash string    `gorm:"size:64;uniqueIndex" json:"-"`
	CreatedAt time.Time `json:"-"`
}

// Author is a named posting identity optionally bound to one user. The
// schema permits several profiles per user; whether that is allowed is an
// application policy.
type Author struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"size:100" json:"name"`
	Email  string `gorm:"size:254;uniqueIndex" json:"email"`
	UserID *uint  `gorm:"index" json:"-"`
	User   *User  `gorm:"constraint:OnDelete:SET NULL" json:"-"`
}

// Post is a blog entry belonging to an Author. Deleting through the API is a
// soft delete: Active flips false and the row stays.
type Post struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"size:200" json:"title"`
	Content       string    `gorm:"type:text" json:"content"`
	PublishedDate time.Time `gorm:"index:idx_posts_published_date,sort:desc" json:"published_date"`
	AuthorID      uint      `gorm:"not null;index" json:"author"`
	Author        *Author   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Status        string    `gorm:"size:10;default:draft;index" json:"status"`
	Active        bool      `gorm:"default:true;index" json:"active"`
}

// Comment is attached to a Post. A nil UserID means the comment was
// submitted anonymously and stays unattributed.
type Comment struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	PostID  uint      `gorm:"not null;index" json:"post"`
	Post    *Post     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Content string    `gorm:"type:text" json:"content"`
	UserID  *uint     `gorm:"index" json:"-"`
	User    *User     `gorm:"constraint:OnDelete:SET NULL" json:"-"`
	Created time.Time `gorm:"index:idx_comments_created,sort:desc" json:"created"`
}
