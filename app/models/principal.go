package models

// Principal is the resolved identity of an API caller. The zero value is the
// anonymous principal.
type Principal struct {
	UserID        uint
	Username      string
	IsStaff       bool
	Authenticated bool
}

// Anonymous returns the unauthenticated principal.
func Anonymous() Principal {
	return Principal{}
}

// IsOwnedBy reports whether the author profile is bound to the principal.
func (a *Author) IsOwnedBy(p Principal) bool {
	if !p.Authenticated || a.UserID == nil {
		return false
	}
	return *a.UserID == p.UserID
}

// IsOwnedBy reports whether the post's author profile is bound to the
// principal. A post whose author has lost its user binding is owned by
// nobody.
func (post *Post) IsOwnedBy(p Principal) bool {
	if post.Author == nil {
		return false
	}
	return post.Author.IsOwnedBy(p)
}
