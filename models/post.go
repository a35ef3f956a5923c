package models

import "time"

type Post struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	LikesCount    int       `json:"likesCount"`
	LikedBy       []string  `json:"likedBy"`
	CommentsCount int       `json:"commentsCount"`
}

func (p Post) Author() string { return p.Username }

// Authored is anything whose mutation is restricted to the user who wrote it.
type Authored interface {
	Author() string
}

// AuthorMatches reports whether claimed is the author of entity. Usernames are
// self-asserted; this is an equality check, not authentication.
func AuthorMatches(entity Authored, claimed string) bool {
	return entity.Author() == claimed
}
