package models

import "time"

type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c Comment) Author() string { return c.Username }

type Like struct {
	PostID   string    `json:"postId"`
	Username string    `json:"username"`
	LikedAt  time.Time `json:"likedAt"`
}

type LikeSummary struct {
	PostID     string   `json:"postId"`
	LikesCount int      `json:"likesCount"`
	LikedBy    []string `json:"likedBy"`
}
