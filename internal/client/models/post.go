package models

import "time"

// PostAuthor is the subset of the user profile embedded in feed posts.
type PostAuthor struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Post is one entry of the social feed.
type Post struct {
	ID         string     `json:"id"`
	User       PostAuthor `json:"user"`
	Content    string     `json:"content"`
	ImageURL   string     `json:"image_url,omitempty"`
	LikesCount int        `json:"likes_count"`
	CreatedAt  time.Time  `json:"created_at"`
}

// FeedPage is one page of the feed plus pagination metadata. Each load
// replaces the previous page; the client does not accumulate.
type FeedPage struct {
	Data   []Post `json:"data"`
	Total  int    `json:"total"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}
