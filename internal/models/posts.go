package models

import "time"

// Post is the listing projection: the author's username is joined in and
// LikeCount is derived from the likes relation, never stored.
type Post struct {
	ID        string    `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	AuthorID  string    `db:"author_id" json:"authorId"`
	Username  string    `db:"username" json:"username"`
	LikeCount int64     `db:"like_count" json:"likeCount"`
}
