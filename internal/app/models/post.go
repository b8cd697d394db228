package models

import "time"

// Post represents a student post. Like and comment counts are recomputed
// from rows on read, never stored.
type Post struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Caption   *string   `json:"caption,omitempty" db:"caption"`
	CreatedBy string    `json:"created_by" db:"created_by"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	CreatorName    *string `json:"creator_name,omitempty"`
	CreatorSurname *string `json:"creator_surname,omitempty"`
	LikeCount      int64   `json:"like_count"`
	CommentCount   int64   `json:"comment_count"`
}

// Comment belongs to a post and a student author.
type Comment struct {
	ID            int64     `json:"id" db:"id"`
	PostID        int64     `json:"post_id" db:"post_id"`
	StudentNumber string    `json:"student_number" db:"student_number"`
	Content       string    `json:"content" db:"content"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`

	AuthorName    *string `json:"author_name,omitempty"`
	AuthorSurname *string `json:"author_surname,omitempty"`
}

// Like marks that a student liked a post, at most once per pair.
type Like struct {
	ID            int64     `json:"id" db:"id"`
	PostID        int64     `json:"post_id" db:"post_id"`
	StudentNumber string    `json:"student_number" db:"student_number"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
