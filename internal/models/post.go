package models

import "time"

// Post represents a topic-tagged article on the board.
//
// UpdatedAt doubles as the activity timestamp: it is bumped whenever a comment
// under the post is created, edited, or deleted, so listings sorted by
// UpdatedAt surface the most recently active posts first.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	Author    User      `gorm:"foreignKey:AuthorID" json:"author"`
	Topics    []Topic   `gorm:"many2many:post_topics" json:"topics"`
	Comments  []Comment `gorm:"foreignKey:PostID" json:"comments"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OwnerID implements Owned.
func (p *Post) OwnerID() uint { return p.AuthorID }

// ResourceName implements Owned.
func (p *Post) ResourceName() string { return "post" }
