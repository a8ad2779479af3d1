package models

import "time"

// Comment is a reply attached to a post. Comments are deleted together with
// their parent post.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	Post      *Post     `gorm:"foreignKey:PostID" json:"post,omitempty"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	Author    User      `gorm:"foreignKey:AuthorID" json:"author"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OwnerID implements Owned.
func (c *Comment) OwnerID() uint { return c.AuthorID }

// ResourceName implements Owned.
func (c *Comment) ResourceName() string { return "comment" }

// Owned is implemented by resources that belong to a single author. Only the
// owner may mutate or delete the resource; the check lives in the service
// layer, not the database.
type Owned interface {
	OwnerID() uint
	ResourceName() string
}
