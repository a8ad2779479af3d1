package models

// Topic is a fixed categorical tag attachable to posts. The catalog is seeded
// out-of-band (cmd/seed) and read-only to the API.
type Topic struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}
