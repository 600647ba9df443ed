package models

import (
	"time"
)

// Category groups listings by name. Listings reference it by value, not by key.
type Category struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:255;not null" json:"name"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}

// Listing is a game account offered for sale
type Listing struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	Category     string    `gorm:"size:255;not null;index" json:"category"`
	Price        float64   `gorm:"not null" json:"price"`
	Details      string    `gorm:"not null" json:"details"`
	FacebookLink string    `gorm:"not null" json:"facebook_link"`
	Images       ImageList `json:"images"`
	CreatedAt    time.Time `gorm:"not null;index" json:"created_at"`
}

// TableName overrides the table name for Category
func (Category) TableName() string {
	return "categories"
}

// TableName overrides the table name for Listing
func (Listing) TableName() string {
	return "game_nicks"
}
