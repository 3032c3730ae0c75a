package data

import (
	"time"
)

// Feed represents a tracked repository feed and its last rendered document
type Feed struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"uniqueIndex;not null"`
	Content     *string `gorm:"type:text"`
	RefreshedAt *time.Time
	CreatedAt   time.Time
	Commits     []Commit `gorm:"foreignKey:FeedID;constraint:OnDelete:CASCADE"`
}

// Commit represents a cached commit of a feed. Rows are immutable once
// inserted; commit history does not change.
type Commit struct {
	ID          uint      `gorm:"primaryKey"`
	FeedID      uint      `gorm:"not null;uniqueIndex:idx_commits_feed_sha"`
	Sha         string    `gorm:"size:40;not null;uniqueIndex:idx_commits_feed_sha"`
	AuthorName  string    `gorm:"not null"`
	AuthorEmail string    `gorm:"not null"`
	Message     string    `gorm:"type:text;not null"`
	Date        time.Time `gorm:"not null"`
	CreatedAt   time.Time
}
