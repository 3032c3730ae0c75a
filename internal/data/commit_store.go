package data

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CommitStore defines an interface for commit cache database operations
type CommitStore interface {
	CommitsByFeed(ctx context.Context, feedID uint) ([]Commit, error)
	InsertMany(ctx context.Context, commits []Commit) error
}

// GormCommitStore is a GORM-based implementation of CommitStore
type GormCommitStore struct {
	db *gorm.DB
}

// NewGormCommitStore initializes a new GormCommitStore
func NewGormCommitStore(db *gorm.DB) *GormCommitStore {
	return &GormCommitStore{db: db}
}

// CommitsByFeed fetches all cached commits of a feed, in no particular order
func (s *GormCommitStore) CommitsByFeed(ctx context.Context, feedID uint) ([]Commit, error) {
	var commits []Commit
	err := s.db.WithContext(ctx).Where("feed_id = ?", feedID).Find(&commits).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch commits for feed %d: %w", feedID, err)
	}
	return commits, nil
}

// InsertMany inserts a batch of commits in a single statement. Rows whose
// (feed_id, sha) already exist are skipped, so two concurrent synthesis
// runs that both computed the same missing set cannot fail each other.
func (s *GormCommitStore) InsertMany(ctx context.Context, commits []Commit) error {
	if len(commits) == 0 {
		return nil
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "feed_id"}, {Name: "sha"}},
		DoNothing: true,
	}).Create(&commits).Error
	if err != nil {
		return fmt.Errorf("failed to insert commits: %w", err)
	}
	return nil
}
