package data

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// FeedStore defines an interface for feed database operations
type FeedStore interface {
	FindOrCreate(ctx context.Context, name string) (*Feed, error)
	Save(ctx context.Context, feed *Feed) error
	Delete(ctx context.Context, feed *Feed) error
}

// GormFeedStore is a GORM-based implementation of FeedStore
type GormFeedStore struct {
	db *gorm.DB
}

// NewGormFeedStore initializes a new GormFeedStore
func NewGormFeedStore(db *gorm.DB) *GormFeedStore {
	return &GormFeedStore{db: db}
}

// FindOrCreate looks a feed up by name and creates it if absent. Two
// concurrent first-requests for the same name race on the insert; the
// unique index on name rejects the loser, which then re-reads the
// winner's row instead of failing the request.
func (s *GormFeedStore) FindOrCreate(ctx context.Context, name string) (*Feed, error) {
	var feed Feed
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&feed).Error
	if err == nil {
		return &feed, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	feed = Feed{Name: name}
	err = s.db.WithContext(ctx).Create(&feed).Error
	if err == nil {
		return &feed, nil
	}
	if !isDuplicateErr(err) {
		return nil, err
	}

	err = s.db.WithContext(ctx).Where("name = ?", name).First(&feed).Error
	if err != nil {
		return nil, err
	}
	return &feed, nil
}

// Save persists the rendered content and refresh timestamp of a feed
func (s *GormFeedStore) Save(ctx context.Context, feed *Feed) error {
	return s.db.WithContext(ctx).Model(feed).Updates(map[string]interface{}{
		"content":      feed.Content,
		"refreshed_at": feed.RefreshedAt,
	}).Error
}

// Delete removes a feed together with its cached commits
func (s *GormFeedStore) Delete(ctx context.Context, feed *Feed) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("feed_id = ?", feed.ID).Delete(&Commit{}).Error; err != nil {
			return err
		}
		return tx.Delete(feed).Error
	})
}

// MarkRefreshed stamps a feed with new content at the given time
func (f *Feed) MarkRefreshed(content string, at time.Time) {
	f.Content = &content
	f.RefreshedAt = &at
}

func isDuplicateErr(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), `duplicate key value violates unique constraint`)
}
