package mocks

import (
	"context"

	"github.com/gittags/gittags/internal/data"
	"github.com/stretchr/testify/mock"
)

// FeedStore mock
type FeedStore struct {
	mock.Mock
}

func (m *FeedStore) FindOrCreate(ctx context.Context, name string) (*data.Feed, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*data.Feed), args.Error(1)
}

func (m *FeedStore) Save(ctx context.Context, feed *data.Feed) error {
	args := m.Called(ctx, feed)
	return args.Error(0)
}

func (m *FeedStore) Delete(ctx context.Context, feed *data.Feed) error {
	args := m.Called(ctx, feed)
	return args.Error(0)
}

// CommitStore mock
type CommitStore struct {
	mock.Mock
}

func (m *CommitStore) CommitsByFeed(ctx context.Context, feedID uint) ([]data.Commit, error) {
	args := m.Called(ctx, feedID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]data.Commit), args.Error(1)
}

func (m *CommitStore) InsertMany(ctx context.Context, commits []data.Commit) error {
	args := m.Called(ctx, commits)
	return args.Error(0)
}
