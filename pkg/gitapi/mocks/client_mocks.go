package mocks

import (
	"context"

	"github.com/gittags/gittags/pkg/gitapi"
	"github.com/stretchr/testify/mock"
)

// TagSource mock
type TagSource struct {
	mock.Mock
}

func (m *TagSource) ListTags(ctx context.Context, repo gitapi.Repo) ([]gitapi.Tag, error) {
	args := m.Called(ctx, repo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]gitapi.Tag), args.Error(1)
}

func (m *TagSource) GetCommit(ctx context.Context, repo gitapi.Repo, sha string) (*gitapi.CommitDetail, error) {
	args := m.Called(ctx, repo, sha)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gitapi.CommitDetail), args.Error(1)
}
