package data

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestIsDuplicateErr(t *testing.T) {
	assert.True(t, isDuplicateErr(gorm.ErrDuplicatedKey))
	assert.True(t, isDuplicateErr(errors.New(
		`ERROR: duplicate key value violates unique constraint "idx_feeds_name" (SQLSTATE 23505)`)))
	assert.False(t, isDuplicateErr(errors.New("connection refused")))
	assert.False(t, isDuplicateErr(gorm.ErrRecordNotFound))
}

func TestMarkRefreshed(t *testing.T) {
	fd := Feed{ID: 1, Name: "octocat/hello-world"}
	require.Nil(t, fd.Content)
	require.Nil(t, fd.RefreshedAt)

	at := time.Date(2024, 8, 20, 12, 0, 0, 0, time.UTC)
	fd.MarkRefreshed("<feed/>", at)

	require.NotNil(t, fd.Content)
	assert.Equal(t, "<feed/>", *fd.Content)
	require.NotNil(t, fd.RefreshedAt)
	assert.Equal(t, at, *fd.RefreshedAt)
}
