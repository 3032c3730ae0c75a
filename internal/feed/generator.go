package feed

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/gittags/gittags/internal/data"
	"github.com/gittags/gittags/pkg/errcodes"
	"github.com/gittags/gittags/pkg/gitapi"
)

// Generator synthesizes the tag feed of a repository, filling the commit
// cache with whatever the upstream tag list references that is not cached
// yet.
type Generator struct {
	source  gitapi.TagSource
	commits data.CommitStore
	now     func() time.Time
}

// NewGenerator creates a Generator backed by the given tag source and
// commit cache store
func NewGenerator(source gitapi.TagSource, commits data.CommitStore) *Generator {
	return &Generator{
		source:  source,
		commits: commits,
		now:     time.Now,
	}
}

// Synthesize produces the rendered Atom document for a repository. The
// commit cache is consulted first; only commits the cache does not hold
// are fetched upstream, and they are inserted in one batch only after
// every fetch succeeded. Any upstream failure aborts the whole run so a
// transient error can never leave a hole in the cache.
func (g *Generator) Synthesize(ctx context.Context, repo gitapi.Repo, fd *data.Feed) (string, error) {
	tags, err := g.source.ListTags(ctx, repo)
	if err != nil {
		return "", err
	}

	cached, err := g.commits.CommitsByFeed(ctx, fd.ID)
	if err != nil {
		return "", err
	}

	commitsBySha := make(map[string]data.Commit, len(cached))
	for _, c := range cached {
		commitsBySha[c.Sha] = c
	}

	// A tag list may reference the same hash twice, e.g. a lightweight
	// and an annotated tag for the same release. Keep first-occurrence
	// order but fetch each hash once.
	var missing []string
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		sha := tag.Commit.SHA
		if seen[sha] {
			continue
		}
		seen[sha] = true
		if _, ok := commitsBySha[sha]; !ok {
			missing = append(missing, sha)
		}
	}

	fresh := make([]data.Commit, 0, len(missing))
	for _, sha := range missing {
		detail, err := g.source.GetCommit(ctx, repo, sha)
		if err != nil {
			return "", err
		}
		fresh = append(fresh, data.Commit{
			FeedID:      fd.ID,
			Sha:         sha,
			AuthorName:  detail.AuthorName,
			AuthorEmail: detail.AuthorEmail,
			Date:        detail.Date,
			Message:     detail.Message,
		})
	}

	if len(fresh) > 0 {
		if err := g.commits.InsertMany(ctx, fresh); err != nil {
			return "", err
		}
		for _, c := range fresh {
			commitsBySha[c.Sha] = c
		}
	}

	for _, tag := range tags {
		if _, ok := commitsBySha[tag.Commit.SHA]; !ok {
			return "", fmt.Errorf("%w: no commit %s for tag %s",
				errcodes.ErrIntegrity, tag.Commit.SHA, tag.Name)
		}
	}

	sorted := make([]gitapi.Tag, len(tags))
	copy(sorted, tags)
	sort.SliceStable(sorted, func(i, j int) bool {
		return commitsBySha[sorted[i].Commit.SHA].Date.After(commitsBySha[sorted[j].Commit.SHA].Date)
	})

	return Render(Document(repo, sorted, commitsBySha, g.now()))
}
