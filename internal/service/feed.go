package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gittags/gittags/internal/cache"
	"github.com/gittags/gittags/internal/data"
	"github.com/gittags/gittags/internal/feed"
	"github.com/gittags/gittags/pkg/gitapi"
	"github.com/rs/zerolog/log"
)

const atomContentType = "application/atom+xml"

// Synthesizer produces a rendered feed document for a repository
type Synthesizer interface {
	Synthesize(ctx context.Context, repo gitapi.Repo, fd *data.Feed) (string, error)
}

// FeedService serves tag feeds, applying the whole-response cache window
// before invoking synthesis
type FeedService struct {
	feeds     data.FeedStore
	generator Synthesizer
	responses *cache.ResponseCache
	window    time.Duration
	now       func() time.Time
}

func NewFeedService(feeds data.FeedStore, generator Synthesizer, responses *cache.ResponseCache, window time.Duration) *FeedService {
	return &FeedService{
		feeds:     feeds,
		generator: generator,
		responses: responses,
		window:    window,
		now:       time.Now,
	}
}

// ServeFeed handles GET /github/{owner}/{repo}.atom
func (s *FeedService) ServeFeed(w http.ResponseWriter, r *http.Request) {
	owner := r.PathValue("owner")
	repoSegment := r.PathValue("repo")
	if owner == "" || !strings.HasSuffix(repoSegment, ".atom") {
		http.NotFound(w, r)
		return
	}

	repo := gitapi.Repo{Owner: owner, Name: strings.TrimSuffix(repoSegment, ".atom")}
	if repo.Name == "" {
		http.NotFound(w, r)
		return
	}

	ctx := r.Context()
	name := repo.String()
	w.Header().Set("Content-Type", atomContentType)

	if content, ttl, ok := s.responses.Get(ctx, name); ok {
		writeFeed(w, content, ttl)
		return
	}

	fd, err := s.feeds.FindOrCreate(ctx, name)
	if err != nil {
		log.Error().Err(err).Str("feed", name).Msg("feed lookup failed")
		s.writeErrorFeed(w, repo, err)
		return
	}

	if fd.Content != nil && fd.RefreshedAt != nil {
		remaining := s.window - s.now().Sub(*fd.RefreshedAt)
		if remaining > 0 {
			s.responses.Set(ctx, name, *fd.Content, remaining)
			writeFeed(w, *fd.Content, remaining)
			return
		}
	}

	doc, err := s.generator.Synthesize(ctx, repo, fd)
	if err != nil {
		log.Error().Err(err).Str("feed", name).Msg("feed synthesis failed")
		s.writeErrorFeed(w, repo, err)
		return
	}

	fd.MarkRefreshed(doc, s.now())
	if err := s.feeds.Save(ctx, fd); err != nil {
		// The document is still good; serve it and let the next
		// request retry the save.
		log.Error().Err(err).Str("feed", name).Msg("failed to persist feed")
	}
	s.responses.Set(ctx, name, doc, s.window)

	writeFeed(w, doc, s.window)
	log.Info().Str("feed", name).Msg("feed synthesized")
}

// writeErrorFeed serves the degraded single-entry document. The status
// stays 200: feed readers cope with an error entry, not with an error
// status and an empty body.
func (s *FeedService) writeErrorFeed(w http.ResponseWriter, repo gitapi.Repo, cause error) {
	doc, err := feed.Render(feed.ErrorDocument(repo, cause, s.now()))
	if err != nil {
		http.Error(w, "failed to render feed", http.StatusInternalServerError)
		return
	}
	fmt.Fprint(w, doc)
}

func writeFeed(w http.ResponseWriter, content string, maxAge time.Duration) {
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(maxAge.Seconds())))
	fmt.Fprint(w, content)
}
