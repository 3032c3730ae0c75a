package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gittags/gittags/internal/cache"
	"github.com/gittags/gittags/internal/data"
	"github.com/gittags/gittags/internal/feed"
	"github.com/gittags/gittags/internal/routes"
	"github.com/gittags/gittags/internal/service"
	"github.com/gittags/gittags/pkg/config"
	"github.com/gittags/gittags/pkg/gitapi"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg := config.Load()

	// Initialize the database
	db := data.InitDB(cfg)

	// Create the stores
	feedStore := data.NewGormFeedStore(db)
	commitStore := data.NewGormCommitStore(db)

	// Initialize the GitHub client
	gc := gitapi.NewClient(cfg.GithubToken)

	// Optional Redis layer in front of the feed record store
	responses := cache.New(cfg.RedisAddr)

	// Create the feed synthesis engine and its HTTP service
	generator := feed.NewGenerator(gc, commitStore)
	svc := service.NewFeedService(feedStore, generator, responses, cfg.CacheWindow)

	// Set up HTTP routes
	router := routes.NewRouter(svc)

	// Start the HTTP server
	log.Info().Str("addr", cfg.ServerAddr).Msg("Server is running")
	if err := http.ListenAndServe(cfg.ServerAddr, router); err != nil {
		log.Fatal().Err(err).Msg("Could not start server")
	}
}
