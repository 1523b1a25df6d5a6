package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"agoralab-core/internal/application/service"
	"agoralab-core/internal/config"
	"agoralab-core/internal/database"
	"agoralab-core/internal/domain/events"
	"agoralab-core/internal/domain/listing"
	"agoralab-core/internal/domain/repo"
	"agoralab-core/internal/github"
	"agoralab-core/internal/infrastructure/content"
	infraGitHub "agoralab-core/internal/infrastructure/github"
	"agoralab-core/internal/infrastructure/persistence"
)

// app wires the layers together for one process
type app struct {
	listing     *service.Listing
	posts       *service.PostService
	diagnostics *service.DiagnosticsService
	db          *database.DB
}

func newApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*app, error) {
	// Infrastructure layer
	githubClient, err := github.NewClient(github.Options{
		BaseURL: cfg.GitHub.BaseURL,
		Token:   cfg.GitHub.Token,
		Timeout: cfg.GitHub.Timeout,
	})
	if err != nil {
		return nil, err
	}
	githubService := infraGitHub.NewGitHubService(githubClient)

	orgs, err := repo.ParseOrgIDs(cfg.GitHub.Orgs)
	if err != nil {
		return nil, fmt.Errorf("invalid GITHUB_ORGS: %w", err)
	}
	policy, err := service.ParseFailurePolicy(cfg.Listing.FailurePolicy)
	if err != nil {
		return nil, err
	}

	a := &app{}
	var cycleRepo listing.LoadCycleRepo
	if cfg.Database.DSN != "" {
		db, err := database.NewConnection(ctx, &cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := db.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, err
		}
		a.db = db
		cycleRepo = persistence.NewLoadCycleRepository(db)
		logger.Info("Recording load cycles in database", zap.String("driver", cfg.Database.Driver))
	} else {
		cycleRepo = persistence.NewMemoryLoadCycleRepository(persistence.DefaultMemoryCapacity)
	}

	// Application layer
	dispatcher := events.NewDispatcher(logger.Named("events"))
	a.diagnostics = service.NewDiagnosticsService(cycleRepo, logger.Named("diagnostics"))
	a.diagnostics.Subscribe(dispatcher)

	repositoryService := service.NewRepositoryService(githubService, cfg.GitHub.PerPage, policy, logger.Named("repositories"))
	a.listing, err = service.NewListing(repositoryService, orgs, cfg.Listing.PageSize, dispatcher, logger.Named("listing"))
	if err != nil {
		a.Close()
		return nil, err
	}

	a.posts = service.NewPostService(content.NewFileSource(cfg.Content.PostsDir, logger.Named("content")), logger.Named("posts"))

	return a, nil
}

// Close releases the database connection, if any
func (a *app) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
