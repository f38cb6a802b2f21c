package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/kolocal/kolocal-api/internal/config"
	"github.com/kolocal/kolocal-api/internal/handler"
	"github.com/kolocal/kolocal-api/internal/pkg/database"
	"github.com/kolocal/kolocal-api/internal/repository"
)

// Dependencies holds all application dependencies
type Dependencies struct {
	Config *config.Config
	Logger *zap.Logger

	// Selected database backend
	DB database.Conn

	// Repositories
	Store *repository.Store

	// Handlers
	HealthHandler *handler.HealthHandler
	PlacesHandler *handler.PlacesHandler
	PostsHandler  *handler.PostsHandler
	EventsHandler *handler.EventsHandler
}

// initDependencies initializes all dependencies
func initDependencies(cfg *config.Config, logger *zap.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	ctx := context.Background()

	// Resolve the database backend; fails fast with a configuration error
	// when neither backend is configured.
	conn, err := database.Select(ctx, cfg)
	if err != nil {
		return nil, err
	}
	deps.DB = conn

	logger.Info("database backend selected", zap.String("backend", string(conn.Kind())))

	// Repositories, bound to the selected backend for the process lifetime
	deps.Store = repository.NewStore(conn)

	// Handlers
	deps.HealthHandler = handler.NewHealthHandler(conn, appVersion)
	deps.PlacesHandler = handler.NewPlacesHandler(deps.Store.Places, logger)
	deps.PostsHandler = handler.NewPostsHandler(deps.Store.Posts, logger)
	deps.EventsHandler = handler.NewEventsHandler(deps.Store.Events, logger)

	return deps, nil
}

// Close releases all held resources
func (d *Dependencies) Close() {
	if d.DB != nil {
		if err := d.DB.Close(); err != nil {
			d.Logger.Warn("failed to close database", zap.Error(err))
		}
	}
}
