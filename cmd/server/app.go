package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/gradepath/gradepath-api/internal/api"
	apiMiddleware "github.com/gradepath/gradepath-api/internal/api/middleware"
	"github.com/gradepath/gradepath-api/internal/config"
	"github.com/gradepath/gradepath-api/internal/domain/match"
	"github.com/gradepath/gradepath-api/internal/platform/postgres"
	"github.com/gradepath/gradepath-api/internal/platform/rediscache"
	"github.com/gradepath/gradepath-api/internal/service"
	"github.com/gradepath/gradepath-api/internal/task"
)

// application holds the wired dependencies of the server.
type application struct {
	config      *config.Config
	logger      *slog.Logger
	cache       *rediscache.Cache
	runner      *task.Runner
	catalogs    *service.CatalogService
	eligibility *service.EligibilityService
}

// newApplication wires stores, caches, the background refresher and
// the services.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	catalogStore := postgres.NewPostgresCatalogStore(db, logger)
	careerStore := postgres.NewPostgresCareerStore(db, logger)

	var cache *rediscache.Cache
	if cfg.Redis.Enabled {
		cache = rediscache.New(rediscache.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, logger)

		if err := cache.Ping(context.Background()); err != nil {
			// A cold snapshot cache is degraded, not fatal: the
			// service still reads through to the primary store.
			logger.Warn("redis unreachable, continuing without snapshot cache",
				"error", err)
			_ = cache.Close()
			cache = nil
		}
	}

	runner := task.NewRunner(task.DefaultRunnerConfig(), logger)
	runner.Start()

	catalogs := service.NewCatalogService(
		catalogStore,
		careerStore,
		cacheOrNil(cache),
		runner,
		service.CatalogServiceConfig{
			CatalogTTL: cfg.Cache.CatalogTTL,
			CareerTTL:  cfg.Cache.CareerTTL,
		},
		logger,
	)

	eligibility := service.NewEligibilityService(
		catalogs,
		match.NewDefaultService(),
		cfg.Engine.EnforceCompulsorySubjects,
		logger,
	)

	return &application{
		config:      cfg,
		logger:      logger,
		cache:       cache,
		runner:      runner,
		catalogs:    catalogs,
		eligibility: eligibility,
	}, nil
}

// cacheOrNil avoids storing a typed nil in the SnapshotCache interface.
func cacheOrNil(cache *rediscache.Cache) service.SnapshotCache {
	if cache == nil {
		return nil
	}
	return cache
}

// close releases background resources.
func (app *application) close() {
	app.runner.Stop()
	if app.cache != nil {
		_ = app.cache.Close()
	}
}

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	eligibilityHandler := api.NewEligibilityHandler(app.eligibility, app.logger)
	catalogHandler := api.NewCatalogHandler(app.catalogs, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/countries/{code}/subjects", catalogHandler.GetSubjects)
		r.Post("/eligibility", eligibilityHandler.Evaluate)
		r.Post("/improvements", eligibilityHandler.Improvements)
		r.Post("/universities", eligibilityHandler.Universities)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
