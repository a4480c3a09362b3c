// Package server assembles the HTTP API: it opens Postgres, applies the
// migrations, builds the services and serves them until the context ends.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/sporttogether/internal/logging"
	"github.com/dmitrijs2005/sporttogether/internal/server/assets"
	"github.com/dmitrijs2005/sporttogether/internal/server/config"
	"github.com/dmitrijs2005/sporttogether/internal/server/httpapi"
	"github.com/dmitrijs2005/sporttogether/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/sporttogether/internal/server/services"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

var (
	openDB = func(dsn string) (*sql.DB, error) {
		return sql.Open("pgx", dsn)
	}
	newIconStore = func(ctx context.Context, cfg *config.Config) (assets.IconStore, error) {
		return assets.NewS3IconStore(ctx, cfg)
	}
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *http.Server
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := openDB(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	icons, err := newIconStore(ctx, c)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("icon store: %w", err)
	}

	h := httpapi.NewHandler(
		services.NewUserService(db, rm, c),
		services.NewGameService(db, rm),
		icons,
		logger,
	)

	srv := &http.Server{
		Addr:              c.HTTPAddr,
		Handler:           httpapi.NewRouter(h, c.CORSOrigins),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       time.Minute,
	}

	return &App{config: c, logger: logger.With("module", "app"), db: db, server: srv}, nil
}

// Run serves until ctx is cancelled, then drains in-flight requests and
// closes the database.
func (app *App) Run(ctx context.Context) error {
	defer app.db.Close()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.logger.Info(ctx, "starting HTTP server", "address", app.server.Addr)
		if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		app.logger.Info(ctx, "stopping HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return app.server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
