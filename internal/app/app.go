package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"
	"golang.org/x/sync/errgroup"

	"github.com/rwalsh/lattice-backend/internal/adapter/postgres"
	modulerepo "github.com/rwalsh/lattice-backend/internal/adapter/postgres/module"
	noderepo "github.com/rwalsh/lattice-backend/internal/adapter/postgres/node"
	tagrepo "github.com/rwalsh/lattice-backend/internal/adapter/postgres/tag"
	tokenrepo "github.com/rwalsh/lattice-backend/internal/adapter/postgres/token"
	userrepo "github.com/rwalsh/lattice-backend/internal/adapter/postgres/user"
	zonerepo "github.com/rwalsh/lattice-backend/internal/adapter/postgres/zone"
	"github.com/rwalsh/lattice-backend/internal/auth"
	"github.com/rwalsh/lattice-backend/internal/config"
	authsvc "github.com/rwalsh/lattice-backend/internal/service/auth"
	"github.com/rwalsh/lattice-backend/internal/service/moduleview"
	nodesvc "github.com/rwalsh/lattice-backend/internal/service/node"
	tagsvc "github.com/rwalsh/lattice-backend/internal/service/tag"
	zonesvc "github.com/rwalsh/lattice-backend/internal/service/zone"
	"github.com/rwalsh/lattice-backend/internal/transport/middleware"
	"github.com/rwalsh/lattice-backend/internal/transport/rest"
	"github.com/rwalsh/lattice-backend/migrations"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, services and handlers, and serves HTTP
// until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.MigrateOnStart {
		if err := runMigrations(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	nodes := noderepo.New(pool)
	tags := tagrepo.New(pool)
	zones := zonerepo.New(pool)
	modules := modulerepo.New(pool)
	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	nodeSvc := nodesvc.NewService(logger, nodes, tags, txm)
	tagSvc := tagsvc.NewService(logger, tags, nodes)
	zoneSvc := zonesvc.NewService(logger, zones, txm)
	moduleSvc := moduleview.NewService(logger, modules, zones, nodes, tags)
	authSvc := authsvc.NewService(logger, users, tokens, jwtManager, cfg.Auth.RefreshTokenTTL)

	router := rest.NewRouter(rest.Handlers{
		Health: rest.NewHealthHandler(pool, BuildVersion()),
		Auth:   rest.NewAuthHandler(authSvc, logger),
		Node:   rest.NewNodeHandler(nodeSvc, logger),
		Tag:    rest.NewTagHandler(tagSvc, logger),
		Zone:   rest.NewZoneHandler(zoneSvc, logger),
		Module: rest.NewModuleHandler(moduleSvc, logger),
	})

	limiter := middleware.NewRateLimiter(cfg.Limits.CleanupInterval)
	defer limiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.Limits.RequestsPerMinute),
		middleware.Auth(authSvc),
	)(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// runMigrations applies pending goose migrations from the embedded FS.
// goose requires database/sql, so a short-lived connection is opened
// separately from the pgx pool.
func runMigrations(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("sql open: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
