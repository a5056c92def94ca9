package main

import (
	"context"
	"errors"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rogerio-castellano/product-catalog/internal/app"
	"github.com/rogerio-castellano/product-catalog/internal/auth"
	"github.com/rogerio-castellano/product-catalog/internal/config"
	"github.com/rogerio-castellano/product-catalog/internal/db"
	"github.com/rogerio-castellano/product-catalog/internal/http/handlers"
	rl "github.com/rogerio-castellano/product-catalog/internal/http/rate_limiter"
	"github.com/rogerio-castellano/product-catalog/internal/http/router"
	"github.com/rogerio-castellano/product-catalog/internal/logging"
	"github.com/rogerio-castellano/product-catalog/internal/mediator"
	"github.com/rogerio-castellano/product-catalog/internal/pkg/clock"
	"github.com/rogerio-castellano/product-catalog/internal/redissvc"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
	"github.com/sirupsen/logrus"
)

// @title Product Catalog API
// @version 1.0
// @description REST API for browsing and administering a product catalog.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Could not load configuration")
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format)

	if err := run(cfg, logger); err != nil {
		logger.WithError(err).Fatal("Server stopped")
	}
}

func run(cfg *config.Config, logger *logrus.Logger) error {
	if err := cfg.ValidateAPI(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := db.Connect(db.Options{
		URL:          cfg.Database.URL,
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
		Logger:       logger,
	})
	if err != nil {
		return err
	}
	defer db.Close(database)

	if cfg.Database.AutoMigrate {
		if err := db.Migrate(ctx, database); err != nil {
			return err
		}
	}

	clk := clock.NewRealClock()
	products := repo.NewGormProductRepository(database)
	var categories repo.CategoryRepository = repo.NewGormCategoryRepository(database)
	healthChecks := []func(ctx context.Context) error{db.Ping(database)}

	if cfg.Redis.Addr != "" {
		cache, err := redissvc.Connect(ctx, cfg.Redis.Addr)
		if err != nil {
			return err
		}
		defer cache.Close()
		categories = repo.NewCachedCategoryRepository(categories, cache, cfg.Redis.TTL, logger)
		healthChecks = append(healthChecks, cache.Ping)
		logger.WithField("addr", cfg.Redis.Addr).Info("Category cache enabled")
	}

	if cfg.Database.Seed {
		rnd := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
		seeded, err := db.Seed(ctx, categories, products, clk, rnd)
		if err != nil {
			logger.WithError(err).Error("Seeding failed")
		} else if seeded {
			logger.Info("Seeded sample catalog")
		}
	}

	m := mediator.New(mediator.LoggingBehavior(logger, app.IsClientError))
	app.Register(m, app.Dependencies{
		Categories:  categories,
		Products:    products,
		Metrics:     repo.NewGormMetricsRepository(database),
		Clock:       clk,
		MaxPageSize: cfg.MaxPageSize,
	})

	handlers.SetMediator(m)
	handlers.SetLogger(logger)
	handlers.SetHealthCheck(healthChecks...)

	opts := router.Options{Logger: logger, SlowRequest: cfg.HTTP.SlowRequest}
	if cfg.AdminEnabled() {
		opts.Tokens = auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, clk)
		handlers.SetAuth(opts.Tokens, auth.Admin{
			Username:     cfg.Auth.AdminUsername,
			PasswordHash: cfg.Auth.AdminPasswordHash,
		})
	}
	if cfg.Rate.RPS > 0 {
		opts.Limiter = rl.New(cfg.Rate.RPS, cfg.Rate.Burst)
		go opts.Limiter.StartCleanupLoop(ctx, time.Minute, logger)
	}

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router.NewRouter(opts),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.WithField("addr", cfg.HTTP.Addr).Info("✅ Server running")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
