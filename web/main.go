package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rogerio-castellano/product-catalog/internal/client"
	"github.com/rogerio-castellano/product-catalog/internal/config"
	"github.com/rogerio-castellano/product-catalog/internal/logging"
	"github.com/rogerio-castellano/product-catalog/internal/web"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Could not load configuration")
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format)

	if err := run(cfg, logger); err != nil {
		logger.WithError(err).Fatal("Web frontend stopped")
	}
}

func run(cfg *config.Config, logger *logrus.Logger) error {
	if err := cfg.ValidateWeb(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	api := client.NewCatalogHTTPClient(cfg.Web.APIBaseURL, 10*time.Second, logger)
	s, err := web.NewServer(api, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Web.Addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.WithFields(logrus.Fields{"addr": cfg.Web.Addr, "api": cfg.Web.APIBaseURL}).Info("✅ Web frontend running")
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
