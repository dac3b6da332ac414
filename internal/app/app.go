package app

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"pixel_casino/internal/config"

	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	ServiceProvider *ServiceProvider
	logger          *zap.Logger
}

func NewApp(logger *zap.Logger) *App {
	return &App{logger: logger}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider(s.logger)
}

func (s *App) Run() error {
	err := config.Load(".env")
	if err != nil {
		s.logger.Warn("error loading .env file", zap.Error(err))
	}
	s.initServiceProvider()
	defer s.ServiceProvider.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              s.ServiceProvider.HTTPCfg().Address(),
		Handler:           s.ServiceProvider.Router(ctx),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", zap.String("address", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
