package devapi

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/trainerhub/internal/common"
	"github.com/dmitrijs2005/trainerhub/internal/logging"
)

const (
	shutdownTimeout = 5 * time.Second

	DemoPersonalEmail = "trainer@example.com"
	DemoStudentEmail  = "student@example.com"
	DemoPassword      = "secret123"
)

// App runs the dev API until its context ends.
type App struct {
	config *Config
	logger logging.Logger
	server *Server
}

func NewApp(cfg *Config, logger logging.Logger) (*App, error) {
	secret := cfg.Secret
	if secret == "" {
		s, err := common.MakeRandHexString(32)
		if err != nil {
			return nil, fmt.Errorf("generate secret: %w", err)
		}
		secret = s
		logger.Warn(context.Background(), "no signing key configured, tokens will not survive a restart")
	}

	srv, err := New(Options{Secret: []byte(secret), TokenTTL: cfg.TokenTTL}, logger)
	if err != nil {
		return nil, err
	}

	if cfg.Seed {
		if err := srv.Seed(DemoPersonalEmail, DemoStudentEmail, DemoPassword); err != nil {
			return nil, fmt.Errorf("seed: %w", err)
		}
		logger.Info(context.Background(), "demo accounts created",
			"personal", DemoPersonalEmail, "student", DemoStudentEmail, "password", DemoPassword)
	}

	return &App{config: cfg, logger: logger, server: srv}, nil
}

// Run serves until ctx is done, then shuts down gracefully.
func (app *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.server.Start(app.config.Addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info(ctx, "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := app.server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return <-errCh
}
