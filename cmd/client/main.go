// Command client is the interactive trainerhub CLI.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/trainerhub/internal/client/cli"
	"github.com/dmitrijs2005/trainerhub/internal/client/client"
	"github.com/dmitrijs2005/trainerhub/internal/client/config"
	"github.com/dmitrijs2005/trainerhub/internal/client/media"
	"github.com/dmitrijs2005/trainerhub/internal/client/securestore"
	"github.com/dmitrijs2005/trainerhub/internal/client/services"
	"github.com/dmitrijs2005/trainerhub/internal/client/session"
	"github.com/dmitrijs2005/trainerhub/internal/logging"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("%v", err)
	}
}

func run() error {
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := securestore.Open(ctx, cfg.StoreOptions())
	if err != nil {
		return fmt.Errorf("open credential store: %w", err)
	}
	defer store.Close()

	var sess *session.Store
	gw, err := client.New(client.Options{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.RequestTimeout,
		OnUnauthorized: func(ctx context.Context) {
			if sess != nil {
				sess.Logout(ctx)
			}
		},
	}, store, logger)
	if err != nil {
		return err
	}

	svc := services.New(gw)
	sess = session.New(store, svc.Auth, logger)

	var uploader cli.Uploader
	if cfg.MediaEnabled() {
		up, err := media.NewUploader(ctx, media.Options{
			Bucket:        cfg.S3Bucket,
			Region:        cfg.S3Region,
			Endpoint:      cfg.S3Endpoint,
			AccessKey:     cfg.S3AccessKey,
			SecretKey:     cfg.S3SecretKey,
			PublicBaseURL: cfg.S3PublicBaseURL,
			UsePathStyle:  cfg.S3UsePathStyle,
		}, logger)
		if err != nil {
			logger.Warn(ctx, "video upload disabled", "error", err)
		} else {
			uploader = up
		}
	}

	logger.Debug(ctx, "starting", "api", gw.BaseURL(), "store", cfg.StoreBackend)
	cli.NewApp(sess, svc, uploader, os.Stdin, os.Stdout, logger).Run(ctx)
	return nil
}
