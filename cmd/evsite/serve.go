package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/everydayventures/website/internal/config"
	"github.com/everydayventures/website/internal/logging"
	"github.com/everydayventures/website/internal/server"
	"github.com/everydayventures/website/internal/service"
	"github.com/everydayventures/website/internal/telemetry"
	"github.com/everydayventures/website/internal/version"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the website and the contact endpoint",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		logging.Configure(cfg.Logging())
		logger := logging.GetLogger()
		defer logger.Close()

		logger.Info("Starting evsite %s in %s mode", version.Info(), cfg.Environment)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		shutdownTracing, err := telemetry.Init(ctx, server.ServiceName, cfg.OTLPEndpoint)
		if err != nil {
			return fmt.Errorf("failed to initialize telemetry: %w", err)
		}
		defer func() {
			if err := shutdownTracing(context.Background()); err != nil {
				logger.Warn("Failed to flush traces: %v", err)
			}
		}()

		mailer := service.NewMailChannelsService(service.MailChannelsConfig{
			URL:     cfg.MailChannelsURL,
			APIKey:  cfg.MailChannelsAPIKey,
			Timeout: cfg.MailTimeout,
		}, logger)

		srv := server.NewServer(cfg, mailer, logger)
		if err := srv.Start(ctx); err != nil {
			logger.Error("Server stopped: %v", err)
			return err
		}

		logger.Info("Server stopped")
		return nil
	},
}
