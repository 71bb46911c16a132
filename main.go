package main

import (
	"WhereIsIt/database"
	"WhereIsIt/internal/config"
	"WhereIsIt/internal/server"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configurationFilePath string

	root := &cobra.Command{
		Use:          "whereisit",
		Short:        "Track what is stored in which box",
		SilenceUsage: true,
		RunE: func(c *cobra.Command, _ []string) error {
			return serve(c.Context(), configurationFilePath)
		},
	}
	root.PersistentFlags().StringVar(&configurationFilePath, "config", defaultConfigurationFile(), "path to the yaml configuration file")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(c *cobra.Command, _ []string) error {
			return serve(c.Context(), configurationFilePath)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE: func(_ *cobra.Command, _ []string) error {
			return migrate(configurationFilePath)
		},
	})
	return root
}

func defaultConfigurationFile() string {
	if path := os.Getenv("WHEREISIT_CONFIG"); path != "" {
		return path
	}
	return config.DefaultConfigurationFile
}

func serve(ctx context.Context, configurationFilePath string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := InitializeServer(ctx, configurationFilePath)
	if err != nil {
		logrus.Errorf("Failed to initialize server: %v", err)
		return err
	}
	defer database.CloseDatabase(srv.DB)
	log := srv.LogService.Log

	if err = srv.JanitorService.StartCleanCycle(); err != nil {
		return err
	}
	defer srv.JanitorService.StopClean()

	app := server.NewApp(srv)
	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Errorf("Failed to shut down server: %v", err)
		}
	}()

	address := fmt.Sprintf(":%d", srv.Configuration.Server.Port)
	log.WithFields(logrus.Fields{
		"address":   address,
		"base_path": srv.Configuration.Server.BasePath,
		"database":  srv.Configuration.Database.Driver,
		"storage":   srv.Configuration.Storage.Driver,
	}).Info("starting server")
	if err = app.Listen(address); err != nil {
		log.Errorf("Failed to start server: %v", err)
		return err
	}
	return nil
}

func migrate(configurationFilePath string) error {
	cfg, err := config.LoadConfiguration(configurationFilePath)
	if err != nil {
		logrus.Errorf("Failed to load configuration: %v", err)
		return err
	}
	db, err := database.SetupDatabase(cfg)
	if err != nil {
		logrus.Errorf("Failed to connect to the database: %v", err)
		return err
	}
	defer database.CloseDatabase(db)
	logrus.WithField("driver", cfg.Database.Driver).Info("database schema is up to date")
	return nil
}
