package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"catalog/admin/internal/config"
	"catalog/admin/internal/container"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "catalog-admin",
	Short: "Web administration for the product catalog",
	Long: `catalog-admin serves an HTML interface for managing categories and
products stored behind the catalog REST API.

Running it without a subcommand is the same as "serve".`,
	SilenceUsage: true,
	RunE:         runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the admin web server",
	RunE:  runServe,
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the catalog API is reachable and print collection sizes",
	RunE:  runCheck,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default: ./config.yaml)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(checkCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup() (*container.Container, error) {
	// Load configuration using viper
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	configureLogging(cfg.Log)
	log.Info("Configuration loaded successfully")

	// Initialize container with all dependencies
	app, err := container.New(cfg, log.StandardLogger())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize container: %w", err)
	}
	return app, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	log.Info("Starting catalog admin...")

	app, err := setup()
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.Run(cmd.Context()); err != nil {
		return fmt.Errorf("application exited with error: %w", err)
	}

	log.Info("Application finished successfully")
	return nil
}

func runCheck(cmd *cobra.Command, _ []string) error {
	app, err := setup()
	if err != nil {
		return err
	}
	defer app.Close()

	stats, err := app.Check(cmd.Context())
	if err != nil {
		return fmt.Errorf("catalog API at %s is not healthy: %w", app.Config.API.BaseURL, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✔ %s\n  categorias: %d\n  produtos:   %d\n", app.Config.API.BaseURL, stats.Categories, stats.Products)
	return nil
}

func configureLogging(cfg config.LogConfig) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		log.Warnf("Unknown log level %q, using info", cfg.Level)
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
