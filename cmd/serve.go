package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kimminjae413/hairgator-hairfolio-sub001/internal/analyzer"
	"github.com/kimminjae413/hairgator-hairfolio-sub001/internal/catalog"
	"github.com/kimminjae413/hairgator-hairfolio-sub001/internal/config"
	"github.com/kimminjae413/hairgator-hairfolio-sub001/internal/detector"
	"github.com/kimminjae413/hairgator-hairfolio-sub001/internal/scoring"
	"github.com/kimminjae413/hairgator-hairfolio-sub001/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the analysis API server",
	Long: `Start the Hairfolio API server.
The server accepts portrait uploads, runs the classification pipeline and
exposes every catalog style with its recommendation score.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().Int("port", 8080, "Port to listen on")
	serveCmd.Flags().String("host", "0.0.0.0", "Host to bind to")
}

// loadCatalog loads the operator-provided catalog file, falling back to the
// embedded default.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.Catalog.Path != "" {
		c, err := catalog.LoadFile(cfg.Catalog.Path)
		if err != nil {
			return nil, fmt.Errorf("loading catalog from %s: %w", cfg.Catalog.Path, err)
		}
		return c, nil
	}
	return catalog.Parse(config.DefaultCatalog())
}

// resolveServeHostPort resolves port and host from flags and environment
// variables. A WEB_PORT that is not a valid port keeps the flag value.
func resolveServeHostPort(cmd *cobra.Command) (int, string) {
	port := mustGetInt(cmd, "port")
	host := mustGetString(cmd, "host")

	if envPort := os.Getenv("WEB_PORT"); envPort != "" {
		if n, err := strconv.Atoi(envPort); err == nil && n > 0 && n < 65536 {
			port = n
		}
	}
	if envHost := os.Getenv("WEB_HOST"); envHost != "" {
		host = envHost
	}
	return port, host
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	log := newLogger(cfg.Log.Level)

	styleCatalog, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	log.Info().Int("styles", styleCatalog.Len()).Msg("catalog loaded")

	faceMesh := detector.NewFaceMesh(cfg.Detector.URL, cfg.Detector.Timeout, log)
	pipeline := analyzer.New(faceMesh, log)
	tracker := analyzer.NewTracker()

	port, host := resolveServeHostPort(cmd)
	server := web.NewServer(web.Deps{
		Analyzer:       pipeline,
		Tracker:        tracker,
		Catalog:        styleCatalog,
		Scoring:        scoring.DefaultConfig(),
		AllowedOrigins: cfg.Web.AllowedOrigins,
		Log:            log,
	}, port, host)

	// Warm the detection model in the background so the first upload does not
	// pay the full load cost. Failure here is not fatal; Detect retries lazily.
	go func() {
		warmCtx, cancel := context.WithTimeout(context.Background(), cfg.Detector.Timeout)
		defer cancel()
		if err := faceMesh.Init(warmCtx); err != nil {
			log.Warn().Err(err).Msg("detector warm-up failed, will retry on first request")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info().Msg("shutting down")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("error during shutdown")
		}
	}()

	log.Info().Str("host", host).Int("port", port).Msg("starting Hairfolio API")
	if err := server.Start(); err != nil {
		return fmt.Errorf("starting server: %w", err)
	}
	return nil
}
