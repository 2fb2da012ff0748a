package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/danielhkuo/keycap-swiss/cliparse"
	"github.com/danielhkuo/keycap-swiss/db"
	"github.com/danielhkuo/keycap-swiss/freeze"
	"github.com/danielhkuo/keycap-swiss/handlers"
	"github.com/danielhkuo/keycap-swiss/metrics"
	"github.com/danielhkuo/keycap-swiss/models"
	"github.com/danielhkuo/keycap-swiss/registry"
	"github.com/danielhkuo/keycap-swiss/router"
	"github.com/danielhkuo/keycap-swiss/tournament"
	"github.com/danielhkuo/keycap-swiss/views"
)

func main() {
	var err error
	ctx := context.Background()

	// A missing .env is fine; real environment variables still apply
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Register players
	players, err := registry.ScanDir(cfg.ImagesDir, cfg.Sources)
	if err != nil {
		slog.Error("image scan failed", "error", err, "dir", cfg.ImagesDir)
		os.Exit(1)
	}
	slog.Info("players registered", "count", len(players), "dir", cfg.ImagesDir)

	var observers tournament.Observers
	opts := []tournament.Option{}
	if cfg.Seed != 0 {
		opts = append(opts, tournament.WithSeed(cfg.Seed))
	}

	// Match archive (optional)
	var archive *db.Archive
	if cfg.DatabaseURL != "" {
		var dbConn *sql.DB
		dbConn, err = db.Open(cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			slog.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		defer dbConn.Close()

		// Create schema (tables)
		if err := db.CreateSchema(dbConn); err != nil {
			slog.Error("schema creation failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Database schema ready", "type", cfg.DatabaseType)

		archive, err = db.NewArchive(ctx, dbConn, len(players))
		if err != nil {
			slog.Error("archive start failed", "error", err)
			os.Exit(1)
		}
		observers = append(observers, archive)
	}

	// Metrics
	var metricsHandler http.Handler
	if cfg.Metrics {
		m := metrics.New(prometheus.NewRegistry(), len(players))
		metricsHandler = m.Handler()
		observers = append(observers, m)
	}
	if len(observers) > 0 {
		opts = append(opts, tournament.WithObserver(observers))
	}

	ctrl := tournament.NewController(players, opts...)

	tmpl, err := views.New()
	if err != nil {
		slog.Error("template parsing failed", "error", err)
		os.Exit(1)
	}

	// Create router
	mux := router.NewRouter(router.Deps{
		Controller: ctrl,
		Templates:  tmpl,
		Theme:      handlers.NewTheme(cfg.Background),
		Archive:    archive,
		Metrics:    metricsHandler,
	}, cfg)

	if cfg.FreezeDir != "" {
		if err := freezeSite(ctx, mux, cfg, players); err != nil {
			slog.Error("freeze failed", "error", err)
			os.Exit(1)
		}
		return
	}

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// freezeSite writes the static copy and optionally publishes it
func freezeSite(ctx context.Context, mux http.Handler, cfg cliparse.Config, players []*models.Player) error {
	var images []string
	for _, p := range players {
		images = append(images, p.Images...)
	}

	files, err := freeze.New(mux, cfg.ImagesDir).Freeze(ctx, cfg.FreezeDir, images)
	if err != nil {
		return err
	}

	if cfg.S3Bucket == "" {
		return nil
	}
	pub, err := freeze.NewS3Publisher(ctx, cfg.S3Bucket)
	if err != nil {
		return err
	}
	return pub.Publish(ctx, cfg.FreezeDir, files)
}
