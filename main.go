package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/perma-check/cliparse"
	"github.com/danielhkuo/perma-check/db"
	"github.com/danielhkuo/perma-check/instrument"
	"github.com/danielhkuo/perma-check/metrics"
	"github.com/danielhkuo/perma-check/middleware"
	"github.com/danielhkuo/perma-check/registry"
	"github.com/danielhkuo/perma-check/router"
)

// sweepInterval is how often idle sessions are checked for, bounded so a
// short ttl is still honored promptly.
func sweepInterval(ttl time.Duration) time.Duration {
	interval := ttl / 4
	if interval < time.Second {
		interval = time.Second
	}
	if interval > time.Minute {
		interval = time.Minute
	}
	return interval
}

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Load the instrument; a bad catalog is fatal
	catalog, err := instrument.LoadFile(cfg.CatalogPath)
	if err != nil {
		slog.Error("catalog load failed", "path", cfg.CatalogPath, "error", err)
		os.Exit(1)
	}
	slog.Info("Catalog ready",
		"items", catalog.Len(),
		"domains", len(catalog.Domains()),
		"maximum", catalog.Maximum(),
	)

	// Optional export archive
	var store *db.SnapshotStore
	if cfg.ArchiveEnabled() {
		dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			slog.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		defer dbConn.Close()

		if err := db.CreateSchema(dbConn); err != nil {
			slog.Error("schema creation failed", "error", err)
			os.Exit(1)
		}
		store = db.NewSnapshotStore(dbConn)
		slog.Info("Export archive ready", "type", cfg.DatabaseType)
	} else {
		slog.Info("Export archive disabled")
	}

	// Sessions live in memory only
	reg := registry.New(catalog, cfg.SessionTTL)
	metrics.RegisterLiveSessions(reg.Len)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go reg.Run(ctx, sweepInterval(cfg.SessionTTL))

	// Create router
	mux := router.NewRouter(reg, store, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		cancel()
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "session_ttl", cfg.SessionTTL)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
