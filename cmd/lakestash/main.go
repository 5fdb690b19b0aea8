package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/lakestash/lakestash/internal/api"
	"github.com/lakestash/lakestash/internal/auth"
	"github.com/lakestash/lakestash/internal/config"
	"github.com/lakestash/lakestash/internal/db"
	"github.com/lakestash/lakestash/internal/logging"
	"github.com/lakestash/lakestash/internal/store"
	"github.com/lakestash/lakestash/web"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: lakestash <serve>")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		cmdServe(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\nUsage: lakestash <serve>\n", os.Args[1])
		os.Exit(1)
	}
}

func cmdServe(args []string) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", cfg.ListenAddr, "listen address")
	dbPath := fs.String("db", cfg.DBPath, "path to SQLite database file")
	backend := fs.String("backend", cfg.StoreBackend, "store backend (sqlite or memory)")
	fs.Parse(args)

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer cleanup()

	var st store.Store
	switch *backend {
	case config.BackendMemory:
		logger.Info("using in-memory store, items will not survive a restart")
		st = store.NewMemoryStore()
	case config.BackendSQLite:
		database, err := db.Open(*dbPath)
		if err != nil {
			logger.Error("failed to open database", "path", *dbPath, "error", err)
			os.Exit(1)
		}
		defer database.Close()

		if err := db.Migrate(database); err != nil {
			logger.Error("failed to migrate database", "error", err)
			os.Exit(1)
		}
		st = store.NewSQLiteStore(database)
	default:
		logger.Error("unknown store backend", "backend", *backend)
		os.Exit(1)
	}

	resolver := &auth.Resolver{
		DevFallback: !cfg.Production,
		Secret:      cfg.PrincipalSecret,
	}
	if !cfg.Production {
		logger.Info("running outside production, development identity enabled")
	}

	// Combine: API routes take priority, static UI handles the rest.
	mux := http.NewServeMux()
	mux.Handle("/api/", api.NewRouter(st, resolver))
	mux.Handle("/", http.FileServer(http.FS(web.StaticFS())))

	handler := api.LoggingMiddleware(mux)

	logger.Info("server listening", "addr", *addr)
	srv := &http.Server{
		Addr:         *addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
