package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/ocm-tools/ocm-navigator/internal/api"
	"github.com/ocm-tools/ocm-navigator/internal/config"
	"github.com/ocm-tools/ocm-navigator/internal/service"
	"github.com/ocm-tools/ocm-navigator/internal/storage"
	"github.com/ocm-tools/ocm-navigator/internal/storage/sql"
	"github.com/ocm-tools/ocm-navigator/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// SQLite needs the containing directory to exist.
	if cfg.Database.Driver == "sqlite3" {
		if dir := filepath.Dir(cfg.Database.DSN); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				log.Fatalf("Failed to create data directory: %v", err)
			}
		}
	}

	kv, err := sql.New(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer kv.Close()

	adapter := storage.NewPortfolioAdapter(kv)
	st := store.New(adapter.Load(context.Background()))
	persister := service.NewPersister(st, adapter, cfg.Save.Debounce, cfg.Save.AutoSave)

	router := api.NewRouter(st, persister)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Starting OCM Navigator on http://%s", cfg.Server.Addr())
	log.Printf("Press Ctrl+C to stop")

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	// Persist whatever the debounce window would have dropped.
	if err := persister.Flush(ctx); err != nil {
		log.Printf("Final save failed: %v", err)
	}

	log.Println("Server stopped")
}
