/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the cap-table conversion service. Handles
  configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Parse command-line flags
  2. Initialize the SQLite mirror store
  3. Create API handler (converters register at package init)
  4. Optionally start the snapshot sync scheduler
  5. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -port      HTTP server port (default: 8080)
  -db        SQLite mirror database path (default: mirror.db)
             Use ":memory:" for an in-memory mirror
  -snapshot  Open-format snapshot file to sync on an interval (optional)
  -interval  Snapshot sync interval (default: 1h)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop the sync scheduler
  2. Stop accepting new connections
  3. Wait for active requests to complete (30s timeout)
  4. Close the mirror database
  5. Exit

EXAMPLES:
  # Run with a file mirror
  ./server -db="./data/mirror.db"

  # Track a snapshot file every ten minutes
  ./server -snapshot="./captable.ocf.json" -interval=10m

SEE ALSO:
  - api/server.go: Router configuration
  - api/scheduler.go: Snapshot sync scheduler
  - store/sqlite/sqlite.go: Mirror implementation
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Fairmint/ocp-canton-sdk-sub006/api"
	"github.com/Fairmint/ocp-canton-sdk-sub006/store/sqlite"

	_ "github.com/Fairmint/ocp-canton-sdk-sub006/entities"
)

func main() {
	// Flags
	port := flag.Int("port", 8080, "HTTP server port")
	dbPath := flag.String("db", "mirror.db", "SQLite mirror database path")
	snapshot := flag.String("snapshot", "", "open-format snapshot file to sync periodically")
	interval := flag.Duration("interval", time.Hour, "snapshot sync interval")
	flag.Parse()

	// Initialize mirror store
	store, err := sqlite.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize mirror database: %v", err)
	}
	defer store.Close()

	// Initialize handler
	handler := api.NewHandler(store)

	// Optional snapshot tracking
	var scheduler *api.SyncScheduler
	if *snapshot != "" {
		scheduler = api.NewSyncScheduler(handler, api.FileSnapshotSource(*snapshot))
		scheduler.CheckInterval = *interval
		scheduler.Start()
		log.Printf("Tracking snapshot %s every %s", *snapshot, *interval)
	}

	// Create router
	router := api.NewRouter(handler)

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Conversion service starting on http://localhost:%d", *port)
		log.Printf("API available at http://localhost:%d/api", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	if scheduler != nil {
		scheduler.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
