// Command shotmap serves an interactive shot-map explorer over
// per-league soccer shot datasets. It loads every configured league CSV
// at startup (aborting if any is missing), merges and normalizes them
// into one in-memory dataset, and serves the filter cascade and
// rendered shot maps over HTTP.
package main

import (
	"context"
	"embed"
	"flag"
	"io/fs"
	"log"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/pitchlab/shotmap/internal/api"
	"github.com/pitchlab/shotmap/internal/config"
	"github.com/pitchlab/shotmap/internal/shots"
	"github.com/pitchlab/shotmap/internal/store"
	"github.com/pitchlab/shotmap/internal/version"
)

var (
	//go:embed static/*
	staticFiles embed.FS

	devMode     = flag.Bool("dev", false, "serve static files from ./static instead of the embedded copy")
	listen      = flag.String("listen", ":8080", "listen address")
	dataDir     = flag.String("data", ".", "directory holding the per-league shot CSV files")
	leaguesFile = flag.String("leagues", "", "optional JSON file mapping league names to CSV file names")
	dbFile      = flag.String("db", "", "optional sqlite snapshot database path")
	fromDB      = flag.Bool("from-db", false, "load the dataset from the snapshot database instead of the CSV files")
	exportDir   = flag.String("export-dir", "exports", "directory for exported shot map PNGs")
)

func main() {
	flag.Parse()
	log.Printf("shotmap %s (%s)", version.Version, version.GitSHA)

	if *listen == "" {
		log.Fatal("listen address is required")
	}

	leagueFiles := shots.DefaultLeagueFiles
	if *leaguesFile != "" {
		var err error
		leagueFiles, err = config.LoadLeagueFiles(*leaguesFile)
		if err != nil {
			log.Fatalf("failed to load league config: %v", err)
		}
	}
	if *fromDB && *dbFile == "" {
		log.Fatal("-from-db requires -db")
	}

	var st *store.Store
	if *dbFile != "" {
		var err error
		st, err = store.Open(*dbFile)
		if err != nil {
			log.Fatalf("failed to open snapshot database: %v", err)
		}
		defer st.Close()
	}

	// The dataset is loaded once and never mutated afterwards, so it is
	// shared safely across all request handlers.
	var dataset []shots.Shot
	if *fromDB {
		var err error
		dataset, err = st.Load()
		if err != nil {
			log.Fatalf("failed to load dataset from snapshot: %v", err)
		}
		log.Printf("loaded %d shots from snapshot %s", len(dataset), *dbFile)
	} else {
		var err error
		dataset, err = shots.LoadDataset(*dataDir, leagueFiles)
		if err != nil {
			log.Fatalf("failed to load shot data: %v", err)
		}
		log.Printf("loaded %d shots across %d leagues", len(dataset), len(leagueFiles))

		if st != nil {
			if err := st.Replace(dataset); err != nil {
				log.Fatalf("failed to write snapshot: %v", err)
			}
			log.Printf("snapshot written to %s", *dbFile)
		}
	}

	var wg sync.WaitGroup
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	wg.Add(1)
	go func() {
		defer wg.Done()

		mux := http.NewServeMux()

		apiRouter := api.NewServer(dataset, st, *exportDir).Routes()
		mux.Handle("/api/", http.StripPrefix("/api", apiRouter))

		// Embedded static files in production; ./static on disk in dev
		// for iteration without restarting the server.
		var staticHandler http.Handler
		if *devMode {
			staticHandler = http.FileServer(http.Dir("./static"))
		} else {
			sub, err := fs.Sub(staticFiles, "static")
			if err != nil {
				log.Fatalf("failed to mount embedded static files: %v", err)
			}
			staticHandler = http.FileServer(http.FS(sub))
		}
		mux.Handle("/", staticHandler)

		server := &http.Server{
			Addr:    *listen,
			Handler: mux,
		}

		go func() {
			log.Printf("listening on %s", *listen)
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatalf("failed to start server: %v", err)
			}
		}()

		<-ctx.Done()
		log.Println("shutting down HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("HTTP server shutdown error: %v", err)
		}
	}()

	wg.Wait()
	log.Printf("graceful shutdown complete")
}
