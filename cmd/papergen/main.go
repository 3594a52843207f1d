package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/mind-engage/papergen/internal/api/http"
	"github.com/mind-engage/papergen/internal/config"
	"github.com/mind-engage/papergen/internal/db"
	"github.com/mind-engage/papergen/internal/pipeline"
	"github.com/mind-engage/papergen/internal/runs"
	"github.com/mind-engage/papergen/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg := config.FromEnv()

	// --- Storage ---
	uploads, err := storage.NewFSStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("upload store: %v", err)
	}
	outputs, err := storage.NewFSStore(cfg.OutputDir)
	if err != nil {
		log.Fatalf("output store: %v", err)
	}

	// --- Run log (optional) ---
	var rs runs.Store
	if cfg.EnableRunLog {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
		cancel()
		if err != nil {
			log.Fatalf("db open failed: %v", err)
		}
		defer dbh.Close()
		rs = runs.NewSQLStore(dbh)
	}

	gen := pipeline.New(outputs, rs)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition", "Content-Length", "X-Run-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/", api.IndexHandler())
	r.Post("/generate", api.GenerateHandler(gen, uploads, cfg.MaxUploadBytes()))
	if rs != nil {
		r.Route("/papers", func(pr chi.Router) {
			api.MountPapers(pr, rs, outputs)
		})
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (uploads=%s, outputs=%s, runlog=%t, db=%s)",
		cfg.HTTPAddr, cfg.UploadDir, cfg.OutputDir, cfg.EnableRunLog, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
