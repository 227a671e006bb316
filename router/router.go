// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/collectibles/cliparse"
	"github.com/danielhkuo/collectibles/handlers"
	"github.com/danielhkuo/collectibles/middleware"
	"github.com/danielhkuo/collectibles/store"
)

func NewRouter(st *store.Store, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	recordHandler := handlers.NewRecordHandler(st, cfg)
	databaseHandler := handlers.NewDatabaseHandler(st, cfg)
	newsHandler := handlers.NewNewsHandler(st, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Sheet appends, one fixed-shape record per form
	mux.HandleFunc("POST /api/anniversary", middleware.WithLogging(recordHandler.AppendAnniversary))
	mux.HandleFunc("POST /api/checklist", middleware.WithLogging(recordHandler.AppendChecklist))
	mux.HandleFunc("POST /api/customs", middleware.WithLogging(recordHandler.AppendCustoms))
	mux.HandleFunc("POST /api/wishlist", middleware.WithLogging(recordHandler.AppendWishlist))

	// Sheet reads
	mux.HandleFunc("GET /api/{sheet}", middleware.WithLogging(recordHandler.GetRange))
	mux.HandleFunc("GET /api/{sheet}/next-id", middleware.WithLogging(recordHandler.GetNextID))

	// Database checks
	mux.HandleFunc("GET /api/db/ping", middleware.WithLogging(databaseHandler.Ping))
	mux.HandleFunc("GET /api/db/schema", middleware.WithLogging(databaseHandler.Schema))
	mux.HandleFunc("POST /api/db/query", middleware.WithLogging(databaseHandler.Query))

	// News (read-only)
	mux.HandleFunc("GET /api/news", middleware.WithLogging(newsHandler.GetNews))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("collectibles API v1"))
	})

	return middleware.CORS(cfg.AllowedOrigin)(mux)
}
