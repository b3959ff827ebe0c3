/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

ROUTER: chi
  Chi was chosen for:
  - Lightweight and fast
  - Context-based
  - Middleware support
  - RESTful route patterns

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for tooling frontends

ROUTE GROUPS:
  /api/convert/*   Open-format <-> ledger conversion
  /api/extract/*   Raw ledger record extraction
  /api/types       Registered entity types
  /api/diff        Equivalence check
  /api/sync/*      Mirror classification and run history
  /api/mirror/*    Mirrored entity inspection
  /api/scenarios/* Demo cap-table seeds
  /api/admin/*     Mirror reset (dev only)

SECURITY NOTE:
  No authentication middleware currently. All endpoints are public.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Conversion routes
		r.Route("/convert/{type}", func(r chi.Router) {
			r.Post("/ledger", h.ConvertToLedger)
			r.Post("/ocf", h.ConvertToOpen)
		})
		r.Post("/extract/{type}", h.ExtractPayload)

		// Registry routes
		r.Get("/types", h.ListTypes)

		// Equivalence routes
		r.Post("/diff", h.Diff)

		// Sync routes
		r.Route("/sync", func(r chi.Router) {
			r.Post("/plan", h.PlanSync)
			r.Get("/runs", h.ListSyncRuns)
		})

		// Mirror routes
		r.Route("/mirror", func(r chi.Router) {
			r.Get("/{type}", h.ListMirrored)
			r.Get("/{type}/{id}", h.GetMirrored)
		})

		// Scenario routes
		r.Route("/scenarios", func(r chi.Router) {
			r.Get("/", h.ListScenarios)
			r.Post("/load", h.LoadScenario)
		})

		// Admin routes
		r.Route("/admin", func(r chi.Router) {
			r.Post("/reset", h.ResetMirror)
		})
	})

	return r
}
