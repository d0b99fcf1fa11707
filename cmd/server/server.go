// cmd/server/server.go
package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/radstadt/rental-admin/internal/api"
	"github.com/radstadt/rental-admin/internal/api/auth"
	"github.com/radstadt/rental-admin/internal/api/authgate"
	"github.com/radstadt/rental-admin/internal/api/bikes"
	"github.com/radstadt/rental-admin/internal/api/bookings"
	"github.com/radstadt/rental-admin/internal/api/workshops"
	"github.com/radstadt/rental-admin/internal/config"
	"github.com/radstadt/rental-admin/internal/templates/components/authpages"
	"github.com/radstadt/rental-admin/internal/templates/layouts"
)

const shutdownTimeout = 30 * time.Second

func newServer(cfg *config.Config) *http.Server {
	router := http.NewServeMux()

	policy := authgate.AllowAny
	if cfg.Auth.AllowlistEnabled {
		policy = authgate.Allowlist(cfg.Auth.AllowedEmails)
	}
	gate := authgate.New(auth.IdentityFromRequest, policy)

	// Setup middleware chain
	handler := api.ChainMiddleware(
		router,
		gate.Middleware,
		auth.WithClerkSession,
		api.WithLogging,
		api.WithRecovery,
		api.WithRequestID,
		api.WithContentType,
	)

	registerRoutes(router)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func registerRoutes(mux *http.ServeMux) {
	// Auth surface
	mux.HandleFunc("GET /login", auth.HandleLoginPage)
	mux.HandleFunc("GET /user-not-allowed", auth.HandleDeniedPage)
	mux.HandleFunc("GET /logout", auth.HandleLogout)
	mux.HandleFunc("GET /auth/callback", auth.HandleCallback)

	// Public placeholder
	mux.HandleFunc("GET /rental", func(w http.ResponseWriter, r *http.Request) {
		component := layouts.Base("Rental", nil, authpages.Rental())
		component.Render(r.Context(), w)
	})

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Rental bikes
	mux.HandleFunc("GET /rental-bikes", bikes.HandleBikesPage)
	mux.HandleFunc("GET /rental-bikes/rows", bikes.HandleBikeRows)
	mux.HandleFunc("GET /rental-bikes/form", bikes.HandleBikeForm)
	mux.HandleFunc("GET /rental-bikes/form/close", bikes.HandleBikeFormClose)
	mux.HandleFunc("POST /rental-bikes", bikes.HandleBikeCreate)
	mux.HandleFunc("PUT /rental-bikes/{id}", bikes.HandleBikeUpdate)
	mux.HandleFunc("PUT /rental-bikes/{id}/toggle", bikes.HandleBikeToggle)
	mux.HandleFunc("DELETE /rental-bikes/{id}", bikes.HandleBikeDelete)

	// Rental bookings
	mux.HandleFunc("GET /rental-bookings", bookings.HandleBookingsPage)
	mux.HandleFunc("GET /rental-bookings/rows", bookings.HandleBookingRows)
	mux.HandleFunc("DELETE /rental-bookings/{id}", bookings.HandleBookingDelete)

	// Workshop bookings
	mux.HandleFunc("GET /workshops", workshops.HandleWorkshopsPage)
	mux.HandleFunc("GET /workshops/rows", workshops.HandleWorkshopRows)
	mux.HandleFunc("DELETE /workshops/bookings/{id}", workshops.HandleWorkshopDelete)

	// Static file handling
	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "static"
	}
	fs := http.FileServer(http.Dir(staticDir))

	mux.Handle("/static/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Debug().
			Str("path", r.URL.Path).
			Str("static_dir", staticDir).
			Msg("Static file request")
		http.StripPrefix("/static/", fs).ServeHTTP(w, r)
	}))
}
