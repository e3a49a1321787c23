package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"contra-api/internal/logger"
	"contra-api/internal/users/user_api"
	"contra-api/internal/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Dependencies struct {
	Logger         *logger.Logger
	UserHandler    *user_api.Handler
	Store          Pinger
	AllowedOrigins []string
}

// NewRouter wires middleware, the service endpoints and the user routes.
func NewRouter(deps Dependencies) chi.Router {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(deps.Logger.Middleware())
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.AllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		utils.WriteJSON(w, http.StatusOK, utils.MessageResponse{Message: "Contra API is up and running"}, deps.Logger)
	})
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		utils.WriteJSON(w, http.StatusOK, utils.StatusResponse{Status: "ok"}, deps.Logger)
	})
	r.Get("/ready", readyHandler(deps.Store, deps.Logger))

	r.Route("/api/users", deps.UserHandler.RegisterRoutes)

	return r
}

func readyHandler(store Pinger, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := store.Ping(ctx); err != nil {
				log.Warn("HEALTH", fmt.Sprintf("Readiness check failed: %v", err))
				utils.WriteJSON(w, http.StatusServiceUnavailable, utils.StatusResponse{Status: "unavailable"}, log)
				return
			}
		}
		utils.WriteJSON(w, http.StatusOK, utils.StatusResponse{Status: "ready"}, log)
	}
}
