package router

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"tardis-journal/internal/config"
	"tardis-journal/internal/handler"
	"tardis-journal/internal/middleware"
)

type Handlers struct {
	Auth      *handler.AuthHandler
	Account   *handler.AccountHandler
	Character *handler.CharacterHandler
	Journey   *handler.JourneyHandler
	Message   *handler.MessageHandler
}

type healthChecker interface {
	Health(ctx context.Context) error
}

func New(cfg *config.Config, authMiddleware *middleware.AuthMiddleware, h Handlers, db healthChecker) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		if db != nil {
			if err := db.Health(req.Context()); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("database unavailable"))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Existing clients depend on these exact paths.
	r.Post("/token", h.Auth.Token)
	r.Post("/signup", h.Account.Signup)
	r.Get("/characters", h.Character.List)
	r.Get("/characters/{id}", h.Character.Get)

	r.Group(func(protected chi.Router) {
		protected.Use(authMiddleware.RequireAuth)
		protected.Get("/journeys", h.Journey.List)
		protected.Post("/add_journey", h.Journey.Add)
		protected.Get("/messages", h.Message.Inbox)
		protected.Post("/send_message", h.Message.Send)
	})

	return r
}
