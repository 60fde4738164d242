// Package router wires the HTTP routes of the forum API.
package router

import (
	"time"

	"github.com/go-chi/chi/v5"
	chi_mw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"forumapi/internal/handler"
	"forumapi/internal/middleware/metrics"
	"forumapi/internal/setup"
)

// New creates and configures the chi router with all the routes.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chi_mw.Recoverer)
	r.Use(chi_mw.RealIP)
	r.Use(chi_mw.Timeout(60 * time.Second))
	r.Use(metrics.Middleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))

	h := deps.Handler
	needAuth := deps.AuthMiddleware.NeedAuth()

	r.Get("/health", handler.Health(deps.Storage.DB()))
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/users", h.Register)
	r.Post("/authentications", h.Login)

	r.Route("/threads", func(r chi.Router) {
		r.Get("/{threadId}", h.GetThread)

		r.Group(func(r chi.Router) {
			r.Use(needAuth)
			r.Post("/", h.CreateThread)
			r.Post("/{threadId}/comments", h.CreateComment)
			r.Delete("/{threadId}/comments/{commentId}", h.DeleteComment)
			r.Put("/{threadId}/comments/{commentId}/likes", h.ToggleLike)
			r.Post("/{threadId}/comments/{commentId}/replies", h.CreateReply)
			r.Delete("/{threadId}/comments/{commentId}/replies/{replyId}", h.DeleteReply)
		})
	})

	return r
}
