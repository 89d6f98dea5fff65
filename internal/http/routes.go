package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(cartHandler *CartHandler, productHandler *ProductHandler, requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(RequestIDMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/books", func(r chi.Router) {
			r.Use(middleware.Timeout(requestTimeout))
			r.Use(middleware.Compress(5))
			r.Get("/", productHandler.List)
			r.Get("/{id}", productHandler.GetByID)
			r.Get("/slug/{slug}", productHandler.GetBySlug)
		})

		r.Route("/cart", func(r chi.Router) {
			// the event stream stays open, so it sits outside the timeout group
			r.Get("/events", cartHandler.Events)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Timeout(requestTimeout))
				r.Use(middleware.Compress(5))
				r.Get("/", cartHandler.GetCart)
				r.Delete("/", cartHandler.ClearCart)
				r.Get("/badge", cartHandler.GetBadge)
				r.Post("/items", cartHandler.AddItem)
				r.Put("/items/{book_id}", cartHandler.UpdateQuantity)
				r.Delete("/items/{book_id}", cartHandler.RemoveItem)
				r.Post("/open", cartHandler.OpenCart)
				r.Post("/close", cartHandler.CloseCart)
				r.Post("/toggle", cartHandler.ToggleCart)
			})
		})
	})

	return r
}
