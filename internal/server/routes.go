package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"fdrates/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			// unauthorized zone
			r.Get("/rates", handler(s.getV1Rates))
			r.Get("/status", handler(s.getV1Status))
			r.Post("/refresh", handler(s.postV1Refresh))
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
