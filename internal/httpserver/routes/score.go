package routes

import (
	"github.com/go-chi/chi/v5"

	"domainsight/internal/httpserver/deps"
	"domainsight/internal/httpserver/handlers"
)

func init() { Register(registerScore) }

func registerScore(r chi.Router, d deps.Deps) {
	r.Post("/api/score-domain", handlers.Score(d))
	r.Post("/api/recommend-actions", handlers.Recommend(d))
}
