package routes

import (
	"github.com/go-chi/chi/v5"

	"domainsight/internal/httpserver/deps"
	"domainsight/internal/httpserver/handlers"
)

func init() { Register(registerTrends) }

func registerTrends(r chi.Router, d deps.Deps) {
	r.Get("/api/trends", handlers.Trends(d))
	r.Get("/api/trends/multi-chain", handlers.MultiChainTrends(d))
}
