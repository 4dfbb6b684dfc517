package routes

import (
	"github.com/go-chi/chi/v5"

	"domainsight/internal/httpserver/deps"
	"domainsight/internal/httpserver/handlers"
)

func init() { Register(registerStatus) }

func registerStatus(r chi.Router, d deps.Deps) {
	r.Get("/api/state-sync/status", handlers.SyncStatus(d))
	r.Get("/healthz", handlers.Healthz(d))
	r.Get("/infra", handlers.Infra(d))
}
