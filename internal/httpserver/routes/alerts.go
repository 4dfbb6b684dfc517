package routes

import (
	"github.com/go-chi/chi/v5"

	"domainsight/internal/httpserver/deps"
	"domainsight/internal/httpserver/handlers"
)

func init() { Register(registerAlerts) }

func registerAlerts(r chi.Router, d deps.Deps) {
	r.Post("/api/check-expiring-domains", handlers.CheckExpiring(d))
	r.Get("/api/alerts", handlers.ListAlerts(d))
	r.Get("/api/alerts/recent", handlers.RecentAlerts(d))
}
