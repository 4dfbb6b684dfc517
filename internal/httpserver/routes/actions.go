package routes

import (
	"github.com/go-chi/chi/v5"

	"domainsight/internal/httpserver/deps"
	"domainsight/internal/httpserver/handlers"
)

func init() { Register(registerActions) }

func registerActions(r chi.Router, d deps.Deps) {
	r.Post("/api/execute-action", handlers.ExecuteAction(d))
}
