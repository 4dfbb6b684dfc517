package handlers

import (
	"net/http"
	"time"

	"domainsight/internal/alerts"
	"domainsight/internal/httpserver/deps"
)

type syncStatusResponse struct {
	Mode               string        `json:"mode"`
	PrimaryChain       string        `json:"primaryChain"`
	Chains             []string      `json:"chains"`
	SyncIntervalMs     int64         `json:"syncIntervalMs"`
	AlertIntervalMs    int64         `json:"alertCheckIntervalMs"`
	AlertConfig        alerts.Config `json:"alertConfig"`
	AlertsTotal        int           `json:"alertsTotal"`
	PersistenceEnabled bool          `json:"persistenceEnabled"`
	UptimeSeconds      float64       `json:"uptimeSeconds"`
}

// SyncStatus reports the sync configuration and the current alert
// totals. Scans run on demand, so the intervals are advisory.
func SyncStatus(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, syncStatusResponse{
			Mode:               "on-demand",
			PrimaryChain:       d.PrimaryChain,
			Chains:             d.Insight.Chains(),
			SyncIntervalMs:     d.SyncInterval.Milliseconds(),
			AlertIntervalMs:    d.AlertCheckInterval.Milliseconds(),
			AlertConfig:        d.Insight.AlertConfig(),
			AlertsTotal:        d.Insight.AlertLog().Len(),
			PersistenceEnabled: d.RedisClient != nil,
			UptimeSeconds:      time.Since(d.StartTime).Seconds(),
		})
	}
}
