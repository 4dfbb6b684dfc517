package handlers

import (
	"net/http"
	"strconv"
	"time"

	"domainsight/internal/alerts"
	"domainsight/internal/domain"
	"domainsight/internal/httpserver/deps"
)

// DefaultAlertLimit caps the alert listing when no limit is given.
const DefaultAlertLimit = 50

type checkExpiringResponse struct {
	Checked     int                     `json:"checked"`
	NewAlerts   int                     `json:"newAlerts"`
	Expiring    []alerts.ExpiringDomain `json:"expiringDomains"`
	Alerts      []domain.Alert          `json:"alerts"`
	Config      alerts.Config           `json:"config"`
	LastChecked time.Time               `json:"lastChecked"`
}

// CheckExpiring runs an on-demand expiry scan over the primary chain
// batch and reports what it found and which alerts were newly raised.
func CheckExpiring(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := d.Insight.CheckExpiring(r.Context())
		if err != nil {
			writeDomainError(w, err)
			return
		}

		resp := checkExpiringResponse{
			Checked:     result.TotalChecked,
			NewAlerts:   result.NewAlerts,
			Expiring:    result.Expiring,
			Alerts:      result.Inserted,
			Config:      d.Insight.AlertConfig(),
			LastChecked: d.TimeNow(),
		}
		if resp.Expiring == nil {
			resp.Expiring = []alerts.ExpiringDomain{}
		}
		if resp.Alerts == nil {
			resp.Alerts = []domain.Alert{}
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

type listAlertsResponse struct {
	Alerts []domain.Alert `json:"alerts"`
	Total  int            `json:"total"`
}

// RecentAlertsWindow bounds the freshness of the recent-alerts view.
const RecentAlertsWindow = time.Hour

type recentAlertsResponse struct {
	Alerts    []domain.Alert `json:"alerts"`
	Total     int            `json:"total"`
	NewAlerts int            `json:"newAlerts"`
	ScanError string         `json:"scanError,omitempty"`
}

// RecentAlerts runs a fresh scan and returns the alerts raised within
// the last hour. A failed scan still returns what the log already
// holds, with the failure flagged.
func RecentAlerts(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := recentAlertsResponse{}

		result, err := d.Insight.CheckExpiring(r.Context())
		if err != nil {
			resp.ScanError = err.Error()
		} else {
			resp.NewAlerts = result.NewAlerts
		}

		log := d.Insight.AlertLog()
		resp.Alerts = log.Since(d.TimeNow().Add(-RecentAlertsWindow))
		resp.Total = log.Len()
		writeJSON(w, http.StatusOK, resp)
	}
}

// ListAlerts returns the most recent alerts (?limit=, default 50).
func ListAlerts(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := DefaultAlertLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				writeError(w, http.StatusBadRequest, "limit must be a positive integer")
				return
			}
			limit = n
		}

		log := d.Insight.AlertLog()
		writeJSON(w, http.StatusOK, listAlertsResponse{
			Alerts: log.TailN(limit),
			Total:  log.Len(),
		})
	}
}
