package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"domainsight/internal/httpserver/deps"
)

type componentStatus struct {
	OK     bool   `json:"ok"`
	Chains *int   `json:"chains,omitempty"`
	Mode   string `json:"mode,omitempty"`
	Impact string `json:"impact,omitempty"`
	Error  string `json:"error,omitempty"`
}

type infraResponse struct {
	ServiceMode string                     `json:"service_mode"`
	Components  map[string]componentStatus `json:"components"`
}

func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		chainCount := len(d.Insight.Chains())

		components := map[string]componentStatus{
			"subgraph": {
				OK:     chainCount > 0,
				Chains: &chainCount,
			},
			"redis": checkRedis(d),
			"actions": {
				OK:   d.ActionsEnabled,
				Mode: actionsMode(d.ActionsEnabled),
			},
		}

		response := infraResponse{
			ServiceMode: determineServiceMode(components),
			Components:  components,
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

func actionsMode(enabled bool) string {
	if enabled {
		return "simulated"
	}
	return "disabled"
}

func determineServiceMode(components map[string]componentStatus) string {
	// No subgraph endpoints means nothing can be scored
	if subgraph, exists := components["subgraph"]; exists && !subgraph.OK {
		return "critical"
	}

	// Redis down is non-critical: alerts simply stay in memory
	if redis, exists := components["redis"]; exists && !redis.OK {
		return "degraded"
	}

	return "full"
}

func checkRedis(d deps.Deps) componentStatus {
	if d.RedisClient == nil {
		return componentStatus{
			OK:     false,
			Mode:   "memory-only",
			Impact: "alert-persistence-disabled",
			Error:  "client not initialized",
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := d.RedisClient.Ping(ctx).Err()
	if err != nil {
		return componentStatus{
			OK:     false,
			Mode:   "memory-only",
			Impact: "alert-persistence-disabled",
			Error:  "timeout",
		}
	}

	return componentStatus{
		OK:     true,
		Mode:   "optimal",
		Impact: "alert-persistence-enabled",
		Error:  "none",
	}
}
