package handlers

import (
	"net/http"

	"domainsight/internal/httpserver/deps"
	"domainsight/internal/logger"
)

// Trends aggregates trend analytics for one chain (?chain=, default
// primary).
func Trends(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chain := r.URL.Query().Get("chain")
		if chain == "" {
			chain = d.PrimaryChain
		}

		trends, err := d.Insight.TrendsOn(r.Context(), chain)
		if err != nil {
			d.Logger.Warn("trend aggregation failed",
				logger.String("chain", chain),
				logger.Error(err))
			writeDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, trends)
	}
}

// MultiChainTrends fans out to every configured chain and merges the
// results. Failed chains stay in the response with their error.
func MultiChainTrends(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := d.Insight.TrendsAcrossChains(r.Context())
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}
