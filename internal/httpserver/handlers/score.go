package handlers

import (
	"net/http"
	"strings"

	"domainsight/internal/httpserver/deps"
	"domainsight/internal/logger"
)

type scoreRequest struct {
	DomainName string `json:"domainName"`
	Chain      string `json:"chain,omitempty"`
}

// Score values one domain: fetch, extract features, predict, clamp,
// recommend.
func Score(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req scoreRequest
		if !decodeBody(w, r, &req) {
			return
		}

		req.DomainName = strings.TrimSpace(req.DomainName)
		if req.DomainName == "" {
			writeError(w, http.StatusBadRequest, "domainName is required")
			return
		}

		chain := req.Chain
		if chain == "" {
			chain = d.PrimaryChain
		}

		result, err := d.Insight.ScoreDomainOn(r.Context(), chain, req.DomainName)
		if err != nil {
			d.Logger.Warn("scoring failed",
				logger.String("domain", req.DomainName),
				logger.String("chain", chain),
				logger.Error(err))
			writeDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
