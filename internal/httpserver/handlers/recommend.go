package handlers

import (
	"net/http"
	"strings"

	"domainsight/internal/domain"
	"domainsight/internal/httpserver/deps"
)

type recommendRequest struct {
	DomainName string                `json:"domainName"`
	Chain      string                `json:"chain,omitempty"`
	Score      *int                  `json:"score,omitempty"`
	Features   *domain.FeatureVector `json:"features,omitempty"`
}

type recommendResponse struct {
	DomainName      string                  `json:"domainName"`
	Score           int                     `json:"score"`
	Recommendations []domain.Recommendation `json:"recommendations"`
}

// Recommend returns action recommendations for a domain. When the
// caller supplies a score (and optionally features) those are used
// directly; otherwise the domain is fetched and scored first.
func Recommend(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req recommendRequest
		if !decodeBody(w, r, &req) {
			return
		}

		req.DomainName = strings.TrimSpace(req.DomainName)
		if req.DomainName == "" {
			writeError(w, http.StatusBadRequest, "domainName is required")
			return
		}

		if req.Score != nil {
			score := domain.ClampScore(float64(*req.Score))
			writeJSON(w, http.StatusOK, recommendResponse{
				DomainName:      req.DomainName,
				Score:           score,
				Recommendations: d.Insight.Recommend(score, req.Features, req.DomainName),
			})
			return
		}

		chain := req.Chain
		if chain == "" {
			chain = d.PrimaryChain
		}
		result, err := d.Insight.ScoreDomainOn(r.Context(), chain, req.DomainName)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, recommendResponse{
			DomainName:      result.DomainName,
			Score:           result.Score,
			Recommendations: result.Recommendations,
		})
	}
}
