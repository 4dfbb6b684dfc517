package handlers

import (
	"net/http"
	"strings"

	"domainsight/internal/chain"
	"domainsight/internal/httpserver/deps"
	"domainsight/internal/logger"
)

type actionRequest struct {
	Action     string `json:"action"`
	DomainName string `json:"domainName"`
	ToAddress  string `json:"toAddress,omitempty"`
}

type actionResponse struct {
	Success bool         `json:"success"`
	Result  chain.Result `json:"result"`
}

// ExecuteAction runs a simulated on-chain action. Refused with 503
// when no wallet key is configured.
func ExecuteAction(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !d.ActionsEnabled {
			writeError(w, http.StatusServiceUnavailable, "wallet not configured, on-chain actions are disabled")
			return
		}

		var req actionRequest
		if !decodeBody(w, r, &req) {
			return
		}

		req.DomainName = strings.TrimSpace(req.DomainName)
		if req.DomainName == "" {
			writeError(w, http.StatusBadRequest, "domainName is required")
			return
		}
		if req.Action == "" {
			writeError(w, http.StatusBadRequest, "action is required")
			return
		}

		result, err := d.Actions.Execute(req.Action, req.DomainName, req.ToAddress)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		d.Logger.Info("simulated action executed",
			logger.String("action", req.Action),
			logger.String("domain", req.DomainName),
			logger.String("tx", result.TransactionHash))

		writeJSON(w, http.StatusOK, actionResponse{Success: true, Result: result})
	}
}
