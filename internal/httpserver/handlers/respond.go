package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"domainsight/internal/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeDomainError maps core errors onto HTTP statuses: bad input is
// 400, a missing domain 404, an upstream failure 502, anything else
// 500.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrEmptyDomainName), errors.Is(err, domain.ErrUnknownChain):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrDomainNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case domain.IsUpstream(err):
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// decodeBody reads a JSON request body into v.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}
