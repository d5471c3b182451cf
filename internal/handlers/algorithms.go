package handlers

import (
	"net/http"

	"main/internal/palette"
)

// AlgorithmsHandler: serves GET /api/algorithms for registry discovery
type AlgorithmsHandler struct{}

// NewAlgorithmsHandler: creates a new AlgorithmsHandler
func NewAlgorithmsHandler() *AlgorithmsHandler {
	return &AlgorithmsHandler{}
}

func (h *AlgorithmsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"algorithms": palette.Names(),
	})
}
