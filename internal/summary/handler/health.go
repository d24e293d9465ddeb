package handler

import (
	"encoding/json"
	"net/http"
)

type HealthResponse struct {
	Status       string `json:"status" example:"ok"`
	APIReachable bool   `json:"api_reachable" example:"true"`
}

// Health godoc
// @Summary Service health
// @Description Reports service liveness and whether the remote rate provider answers a lightweight probe.
// @Tags FX
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /fx/health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(HealthResponse{
		Status:       "ok",
		APIReachable: h.service.RemoteReachable(r.Context()),
	})
}
