package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"fxsummary/internal/domain"
	"fxsummary/internal/summary"
)

type QueryValidator interface {
	ValidateQuery(start, end, breakdown string) (summary.Query, error)
}

type SummaryService interface {
	GetSummary(ctx context.Context, q summary.Query) (domain.Summary, error)
	RemoteReachable(ctx context.Context) bool
}

type Handler struct {
	validator QueryValidator
	service   SummaryService
}

func NewSummaryHandler(validator QueryValidator, service SummaryService) *Handler {
	return &Handler{validator: validator, service: service}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error: errorMsg,
	})
}
