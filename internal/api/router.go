package api

import (
	_ "fxsummary/docs"
	"fxsummary/internal/summary/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(summaryHandler *handler.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Get("/", summaryHandler.Dashboard)
	router.Get("/api/v1/fx/summary", summaryHandler.GetSummary)
	router.Get("/api/v1/fx/health", summaryHandler.Health)
	return router
}
