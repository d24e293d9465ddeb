package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"fxsummary/internal/adapters/fallback"
	"fxsummary/internal/adapters/frankfurter"
	"fxsummary/internal/api"
	"fxsummary/internal/config"
	httpserver "fxsummary/internal/platform/http"
	"fxsummary/internal/summary"
	"fxsummary/internal/summary/handler"

	"github.com/sirupsen/logrus"
)

// Run wires the application components and starts the HTTP server.
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	cfgLevel := appCfg.Logging.Level
	if parsedLvl, parseErr := logrus.ParseLevel(cfgLevel); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Base HTTP client; its timeout bounds every single fetch attempt
	httpTimeout := time.Duration(appCfg.RatesAPI.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	baseHTTPClient := &http.Client{Timeout: httpTimeout}

	// Remote provider client
	ratesBaseURL := strings.TrimSuffix(appCfg.RatesAPI.BaseURL, "/")
	rateClient := frankfurter.NewClient(baseHTTPClient, ratesBaseURL)

	// Fallback snapshot store; verify it reads so a broken bundle shows up
	// at startup and not on the first provider outage
	snapshots := fallback.NewStore(appCfg.Fallback.Path)
	if _, loadErr := snapshots.Load(); loadErr != nil {
		logrus.WithError(loadErr).Warn("Fallback snapshot is not readable, outages will surface as errors")
	} else {
		logrus.Info("✅ Fallback snapshot verified")
	}

	// Core services
	fetcher := summary.NewFetcher(
		rateClient,
		appCfg.RatesAPI.MaxAttempts,
		time.Duration(appCfg.RatesAPI.BackoffBaseSeconds)*time.Second,
	)
	probeTimeout := time.Duration(appCfg.RatesAPI.ProbeTimeoutSeconds) * time.Second
	summaryService := summary.NewService(fetcher, rateClient, snapshots, probeTimeout)
	queryValidator := summary.NewValidator()

	// Handlers and router
	summaryHandler := handler.NewSummaryHandler(queryValidator, summaryService)
	router := api.NewRouter(summaryHandler)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}
