package main

import (
	"fxsummary/internal/app"

	"github.com/sirupsen/logrus"
)

// @title FX Summary API
// @version 1.0
// @description EUR to USD exchange rate summary with retry and local fallback
// @BasePath /api/v1
func main() {
	if err := app.Run(); err != nil {
		logrus.WithError(err).Fatal("Application terminated")
	}
}
