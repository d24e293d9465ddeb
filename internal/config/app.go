package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type RatesAPI struct {
	BaseURL             string `mapstructure:"base_url"`
	TimeoutSeconds      int    `mapstructure:"timeout_seconds"`
	ProbeTimeoutSeconds int    `mapstructure:"probe_timeout_seconds"`
	MaxAttempts         int    `mapstructure:"max_attempts"`
	BackoffBaseSeconds  int    `mapstructure:"backoff_base_seconds"`
}

type Fallback struct {
	Path string `mapstructure:"path"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	RatesAPI   RatesAPI   `mapstructure:"rates_api"`
	Fallback   Fallback   `mapstructure:"fallback"`
	Logging    Logging    `mapstructure:"logging"`
}

func Init() (*AppConfig, error) {
	var cfg AppConfig

	// .env is optional outside local development
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	viper.SetConfigFile("config.yaml")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	viper.SetDefault("http_server.port", "8080")
	viper.SetDefault("rates_api.base_url", "https://api.frankfurter.app")
	viper.SetDefault("rates_api.timeout_seconds", 10)
	viper.SetDefault("rates_api.probe_timeout_seconds", 5)
	viper.SetDefault("rates_api.max_attempts", 3)
	viper.SetDefault("rates_api.backoff_base_seconds", 1)
	viper.SetDefault("fallback.path", "data/sample_fx.json")
	viper.SetDefault("logging.level", "info")

	// http server env vars
	_ = viper.BindEnv("http_server.port", "HTTP_PORT")

	// rates api env vars
	_ = viper.BindEnv("rates_api.base_url", "RATES_API_BASE_URL")
	_ = viper.BindEnv("rates_api.timeout_seconds", "RATES_API_TIMEOUT_SECONDS")
	_ = viper.BindEnv("rates_api.probe_timeout_seconds", "RATES_API_PROBE_TIMEOUT_SECONDS")
	_ = viper.BindEnv("rates_api.max_attempts", "RATES_API_MAX_ATTEMPTS")
	_ = viper.BindEnv("rates_api.backoff_base_seconds", "RATES_API_BACKOFF_BASE_SECONDS")

	// fallback env vars
	_ = viper.BindEnv("fallback.path", "FALLBACK_PATH")

	// logging env vars
	_ = viper.BindEnv("logging.level", "LOG_LEVEL")

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}
