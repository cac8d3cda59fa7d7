package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultAppName      = "ATM Sim"
	defaultLogLevel     = "info"
	defaultTimeout      = 3 * time.Minute
	defaultCardDelay    = 1500 * time.Millisecond
	defaultHistoryDepth = 10

	timeoutSecondsEnvVar  = "SESSION_TIMEOUT_SECONDS"
	timeoutDurationEnvVar = "SESSION_TIMEOUT"
	cardDelayEnvVar       = "CARD_READ_DELAY"
	historyDepthEnvVar    = "HISTORY_DEPTH"
)

// Config captures kiosk runtime configuration loaded from environment variables.
type Config struct {
	AppName        string
	LogLevel       string
	SessionTimeout time.Duration
	CardReadDelay  time.Duration
	HistoryDepth   int
}

// Load reads configuration values from the environment and populates a Config instance.
func Load() (Config, error) {
	cfg := Config{
		AppName:        getEnv("APP_NAME", defaultAppName),
		LogLevel:       strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		SessionTimeout: defaultTimeout,
		CardReadDelay:  defaultCardDelay,
		HistoryDepth:   defaultHistoryDepth,
	}

	if v := os.Getenv(timeoutSecondsEnvVar); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", timeoutSecondsEnvVar, err)
		}
		cfg.SessionTimeout = time.Duration(seconds) * time.Second
	} else if v := os.Getenv(timeoutDurationEnvVar); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", timeoutDurationEnvVar, err)
		}
		cfg.SessionTimeout = d
	}

	if v := os.Getenv(cardDelayEnvVar); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", cardDelayEnvVar, err)
		}
		cfg.CardReadDelay = d
	}

	if v := os.Getenv(historyDepthEnvVar); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", historyDepthEnvVar, err)
		}
		cfg.HistoryDepth = n
	}

	if cfg.SessionTimeout <= 0 {
		return Config{}, fmt.Errorf("session timeout must be positive")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
