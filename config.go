package main

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Configuration values
var (
	// DataDir is the directory for conversation storage
	DataDir = "data/conversations"

	// ServerAddr is the address the HTTP server listens on
	ServerAddr = ":8001"

	// CORS allowed origins (configurable via environment)
	// In development (empty/default), allows any localhost port
	// In production, set CORS_ALLOWED_ORIGINS to a comma-separated list
	CORSAllowedOrigins = []string{}

	// MaxRequestBodySize is the maximum allowed request body size (4MB).
	// Exported conversations with long stage answers are larger than chat requests.
	MaxRequestBodySize int64 = 4 << 20

	// ExportLocation is the time zone used for human-readable dates in exports
	ExportLocation = time.UTC
)

// LoadConfig loads configuration from environment variables
func LoadConfig() {
	// Load .env file - try multiple locations
	envLocations := []string{
		".env",    // Current directory
		"../.env", // Parent directory
	}

	envLoaded := false
	for _, envPath := range envLocations {
		absPath, err := filepath.Abs(envPath)
		if err != nil {
			continue
		}

		if _, err := os.Stat(absPath); err == nil {
			if err := godotenv.Load(absPath); err == nil {
				logger.WithField("path", absPath).Info("Loaded .env file")
				envLoaded = true
				break
			}
		}
	}

	if !envLoaded {
		logger.Warn(".env file not found in any expected location")
	}

	if dir := os.Getenv("DATA_DIR"); dir != "" {
		DataDir = dir
	}

	if addr := os.Getenv("SERVER_ADDR"); addr != "" {
		ServerAddr = addr
	}

	// Load CORS origins from environment if provided
	if corsOrigins := os.Getenv("CORS_ALLOWED_ORIGINS"); corsOrigins != "" {
		CORSAllowedOrigins = []string{}
		for _, origin := range strings.Split(corsOrigins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				CORSAllowedOrigins = append(CORSAllowedOrigins, origin)
			}
		}
	}

	if tz := os.Getenv("EXPORT_TIMEZONE"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			logger.WithField("timezone", tz).WithError(err).Warn("Invalid EXPORT_TIMEZONE, using UTC")
		} else {
			ExportLocation = loc
		}
	}

	logger.Info("Configuration loaded successfully")
}
