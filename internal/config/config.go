// internal/config/config.go
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"safaribackend/internal/logger"
)

// Variables available everywhere
var (
	adminPassword string

	// Exported settings
	AllowedOrigin   string // For CORS
	CatalogFile     string // Optional JSON override for the compiled-in catalog
	AdminSessionTTL time.Duration
)

//
// --- Utility Helpers ---
//

// Helper: get a setting based on ENVIRONMENT (dev or prod)
func GetEnvBasedSetting(base string) string {
	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		env = "dev"
	}
	return os.Getenv(fmt.Sprintf("%s_%s", base, strings.ToUpper(env)))
}

// Helper: log which environment is running
func LogCurrentEnvironment() {
	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		env = "dev"
	}

	if env == "dev" {
		logger.LogInfo("Running in development environment")
	} else {
		logger.LogInfo("Running in production environment")
	}
}

//
// --- Loaders ---
//

// LoadEnv reads .env file
func LoadEnv() {
	wd, err := os.Getwd()
	if err != nil {
		log.Printf("Could not determine working directory: %v", err)
	} else {
		log.Printf("Current working directory: %s", wd)
	}

	err = godotenv.Load(".env")
	if err != nil {
		log.Printf("No .env file found in %s. Using system environment variables.", wd)
	} else {
		log.Printf("Loaded environment variables from .env file in %s", wd)
	}
}

// LoggerConfig returns a logger.Config struct populated from environment
func LoggerConfig() logger.Config {
	logDir := GetEnvBasedSetting("LOGS_DIRECTORY")
	if logDir == "" {
		logDir = "./logs"
	}

	logFormat := GetEnvBasedSetting("LOG_FILE_FORMAT")
	if logFormat == "" {
		logFormat = "server_%s.log"
	}

	timezone := os.Getenv("TIME_ZONE")
	if timezone == "" {
		timezone = "Local"
	}

	return logger.Config{
		LogsDirectory: logDir,
		LogFileFormat: logFormat,
		TimeZone:      timezone,
		Level:         os.Getenv("LOG_LEVEL"),
	}
}

// LoadCORSConfig loads CORS settings
func LoadCORSConfig() {
	AllowedOrigin = GetEnvBasedSetting("ALLOWED_ORIGIN")
	if AllowedOrigin == "" {
		AllowedOrigin = "*" // Allow all - be careful in prod
		logger.LogWarn("ALLOWED_ORIGIN not set, using '*' (allow all origins) - SECURITY RISK")
	} else {
		logger.LogInfo("Allowed Origin: %s", AllowedOrigin)
	}
}

// LoadCatalogConfig picks up the optional catalog fixture override
func LoadCatalogConfig() {
	CatalogFile = GetEnvBasedSetting("CATALOG_FILE")
	if CatalogFile == "" {
		logger.LogInfo("CATALOG_FILE not set, using compiled-in fixture catalog")
	} else {
		logger.LogInfo("Catalog file override: %s", CatalogFile)
	}
}

// LoadAdminConfig sets up the admin login secret and session lifetime
func LoadAdminConfig() error {
	adminPassword = os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		return fmt.Errorf("ADMIN_PASSWORD is missing")
	}

	AdminSessionTTL = time.Hour
	if ttlStr := os.Getenv("ADMIN_SESSION_TTL_MINUTES"); ttlStr != "" {
		minutes, err := strconv.Atoi(ttlStr)
		if err != nil || minutes <= 0 {
			logger.LogWarn("Invalid ADMIN_SESSION_TTL_MINUTES: %s, using default 60 minutes", ttlStr)
		} else {
			AdminSessionTTL = time.Duration(minutes) * time.Minute
		}
	}

	return nil
}

// ServerAddress builds the server address from environment variables
func ServerAddress() string {
	host := os.Getenv("SERVER_HOST")
	if host == "" {
		host = "127.0.0.1"
	}
	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "5080"
	}
	return host + ":" + port
}

//
// --- Getters (exported) ---
//

func AdminPassword() string {
	return adminPassword
}

// SetAdminPassword overrides the admin secret. Intended for tests.
func SetAdminPassword(pw string) {
	adminPassword = pw
}
