package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP      string // Host IP for the server
	RESTPort    int    // Port for the REST API
	GinMode     string // Mode for the Gin framework (e.g., release, debug, test)
	JWTSecret   string // Secret key for JWT signing; empty disables authorization
	JWTIssuer   string // Issuer claim for JWTs
	MazeSeed    int64  // Seed for generation; 0 picks a new seed per maze
	VerifyTrees bool   // Re-check every generated spanning tree before returning it
	MazeMaxSize int    // Largest accepted maze height or width
	LocalesDir  string // Directory holding gettext translations
	Language    string // Language of console messages
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		logrus.Infof("[APP] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:      getEnvWithDefault("HOST_IP", "127.0.0.1"),
		RESTPort:    getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:     getEnvWithDefault("GIN_MODE", "release"),
		JWTSecret:   getEnvWithDefault("JWT_SECRET", ""),
		JWTIssuer:   getEnvWithDefault("JWT_ISSUER", "vinom-maze"),
		MazeSeed:    int64(getEnvAsIntWithDefault("MAZE_SEED", 0)),
		VerifyTrees: getEnvAsBoolWithDefault("VERIFY_TREES", false),
		MazeMaxSize: getEnvAsIntWithDefault("MAZE_MAX_SIZE", 501),
		LocalesDir:  getEnvWithDefault("LOCALES_DIR", "locales"),
		Language:    getEnvWithDefault("LANGUAGE", "en_US"),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an integer environment variable, falling back to the default
// when it is unset. A value that cannot be parsed is fatal.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		logrus.Fatalf("[APP] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvAsBoolWithDefault retrieves a boolean environment variable, falling back to the default
// when it is unset. A value that cannot be parsed is fatal.
func getEnvAsBoolWithDefault(key string, defaultValue bool) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		logrus.Fatalf("[APP] Environment variable %s must be a boolean: %v", key, err)
	}
	return value
}
