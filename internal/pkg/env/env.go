package env

import (
	"os"

	"github.com/joho/godotenv"
)

const defaultSecretKey = "dev-secret-key-change-in-production"

var Env map[string]string

func GetEnv(key, def string) string {
	// First check our loaded Env map
	if val, ok := Env[key]; ok {
		return val
	}
	// Fallback to OS environment variables (for Docker/tests)
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

// SetupEnvFile loads an optional .env file from the project root. A missing
// file is fine: everything falls back to OS environment variables and the
// built-in defaults.
func SetupEnvFile() {
	envFiles := []string{
		".env",       // Current directory
		"../../.env", // From a package directory to project root
	}

	for _, envFile := range envFiles {
		if env, err := godotenv.Read(envFile); err == nil {
			Env = env
			return
		}
	}
}

func IsDev() bool {
	return GetEnv("APP_ENV", "dev") != "prod"
}

// SecretKey returns APP_SECRET, or the development fallback when unset.
func SecretKey() string {
	return GetEnv("APP_SECRET", defaultSecretKey)
}

// IsDefaultSecretKey reports whether the app still runs with the built-in
// development secret so callers can warn on production startup.
func IsDefaultSecretKey() bool {
	return SecretKey() == defaultSecretKey
}
