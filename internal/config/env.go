package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadEnvFile loads environment variables from .env/.env.local files.
// It attempts each supported filename in order and stops at the first file
// that parses. Existing process environment variables are not overwritten.
func LoadEnvFile() (string, bool) {
	for _, envPath := range []string{".env", ".env.local"} {
		if _, err := os.Stat(envPath); err != nil {
			continue
		}
		if err := godotenv.Load(envPath); err != nil {
			continue
		}
		return envPath, true
	}
	return "", false
}
