// Package config reads environment configuration, with .env support for
// development.
package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/yeremiapane/stellar-client/utils"
)

// Config carries everything the entrypoints need.
type Config struct {
	APIBaseURL  string // remote burger API root, including /api
	Port        string // stub server listen port
	StubDBPath  string // sqlite file backing the stub
	CredsDBPath string // sqlite file backing the credential store
	GinMode     string
}

// Load reads .env when present, then the environment, applying defaults.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Println("no .env file loaded, using environment defaults")
	}

	return Config{
		APIBaseURL:  getenv("BURGER_API_URL", "https://norma.nomoreparties.space/api"),
		Port:        getenv("PORT", "8080"),
		StubDBPath:  getenv("STUB_DB_PATH", "stub.db"),
		CredsDBPath: getenv("CREDS_DB_PATH", "credentials.db"),
		GinMode:     getenv("GIN_MODE", ""),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
