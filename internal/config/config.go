package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. Required values are enforced at load time so a
// misconfigured process fails at boot rather than on the first request.
type Config struct {
	Env            string // application environment (e.g. "dev", "prod")
	Port           string // HTTP port to listen on
	DatabaseURL    string // Postgres connection string
	JWTSecret      string // secret used to sign JWTs
	TokenTTLDays   int    // signed token time-to-live in days
	SessionTTLDays int    // session row time-to-live in days
	BcryptCost     int    // bcrypt cost for password hashing
	PasswordMinLen int    // minimum accepted password length on signup

	AnthropicAPIKey string // API key for the Claude passthrough; empty disables AI features
	AnthropicModel  string // Claude model identifier
}

// Load reads configuration values from environment variables and returns a
// Config. Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:             must("APP_ENV"),
		Port:            must("APP_PORT"),
		DatabaseURL:     must("DATABASE_URL"),
		JWTSecret:       must("JWT_SECRET"),
		TokenTTLDays:    envInt("TOKEN_TTL_DAYS", 7),
		SessionTTLDays:  envInt("SESSION_TTL_DAYS", 7),
		BcryptCost:      mustInt("BCRYPT_COST"),
		PasswordMinLen:  envInt("PASSWORD_MIN_LENGTH", 5),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel:  envStr("ANTHROPIC_MODEL", "claude-3-5-sonnet-latest"),
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the retrieved string into an integer.
// If conversion fails, the application logs a fatal error and exits.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}

func envStr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}
