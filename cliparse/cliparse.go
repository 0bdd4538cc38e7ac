package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

// DefaultMembersURL is the member record service; the membership number is
// appended to it
const DefaultMembersURL = "https://pmaier.eu.pythonanywhere.com/sawb/member/"

type Config struct {
	Port          int
	MembersURL    string
	LookupTimeout time.Duration
	TokenLifespan time.Duration
	SigningKey    string
	AdminPassword string
	DatabaseURL   string
	DatabaseType  string
	AllowedOrigin string
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("swab-vote", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.MembersURL, "members-url", "", "Member record service base URL")
	fs.DurationVar(&cfg.LookupTimeout, "lookup-timeout", 0, "Member lookup timeout")
	fs.DurationVar(&cfg.TokenLifespan, "token-lifespan", 0, "Token lifespan")
	fs.StringVar(&cfg.AllowedOrigin, "origin", "", "Allowed CORS origin")

	// Audit database, optional
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Audit database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SigningKey, "signing-key", "", "Token signing key (prefer env)")
	fs.StringVar(&cfg.AdminPassword, "admin-password", "", "Admin password (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8443 // default
		}
	}

	if cfg.MembersURL == "" {
		cfg.MembersURL = os.Getenv("MEMBERS_URL")
		if cfg.MembersURL == "" {
			cfg.MembersURL = DefaultMembersURL
		}
	}

	var err error
	if cfg.LookupTimeout, err = durationFromEnv(cfg.LookupTimeout, "LOOKUP_TIMEOUT", 5*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.TokenLifespan, err = durationFromEnv(cfg.TokenLifespan, "TOKEN_LIFESPAN", 30*time.Second); err != nil {
		return Config{}, err
	}

	if cfg.AllowedOrigin == "" {
		cfg.AllowedOrigin = os.Getenv("ALLOWED_ORIGIN")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	// Empty signing key means main generates one per process
	if cfg.SigningKey == "" {
		cfg.SigningKey = os.Getenv("SIGNING_KEY")
	}

	// Admin password MUST be provided
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = os.Getenv("ADMIN_PASSWORD")
	}
	if cfg.AdminPassword == "" {
		return Config{}, errors.New("ADMIN_PASSWORD required")
	}

	return cfg, nil
}

// durationFromEnv keeps a flag value if set, otherwise reads env, otherwise
// uses def
func durationFromEnv(flagValue time.Duration, env string, def time.Duration) (time.Duration, error) {
	if flagValue != 0 {
		if flagValue < 0 {
			return 0, fmt.Errorf("%s must be positive", env)
		}
		return flagValue, nil
	}
	raw := os.Getenv(env)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable: %w", env, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive", env)
	}
	return d, nil
}
