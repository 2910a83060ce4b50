package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           int
	DatabaseURL    string
	DatabaseType   string
	CatalogPath    string
	SessionKeySalt string
	ExportSlugSalt string
	SessionTTL     time.Duration
}

// ArchiveEnabled reports whether exports should be written to a database
func (c Config) ArchiveEnabled() bool {
	return c.DatabaseURL != ""
}

// ParseFlags reads flags, then the environment (after loading the env file)
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var envFile string
	var ttl string

	fs := flag.NewFlagSet("perma-check", flag.ContinueOnError)

	fs.StringVar(&envFile, "env", ".env", "Env file to load (missing file is ignored)")

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Export archive database URL (optional)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.CatalogPath, "catalog", "", "Catalog file (YAML or JSON); built-in PERMA items if empty")
	fs.StringVar(&ttl, "session-ttl", "", "Idle time before a session is dropped, e.g. 30m")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SessionKeySalt, "session-salt", "", "Session key salt (prefer env)")
	fs.StringVar(&cfg.ExportSlugSalt, "slug-salt", "", "Export slug salt (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// godotenv never overrides variables that are already set
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
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
			cfg.Port = 3318 // default
		}
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

	if cfg.CatalogPath == "" {
		cfg.CatalogPath = os.Getenv("CATALOG_PATH")
	}

	if ttl == "" {
		ttl = os.Getenv("SESSION_TTL")
	}
	if ttl == "" {
		cfg.SessionTTL = 30 * time.Minute
	} else {
		d, err := time.ParseDuration(ttl)
		if err != nil || d < 0 {
			return Config{}, fmt.Errorf("invalid session TTL %q", ttl)
		}
		cfg.SessionTTL = d
	}

	// Secrets - MUST be provided
	if cfg.SessionKeySalt == "" {
		cfg.SessionKeySalt = os.Getenv("SESSION_KEY_SALT")
	}
	if cfg.SessionKeySalt == "" {
		return Config{}, errors.New("SESSION_KEY_SALT required")
	}

	if cfg.ExportSlugSalt == "" {
		cfg.ExportSlugSalt = os.Getenv("EXPORT_SLUG_SALT")
	}
	if cfg.ExportSlugSalt == "" {
		return Config{}, errors.New("EXPORT_SLUG_SALT required")
	}

	return cfg, nil
}
