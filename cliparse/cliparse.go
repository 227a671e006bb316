package cliparse

import (
	"errors"
	"flag"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultSQLitePath is used when DATABASE_TYPE is sqlite and no URL is given.
const DefaultSQLitePath = "collectibles.db"

type Config struct {
	Port          int
	DatabaseURL   string
	DatabaseType  string
	AdminKey      string
	AllowedOrigin string
}

// LoadEnvFile loads KEY=VALUE pairs from path into the environment without
// overriding variables that are already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("collectibles", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.AllowedOrigin, "origin", "", "Allowed CORS origin (default: echo request origin)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminKey, "admin-key", "", "Admin key for raw SQL (prefer env)")

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
			cfg.Port = 3318 // default
		}
	}

	var err error
	cfg.DatabaseURL, cfg.DatabaseType, err = ResolveDatabase(cfg.DatabaseURL, cfg.DatabaseType)
	if err != nil {
		return Config{}, err
	}

	// Optional - raw SQL stays disabled without it
	if cfg.AdminKey == "" {
		cfg.AdminKey = os.Getenv("ADMIN_KEY")
	}
	if cfg.AllowedOrigin == "" {
		cfg.AllowedOrigin = os.Getenv("ALLOWED_ORIGIN")
	}

	return cfg, nil
}

// ResolveDatabase fills the database URL and type from DATABASE_URL and
// DATABASE_TYPE when not given. sqlite is the default type and gets a local
// file when no URL is set; postgres must have a URL.
func ResolveDatabase(url, dbType string) (string, string, error) {
	if url == "" {
		url = os.Getenv("DATABASE_URL")
	}

	if dbType == "" {
		dbType = os.Getenv("DATABASE_TYPE")
		if dbType == "" {
			dbType = "sqlite"
		}
	}

	switch dbType {
	case "sqlite":
		if url == "" {
			url = DefaultSQLitePath
		}
	case "postgres":
		if url == "" {
			return "", "", errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
	default:
		return "", "", errors.New("DATABASE_TYPE must be sqlite or postgres")
	}

	return url, dbType, nil
}
