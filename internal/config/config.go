package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	DBDriver   string
	SQLitePath string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	ServerPort      string
	GinMode         string
	LogLevel        string
	ShutdownTimeout time.Duration
}

var defaults = map[string]any{
	"DB_DRIVER":        DriverSQLite,
	"SQLITE_PATH":      "taskflow.db",
	"DB_HOST":          "localhost",
	"DB_PORT":          "5432",
	"DB_USER":          "taskflow",
	"DB_PASSWORD":      "taskflow",
	"DB_NAME":          "taskflow",
	"DB_SSLMODE":       "disable",
	"SERVER_PORT":      "8000",
	"GIN_MODE":         "release",
	"LOG_LEVEL":        "info",
	"SHUTDOWN_TIMEOUT": "5s",
}

// flagKeys maps command line flags to the keys they override.
var flagKeys = map[string]string{
	"db-driver":   "DB_DRIVER",
	"sqlite-path": "SQLITE_PATH",
	"port":        "SERVER_PORT",
	"log-level":   "LOG_LEVEL",
}

// RegisterFlags adds the flags Load understands to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("db-driver", "", "database driver: sqlite or postgres")
	fs.String("sqlite-path", "", "sqlite database file")
	fs.String("port", "", "HTTP listen port")
	fs.String("log-level", "", "log level: debug, info, warn or error")
}

// Load resolves the configuration. Changed flags win over the environment,
// which wins over .env, which wins over the built-in defaults. fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using system environment variables")
	}

	v := viper.New()
	v.AutomaticEnv()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	cfg := &Config{
		DBDriver:        strings.ToLower(v.GetString("DB_DRIVER")),
		SQLitePath:      v.GetString("SQLITE_PATH"),
		DBHost:          v.GetString("DB_HOST"),
		DBPort:          v.GetString("DB_PORT"),
		DBUser:          v.GetString("DB_USER"),
		DBPassword:      v.GetString("DB_PASSWORD"),
		DBName:          v.GetString("DB_NAME"),
		DBSSLMode:       v.GetString("DB_SSLMODE"),
		ServerPort:      v.GetString("SERVER_PORT"),
		GinMode:         v.GetString("GIN_MODE"),
		LogLevel:        strings.ToLower(v.GetString("LOG_LEVEL")),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH must not be empty")
		}
	case DriverPostgres:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT must not be empty")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

// PostgresDSN builds the keyword/value connection string for pgx.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// Level returns LOG_LEVEL as a slog level.
func (c *Config) Level() slog.Level {
	l, _ := parseLevel(c.LogLevel)
	return l
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unsupported LOG_LEVEL %q", s)
	}
	return l, nil
}
