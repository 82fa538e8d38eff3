package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

type Config struct {
	Addr           string
	DBDriver       string
	DBPath         string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	AllowedOrigins string
	LogLevel       string
}

// Load reads the process environment. A .env file in the working
// directory, when present, is applied first without overriding variables
// that are already set.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Addr:           getEnv("ADDR", "127.0.0.1:5000"),
		DBDriver:       strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
		DBPath:         getEnv("DB_PATH", "nutricion.db"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "3306"),
		DBUser:         getEnv("DB_USER", "vitalia"),
		DBPassword:     getEnv("DB_PASSWORD", "vitalia"),
		DBName:         getEnv("DB_NAME", "vitalia"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		LogLevel:       getEnv("LOG_LEVEL", "debug"),
	}
}

// DSN returns the data source name for the configured driver.
func (c *Config) DSN() string {
	if c.DBDriver != DriverMySQL {
		return c.DBPath
	}

	mc := mysql.NewConfig()
	mc.User = c.DBUser
	mc.Passwd = c.DBPassword
	mc.Net = "tcp"
	mc.Addr = c.DBHost + ":" + c.DBPort
	mc.DBName = c.DBName
	mc.ParseTime = true
	mc.Loc = time.UTC
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc.FormatDSN()
}

// StoreLocation describes where the store lives, without credentials.
func (c *Config) StoreLocation() string {
	if c.DBDriver == DriverMySQL {
		return c.DBHost + ":" + c.DBPort + "/" + c.DBName
	}
	return c.DBPath
}

// SlogLevel maps LogLevel onto a slog level, falling back to debug.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
