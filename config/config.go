package config

import (
	"os"
	"strconv"
)

type Config struct {
	Server ServerConfig
	Logger LoggerConfig
	SQLite SQLiteConfig
	Auth   AuthConfig
}

type ServerConfig struct {
	AppEnv          string
	Port            string
	ShutdownTimeout int
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type SQLiteConfig struct {
	Path            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
	BusyTimeout     int
}

type AuthConfig struct {
	SecretKey       string
	TokenTTLMinutes int
	Username        string
	Password        string
}

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv:          getEnv("APP_ENV", "dev"),
			Port:            getEnv("HTTP_PORT", ":8080"),
			ShutdownTimeout: getEnvInt("HTTP_SHUTDOWN_TIMEOUT", 10),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		SQLite: SQLiteConfig{
			Path:            getEnv("SQLITE_PATH", "loja.db"),
			MaxOpenConns:    getEnvInt("SQLITE_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("SQLITE_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvInt("SQLITE_CONN_MAX_LIFETIME", 300),
			BusyTimeout:     getEnvInt("SQLITE_BUSY_TIMEOUT_MS", 5000),
		},
		Auth: AuthConfig{
			SecretKey:       getEnv("JWT_SECRET_KEY", "change-this-in-prod"),
			TokenTTLMinutes: getEnvInt("JWT_TOKEN_TTL_MINUTES", 30),
			Username:        getEnv("AUTH_USERNAME", "admin"),
			Password:        getEnv("AUTH_PASSWORD", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
