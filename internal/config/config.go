package config

import (
	"os"
	"time"

	"go-bonus/internal/shared/connection"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv    string
	Port      string
	RedisAddr string
	DB        connection.DBConfig
	Server    ServerTimeouts
}

type ServerTimeouts struct {
	Read  time.Duration
	Write time.Duration
	Idle  time.Duration
}

// Load reads an optional .env file and then the process environment.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function so tests do not have to
// touch the process environment.
func FromEnv(getenv func(string) string) Config {
	get := func(key, fallback string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return fallback
	}

	return Config{
		AppEnv:    get("APP_ENV", "development"),
		Port:      get("PORT", "3000"),
		RedisAddr: getenv("REDIS_ADDR"),
		DB: connection.DBConfig{
			Host:     getenv("DB_HOST"),
			User:     getenv("DB_USER"),
			Password: getenv("DB_PASSWORD"),
			Name:     getenv("DB_NAME"),
			Port:     get("DB_PORT", "5432"),
			SSLMode:  get("DB_SSLMODE", "disable"),
		},
		Server: ServerTimeouts{
			Read:  5 * time.Second,
			Write: 10 * time.Second,
			Idle:  60 * time.Second,
		},
	}
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}
