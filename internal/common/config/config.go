package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type DB struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

type MQ struct {
	Host     string
	Port     int
	User     string
	Password string
}

// Enabled reports whether the event bridge should be wired up. Leaving
// MQ_HOST unset runs the service without RabbitMQ.
func (m MQ) Enabled() bool { return m.Host != "" }

type App struct {
	HTTPPort int
	DB       DB
	MQ       MQ
}

// Load reads configuration from the environment, with an optional .env file.
func Load() (App, error) {
	_ = godotenv.Load()

	cfg := App{
		HTTPPort: getEnvInt("HTTP_PORT", 3000),
		DB: DB{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "breakfast_shop"),
		},
		MQ: MQ{
			Host:     getEnv("MQ_HOST", ""),
			Port:     getEnvInt("MQ_PORT", 5672),
			User:     getEnv("MQ_USER", "guest"),
			Password: getEnv("MQ_PASSWORD", "guest"),
		},
	}
	if cfg.DB.Host == "" || cfg.DB.User == "" || cfg.DB.Name == "" {
		return App{}, fmt.Errorf("database config incomplete")
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
