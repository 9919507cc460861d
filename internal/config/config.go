package config

import (
	"os"
)

type Config struct {
	AppPort string

	DatabaseDSN string

	RedisAddr     string
	RedisPassword string

	TokenSecret  string
	CookieSecure bool
}

func Load() Config {

	cfg := Config{

		AppPort: getenv("APP_PORT", "4000"),

		DatabaseDSN: os.Getenv("DATABASE_DSN"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		TokenSecret:  os.Getenv("TOKEN_SECRET"),
		CookieSecure: os.Getenv("COOKIE_SECURE") == "true",
	}

	return cfg

}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
