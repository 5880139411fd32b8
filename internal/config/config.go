package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Database
		Global
		Auth
		CORS
	}

	HTTP struct {
		Port int32
		Host string
	}
	Database struct {
		Path string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Auth struct {
		JWTSecret     string
		TokenLifetime time.Duration
		BcryptCost    int
	}
	CORS struct {
		AllowOrigins []string
	}
)

const DefaultDatabasePath = "./catalog.db"

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 3000)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)

	// Auth defaults
	v.SetDefault("jwt_secret", "")
	v.SetDefault("auth_token_lifetime", "24h") // expiry claim on issued tokens
	v.SetDefault("auth_bcrypt_cost", 12)

	// CORS defaults
	v.SetDefault("cors_allow_origins", "*")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Auth: Auth{
			JWTSecret:     v.GetString("JWT_SECRET"),
			TokenLifetime: v.GetDuration("AUTH_TOKEN_LIFETIME"),
			BcryptCost:    v.GetInt("AUTH_BCRYPT_COST"),
		},
		CORS: CORS{
			AllowOrigins: splitOrigins(v.GetString("CORS_ALLOW_ORIGINS")),
		},
	}
}

// splitOrigins parses a comma-separated origin list from the environment.
func splitOrigins(raw string) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
