package config

import (
	"time"

	"github.com/spf13/viper"
)

// DefaultDatabasePath is where the portal database lives unless
// DATABASE_PATH overrides it.
const DefaultDatabasePath = "./lang_portal.db"

type (
	// Config is built once at startup and passed by reference; nothing
	// reads configuration from ambient globals.
	Config struct {
		HTTP
		Global
		Database
		Auth
		Janitor
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path string
	}
	Auth struct {
		AdminToken string // empty disables the system-endpoint guard
		BcryptCost int
	}
	Janitor struct {
		Enabled  bool
		Schedule string        // cron format: "*/30 * * * *" = every 30 minutes
		MaxAge   time.Duration // how long a session may stay open
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8188)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)

	// Auth defaults: fully open unless a token is configured
	v.SetDefault("admin_token", "")
	v.SetDefault("auth_bcrypt_cost", 12)

	// Session janitor defaults
	v.SetDefault("janitor_enabled", true)
	v.SetDefault("janitor_schedule", "*/30 * * * *")
	v.SetDefault("janitor_session_max_age", "2h")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Auth: Auth{
			AdminToken: v.GetString("ADMIN_TOKEN"),
			BcryptCost: v.GetInt("AUTH_BCRYPT_COST"),
		},
		Janitor: Janitor{
			Enabled:  v.GetBool("JANITOR_ENABLED"),
			Schedule: v.GetString("JANITOR_SCHEDULE"),
			MaxAge:   v.GetDuration("JANITOR_SESSION_MAX_AGE"),
		},
	}
}
