package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv       string `toml:"app_env"`
	Addr         string `toml:"addr"`
	DBPath       string `toml:"db_path"`
	AuthUsername string `toml:"auth_username"`
	AuthPassword string `toml:"auth_password"`
	TimezoneName string `toml:"timezone"`

	Location *time.Location `toml:"-"`
}

// Load reads an optional TOML config file, then a .env file, then the
// environment. Environment values win over the file.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		AppEnv:       "local",
		Addr:         ":8080",
		DBPath:       "attendance.db",
		AuthUsername: "admin",
		AuthPassword: "password",
		TimezoneName: "Europe/Prague",
	}

	path := getEnv("CONFIG_FILE", "config.toml")
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg.AppEnv = getEnv("APP_ENV", cfg.AppEnv)
	cfg.Addr = getEnv("APP_ADDR", cfg.Addr)
	cfg.DBPath = getEnv("DB_PATH", cfg.DBPath)
	cfg.AuthUsername = getEnv("AUTH_USERNAME", cfg.AuthUsername)
	cfg.AuthPassword = getEnv("AUTH_PASSWORD", cfg.AuthPassword)
	cfg.TimezoneName = getEnv("TIMEZONE", cfg.TimezoneName)

	location, err := time.LoadLocation(cfg.TimezoneName)
	if err != nil {
		return cfg, fmt.Errorf("invalid timezone %q: %w", cfg.TimezoneName, err)
	}
	cfg.Location = location

	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
