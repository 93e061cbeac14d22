// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config loads application configuration from environment
// variables, with a .env file honored in development.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application settings.
type Config struct {
	Env  string // "development" or "production"
	Host string
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// AdminEmails is the back-office whitelist. Empty means nobody can
	// log in — the server still starts so the public site stays up.
	AdminEmails []string

	// JWTSecret signs admin bearer tokens.
	JWTSecret string

	TelegramBotToken string
	TelegramChatID   string
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first when present (development
// convenience; real deployments set the environment directly).
func Load() (*Config, error) {
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded .env file")
	}

	cfg := &Config{
		Env:  getEnv("APP_ENV", "development"),
		Host: getEnv("HOST", "0.0.0.0"),
		Port: getEnv("PORT", "8080"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "mekongdoors"),
		DBPassword: getEnv("DB_PASSWORD", "mekongdoors"),
		DBName:     getEnv("DB_NAME", "mekongdoors"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		ValkeyHost:     getEnv("VALKEY_HOST", "localhost"),
		ValkeyPort:     getEnv("VALKEY_PORT", "6379"),
		ValkeyPassword: getEnv("VALKEY_PASSWORD", ""),

		AdminEmails: splitList(getEnv("ADMIN_EMAILS", "")),

		JWTSecret: getEnv("JWT_SECRET", ""),

		TelegramBotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID:   getEnv("TELEGRAM_CHAT_ID", ""),
	}

	if len(cfg.AdminEmails) == 0 {
		slog.Warn("ADMIN_EMAILS is empty; back-office login is disabled")
	}

	if cfg.IsProduction() {
		if cfg.JWTSecret == "" {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		if cfg.DBPassword == "mekongdoors" {
			return nil, fmt.Errorf("DB_PASSWORD must not use the development default in production")
		}
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev-secret-do-not-use"
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

// IsProduction reports whether the app runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// IsDevelopment reports whether the app runs in development mode.
func (c *Config) IsDevelopment() bool {
	return !c.IsProduction()
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitList splits a comma-separated env value into trimmed entries.
func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
