package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr        string
	Port              string
	DatabasePath      string
	SessionSecret     string
	GinMode           string
	LogLevel          slog.Level
	MediaMaxBytes     int
	SeedOnStart       bool
	AdminEmail        string
	SMTP              SMTPConfig
	WebhookTimeout    time.Duration
	SuperRootUserName string
	SuperRootPassword string
}

// SMTPConfig holds outbound mail settings. An empty Host disables mail.
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

var defaults = map[string]interface{}{
	"PORT":            "8080",
	"DATABASE_PATH":   "stylencms.db",
	"SESSION_SECRET":  "stylencms-dev-secret",
	"GIN_MODE":        "release",
	"LOG_LEVEL":       "info",
	"MEDIA_MAX_BYTES": 800000,
	"SEED_ON_START":   true,
	"ADMIN_EMAIL":     "",
	"SMTP_HOST":       "",
	"SMTP_PORT":       "587",
	"SMTP_USER":       "",
	"SMTP_PASS":       "",
	"SMTP_FROM":       "",
	"WEBHOOK_TIMEOUT": "10s",
}

// Load 从环境变量（以及可选的 CONFIG_FILE 指向的配置文件）读取应用配置，
// 并为缺失项提供默认值。环境变量优先于配置文件。
func Load() (AppConfig, error) {
	v := viper.New()
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if file := strings.TrimSpace(v.GetString("CONFIG_FILE")); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return AppConfig{}, fmt.Errorf("read config file %s: %w", file, err)
		}
	}

	port := strings.TrimSpace(v.GetString("PORT"))
	listenAddr := strings.TrimSpace(v.GetString("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		return AppConfig{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	maxBytes := v.GetInt("MEDIA_MAX_BYTES")
	if maxBytes <= 0 {
		return AppConfig{}, fmt.Errorf("MEDIA_MAX_BYTES must be positive, got %d", maxBytes)
	}

	return AppConfig{
		ListenAddr:     listenAddr,
		Port:           port,
		DatabasePath:   strings.TrimSpace(v.GetString("DATABASE_PATH")),
		SessionSecret:  strings.TrimSpace(v.GetString("SESSION_SECRET")),
		GinMode:        strings.TrimSpace(v.GetString("GIN_MODE")),
		LogLevel:       level,
		MediaMaxBytes:  maxBytes,
		SeedOnStart:    v.GetBool("SEED_ON_START"),
		AdminEmail:     strings.TrimSpace(v.GetString("ADMIN_EMAIL")),
		WebhookTimeout: v.GetDuration("WEBHOOK_TIMEOUT"),
		SMTP: SMTPConfig{
			Host:     strings.TrimSpace(v.GetString("SMTP_HOST")),
			Port:     strings.TrimSpace(v.GetString("SMTP_PORT")),
			Username: strings.TrimSpace(v.GetString("SMTP_USER")),
			Password: v.GetString("SMTP_PASS"),
			From:     strings.TrimSpace(v.GetString("SMTP_FROM")),
		},
		SuperRootUserName: strings.TrimSpace(v.GetString("SUPER_ROOT_USER_NAME")),
		SuperRootPassword: strings.TrimSpace(v.GetString("SUPER_ROOT_PASSWORD")),
	}, nil
}
