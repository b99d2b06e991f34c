package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/stylencms/internal/config"
	"github.com/stylencms/internal/content"
	"github.com/stylencms/internal/db"
	"github.com/stylencms/internal/handler"
	"github.com/stylencms/internal/notify"
	"github.com/stylencms/internal/service"
	"gorm.io/gorm"
)

// app holds what every command needs.
type app struct {
	cfg     config.AppConfig
	db      *gorm.DB
	catalog *content.Catalog
}

func setupLogger(level slog.Level) {
	underSystemd := os.Getenv("JOURNAL_STREAM") != ""
	logger := slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if underSystemd && a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)
}

// newApp loads config, sets up logging and opens the database.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	setupLogger(cfg.LogLevel)

	gdb, err := db.Open(cfg.DatabasePath, cfg.LogLevel <= slog.LevelDebug)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	return &app{cfg: cfg, db: gdb, catalog: content.NewCatalog()}, nil
}

func (a *app) Close() {
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func (a *app) handlerOptions() handler.Options {
	leads := service.LeadOptions{
		AdminEmail: a.cfg.AdminEmail,
		Webhook:    notify.NewWebhook(a.cfg.WebhookTimeout),
	}

	mailCfg := notify.MailConfig{
		Host:     a.cfg.SMTP.Host,
		Port:     a.cfg.SMTP.Port,
		Username: a.cfg.SMTP.Username,
		Password: a.cfg.SMTP.Password,
		From:     a.cfg.SMTP.From,
	}
	if mailCfg.Enabled() {
		mailer, err := notify.NewMailer(mailCfg)
		if err != nil {
			slog.Warn("lead email disabled", "err", err)
		} else {
			leads.Mailer = mailer
		}
	}

	return handler.Options{MediaMaxBytes: a.cfg.MediaMaxBytes, Leads: leads}
}
