package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/stylencms/internal/content"
	"github.com/stylencms/internal/db"
	"github.com/stylencms/internal/mapper"
	"github.com/stylencms/internal/store"
)

// ErrWebhookInvalid 表示 CRM webhook 地址不是 http(s) 链接。
var ErrWebhookInvalid = errors.New("webhook url must start with http:// or https://")

// SettingsService 读写站点全局配置这一单例记录。
type SettingsService struct {
	store   *store.Store
	catalog *content.Catalog
}

// NewSettingsService returns a SettingsService.
func NewSettingsService(st *store.Store, catalog *content.Catalog) *SettingsService {
	return &SettingsService{store: st, catalog: catalog}
}

// GetSettings 读取全局配置。没有记录或读取失败时返回默认配置；
// 记录中为空的字符串字段逐项回退到默认值。
//
// Blank is never shown: clearing a field such as whatsapp in the editor
// brings back the built-in value rather than hiding it on the site.
func (s *SettingsService) GetSettings(ctx context.Context) content.Settings {
	defaults := s.catalog.Settings()
	settings, _ := loadOrDefault(ctx, content.KindSettings,
		func(ctx context.Context) (content.Settings, error) {
			row, err := s.store.Settings.Get(ctx, db.SettingsRowID)
			if err != nil {
				return content.Settings{}, err
			}
			stored := mapper.SettingsToEntity(*row)
			if len(row.Integrations) == 0 {
				stored.Integrations = defaults.Integrations
			}
			return withDefaultFields(stored, defaults), nil
		},
		always(func() content.Settings { return defaults }),
	)
	return settings
}

func withDefaultFields(s, defaults content.Settings) content.Settings {
	pick := func(value, fallback string) string {
		if strings.TrimSpace(value) == "" {
			return fallback
		}
		return value
	}
	s.SiteName = pick(s.SiteName, defaults.SiteName)
	s.Phone = pick(s.Phone, defaults.Phone)
	s.Email = pick(s.Email, defaults.Email)
	s.Address = pick(s.Address, defaults.Address)
	s.WhatsApp = pick(s.WhatsApp, defaults.WhatsApp)
	return s
}

// SaveSettings 覆盖保存全局配置。
func (s *SettingsService) SaveSettings(ctx context.Context, settings content.Settings) (content.Settings, error) {
	out := content.Settings{
		SiteName: strings.TrimSpace(settings.SiteName),
		Phone:    strings.TrimSpace(settings.Phone),
		Email:    strings.TrimSpace(settings.Email),
		Address:  strings.TrimSpace(settings.Address),
		WhatsApp: strings.TrimSpace(settings.WhatsApp),
		Integrations: content.Integrations{
			EnableAutoSync: settings.Integrations.EnableAutoSync,
			ZapierWebhook:  strings.TrimSpace(settings.Integrations.ZapierWebhook),
		},
	}

	hook := out.Integrations.ZapierWebhook
	if hook != "" && !strings.HasPrefix(hook, "https://") && !strings.HasPrefix(hook, "http://") {
		return content.Settings{}, ErrWebhookInvalid
	}

	row, err := mapper.SettingsToRow(out)
	if err != nil {
		return content.Settings{}, fmt.Errorf("save settings: %w", err)
	}
	if err := s.store.Settings.Upsert(ctx, &row); err != nil {
		return content.Settings{}, fmt.Errorf("save settings: %w", err)
	}
	return out, nil
}
