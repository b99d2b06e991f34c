package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stylencms/internal/content"
	"github.com/stylencms/internal/mapper"
	"github.com/stylencms/internal/notify"
	"github.com/stylencms/internal/store"
)

var (
	ErrLeadInvalid  = errors.New("full name and phone are required")
	ErrLeadNotFound = errors.New("lead not found")
	ErrSyncDisabled = errors.New("crm webhook is not configured")
)

// LeadInput is what the public contact form submits.
type LeadInput struct {
	FullName    string
	Phone       string
	UserType    string
	Requirement string
}

// LeadOptions wires the outbound collaborators. Any of them may be nil or
// empty, which disables that notification.
type LeadOptions struct {
	Mailer     notify.Notifier
	AdminEmail string
	Webhook    notify.Notifier
}

// LeadService stores enquiries and relays them to email and the CRM.
type LeadService struct {
	store    *store.Store
	settings *SettingsService
	opts     LeadOptions
	now      func() time.Time
}

// NewLeadService returns a LeadService.
func NewLeadService(st *store.Store, settings *SettingsService, opts LeadOptions) *LeadService {
	return &LeadService{store: st, settings: settings, opts: opts, now: time.Now}
}

// CreateLead stores a new lead. The admin email and the automatic CRM sync
// run afterwards on a best-effort basis: their failures are logged and do
// not undo the stored lead.
func (s *LeadService) CreateLead(ctx context.Context, in LeadInput) (content.Lead, error) {
	lead := content.Lead{
		ID:          uuid.NewString(),
		CreatedAt:   s.now().UTC(),
		FullName:    strings.TrimSpace(in.FullName),
		Phone:       strings.TrimSpace(in.Phone),
		UserType:    strings.TrimSpace(in.UserType),
		Requirement: strings.TrimSpace(in.Requirement),
	}
	if lead.FullName == "" || lead.Phone == "" {
		return content.Lead{}, ErrLeadInvalid
	}

	row := mapper.LeadToRow(lead)
	if err := s.store.Leads.Insert(ctx, &row); err != nil {
		return content.Lead{}, fmt.Errorf("save lead: %w", err)
	}

	if s.opts.Mailer != nil && s.opts.AdminEmail != "" {
		if err := s.opts.Mailer.Notify(ctx, s.opts.AdminEmail, leadFields(lead)); err != nil {
			slog.WarnContext(ctx, "lead email failed", "lead", lead.ID, "err", err)
		}
	}

	settings := s.settings.GetSettings(ctx)
	if settings.Integrations.EnableAutoSync && settings.Integrations.ZapierWebhook != "" {
		if err := s.relay(ctx, lead, settings); err != nil {
			slog.WarnContext(ctx, "lead auto sync failed", "lead", lead.ID, "err", err)
		}
	}

	return lead, nil
}

// ListLeads returns leads newest first. Read errors yield an empty list.
func (s *LeadService) ListLeads(ctx context.Context) []content.Lead {
	leads, _ := loadOrDefault(ctx, content.KindLead,
		func(ctx context.Context) ([]content.Lead, error) {
			rows, err := s.store.Leads.All(ctx)
			if err != nil {
				return nil, err
			}
			leads := make([]content.Lead, 0, len(rows))
			for _, row := range rows {
				leads = append(leads, mapper.LeadToEntity(row))
			}
			return leads, nil
		},
		always(func() []content.Lead { return []content.Lead{} }),
	)
	return leads
}

// GetLead returns one lead.
func (s *LeadService) GetLead(ctx context.Context, id string) (content.Lead, error) {
	row, err := s.store.Leads.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return content.Lead{}, ErrLeadNotFound
		}
		return content.Lead{}, fmt.Errorf("get lead: %w", err)
	}
	return mapper.LeadToEntity(*row), nil
}

// SyncLead pushes a stored lead to the CRM webhook on demand. It works
// whether or not automatic sync is enabled.
func (s *LeadService) SyncLead(ctx context.Context, id string) error {
	lead, err := s.GetLead(ctx, id)
	if err != nil {
		return err
	}
	settings := s.settings.GetSettings(ctx)
	if settings.Integrations.ZapierWebhook == "" || s.opts.Webhook == nil {
		return ErrSyncDisabled
	}
	return s.relay(ctx, lead, settings)
}

func (s *LeadService) relay(ctx context.Context, lead content.Lead, settings content.Settings) error {
	if s.opts.Webhook == nil {
		return ErrSyncDisabled
	}
	fields := leadFields(lead)
	fields["source"] = settings.SiteName + " Website"
	fields["timestamp"] = s.now().UTC().Format(time.RFC3339)

	if err := s.opts.Webhook.Notify(ctx, settings.Integrations.ZapierWebhook, fields); err != nil {
		return fmt.Errorf("sync lead: %w", err)
	}
	slog.InfoContext(ctx, "lead synced", "lead", lead.ID)
	return nil
}

func leadFields(l content.Lead) map[string]string {
	return map[string]string{
		"id":          l.ID,
		"created_at":  l.CreatedAt.Format(time.RFC3339),
		"full_name":   l.FullName,
		"phone":       l.Phone,
		"user_type":   l.UserType,
		"requirement": l.Requirement,
	}
}
