package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Webhook posts fields as a JSON object to a URL, typically a Zapier catch
// hook that forwards leads into a CRM.
type Webhook struct {
	client *resty.Client
}

// NewWebhook returns a Webhook whose requests time out after timeout.
// A zero timeout means 10 seconds.
func NewWebhook(timeout time.Duration) *Webhook {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Webhook{client: resty.New().SetTimeout(timeout)}
}

// Notify POSTs fields to the URL in destination. Any non-2xx status is an
// error.
func (w *Webhook) Notify(ctx context.Context, destination string, fields map[string]string) error {
	url := strings.TrimSpace(destination)
	if url == "" {
		return ErrNoDestination
	}

	resp, err := w.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(fields).
		Post(url)
	if err != nil {
		return fmt.Errorf("webhook request: %w", err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		slog.WarnContext(ctx, "webhook rejected", "status", resp.StatusCode(), "body", resp.String())
		return fmt.Errorf("webhook request failed with status %d", resp.StatusCode())
	}
	return nil
}
