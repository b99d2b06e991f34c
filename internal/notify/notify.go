// Package notify delivers lead notifications to outside systems. Every call
// is independent and may fail; callers decide whether a failure matters.
package notify

import (
	"context"
	"errors"
	"sort"
)

// Notifier sends a flat set of fields to a destination. The meaning of
// destination depends on the implementation: an email address for Mailer, a
// URL for Webhook.
type Notifier interface {
	Notify(ctx context.Context, destination string, fields map[string]string) error
}

// ErrNoDestination is returned when Notify is called with an empty destination.
var ErrNoDestination = errors.New("notify: destination is required")

func sortedKeys(fields map[string]string) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
