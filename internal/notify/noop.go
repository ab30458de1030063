package notify

import (
	"context"
	"log/slog"
)

// NoOpNotifier implements Notifier by logging discarded outcomes. It is
// used when Discord (or another notification backend) is not configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards outcomes with a log
// message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// SendOutcome logs and discards a single outcome.
func (n *NoOpNotifier) SendOutcome(_ context.Context, outcome *OutcomePayload) error {
	n.log.Debug("notification discarded (no backend configured)",
		"sku", outcome.SKU,
		"succeeded", outcome.Succeeded,
	)
	return nil
}
