// Package email holds the notification delivery adapters. LogSender is
// the default: it records what would be sent, leaving real delivery to
// the mail provider integration deployed alongside.
package email

import (
	"context"
	"log/slog"

	purchasedomain "github.com/vegetanizando/api/internal/purchase/domain"
)

type LogSender struct {
	log *slog.Logger
}

func NewLogSender(log *slog.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) SendOrderConfirmation(ctx context.Context, ev purchasedomain.PurchaseCreated) error {
	s.log.Info("order confirmation queued", "purchase_id", ev.PurchaseID, "email", ev.Email, "total", ev.TotalCart)
	return nil
}

func (s *LogSender) SendStatusUpdate(ctx context.Context, ev purchasedomain.PurchaseStatusChanged) error {
	s.log.Info("status update queued", "purchase_id", ev.PurchaseID, "email", ev.Email, "status", ev.NewStatus)
	return nil
}
