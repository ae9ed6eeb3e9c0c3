package application

import (
	"context"
	"encoding/json"
	"log/slog"

	purchasedomain "github.com/vegetanizando/api/internal/purchase/domain"
)

// Service reacts to purchase events. Unknown event types are skipped,
// not failed, so new producers can roll out first.
type Service struct {
	log    *slog.Logger
	sender Sender
}

func NewService(log *slog.Logger, sender Sender) *Service {
	return &Service{log: log, sender: sender}
}

func (s *Service) Handle(ctx context.Context, eventType string, payload []byte) error {
	switch eventType {
	case purchasedomain.EventPurchaseCreated:
		var ev purchasedomain.PurchaseCreated
		if err := json.Unmarshal(payload, &ev); err != nil {
			return err
		}
		return s.sender.SendOrderConfirmation(ctx, ev)
	case purchasedomain.EventPurchaseStatusChanged:
		var ev purchasedomain.PurchaseStatusChanged
		if err := json.Unmarshal(payload, &ev); err != nil {
			return err
		}
		return s.sender.SendStatusUpdate(ctx, ev)
	default:
		s.log.Debug("event skipped", "type", eventType)
		return nil
	}
}
