package application

import (
	"context"
	"time"

	"github.com/vegetanizando/api/internal/purchase/domain"
)

// Repository is the purchase store. Write methods take the event row to
// append to the outbox inside the same transaction. Implementations
// return apperror.NotFound for a missing id and wrap other failures as
// apperror.Storage.
type Repository interface {
	CreateWithOutbox(ctx context.Context, p domain.Purchase, eventType string, payload []byte, headers map[string]string, traceparent string) error
	Get(ctx context.Context, id string) (domain.Purchase, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]domain.Purchase, error)
	ListAll(ctx context.Context) ([]domain.Purchase, error)
	UpdateStatusWithOutbox(ctx context.Context, id string, status domain.Status, eventType string, payload []byte, headers map[string]string, traceparent string) error
	DeleteWithOutbox(ctx context.Context, id string, eventType string, payload []byte, headers map[string]string, traceparent string) error
}
