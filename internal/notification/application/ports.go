package application

import (
	"context"

	purchasedomain "github.com/vegetanizando/api/internal/purchase/domain"
)

// Sender delivers customer notifications. Actual delivery (SMTP,
// transactional mail provider) lives outside this backend; implementers
// adapt it here.
type Sender interface {
	SendOrderConfirmation(ctx context.Context, ev purchasedomain.PurchaseCreated) error
	SendStatusUpdate(ctx context.Context, ev purchasedomain.PurchaseStatusChanged) error
}
