package application

import (
	"context"
	"time"

	productdomain "github.com/vegetanizando/api/internal/product/domain"
	purchasedomain "github.com/vegetanizando/api/internal/purchase/domain"
)

// PurchaseReader is the read side of the purchase store. Both bounds are
// inclusive.
type PurchaseReader interface {
	ListBetween(ctx context.Context, from, to time.Time) ([]purchasedomain.Purchase, error)
}

type ProductReader interface {
	ListAll(ctx context.Context) ([]productdomain.Product, error)
}
