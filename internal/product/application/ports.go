package application

import (
	"context"

	"github.com/vegetanizando/api/internal/product/domain"
)

// Repository is the catalog store. Get returns apperror.NotFound for a
// missing id.
type Repository interface {
	Create(ctx context.Context, p domain.Product) error
	Get(ctx context.Context, id string) (domain.Product, error)
	ListAll(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, p domain.Product) error
	Delete(ctx context.Context, id string) error
}

// ImageStore keeps product photos under opaque keys.
type ImageStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
	Delete(ctx context.Context, key string) error
}

// ImageResolver turns a storage key into a temporary access URL. Keys
// themselves never reach clients.
type ImageResolver interface {
	ResolveURL(ctx context.Context, key string) (string, error)
}
