package application

import (
	"context"

	"github.com/vegetanizando/api/internal/admin/domain"
)

// Repository looks up operators by login email. GetByEmail returns
// apperror.NotFound for an unknown address.
type Repository interface {
	GetByEmail(ctx context.Context, email string) (domain.Admin, error)
}

// PhotoResolver turns the stored photo key into a temporary URL.
type PhotoResolver interface {
	ResolveURL(ctx context.Context, key string) (string, error)
}
