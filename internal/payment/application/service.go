package application

import (
	"context"

	"github.com/vegetanizando/api/pkg/apperror"
)

type Service struct {
	charger Charger
}

func NewService(charger Charger) *Service {
	return &Service{charger: charger}
}

func (s *Service) Pay(ctx context.Context, in ChargeInput) (ChargeResult, error) {
	if in.Token == "" || in.Email == "" {
		return ChargeResult{}, apperror.Validation("token and email are required")
	}
	if in.Total <= 0 {
		return ChargeResult{}, apperror.Validation("total must be positive")
	}
	return s.charger.Charge(ctx, in)
}
