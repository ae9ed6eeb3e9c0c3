package application

import "context"

type ChargeInput struct {
	Token string
	Email string
	Total float64
}

type ChargeResult struct {
	ChargeID string `json:"chargeId"`
	Status   string `json:"status"`
}

// Charger executes the card charge with the payment provider. The rest
// of the backend only cares whether it succeeded.
type Charger interface {
	Charge(ctx context.Context, in ChargeInput) (ChargeResult, error)
}
