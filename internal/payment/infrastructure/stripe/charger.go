// Package stripe charges cards through Stripe: find or create the
// customer by email, attach the tokenized card and create the charge in
// BRL.
package stripe

import (
	"context"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	"github.com/vegetanizando/api/internal/payment/application"
)

type Charger struct {
	api *client.API
}

func NewCharger(secretKey string) *Charger {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Charger{api: api}
}

func (c *Charger) Charge(ctx context.Context, in application.ChargeInput) (application.ChargeResult, error) {
	customer, err := c.findOrCreateCustomer(in.Email)
	if err != nil {
		return application.ChargeResult{}, err
	}

	sourceParams := &stripe.PaymentSourceParams{
		Customer: stripe.String(customer.ID),
	}
	sp, err := stripe.SourceParamsFor(in.Token)
	if err != nil {
		return application.ChargeResult{}, err
	}
	sourceParams.Source = sp
	source, err := c.api.PaymentSources.New(sourceParams)
	if err != nil {
		return application.ChargeResult{}, err
	}

	chargeParams := &stripe.ChargeParams{
		// Stripe amounts are integer centavos.
		Amount:   stripe.Int64(int64(in.Total * 100)),
		Currency: stripe.String(string(stripe.CurrencyBRL)),
		Customer: stripe.String(customer.ID),
	}
	if err := chargeParams.SetSource(source.ID); err != nil {
		return application.ChargeResult{}, err
	}
	charge, err := c.api.Charges.New(chargeParams)
	if err != nil {
		return application.ChargeResult{}, err
	}

	return application.ChargeResult{ChargeID: charge.ID, Status: string(charge.Status)}, nil
}

func (c *Charger) findOrCreateCustomer(email string) (*stripe.Customer, error) {
	listParams := &stripe.CustomerListParams{Email: stripe.String(email)}
	listParams.Limit = stripe.Int64(1)
	it := c.api.Customers.List(listParams)
	for it.Next() {
		return it.Customer(), nil
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return c.api.Customers.New(&stripe.CustomerParams{Email: stripe.String(email)})
}
