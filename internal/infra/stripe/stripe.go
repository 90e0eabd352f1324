package stripe

import (
	"context"
	"fmt"
	"net/http"

	stripego "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// Gateway wraps the Stripe API for payment-intent creation. Only card
// payments are offered to the frontend.
type Gateway struct {
	api *client.API
}

func NewGateway(secretKey string, httpClient *http.Client) (*Gateway, error) {
	if secretKey == "" {
		return nil, fmt.Errorf("stripe secret key is required")
	}

	backend := stripego.GetBackendWithConfig(stripego.APIBackend, &stripego.BackendConfig{
		HTTPClient: httpClient,
	})
	api := &client.API{}
	api.Init(secretKey, &stripego.Backends{
		API:     backend,
		Connect: backend,
		Uploads: backend,
	})

	return &Gateway{api: api}, nil
}

func (g *Gateway) CreatePaymentIntent(ctx context.Context, amountCents int64, currency string) (string, error) {
	params := &stripego.PaymentIntentParams{
		Params:             stripego.Params{Context: ctx},
		Amount:             stripego.Int64(amountCents),
		Currency:           stripego.String(currency),
		PaymentMethodTypes: stripego.StringSlice([]string{"card"}),
	}

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}

	return intent.ClientSecret, nil
}
