package payments

import (
	"errors"
	"fmt"

	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// ErrProcessor marks a failure reported by the upstream payment processor.
// The service never retries; the caller sees the failure directly.
var ErrProcessor = errors.New("payment processor failure")

// Currency is fixed; the marketplace bills in a single currency.
const Currency = "usd"

type intentAPI interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

// IntentService creates card payment intents for booking prices.
type IntentService struct {
	intents intentAPI
}

func NewIntentService(secretKey string) *IntentService {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &IntentService{intents: api.PaymentIntents}
}

// CreateIntent converts the price to the processor's minor units
// (truncating) and requests a card payment intent. The returned client
// secret is what the buyer-side client needs to confirm the payment.
func (s *IntentService) CreateIntent(price float64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(int64(price * 100)),
		Currency:           stripe.String(Currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := s.intents.New(params)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProcessor, err)
	}
	return intent.ClientSecret, nil
}
