package payment

import (
	"context"
	"strings"

	"chargili/internal/models"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/checkout/session"
)

// Lookup resolves the processor side of a transaction payment.
type Lookup interface {
	Lookup(ctx context.Context, sessionID string) (*models.PaymentInfo, error)
	Enabled() bool
}

// SessionGetter is the part of the Stripe checkout client the lookup needs.
type SessionGetter interface {
	Get(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type stripeLookup struct {
	sessions SessionGetter
}

// NewStripeLookup returns a lookup backed by Stripe Checkout Sessions.
func NewStripeLookup(secretKey string) Lookup {
	return NewLookup(&session.Client{B: stripe.GetBackend(stripe.APIBackend), Key: secretKey})
}

func NewLookup(sessions SessionGetter) Lookup {
	return &stripeLookup{sessions: sessions}
}

func (l *stripeLookup) Enabled() bool { return true }

func (l *stripeLookup) Lookup(ctx context.Context, sessionID string) (*models.PaymentInfo, error) {
	if sessionID == "" {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	cs, err := l.sessions.Get(sessionID, params)
	if err != nil {
		return nil, err
	}

	return &models.PaymentInfo{
		SessionID: cs.ID,
		Status:    string(cs.PaymentStatus),
		Amount:    float64(cs.AmountTotal) / 100,
		Currency:  strings.ToUpper(string(cs.Currency)),
	}, nil
}

// Disabled is used when no Stripe key is configured.
type Disabled struct{}

func (Disabled) Enabled() bool { return false }

func (Disabled) Lookup(context.Context, string) (*models.PaymentInfo, error) {
	return nil, nil
}
