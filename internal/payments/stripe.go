// Package payments wraps the Stripe API behind a narrow gateway interface so
// the donation service can be tested without network access.
package payments

import (
	"context"
	"errors"
	"time"

	stripe "github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/client"

	apperrors "github.com/madcollective/donations-api/pkg/errors"
	"github.com/madcollective/donations-api/pkg/logger"
	"github.com/madcollective/donations-api/pkg/metrics"
)

// monthlyPlanName labels the product behind every recurring donation plan.
const monthlyPlanName = "monthly donation"

// Customer is a created Stripe customer record.
type Customer struct {
	ID string
}

// Charge is a completed one-time charge.
type Charge struct {
	ID string
}

// Plan is a recurring billing plan.
type Plan struct {
	ID string
}

// Subscription binds a customer to a plan.
type Subscription struct {
	ID string
}

// CustomerParams carries the token and donor details for customer creation.
type CustomerParams struct {
	Token string
	Email string
	Name  string
	Phone string
}

// ChargeParams describes a single charge in minor currency units.
type ChargeParams struct {
	CustomerID          string
	Amount              int64
	Currency            string
	StatementDescriptor string
}

// PlanParams describes a monthly recurring plan in minor currency units.
type PlanParams struct {
	ID                  string
	Amount              int64
	Currency            string
	StatementDescriptor string
}

// SubscriptionParams binds a customer to an existing plan.
type SubscriptionParams struct {
	CustomerID string
	PlanID     string
}

// Gateway defines the payment service operations the donation flow needs
type Gateway interface {
	CreateCustomer(ctx context.Context, params CustomerParams) (*Customer, error)
	CreateCharge(ctx context.Context, params ChargeParams) (*Charge, error)
	CreatePlan(ctx context.Context, params PlanParams) (*Plan, error)
	CreateSubscription(ctx context.Context, params SubscriptionParams) (*Subscription, error)
}

// StripeGateway implements Gateway against the Stripe REST API.
type StripeGateway struct {
	api *client.API
}

// NewStripeGateway creates a gateway authenticated with the secret key for
// the configured mode (test or live).
func NewStripeGateway(secretKey string) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{api: api}
}

// CreateCustomer creates a customer carrying the card token and donor
// contact details. Name and phone travel as metadata, matching how the
// donation records are consumed downstream.
func (g *StripeGateway) CreateCustomer(ctx context.Context, params CustomerParams) (*Customer, error) {
	start := time.Now()

	customerParams := &stripe.CustomerParams{
		Params: stripe.Params{Context: ctx},
		Source: stripe.String(params.Token),
	}
	if params.Email != "" {
		customerParams.Email = stripe.String(params.Email)
	}
	if params.Name != "" {
		customerParams.AddMetadata("name", params.Name)
	}
	if params.Phone != "" {
		customerParams.AddMetadata("phone", params.Phone)
	}

	customer, err := g.api.Customers.New(customerParams)
	g.record("create_customer", start, err)
	if err != nil {
		return nil, classify(err)
	}

	return &Customer{ID: customer.ID}, nil
}

// CreateCharge performs a one-time charge against an existing customer.
func (g *StripeGateway) CreateCharge(ctx context.Context, params ChargeParams) (*Charge, error) {
	start := time.Now()

	charge, err := g.api.Charges.New(&stripe.ChargeParams{
		Params:              stripe.Params{Context: ctx},
		Customer:            stripe.String(params.CustomerID),
		Amount:              stripe.Int64(params.Amount),
		Currency:            stripe.String(params.Currency),
		StatementDescriptor: stripe.String(params.StatementDescriptor),
	})
	g.record("create_charge", start, err)
	if err != nil {
		return nil, classify(err)
	}

	return &Charge{ID: charge.ID}, nil
}

// buildPlanParams assembles the Stripe request for a monthly plan. The plan
// creates its backing product inline, carrying the statement descriptor.
func buildPlanParams(ctx context.Context, params PlanParams) *stripe.PlanParams {
	return &stripe.PlanParams{
		Params:   stripe.Params{Context: ctx},
		ID:       stripe.String(params.ID),
		Amount:   stripe.Int64(params.Amount),
		Currency: stripe.String(params.Currency),
		Interval: stripe.String(string(stripe.PlanIntervalMonth)),
		Product: &stripe.PlanProductParams{
			Name:                stripe.String(monthlyPlanName),
			StatementDescriptor: stripe.String(params.StatementDescriptor),
		},
	}
}

// CreatePlan creates a monthly recurring plan at the given amount.
func (g *StripeGateway) CreatePlan(ctx context.Context, params PlanParams) (*Plan, error) {
	start := time.Now()

	plan, err := g.api.Plans.New(buildPlanParams(ctx, params))
	g.record("create_plan", start, err)
	if err != nil {
		return nil, classify(err)
	}

	return &Plan{ID: plan.ID}, nil
}

// CreateSubscription subscribes a customer to a plan.
func (g *StripeGateway) CreateSubscription(ctx context.Context, params SubscriptionParams) (*Subscription, error) {
	start := time.Now()

	subscription, err := g.api.Subscriptions.New(&stripe.SubscriptionParams{
		Params:   stripe.Params{Context: ctx},
		Customer: stripe.String(params.CustomerID),
		Items: []*stripe.SubscriptionItemsParams{
			{Plan: stripe.String(params.PlanID)},
		},
	})
	g.record("create_subscription", start, err)
	if err != nil {
		return nil, classify(err)
	}

	return &Subscription{ID: subscription.ID}, nil
}

// classify marks card declines so callers can branch without importing
// stripe types. Other failures pass through unchanged.
func classify(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Type == stripe.ErrorTypeCard {
		return apperrors.PaymentDeclinedError(err)
	}
	return err
}

func (g *StripeGateway) record(operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	duration := metrics.MeasureDuration(start)
	metrics.StripeRequestDuration.WithLabelValues(operation, status).Observe(duration)
	metrics.StripeRequestTotal.WithLabelValues(operation, status).Inc()
	logger.LogAPICall("stripe", operation, status, duration)
}

// UserMessage extracts a message safe to show the donor from a gateway
// error. Stripe card errors carry donor-facing text; anything else gets a
// generic message.
func UserMessage(err error) string {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
		return stripeErr.Msg
	}
	return "Your donation could not be processed. Please try again later."
}
