package payments

import (
	"context"
	"errors"
	"testing"

	stripe "github.com/stripe/stripe-go/v74"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/madcollective/donations-api/pkg/errors"
)

func TestBuildPlanParams(t *testing.T) {
	ctx := context.Background()
	p := buildPlanParams(ctx, PlanParams{
		ID:                  "cus_123-1700000000",
		Amount:              2500,
		Currency:            "usd",
		StatementDescriptor: "Test Org Donations",
	})

	assert.Equal(t, "cus_123-1700000000", *p.ID)
	assert.Equal(t, int64(2500), *p.Amount)
	assert.Equal(t, "usd", *p.Currency)
	assert.Equal(t, string(stripe.PlanIntervalMonth), *p.Interval)
	assert.Equal(t, ctx, p.Params.Context)

	// The plan creates its product inline; the descriptor rides along so
	// recurring charges show the same statement text as one-time ones
	assert.Equal(t, "monthly donation", *p.Product.Name)
	assert.Equal(t, "Test Org Donations", *p.Product.StatementDescriptor)
}

func TestClassify_CardError(t *testing.T) {
	cardErr := &stripe.Error{Type: stripe.ErrorTypeCard, Msg: "Your card was declined."}
	classified := classify(cardErr)

	assert.True(t, apperrors.Is(classified, apperrors.ErrPaymentDeclined))

	// The original error stays reachable for UserMessage
	assert.Equal(t, "Your card was declined.", UserMessage(classified))
}

func TestClassify_NonCardErrorsPassThrough(t *testing.T) {
	apiErr := &stripe.Error{Type: stripe.ErrorTypeAPI}
	assert.False(t, apperrors.Is(classify(apiErr), apperrors.ErrPaymentDeclined))

	plain := errors.New("connection reset")
	assert.Equal(t, plain, classify(plain))
}

func TestUserMessage_StripeError(t *testing.T) {
	err := &stripe.Error{Msg: "Your card was declined."}
	assert.Equal(t, "Your card was declined.", UserMessage(err))
}

func TestUserMessage_WrappedStripeError(t *testing.T) {
	inner := &stripe.Error{Msg: "Your card has expired."}
	wrapped := errors.Join(errors.New("charging customer"), inner)
	assert.Equal(t, "Your card has expired.", UserMessage(wrapped))
}

func TestUserMessage_GenericError(t *testing.T) {
	msg := UserMessage(errors.New("connection reset"))
	assert.Equal(t, "Your donation could not be processed. Please try again later.", msg)
}

func TestUserMessage_StripeErrorWithoutMessage(t *testing.T) {
	msg := UserMessage(&stripe.Error{})
	assert.Equal(t, "Your donation could not be processed. Please try again later.", msg)
}
