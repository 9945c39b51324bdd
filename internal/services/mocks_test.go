package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/madcollective/donations-api/internal/payments"
)

// MockGateway is a mock implementation of payments.Gateway
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreateCustomer(ctx context.Context, params payments.CustomerParams) (*payments.Customer, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.Customer), args.Error(1)
}

func (m *MockGateway) CreateCharge(ctx context.Context, params payments.ChargeParams) (*payments.Charge, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.Charge), args.Error(1)
}

func (m *MockGateway) CreatePlan(ctx context.Context, params payments.PlanParams) (*payments.Plan, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.Plan), args.Error(1)
}

func (m *MockGateway) CreateSubscription(ctx context.Context, params payments.SubscriptionParams) (*payments.Subscription, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.Subscription), args.Error(1)
}
