package services

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/madcollective/donations-api/config"
	"github.com/madcollective/donations-api/internal/models"
	"github.com/madcollective/donations-api/internal/payments"
	apperrors "github.com/madcollective/donations-api/pkg/errors"
	"github.com/madcollective/donations-api/pkg/httpclient"
	"github.com/madcollective/donations-api/pkg/locales"
	"github.com/madcollective/donations-api/pkg/logger"
	"github.com/madcollective/donations-api/pkg/metrics"
	"github.com/madcollective/donations-api/pkg/trigger"
)

// phonePattern accepts North American numbers with an optional +1 country
// code, optional parenthesized area code, common separators, and an optional
// extension suffix.
var phonePattern = regexp.MustCompile(`^(?:(?:\+?1\s*(?:[.-]\s*)?)?(?:\(\s*([2-9]1[02-9]|[2-9][02-8]1|[2-9][02-8][02-9])\s*\)|([2-9]1[02-9]|[2-9][02-8]1|[2-9][02-8][02-9]))\s*(?:[.-]\s*)?)?([2-9]1[02-9]|[2-9][02-9]1|[2-9][02-9]{2})\s*(?:[.-]\s*)?([0-9]{4})(?:\s*(?:#|x\.?|ext\.?|extension)\s*(\d+))?$`)

var validate = validator.New()

// DonationService processes donation form submissions: local validation
// first, then customer plus charge (or plan plus subscription) against the
// payment gateway.
type DonationService struct {
	gateway    payments.Gateway
	config     *config.Config
	schema     *models.FormSchema
	httpClient httpclient.Client
	currency   string
}

// NewDonationService creates a new donation service instance
func NewDonationService(
	gateway payments.Gateway,
	cfg *config.Config,
	schema *models.FormSchema,
	httpClient httpclient.Client,
) *DonationService {

	currency, err := locales.CurrencyCode(cfg.Stripe.Locale)
	if err != nil {
		logger.Warn("Unknown locale, defaulting currency to usd",
			zap.String("locale", cfg.Stripe.Locale),
			zap.Error(err))
		currency = "usd"
	}

	return &DonationService{
		gateway:    gateway,
		config:     cfg,
		schema:     schema,
		httpClient: httpClient,
		currency:   currency,
	}
}

// SubmitDonation runs one complete submission: validate, create the
// customer, then charge once or set up a monthly plan and subscription.
// Business failures (validation, declined cards) come back inside the
// response; the returned error is reserved for internal faults.
func (s *DonationService) SubmitDonation(ctx context.Context, req *models.DonationRequest) (*models.DonationResponse, error) {
	amount, _ := strconv.ParseFloat(req.Amount, 64)
	minorUnits := int64(math.Round(amount * float64(s.config.Stripe.CurrencyScale)))
	isMonthly := req.IsMonthly()

	// Validation is fully local; nothing reaches the gateway until it passes
	if errs := s.validateDonation(req, amount); len(errs) > 0 {
		metrics.DonationSubmissions.WithLabelValues("validation_failed").Inc()
		return &models.DonationResponse{Errors: errs}, nil
	}

	customer, err := s.gateway.CreateCustomer(ctx, payments.CustomerParams{
		Token: req.StripeToken,
		Email: req.Email,
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		metrics.DonationSubmissions.WithLabelValues("customer_failed").Inc()
		logger.Error("Failed to create customer", zap.Error(err))
		return &models.DonationResponse{
			Errors: []models.ValidationError{{Message: payments.UserMessage(err)}},
		}, nil
	}

	if isMonthly {
		err = s.donateMonthly(ctx, customer, minorUnits)
	} else {
		err = s.donateSingle(ctx, customer, minorUnits)
	}
	if err != nil {
		// The customer record already exists at this point; the gateway is
		// authoritative for it and no rollback is attempted.
		status := "payment_failed"
		if apperrors.Is(err, apperrors.ErrPaymentDeclined) {
			status = "card_declined"
		}
		metrics.DonationSubmissions.WithLabelValues(status).Inc()
		logger.Error("Failed to process donation",
			zap.Error(err),
			zap.String("customer_id", customer.ID),
			zap.Bool("monthly", isMonthly))
		return &models.DonationResponse{
			Errors: []models.ValidationError{{Message: payments.UserMessage(err)}},
		}, nil
	}

	interval := "once"
	if isMonthly {
		interval = "month"
	}
	metrics.DonationSubmissions.WithLabelValues("success").Inc()
	metrics.DonationAmountMinorUnits.WithLabelValues(interval).Observe(float64(minorUnits))

	// Notify listeners (receipts, CRM) without blocking the response
	trigger.CallAsync(s.config.EventTriggers.DonationCompletedTriggerURL, customer.ID, s.httpClient)

	return &models.DonationResponse{
		Success:        true,
		SuccessMessage: s.config.Form.SuccessMessage,
	}, nil
}

// validateDonation applies every rule independently and collects all
// violations before returning.
func (s *DonationService) validateDonation(req *models.DonationRequest, amount float64) []models.ValidationError {
	var errs []models.ValidationError

	for _, field := range s.schema.Fields {
		if field.Required && req.FieldValue(field.Name) == "" {
			errs = append(errs, models.ValidationError{
				Field:   field.Name,
				Message: fmt.Sprintf("The %s field is required.", field.Name),
			})
		}
	}

	if amount < s.config.Form.MinDonationAmount {
		minAmount := locales.FormatMoney(s.config.Form.MinDonationAmount, s.config.Stripe.Locale)
		errs = append(errs, models.ValidationError{
			Field:   "amount",
			Message: fmt.Sprintf("Donation amount must be at least %s.", minAmount),
		})
	}

	if s.schema.Has("email") && req.Email != "" {
		if err := validate.Var(req.Email, "email"); err != nil {
			errs = append(errs, models.ValidationError{
				Field:   "email",
				Message: "Invalid email provided.",
			})
		}
	}

	if s.schema.Has("phone") && req.Phone != "" {
		if !phonePattern.MatchString(req.Phone) {
			errs = append(errs, models.ValidationError{
				Field:   "phone",
				Message: "Invalid phone number provided.",
			})
		}
	}

	return errs
}

// donateSingle performs a one-time charge against the customer.
func (s *DonationService) donateSingle(ctx context.Context, customer *payments.Customer, amount int64) error {
	_, err := s.gateway.CreateCharge(ctx, payments.ChargeParams{
		CustomerID:          customer.ID,
		Amount:              amount,
		Currency:            s.currency,
		StatementDescriptor: s.config.StatementDescriptor(),
	})
	return err
}

// donateMonthly creates a plan unique to this donation and subscribes the
// customer to it. Plan creation and subscription are two gateway calls; a
// subscription failure leaves the plan behind.
func (s *DonationService) donateMonthly(ctx context.Context, customer *payments.Customer, amount int64) error {
	planID := fmt.Sprintf("%s-%d", customer.ID, time.Now().Unix())

	plan, err := s.gateway.CreatePlan(ctx, payments.PlanParams{
		ID:                  planID,
		Amount:              amount,
		Currency:            s.currency,
		StatementDescriptor: s.config.StatementDescriptor(),
	})
	if err != nil {
		return err
	}

	_, err = s.gateway.CreateSubscription(ctx, payments.SubscriptionParams{
		CustomerID: customer.ID,
		PlanID:     plan.ID,
	})
	return err
}
