package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/madcollective/donations-api/config"
	"github.com/madcollective/donations-api/internal/models"
	"github.com/madcollective/donations-api/pkg/locales"
)

type FormHandler struct {
	config *config.Config
	schema *models.FormSchema
}

func NewFormHandler(cfg *config.Config, schema *models.FormSchema) *FormHandler {
	return &FormHandler{
		config: cfg,
		schema: schema,
	}
}

// FormConfig returns everything a client needs to render the donation form
// and start a submission. Only the publishable key is exposed here.
func (h *FormHandler) FormConfig(c *gin.Context) {
	cfg := h.config

	currency, err := locales.CurrencyCode(cfg.Stripe.Locale)
	if err != nil {
		currency = "usd"
	}

	c.JSON(http.StatusOK, gin.H{
		"publishable_key":     cfg.StripePublishableKey(),
		"test_mode":           cfg.Stripe.TestMode,
		"locale":              cfg.Stripe.Locale,
		"currency":            currency,
		"preset_amounts":      cfg.Form.PresetAmounts,
		"default_amount":      cfg.Form.DefaultAmount,
		"amounts_as_select":   cfg.Form.AmountsAsSelect,
		"allow_custom_amount": cfg.Form.AllowCustomAmount,
		"custom_amount_label": cfg.Form.CustomAmountLabel,
		"allow_monthly":       cfg.Form.AllowMonthly,
		"monthly_note":        cfg.Form.MonthlyNote,
		"min_donation_amount": cfg.Form.MinDonationAmount,
		"schema":              h.schema,
	})
}
