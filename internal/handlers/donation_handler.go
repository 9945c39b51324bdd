package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/madcollective/donations-api/internal/models"
	"github.com/madcollective/donations-api/internal/services"
	"github.com/madcollective/donations-api/pkg/sanitize"
)

type DonationHandler struct {
	service services.DonationServiceInterface
	schema  *models.FormSchema
}

func NewDonationHandler(service services.DonationServiceInterface, schema *models.FormSchema) *DonationHandler {
	return &DonationHandler{
		service: service,
		schema:  schema,
	}
}

// Donate processes a url-encoded donation form submission. Validation
// failures and declined payments still answer 200 with the outcome in the
// body; only internal faults surface as 500.
func (h *DonationHandler) Donate(c *gin.Context) {
	req := &models.DonationRequest{
		StripeToken: sanitize.TextField(c.PostForm("stripe_token")),
		Amount:      sanitize.TextField(c.PostForm("amount")),
		Monthly:     sanitize.TextField(c.PostForm("monthly")),
	}

	for _, field := range h.schema.Fields {
		value := sanitize.TextField(c.PostForm(field.Name))
		switch field.Name {
		case "amount":
			// already bound above
		case "name":
			req.Name = value
		case "email":
			req.Email = value
		case "phone":
			req.Phone = value
		default:
			if req.Address == nil {
				req.Address = make(map[string]string)
			}
			req.Address[field.Name] = value
		}
	}

	resp, err := h.service.SubmitDonation(c.Request.Context(), req)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Internal server error", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
