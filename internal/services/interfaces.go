package services

import (
	"context"

	"github.com/madcollective/donations-api/internal/models"
)

// DonationServiceInterface defines the interface for donation processing
type DonationServiceInterface interface {
	SubmitDonation(ctx context.Context, req *models.DonationRequest) (*models.DonationResponse, error)
}

// Ensure services implement their interfaces
var _ DonationServiceInterface = (*DonationService)(nil)
