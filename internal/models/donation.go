package models

// DonationRequest represents a donation form submission after sanitization.
// Field values are the raw url-encoded form fields; Amount stays a string
// until the service parses and scales it.
type DonationRequest struct {
	StripeToken string
	Amount      string
	Monthly     string
	Name        string
	Email       string
	Phone       string
	Address     map[string]string
}

// IsMonthly reports whether the donor asked for a recurring donation. Only
// the literal checkbox value "on" counts.
func (r *DonationRequest) IsMonthly() bool {
	return r.Monthly == "on"
}

// FieldValue returns the submitted value for a schema field name.
func (r *DonationRequest) FieldValue(name string) string {
	switch name {
	case "amount":
		return r.Amount
	case "name":
		return r.Name
	case "email":
		return r.Email
	case "phone":
		return r.Phone
	default:
		return r.Address[name]
	}
}

// ValidationError describes a single failed validation rule. Field is empty
// for form-level errors that don't belong to a specific input.
type ValidationError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"error"`
}

// DonationResponse is the JSON body returned for every processed submission.
// Exactly one of SuccessMessage or Errors is populated.
type DonationResponse struct {
	Success        bool              `json:"success,omitempty"`
	SuccessMessage string            `json:"success_message,omitempty"`
	Errors         []ValidationError `json:"errors,omitempty"`
}
