package payments

// ChargeRequest is the payload sent to the payment provider.
type ChargeRequest struct {
	AmountCents int64  `json:"amount_cents"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
	// Reference ties the charge back to the invoice for reconciliation.
	Reference string `json:"reference"`
}

// Charge is the provider's record of a payment.
type Charge struct {
	ID     string `json:"id"`
	Status string `json:"status"` // "approved", "declined", "pending"
}

// Approved reports whether the charge went through.
func (c *Charge) Approved() bool {
	return c.Status == "approved"
}

// ErrorResponse is the provider's error payload.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
