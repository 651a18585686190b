package response

type InitializePaymentResponse struct {
	AuthorizationURL string  `json:"authorization_url"`
	Reference        string  `json:"reference"`
	Nights           int     `json:"nights"`
	TotalAmount      float64 `json:"total_amount"`
}

// VerifyPaymentResponse is the confirmation contract: Verified reports the
// provider's verdict, Updated whether this call transitioned a booking.
type VerifyPaymentResponse struct {
	Verified bool   `json:"verified"`
	Updated  bool   `json:"updated"`
	Message  string `json:"message,omitempty"`
}
