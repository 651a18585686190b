package wire

import (
	"hotel-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePayment(r chi.Router, paymentHandler *adaptor.PaymentHandler) {
	// POST /api/payments/initialize - Hold the room and open a checkout session
	r.Post("/api/payments/initialize", paymentHandler.InitializePayment)

	// POST /api/payments/verify - Confirm a charge after the provider callback
	r.Post("/api/payments/verify", paymentHandler.VerifyPayment)

	// GET /api/payments/verify - Same confirmation via the redirect URL
	r.Get("/api/payments/verify", paymentHandler.VerifyPayment)
}
