package adaptor

import (
	"encoding/json"
	"net/http"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/failure"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// InitializePayment handles POST /api/payments/initialize
func (h *PaymentHandler) InitializePayment(w http.ResponseWriter, r *http.Request) {
	var req request.InitializePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.InitializePayment(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "initialize payment")
		return
	}

	utils.ResponseSuccess(w, "Payment initialized", result)
}

// VerifyPayment handles POST /api/payments/verify. The reference may come
// from the request body or, for provider redirects, the query string.
func (h *PaymentHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyPaymentRequest
	if r.Body != nil {
		// Ignore decode errors; the reference may arrive via query instead.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	if req.Reference == "" {
		req.Reference = r.URL.Query().Get("reference")
	}
	if req.Reference == "" {
		utils.ResponseBadRequest(w, "reference is required", nil)
		return
	}

	result, err := h.service.VerifyPayment(r.Context(), &req)
	if err != nil {
		// A verified charge for a room that got taken still carries a
		// result worth returning alongside the conflict status.
		if result != nil {
			utils.ResponseJSON(w, failure.GetCode(err), false, err.Error(), result, nil)
			return
		}
		writeServiceError(w, h.log, err, "verify payment")
		return
	}

	utils.ResponseSuccess(w, result.Message, result)
}
