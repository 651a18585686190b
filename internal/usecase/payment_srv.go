package usecase

import (
	"context"
	"math"
	"net/http"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/internal/gateway/paystack"
	"hotel-booking/pkg/failure"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentGateway is the provider surface the payment service depends on.
// paystack.Client satisfies it.
type PaymentGateway interface {
	Initialize(ctx context.Context, req paystack.InitializeRequest) (*paystack.InitializeResult, error)
	Verify(ctx context.Context, reference string) (*paystack.VerifyResult, error)
}

type PaymentService interface {
	InitializePayment(ctx context.Context, req *request.InitializePaymentRequest) (*response.InitializePaymentResponse, error)
	VerifyPayment(ctx context.Context, req *request.VerifyPaymentRequest) (*response.VerifyPaymentResponse, error)
}

type paymentService struct {
	repo    *repository.Repository
	gateway PaymentGateway
	log     *zap.Logger
}

func NewPaymentService(repo *repository.Repository, gateway PaymentGateway, log *zap.Logger) PaymentService {
	return &paymentService{
		repo:    repo,
		gateway: gateway,
		log:     log.With(zap.String("service", "payment")),
	}
}

// InitializePayment persists an unpaid reservation first, then asks the
// provider for a checkout session. If the provider call fails the
// reservation is deleted again so the hold is not stranded.
func (s *paymentService) InitializePayment(ctx context.Context, req *request.InitializePaymentRequest) (*response.InitializePaymentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, failure.Validation(utils.FormatValidationErrors(errs))
	}

	if _, _, err := checkRange(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	now := entity.TruncateToMinute(time.Now())
	start := entity.TruncateToMinute(req.StartDate)

	if start.Before(now.Add(LeadTime)) {
		return nil, failure.Validation("reservations must be made at least 24 hours in advance")
	}

	nights := entity.Nights(req.StartDate, req.EndDate)
	total := req.RoomPrice * float64(nights)
	amountMinor := int64(math.Round(total * 100))
	reference := utils.GenerateReference()

	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FullName:      req.FullName,
		Phone:         req.Phone,
		Email:         req.Email,
		RoomName:      req.RoomName,
		RoomNumber:    req.RoomNumber,
		RoomPrice:     req.RoomPrice,
		StartDate:     start,
		EndDate:       entity.CheckoutInstant(req.EndDate),
		Source:        entity.SourceOnline,
		PaymentMethod: entity.PaymentMethodPaystack,
		PaymentStatus: entity.PaymentStatusPending,
		Reference:     &reference,
	}
	if req.RoomID != nil {
		id, err := uuid.Parse(*req.RoomID)
		if err != nil {
			return nil, failure.Validation("invalid room ID format")
		}
		booking.RoomID = &id
	}

	if err := s.repo.Booking.CreateExclusive(ctx, booking, now); err != nil {
		return nil, err
	}

	result, err := s.gateway.Initialize(ctx, paystack.InitializeRequest{
		Email:     req.Email,
		Amount:    amountMinor,
		Reference: reference,
		Metadata: map[string]any{
			"booking_id":  booking.ID.String(),
			"full_name":   req.FullName,
			"phone":       req.Phone,
			"room_name":   req.RoomName,
			"room_number": req.RoomNumber,
			"nights":      nights,
		},
	})
	if err != nil {
		s.log.Error("Payment initialization failed, releasing reservation",
			zap.String("reference", reference),
			zap.String("booking_id", booking.ID.String()),
			zap.Error(err),
		)
		if delErr := s.repo.Booking.Delete(ctx, booking.ID); delErr != nil {
			s.log.Error("Failed to release reservation after provider error",
				zap.String("booking_id", booking.ID.String()),
				zap.Error(delErr),
			)
		}
		return nil, failure.Upstream(err)
	}

	s.log.Info("Payment initialized",
		zap.String("reference", reference),
		zap.String("booking_id", booking.ID.String()),
		zap.Int64("amount_minor", amountMinor),
		zap.Int("nights", nights),
	)

	return &response.InitializePaymentResponse{
		AuthorizationURL: result.AuthorizationURL,
		Reference:        reference,
		Nights:           nights,
		TotalAmount:      total,
	}, nil
}

// VerifyPayment asks the provider for the transaction verdict and, on
// success, marks the matching reservation paid. Replayed verifications are
// idempotent: the first call flips the booking, later calls report
// Updated=false.
func (s *paymentService) VerifyPayment(ctx context.Context, req *request.VerifyPaymentRequest) (*response.VerifyPaymentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, failure.Validation(utils.FormatValidationErrors(errs))
	}

	result, err := s.gateway.Verify(ctx, req.Reference)
	if err != nil {
		return nil, failure.Upstream(err)
	}

	if !result.Success {
		s.log.Info("Payment not successful",
			zap.String("reference", req.Reference),
			zap.String("provider_status", result.Status),
		)
		return &response.VerifyPaymentResponse{
			Verified: false,
			Updated:  false,
			Message:  "payment was not successful",
		}, nil
	}

	booking, updated, err := s.repo.Booking.ConfirmPaid(ctx, req.Reference, entity.PaymentMethodPaystack, entity.TruncateToMinute(time.Now()))
	if err != nil {
		if failure.Is(err, http.StatusConflict) {
			// Money moved but the room was taken in the meantime. Surface
			// the conflict so an operator can refund or rebook.
			s.log.Error("Verified payment for a room no longer available",
				zap.String("reference", req.Reference),
				zap.Error(err),
			)
			return &response.VerifyPaymentResponse{
				Verified: true,
				Updated:  false,
				Message:  "payment verified but the room is no longer available",
			}, err
		}
		return nil, err
	}

	if booking == nil {
		s.log.Warn("Verified payment with no matching booking",
			zap.String("reference", req.Reference),
		)
		return &response.VerifyPaymentResponse{
			Verified: true,
			Updated:  false,
			Message:  "payment verified but no matching booking was found",
		}, nil
	}

	if !updated {
		return &response.VerifyPaymentResponse{
			Verified: true,
			Updated:  false,
			Message:  "booking was already up to date",
		}, nil
	}

	s.log.Info("Payment verified and booking confirmed",
		zap.String("reference", req.Reference),
		zap.String("booking_id", booking.ID.String()),
	)

	return &response.VerifyPaymentResponse{
		Verified: true,
		Updated:  true,
		Message:  "payment verified and booking confirmed",
	}, nil
}
