package request

import "time"

type CreateBookingRequest struct {
	FullName   string    `json:"full_name" validate:"required,min=2"`
	Phone      string    `json:"phone" validate:"required,min=7"`
	Email      string    `json:"email" validate:"required,email"`
	RoomName   string    `json:"room_name" validate:"required"`
	RoomNumber int       `json:"room_number" validate:"required,gt=0"`
	RoomPrice  float64   `json:"room_price" validate:"required,gt=0"`
	StartDate  time.Time `json:"start_date" validate:"required"`
	EndDate    time.Time `json:"end_date" validate:"required"`
}

// CreateManualBookingRequest is the dashboard variant. An explicit is_paid
// marks the booking pre-paid and skips the lead-time rule.
type CreateManualBookingRequest struct {
	CreateBookingRequest
	IsPaid bool   `json:"is_paid"`
	Source string `json:"source" validate:"omitempty,oneof=admin online dashboard user"`
}
