package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type BookingResponse struct {
	ID            string    `json:"id"`
	FullName      string    `json:"full_name"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	RoomName      string    `json:"room_name"`
	RoomNumber    int       `json:"room_number"`
	RoomPrice     float64   `json:"room_price"`
	RoomID        *string   `json:"room_id,omitempty"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	IsPaid        bool      `json:"is_paid"`
	IsCancelled   bool      `json:"is_cancelled"`
	Source        string    `json:"source"`
	PaymentMethod string    `json:"payment_method"`
	PaymentStatus string    `json:"payment_status"`
	Reference     *string   `json:"reference,omitempty"`
	State         string    `json:"state"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// BookingToResponse attaches the derived state and human-facing status label.
func BookingToResponse(b *entity.Booking, now time.Time) BookingResponse {
	var roomID *string
	if b.RoomID != nil {
		s := b.RoomID.String()
		roomID = &s
	}

	return BookingResponse{
		ID:            b.ID.String(),
		FullName:      b.FullName,
		Phone:         b.Phone,
		Email:         b.Email,
		RoomName:      b.RoomName,
		RoomNumber:    b.RoomNumber,
		RoomPrice:     b.RoomPrice,
		RoomID:        roomID,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		IsPaid:        b.IsPaid,
		IsCancelled:   b.IsCancelled,
		Source:        string(b.Source),
		PaymentMethod: string(b.PaymentMethod),
		PaymentStatus: string(b.PaymentStatus),
		Reference:     b.Reference,
		State:         string(b.State(now)),
		Status:        b.StatusLabel(now),
		CreatedAt:     b.CreatedAt,
	}
}
