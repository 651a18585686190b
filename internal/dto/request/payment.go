package request

import "time"

type InitializePaymentRequest struct {
	FullName   string    `json:"full_name" validate:"required,min=2"`
	Phone      string    `json:"phone" validate:"required,min=7"`
	Email      string    `json:"email" validate:"required,email"`
	RoomID     *string   `json:"room_id" validate:"omitempty,uuid4"`
	RoomName   string    `json:"room_name" validate:"required"`
	RoomNumber int       `json:"room_number" validate:"required,gt=0"`
	RoomPrice  float64   `json:"room_price" validate:"required,gt=0"`
	StartDate  time.Time `json:"start_date" validate:"required"`
	EndDate    time.Time `json:"end_date" validate:"required"`
}

type VerifyPaymentRequest struct {
	Reference string `json:"reference" validate:"required"`
}
