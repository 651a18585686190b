package entity

// Room is inventory. Its lifecycle is admin-owned; the booking engine only
// reads it for availability filtering.
type Room struct {
	Base
	Name       string   `db:"name"`
	Category   string   `db:"category"`
	Price      float64  `db:"price"`
	RoomNumber int      `db:"room_number"`
	Images     []string `db:"images"`
	Amenities  []string `db:"amenities"`
}
