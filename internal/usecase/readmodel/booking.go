package readmodel

import "time"

type TicketStatus string

const (
	TicketStatusReserved TicketStatus = "reserved"
	TicketStatusPaid     TicketStatus = "paid"
)

// BookingRM is the read model returned by booking lookups. Room is populated
// only by the joined query used for GET /booking.
type BookingRM struct {
	ID        int64
	UserID    int64
	RoomID    int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Room      *RoomRM
}

type RoomRM struct {
	ID        int64
	Name      string
	Capacity  int32
	HotelID   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

type HotelRM struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
	Rooms     []RoomRM
}

type EnrollmentRM struct {
	ID      int64
	UserID  int64
	Address string
}

// TicketRM joins a ticket with its type flags; the flags drive the
// room-stay eligibility rule.
type TicketRM struct {
	ID               int64
	EnrollmentID     int64
	Status           TicketStatus
	IsRemote         bool
	IncludesRoomStay bool
}
