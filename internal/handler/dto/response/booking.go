package response

import (
	"time"

	"room-booking-api/internal/usecase/readmodel"

	"github.com/jinzhu/copier"
)

// BookingResponse mirrors the wire format consumed by the web client: the
// joined room is rendered under a capitalized "Room" key.
type BookingResponse struct {
	ID        int64         `json:"id"`
	UserID    int64         `json:"userId"`
	RoomID    int64         `json:"roomId"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
	Room      *RoomResponse `json:"Room,omitempty"`
}

type RoomResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Capacity  int32     `json:"capacity"`
	HotelID   int64     `json:"hotelId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateBookingResponse struct {
	BookingID int64 `json:"bookingId"`
}

func FromBookingRM(rm *readmodel.BookingRM) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}
