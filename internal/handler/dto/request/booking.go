package request

// BookingRequest carries the target room for both POST /booking and
// PUT /booking/:bookingId. The roomId is validated in the handler so a
// missing or non-positive value maps to 400 rather than a binding error.
type BookingRequest struct {
	RoomID int64 `json:"roomId"`
}

func (r BookingRequest) Valid() bool {
	return r.RoomID > 0
}
