package response

import (
	"time"

	"room-booking-api/internal/usecase/readmodel"

	"github.com/jinzhu/copier"
)

type HotelResponse struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	Rooms     []RoomResponse `json:"Rooms"`
}

func FromHotelRM(rm *readmodel.HotelRM) *HotelResponse {
	var resp HotelResponse
	_ = copier.Copy(&resp, rm)
	if resp.Rooms == nil {
		resp.Rooms = []RoomResponse{}
	}
	return &resp
}

func FromHotelRMs(rms []*readmodel.HotelRM) []*HotelResponse {
	out := make([]*HotelResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromHotelRM(rm)
	}
	return out
}
