package repository

import (
	"context"

	"room-booking-api/internal/infra"
	"room-booking-api/internal/infra/db"
	"room-booking-api/internal/pkg/pgconv"
	"room-booking-api/internal/usecase/readmodel"
)

type HotelRepository struct {
	db db.DBTX
}

func NewHotelRepository(dbtx db.DBTX) *HotelRepository {
	return &HotelRepository{db: dbtx}
}

func (r *HotelRepository) FindAllWithRooms(ctx context.Context) ([]*readmodel.HotelRM, error) {
	const query = `
		SELECT h.id, h.name, h.created_at, h.updated_at
		FROM hotels h
		ORDER BY h.id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hotels", err)
	}
	defer rows.Close()

	var hotels []*readmodel.HotelRM
	byID := make(map[int64]*readmodel.HotelRM)
	for rows.Next() {
		var hotel readmodel.HotelRM
		if err := rows.Scan(&hotel.ID, &hotel.Name, &hotel.CreatedAt, &hotel.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan hotel row", err)
		}
		hotel.Rooms = []readmodel.RoomRM{}
		hotels = append(hotels, &hotel)
		byID[hotel.ID] = &hotel
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read hotel rows", err)
	}

	if len(hotels) == 0 {
		return hotels, nil
	}

	rooms, err := r.findRooms(ctx, nil)
	if err != nil {
		return nil, err
	}
	for _, room := range rooms {
		if hotel, ok := byID[room.HotelID]; ok {
			hotel.Rooms = append(hotel.Rooms, room)
		}
	}

	return hotels, nil
}

func (r *HotelRepository) FindByIDWithRooms(ctx context.Context, id int64) (*readmodel.HotelRM, error) {
	const query = `
		SELECT id, name, created_at, updated_at
		FROM hotels
		WHERE id = $1`

	var hotel readmodel.HotelRM
	err := r.db.QueryRow(ctx, query, id).Scan(&hotel.ID, &hotel.Name, &hotel.CreatedAt, &hotel.UpdatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find hotel by ID", err)
	}

	hotel.Rooms, err = r.findRooms(ctx, &id)
	if err != nil {
		return nil, err
	}

	return &hotel, nil
}

// findRooms returns rooms for one hotel, or for all hotels when hotelID is
// nil.
func (r *HotelRepository) findRooms(ctx context.Context, hotelID *int64) ([]readmodel.RoomRM, error) {
	const query = `
		SELECT id, name, capacity, hotel_id, created_at, updated_at
		FROM rooms
		WHERE $1::bigint IS NULL OR hotel_id = $1
		ORDER BY id`

	rows, err := r.db.Query(ctx, query, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	rooms := []readmodel.RoomRM{}
	for rows.Next() {
		var room readmodel.RoomRM
		if err := rows.Scan(&room.ID, &room.Name, &room.Capacity, &room.HotelID, &room.CreatedAt, &room.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read room rows", err)
	}

	return rooms, nil
}
