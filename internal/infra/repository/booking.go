package repository

import (
	"context"

	"room-booking-api/internal/infra"
	"room-booking-api/internal/infra/db"
	"room-booking-api/internal/pkg/pgconv"
	"room-booking-api/internal/usecase/readmodel"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

// FindByUserIDWithRoom returns the caller's booking joined with its room.
func (r *BookingRepository) FindByUserIDWithRoom(ctx context.Context, userID int64) (*readmodel.BookingRM, error) {
	const query = `
		SELECT b.id, b.user_id, b.room_id, b.created_at, b.updated_at,
		       r.id, r.name, r.capacity, r.hotel_id, r.created_at, r.updated_at
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		WHERE b.user_id = $1
		ORDER BY b.id
		LIMIT 1`

	var (
		booking readmodel.BookingRM
		room    readmodel.RoomRM
	)
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&booking.ID, &booking.UserID, &booking.RoomID, &booking.CreatedAt, &booking.UpdatedAt,
		&room.ID, &room.Name, &room.Capacity, &room.HotelID, &room.CreatedAt, &room.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by user ID", err)
	}

	booking.Room = &room
	return &booking, nil
}

// FindFirstByUserID runs on the given DBTX so Create/Transfer can issue the
// duplicate-booking check inside their transaction.
func (r *BookingRepository) FindFirstByUserID(ctx context.Context, q db.DBTX, userID int64) (*readmodel.BookingRM, error) {
	const query = `
		SELECT id, user_id, room_id, created_at, updated_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY id
		LIMIT 1`

	var booking readmodel.BookingRM
	err := q.QueryRow(ctx, query, userID).Scan(
		&booking.ID, &booking.UserID, &booking.RoomID, &booking.CreatedAt, &booking.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by user ID", err)
	}

	return &booking, nil
}

// CountByRoomID returns the current occupancy of a room.
func (r *BookingRepository) CountByRoomID(ctx context.Context, q db.DBTX, roomID int64) (int64, error) {
	const query = `SELECT COUNT(*) FROM bookings WHERE room_id = $1`

	var count int64
	if err := q.QueryRow(ctx, query, roomID).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count bookings for room", err)
	}

	return count, nil
}

func (r *BookingRepository) Create(ctx context.Context, q db.DBTX, userID, roomID int64) (int64, error) {
	const query = `
		INSERT INTO bookings (user_id, room_id)
		VALUES ($1, $2)
		RETURNING id`

	var id int64
	if err := q.QueryRow(ctx, query, userID, roomID).Scan(&id); err != nil {
		switch {
		case pgconv.IsForeignKeyViolation(err):
			return 0, infra.WrapRepoErr("room does not exist", err, infra.KindForeignKeyViolated)
		case pgconv.IsUniqueViolation(err):
			return 0, infra.WrapRepoErr("duplicate booking", err, infra.KindDuplicateKey)
		}
		return 0, infra.WrapRepoErr("failed to create booking", err)
	}

	return id, nil
}

// UpdateRoom repoints the booking row at a new room and returns the updated
// record.
func (r *BookingRepository) UpdateRoom(ctx context.Context, q db.DBTX, bookingID, userID, roomID int64) (*readmodel.BookingRM, error) {
	const query = `
		UPDATE bookings
		SET room_id = $1, user_id = $2, updated_at = now()
		WHERE id = $3
		RETURNING id, user_id, room_id, created_at, updated_at`

	var booking readmodel.BookingRM
	err := q.QueryRow(ctx, query, roomID, userID, bookingID).Scan(
		&booking.ID, &booking.UserID, &booking.RoomID, &booking.CreatedAt, &booking.UpdatedAt,
	)
	if err != nil {
		switch {
		case pgconv.IsNoRows(err):
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		case pgconv.IsForeignKeyViolation(err):
			return nil, infra.WrapRepoErr("room does not exist", err, infra.KindForeignKeyViolated)
		}
		return nil, infra.WrapRepoErr("failed to update booking", err)
	}

	return &booking, nil
}
