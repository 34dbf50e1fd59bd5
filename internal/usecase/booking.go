package usecase

import (
	"context"
	"errors"
	"log/slog"

	"room-booking-api/internal/infra"
	"room-booking-api/internal/infra/db"
	"room-booking-api/internal/pkg/errs"
	"room-booking-api/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5"
)

var (
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrCannotBookRoom     = errors.New("ticket does not allow booking a room")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrRoomNotFound       = errors.New("room not found")
	ErrAlreadyBooked      = errors.New("user already has a booking")
	ErrNoVacancy          = errors.New("no vacancies available")
	ErrRoomOccupied       = errors.New("room is not free")

	// Error marker for categorization
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

type BookingRepository interface {
	FindByUserIDWithRoom(ctx context.Context, userID int64) (*readmodel.BookingRM, error)
	FindFirstByUserID(ctx context.Context, q db.DBTX, userID int64) (*readmodel.BookingRM, error)
	CountByRoomID(ctx context.Context, q db.DBTX, roomID int64) (int64, error)
	Create(ctx context.Context, q db.DBTX, userID, roomID int64) (int64, error)
	UpdateRoom(ctx context.Context, q db.DBTX, bookingID, userID, roomID int64) (*readmodel.BookingRM, error)
}

type RoomRepository interface {
	FindByID(ctx context.Context, id int64) (*readmodel.RoomRM, error)
}

// TxBeginner is satisfied by *pgxpool.Pool.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type BookingUseCase interface {
	GetBooking(ctx context.Context, userID int64) (*readmodel.BookingRM, error)
	CreateBooking(ctx context.Context, userID, roomID int64) (int64, error)
	TransferBooking(ctx context.Context, userID, roomID, bookingID int64) (*readmodel.BookingRM, error)
}

type bookingUseCaseImpl struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	eligibility *RoomStayEligibility
	db          TxBeginner
}

func NewBookingUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	eligibility *RoomStayEligibility,
	db TxBeginner,
) BookingUseCase {
	return &bookingUseCaseImpl{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		eligibility: eligibility,
		db:          db,
	}
}

func (u *bookingUseCaseImpl) GetBooking(ctx context.Context, userID int64) (*readmodel.BookingRM, error) {
	if err := u.eligibility.Verify(ctx, userID); err != nil {
		return nil, err
	}

	booking, err := u.bookingRepo.FindByUserIDWithRoom(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return booking, nil
}

// CreateBooking allocates a room to the caller. The duplicate-booking and
// vacancy checks run in the same transaction as the insert so concurrent
// requests cannot race past them.
func (u *bookingUseCaseImpl) CreateBooking(ctx context.Context, userID, roomID int64) (int64, error) {
	if err := u.eligibility.Verify(ctx, userID); err != nil {
		return 0, err
	}

	room, err := u.roomRepo.FindByID(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, ErrRoomNotFound
		}
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer rollback(ctx, tx)

	if _, err := u.bookingRepo.FindFirstByUserID(ctx, tx, userID); err == nil {
		return 0, ErrAlreadyBooked
	} else if !infra.IsKind(err, infra.KindNotFound) {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	occupants, err := u.bookingRepo.CountByRoomID(ctx, tx, roomID)
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if int64(room.Capacity)-occupants == 0 {
		return 0, ErrNoVacancy
	}

	bookingID, err := u.bookingRepo.Create(ctx, tx, userID, roomID)
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return bookingID, nil
}

// TransferBooking moves the row named by bookingID to a new room. The target
// room qualifies only when it has zero occupants; the caller's own current
// booking counts toward that total, so same-room transfers are rejected.
func (u *bookingUseCaseImpl) TransferBooking(ctx context.Context, userID, roomID, bookingID int64) (*readmodel.BookingRM, error) {
	if err := u.eligibility.Verify(ctx, userID); err != nil {
		return nil, err
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer rollback(ctx, tx)

	if _, err := u.bookingRepo.FindFirstByUserID(ctx, tx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	occupants, err := u.bookingRepo.CountByRoomID(ctx, tx, roomID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if occupants != 0 {
		return nil, ErrRoomOccupied
	}

	booking, err := u.bookingRepo.UpdateRoom(ctx, tx, bookingID, userID, roomID)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrBookingNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return nil, ErrRoomNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return booking, nil
}

func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		slog.Warn("failed to rollback transaction", "error", err)
	}
}
