package usecase

import (
	"context"
	"errors"

	"room-booking-api/internal/infra"
	"room-booking-api/internal/pkg/errs"
	"room-booking-api/internal/usecase/readmodel"
)

var ErrHotelNotFound = errors.New("hotel not found")

type HotelRepository interface {
	FindAllWithRooms(ctx context.Context) ([]*readmodel.HotelRM, error)
	FindByIDWithRooms(ctx context.Context, id int64) (*readmodel.HotelRM, error)
}

// HotelUseCase lists hotels and their rooms behind the same ticket
// eligibility gate as the booking operations.
type HotelUseCase interface {
	GetHotels(ctx context.Context, userID int64) ([]*readmodel.HotelRM, error)
	GetHotelWithRooms(ctx context.Context, userID, hotelID int64) (*readmodel.HotelRM, error)
}

type hotelUseCaseImpl struct {
	hotelRepo   HotelRepository
	eligibility *RoomStayEligibility
}

func NewHotelUseCase(hotelRepo HotelRepository, eligibility *RoomStayEligibility) HotelUseCase {
	return &hotelUseCaseImpl{
		hotelRepo:   hotelRepo,
		eligibility: eligibility,
	}
}

func (u *hotelUseCaseImpl) GetHotels(ctx context.Context, userID int64) ([]*readmodel.HotelRM, error) {
	if err := u.eligibility.Verify(ctx, userID); err != nil {
		return nil, err
	}

	hotels, err := u.hotelRepo.FindAllWithRooms(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if len(hotels) == 0 {
		return nil, ErrHotelNotFound
	}

	return hotels, nil
}

func (u *hotelUseCaseImpl) GetHotelWithRooms(ctx context.Context, userID, hotelID int64) (*readmodel.HotelRM, error) {
	if err := u.eligibility.Verify(ctx, userID); err != nil {
		return nil, err
	}

	hotel, err := u.hotelRepo.FindByIDWithRooms(ctx, hotelID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return hotel, nil
}
