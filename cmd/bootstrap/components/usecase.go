package components

import (
	"room-booking-api/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		usecase.NewRoomStayEligibility,
		usecase.NewBookingUseCase,
		usecase.NewHotelUseCase,
		usecase.NewTokenValidator,
	),
)
