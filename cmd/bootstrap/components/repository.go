package components

import (
	"room-booking-api/internal/infra/db"
	"room-booking-api/internal/infra/repository"
	"room-booking-api/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		NewTxBeginner,
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(usecase.BookingRepository)),
		),
		fx.Annotate(
			repository.NewRoomRepository,
			fx.As(new(usecase.RoomRepository)),
		),
		fx.Annotate(
			repository.NewEnrollmentRepository,
			fx.As(new(usecase.EnrollmentRepository)),
		),
		fx.Annotate(
			repository.NewTicketRepository,
			fx.As(new(usecase.TicketRepository)),
		),
		fx.Annotate(
			repository.NewHotelRepository,
			fx.As(new(usecase.HotelRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewTxBeginner(pool *pgxpool.Pool) usecase.TxBeginner {
	return pool
}
