package repository

import (
	"context"

	"room-booking-api/internal/infra"
	"room-booking-api/internal/infra/db"
	"room-booking-api/internal/pkg/pgconv"
	"room-booking-api/internal/usecase/readmodel"
)

// TicketRepository reads ticket records owned by the ticketing service,
// joined with the type flags that gate room booking.
type TicketRepository struct {
	db db.DBTX
}

func NewTicketRepository(dbtx db.DBTX) *TicketRepository {
	return &TicketRepository{db: dbtx}
}

func (r *TicketRepository) FindByEnrollmentID(ctx context.Context, enrollmentID int64) (*readmodel.TicketRM, error) {
	const query = `
		SELECT t.id, t.enrollment_id, t.status, tt.is_remote, tt.includes_room_stay
		FROM tickets t
		JOIN ticket_types tt ON tt.id = t.ticket_type_id
		WHERE t.enrollment_id = $1
		ORDER BY t.id
		LIMIT 1`

	var ticket readmodel.TicketRM
	err := r.db.QueryRow(ctx, query, enrollmentID).Scan(
		&ticket.ID, &ticket.EnrollmentID, &ticket.Status, &ticket.IsRemote, &ticket.IncludesRoomStay,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("ticket not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find ticket by enrollment ID", err)
	}

	return &ticket, nil
}
