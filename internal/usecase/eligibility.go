package usecase

import (
	"context"

	"room-booking-api/internal/infra"
	"room-booking-api/internal/pkg/errs"
	"room-booking-api/internal/usecase/readmodel"
)

type EnrollmentRepository interface {
	FindByUserID(ctx context.Context, userID int64) (*readmodel.EnrollmentRM, error)
}

type TicketRepository interface {
	FindByEnrollmentID(ctx context.Context, enrollmentID int64) (*readmodel.TicketRM, error)
}

// RoomStayEligibility runs the shared precondition of every booking and hotel
// operation: the caller must have an enrollment and a paid, in-person ticket
// that includes a room stay.
type RoomStayEligibility struct {
	enrollmentRepo EnrollmentRepository
	ticketRepo     TicketRepository
}

func NewRoomStayEligibility(
	enrollmentRepo EnrollmentRepository,
	ticketRepo TicketRepository,
) *RoomStayEligibility {
	return &RoomStayEligibility{
		enrollmentRepo: enrollmentRepo,
		ticketRepo:     ticketRepo,
	}
}

func (e *RoomStayEligibility) Verify(ctx context.Context, userID int64) error {
	enrollment, err := e.enrollmentRepo.FindByUserID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrEnrollmentNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	ticket, err := e.ticketRepo.FindByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCannotBookRoom
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if ticket.Status != readmodel.TicketStatusPaid || ticket.IsRemote || !ticket.IncludesRoomStay {
		return ErrCannotBookRoom
	}

	return nil
}
