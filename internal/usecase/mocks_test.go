//go:build unit

package usecase_test

import (
	"context"

	"room-booking-api/internal/infra/db"
	"room-booking-api/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) FindByUserIDWithRoom(ctx context.Context, userID int64) (*readmodel.BookingRM, error) {
	args := m.Called(ctx, userID)
	if rm := args.Get(0); rm != nil {
		return rm.(*readmodel.BookingRM), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) FindFirstByUserID(ctx context.Context, q db.DBTX, userID int64) (*readmodel.BookingRM, error) {
	args := m.Called(ctx, q, userID)
	if rm := args.Get(0); rm != nil {
		return rm.(*readmodel.BookingRM), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) CountByRoomID(ctx context.Context, q db.DBTX, roomID int64) (int64, error) {
	args := m.Called(ctx, q, roomID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBookingRepo) Create(ctx context.Context, q db.DBTX, userID, roomID int64) (int64, error) {
	args := m.Called(ctx, q, userID, roomID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBookingRepo) UpdateRoom(ctx context.Context, q db.DBTX, bookingID, userID, roomID int64) (*readmodel.BookingRM, error) {
	args := m.Called(ctx, q, bookingID, userID, roomID)
	if rm := args.Get(0); rm != nil {
		return rm.(*readmodel.BookingRM), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockRoomRepo struct {
	mock.Mock
}

func (m *mockRoomRepo) FindByID(ctx context.Context, id int64) (*readmodel.RoomRM, error) {
	args := m.Called(ctx, id)
	if rm := args.Get(0); rm != nil {
		return rm.(*readmodel.RoomRM), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockEnrollmentRepo struct {
	mock.Mock
}

func (m *mockEnrollmentRepo) FindByUserID(ctx context.Context, userID int64) (*readmodel.EnrollmentRM, error) {
	args := m.Called(ctx, userID)
	if rm := args.Get(0); rm != nil {
		return rm.(*readmodel.EnrollmentRM), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockTicketRepo struct {
	mock.Mock
}

func (m *mockTicketRepo) FindByEnrollmentID(ctx context.Context, enrollmentID int64) (*readmodel.TicketRM, error) {
	args := m.Called(ctx, enrollmentID)
	if rm := args.Get(0); rm != nil {
		return rm.(*readmodel.TicketRM), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockHotelRepo struct {
	mock.Mock
}

func (m *mockHotelRepo) FindAllWithRooms(ctx context.Context) ([]*readmodel.HotelRM, error) {
	args := m.Called(ctx)
	if rms := args.Get(0); rms != nil {
		return rms.([]*readmodel.HotelRM), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockHotelRepo) FindByIDWithRooms(ctx context.Context, id int64) (*readmodel.HotelRM, error) {
	args := m.Called(ctx, id)
	if rm := args.Get(0); rm != nil {
		return rm.(*readmodel.HotelRM), args.Error(1)
	}
	return nil, args.Error(1)
}

// fakeTx stands in for pgx.Tx so use case tests can observe commit and
// rollback without a database. Statement-level methods are never reached
// because the repositories are mocked.
type fakeTx struct {
	committed  bool
	rolledBack bool
	commitErr  error
}

func (t *fakeTx) Commit(_ context.Context) error {
	if t.commitErr != nil {
		return t.commitErr
	}
	if t.committed || t.rolledBack {
		return pgx.ErrTxClosed
	}
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(_ context.Context) error {
	if t.committed || t.rolledBack {
		return pgx.ErrTxClosed
	}
	t.rolledBack = true
	return nil
}

func (t *fakeTx) Begin(_ context.Context) (pgx.Tx, error) { return t, nil }

func (t *fakeTx) CopyFrom(_ context.Context, _ pgx.Identifier, _ []string, _ pgx.CopyFromSource) (int64, error) {
	return 0, nil
}

func (t *fakeTx) SendBatch(_ context.Context, _ *pgx.Batch) pgx.BatchResults { return nil }

func (t *fakeTx) LargeObjects() pgx.LargeObjects { return pgx.LargeObjects{} }

func (t *fakeTx) Prepare(_ context.Context, _, _ string) (*pgconn.StatementDescription, error) {
	return nil, nil
}

func (t *fakeTx) Exec(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (t *fakeTx) Query(_ context.Context, _ string, _ ...any) (pgx.Rows, error) { return nil, nil }

func (t *fakeTx) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row { return nil }

func (t *fakeTx) Conn() *pgx.Conn { return nil }

type mockTxBeginner struct {
	tx  *fakeTx
	err error
}

func (b *mockTxBeginner) Begin(_ context.Context) (pgx.Tx, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.tx, nil
}
